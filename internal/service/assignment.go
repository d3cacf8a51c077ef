package service

import (
	"math/rand/v2"

	"storefront/internal/model"
)

// AssignmentPolicy picks the employee who fulfills a new order
type AssignmentPolicy interface {
	Assign(pool []model.Employee) (model.Employee, error)
}

// RandomAssignment selects uniformly at random over the whole pool
type RandomAssignment struct {
	rng *rand.Rand
}

// NewRandomAssignment returns a policy drawing from rng, or from the
// process-wide generator when rng is nil. A non-nil rng is not safe for
// concurrent requests.
func NewRandomAssignment(rng *rand.Rand) *RandomAssignment {
	return &RandomAssignment{rng: rng}
}

func (p *RandomAssignment) Assign(pool []model.Employee) (model.Employee, error) {
	if len(pool) == 0 {
		return model.Employee{}, ErrNoFulfillmentCapacity
	}
	var i int
	if p.rng != nil {
		i = p.rng.IntN(len(pool))
	} else {
		i = rand.IntN(len(pool))
	}
	return pool[i], nil
}
