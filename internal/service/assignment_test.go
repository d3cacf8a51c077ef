package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

func TestRandomAssignment_EmptyPool(t *testing.T) {
	_, err := NewRandomAssignment(nil).Assign(nil)
	assert.ErrorIs(t, err, ErrNoFulfillmentCapacity)

	_, err = NewRandomAssignment(nil).Assign([]model.Employee{})
	assert.ErrorIs(t, err, ErrNoFulfillmentCapacity)
}

func TestRandomAssignment_SingleEmployee(t *testing.T) {
	pool := []model.Employee{{ID: 7, Name: "Alice"}}

	got, err := NewRandomAssignment(nil).Assign(pool)
	require.NoError(t, err)
	assert.Equal(t, pool[0], got)
}

func TestRandomAssignment_CoversWholePool(t *testing.T) {
	pool := []model.Employee{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}, {ID: 3, Name: "Charlie"}, {ID: 4, Name: "John"}}
	policy := NewRandomAssignment(rand.New(rand.NewPCG(1, 2)))

	counts := map[int]int{}
	const draws = 4000
	for i := 0; i < draws; i++ {
		e, err := policy.Assign(pool)
		require.NoError(t, err)
		counts[e.ID]++
	}

	require.Len(t, counts, len(pool))
	for id, n := range counts {
		// expected 1000 per employee, allow a wide band
		assert.InDelta(t, draws/len(pool), n, 200, "employee %d", id)
	}
}
