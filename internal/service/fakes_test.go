package service

import "storefront/internal/model"

type firstEmployee struct{}

func (firstEmployee) Assign(pool []model.Employee) (model.Employee, error) {
	if len(pool) == 0 {
		return model.Employee{}, ErrNoFulfillmentCapacity
	}
	return pool[0], nil
}
