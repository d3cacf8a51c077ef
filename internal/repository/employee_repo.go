package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"
)

// EmployeeRepository gives access to the fulfillment pool
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO employees (name) VALUES ($1) RETURNING id`, e.Name).Scan(&e.ID); err != nil {
		return fmt.Errorf("failed to create employee: %w", classify(err))
	}
	return nil
}
