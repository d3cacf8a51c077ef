package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// CatalogService exposes reference data and the employee pool
type CatalogService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	Employees(ctx context.Context) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error)
}

type catalogService struct {
	catalog   repository.CatalogRepository
	employees repository.EmployeeRepository
}

func NewCatalogService(catalog repository.CatalogRepository, employees repository.EmployeeRepository) CatalogService {
	return &catalogService{catalog: catalog, employees: employees}
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalog.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	methods, err := s.catalog.FindPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

func (s *catalogService) Employees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *catalogService) CreateEmployee(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	employee := &model.Employee{Name: name}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}
