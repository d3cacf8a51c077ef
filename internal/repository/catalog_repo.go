package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"
)

// CatalogRepository covers the reference data products and orders point at
type CatalogRepository interface {
	FindCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	FindPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method *model.PaymentMethod) error
}

type catalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category or returns the existing one with the same name
func (r *catalogRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	sql := `INSERT INTO categories (name) VALUES ($1)
            ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`
	if err := r.db.QueryRow(ctx, sql, c.Name).Scan(&c.ID); err != nil {
		return fmt.Errorf("failed to create category: %w", classify(err))
	}
	return nil
}

func (r *catalogRepository) FindPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, `SELECT id, method FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	methods := []model.PaymentMethod{}
	for rows.Next() {
		var m model.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Method); err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// CreatePaymentMethod inserts a payment method or returns the existing one
func (r *catalogRepository) CreatePaymentMethod(ctx context.Context, m *model.PaymentMethod) error {
	sql := `INSERT INTO payment_methods (method) VALUES ($1)
            ON CONFLICT (method) DO UPDATE SET method = EXCLUDED.method RETURNING id`
	if err := r.db.QueryRow(ctx, sql, m.Method).Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to create payment method: %w", classify(err))
	}
	return nil
}
