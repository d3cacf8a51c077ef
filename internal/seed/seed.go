// Package seed loads the reference data a fresh database needs before it
// can take orders: the fulfillment pool, payment methods and a starter
// catalog entry.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/repository"
)

var (
	Employees      = []string{"Alice", "Bob", "Charlie", "John"}
	PaymentMethods = []string{"Credit Card", "Mobile Banking", "Cash on Delivery"}
)

const (
	DefaultCategory   = "Default Category"
	sampleProductName = "Sample Product 1"
	sampleStock       = 100
)

// Repositories is what seeding writes through
type Repositories struct {
	Catalog   repository.CatalogRepository
	Employees repository.EmployeeRepository
	Products  repository.ProductRepository
}

// Report counts what a run inserted
type Report struct {
	Employees      int
	PaymentMethods int
	Products       int
}

// Run seeds reference data. Categories and payment methods are upserted by
// name; employees and the sample product are only inserted into empty
// tables, so running it twice does not duplicate rows.
func Run(ctx context.Context, repos Repositories) (Report, error) {
	log := zerolog.Ctx(ctx)
	var report Report

	existing, err := repos.Employees.FindAll(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to read employees: %w", err)
	}
	if len(existing) == 0 {
		for _, name := range Employees {
			if err := repos.Employees.Create(ctx, &model.Employee{Name: name}); err != nil {
				return report, fmt.Errorf("failed to seed employee %q: %w", name, err)
			}
			report.Employees++
		}
	}

	methods, err := repos.Catalog.FindPaymentMethods(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to read payment methods: %w", err)
	}
	known := make(map[string]bool, len(methods))
	for _, m := range methods {
		known[m.Method] = true
	}
	for _, method := range PaymentMethods {
		if known[method] {
			continue
		}
		if err := repos.Catalog.CreatePaymentMethod(ctx, &model.PaymentMethod{Method: method}); err != nil {
			return report, fmt.Errorf("failed to seed payment method %q: %w", method, err)
		}
		report.PaymentMethods++
	}

	category := &model.Category{Name: DefaultCategory}
	if err := repos.Catalog.CreateCategory(ctx, category); err != nil {
		return report, fmt.Errorf("failed to seed category: %w", err)
	}

	products, err := repos.Products.FindAll(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to read products: %w", err)
	}
	if len(products) == 0 {
		description := "A sample product for testing"
		sample := &model.Product{
			ProductName: sampleProductName,
			Description: &description,
			Price:       decimal.NewFromInt(199),
			CategoryID:  category.ID,
		}
		if err := repos.Products.Create(ctx, sample, sampleStock); err != nil {
			return report, fmt.Errorf("failed to seed sample product: %w", err)
		}
		report.Products++
	}

	log.Info().Int("employees", report.Employees).Int("payment_methods", report.PaymentMethods).
		Int("products", report.Products).Msg("seed finished")
	return report, nil
}
