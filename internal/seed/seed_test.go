package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/repository/repotest"
)

func TestRun(t *testing.T) {
	catalog := &repotest.Catalog{}
	employees := repotest.NewEmployees()
	products := repotest.NewProducts()
	repos := Repositories{Catalog: catalog, Employees: employees, Products: products}
	ctx := context.Background()

	report, err := Run(ctx, repos)
	require.NoError(t, err)
	assert.Equal(t, Report{Employees: 4, PaymentMethods: 3, Products: 1}, report)

	pool, err := employees.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 4)
	assert.Equal(t, "Alice", pool[0].Name)

	all, err := products.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Sample Product 1", all[0].ProductName)
	assert.Equal(t, "199", all[0].Price.String())
	require.NotNil(t, all[0].Stock)
	assert.Equal(t, 100, all[0].Stock.Quantity)
	assert.Equal(t, catalog.Categories[0].ID, all[0].CategoryID)
}

func TestRun_PartiallySeeded(t *testing.T) {
	catalog := &repotest.Catalog{PaymentMethods: []model.PaymentMethod{{ID: 1, Method: "Credit Card"}}}
	employees := repotest.NewEmployees(model.Employee{ID: 1, Name: "Dana"})
	products := repotest.NewProducts(model.Product{ID: 1, ProductName: "Tea"})

	report, err := Run(context.Background(), Repositories{Catalog: catalog, Employees: employees, Products: products})
	require.NoError(t, err)
	assert.Equal(t, Report{PaymentMethods: 2}, report)
	assert.Len(t, catalog.PaymentMethods, 3)
	assert.Equal(t, 1, products.Len())
}
