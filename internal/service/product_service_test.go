package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/repository/repotest"
)

func TestProductService_CreateThenGet(t *testing.T) {
	svc := NewProductService(repotest.NewProducts())
	ctx := context.Background()
	description := "Single origin"

	created, err := svc.Create(ctx, model.CreateProductRequest{
		ProductName:   "Espresso",
		Description:   &description,
		Price:         decimal.RequireFromString("3.25"),
		CategoryID:    1,
		StockQuantity: 10,
		Addons:        []model.AddonInput{{Name: "Extra shot", Price: decimal.RequireFromString("0.75")}},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Espresso", got.ProductName)
	assert.Equal(t, "Single origin", *got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("3.25")))
	assert.Equal(t, 10, got.Stock.Quantity)
	require.Len(t, got.Addons, 1)
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(repotest.NewProducts())

	_, err := svc.Create(context.Background(), model.CreateProductRequest{ProductName: "Free", CategoryID: 1, StockQuantity: 1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	repo := &repotest.Products{
		CreateErr: fmt.Errorf("failed to create product: %w", repository.ErrForeignKey),
	}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), model.CreateProductRequest{
		ProductName: "Tea", Price: decimal.NewFromInt(2), CategoryID: 99, StockQuantity: 1,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "categoryId", verr.Field)
}

func TestProductService_UpdateMissing(t *testing.T) {
	svc := NewProductService(repotest.NewProducts())

	_, err := svc.Update(context.Background(), 5, model.UpdateProductRequest{
		ProductName: "Tea", Price: decimal.NewFromInt(2), CategoryID: 1,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	repo := repotest.NewProducts(model.Product{ID: 1, ProductName: "Tea"})
	svc := NewProductService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrProductNotFound)
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Zero(t, repo.Len())

	repo.DeleteErr = repository.ErrForeignKey
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrProductInUse)
}

func TestProductService_PriceMustFitColumn(t *testing.T) {
	tests := []struct {
		name  string
		req   model.CreateProductRequest
		field string
	}{
		{"three decimals", model.CreateProductRequest{Price: decimal.RequireFromString("19.999")}, "price"},
		{"overflow", model.CreateProductRequest{Price: decimal.RequireFromString("100000000")}, "price"},
		{"addon three decimals", model.CreateProductRequest{
			Price:  decimal.NewFromInt(3),
			Addons: []model.AddonInput{{Name: "Honey", Price: decimal.RequireFromString("0.125")}},
		}, "addons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repotest.NewProducts()
			svc := NewProductService(repo)
			tt.req.ProductName, tt.req.CategoryID, tt.req.StockQuantity = "Tea", 1, 1

			_, err := svc.Create(context.Background(), tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, repo.Len())
		})
	}

	svc := NewProductService(repotest.NewProducts())
	_, err := svc.Update(context.Background(), 1, model.UpdateProductRequest{
		ProductName: "Tea", Price: decimal.RequireFromString("1.001"), CategoryID: 1,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestProductService_TrailingZerosAccepted(t *testing.T) {
	svc := NewProductService(repotest.NewProducts())
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreateProductRequest{
		ProductName: "Tea", Price: decimal.RequireFromString("19.990"), CategoryID: 1, StockQuantity: 1,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(created.Price))
}
