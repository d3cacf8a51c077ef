package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

func TestProductRepository_Create_WithStockAndAddons(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Latte", pgxmock.AnyArg(), pgxmock.AnyArg(), 1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(4, now, now))
	mock.ExpectQuery("INSERT INTO stocks").
		WithArgs(4, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(40))
	mock.ExpectQuery("INSERT INTO addons").
		WithArgs(4, "Oat milk", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(400))
	mock.ExpectCommit()

	p := &model.Product{
		ProductName: "Latte",
		Price:       decimal.RequireFromString("4.50"),
		CategoryID:  1,
		Addons:      []model.Addon{{Name: "Oat milk", Price: decimal.RequireFromString("0.50")}},
	}
	require.NoError(t, repo.Create(context.Background(), p, 50))
	assert.Equal(t, 4, p.ID)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 50, p.Stock.Quantity)
	assert.Equal(t, 400, p.Addons[0].ID)
	assert.Equal(t, 4, p.Addons[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_UnknownCategory(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "products_category_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Product{ProductName: "Latte", CategoryID: 99}, 1)
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  pgconn.CommandTag
		err     error
		wantErr error
	}{
		{name: "deleted", result: pgxmock.NewResult("DELETE", 1)},
		{name: "missing", result: pgxmock.NewResult("DELETE", 0), wantErr: ErrNotFound},
		{name: "referenced by orders", err: &pgconn.PgError{Code: "23503"}, wantErr: ErrForeignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewProductRepository(mock)

			exp := mock.ExpectExec("DELETE FROM products").WithArgs(3)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Delete(context.Background(), 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
