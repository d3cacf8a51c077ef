package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

func TestEmployeeRepository_FindAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("SELECT id, name FROM employees").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(1, "Alice").AddRow(2, "Bob"))

	employees, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Employee{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, employees)
}

func TestEmployeeRepository_FindAll_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("SELECT id, name FROM employees").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	employees, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("Charlie").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

	e := &model.Employee{Name: "Charlie"}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, 3, e.ID)
}
