package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Stock is the quantity record owned by a single product
type Stock struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Addon struct {
	ID        int             `json:"id"`
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Product is a catalog entry. Category, Stock and Addons are populated
// depending on the read path.
type Product struct {
	ID          int             `json:"id"`
	ProductName string          `json:"productName"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"categoryId"`
	Category    *Category       `json:"category,omitempty"`
	Stock       *Stock          `json:"stock,omitempty"`
	Addons      []Addon         `json:"addons,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type AddonInput struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	ProductName   string          `json:"productName" binding:"required"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    int             `json:"categoryId" binding:"required,gt=0"`
	StockQuantity int             `json:"stockQuantity" binding:"required,gt=0"`
	Addons        []AddonInput    `json:"addons" binding:"omitempty,dive"`
}

// UpdateProductRequest replaces the editable product fields. StockQuantity is
// optional and only touches the stock record when present.
type UpdateProductRequest struct {
	ProductName   string          `json:"productName" binding:"required"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    int             `json:"categoryId" binding:"required,gt=0"`
	StockQuantity *int            `json:"stockQuantity,omitempty" binding:"omitempty,gte=0"`
}
