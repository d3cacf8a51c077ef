package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ProductService manages the catalog. Mutations are only routed here for
// ADMIN callers.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int, req model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, invalid("productName", "productName is required")
	}
	if err := validatePrice("price", req.Price); err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductName: name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Addons:      make([]model.Addon, 0, len(req.Addons)),
	}
	for _, a := range req.Addons {
		if a.Price.IsNegative() {
			return nil, invalid("addons", "addon price must not be negative")
		}
		if err := checkPriceScale("addons", a.Price); err != nil {
			return nil, err
		}
		product.Addons = append(product.Addons, model.Addon{Name: strings.TrimSpace(a.Name), Price: a.Price})
	}

	if err := s.repo.Create(ctx, product, req.StockQuantity); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, invalid("categoryId", "category does not exist")
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int, req model.UpdateProductRequest) (*model.Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, invalid("productName", "productName is required")
	}
	if err := validatePrice("price", req.Price); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          id,
		ProductName: name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Update(ctx, product, req.StockQuantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProductNotFound
		case errors.Is(err, repository.ErrForeignKey):
			return nil, invalid("categoryId", "category does not exist")
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// Prices are stored as NUMERIC(10, 2)
var maxPrice = decimal.New(1, 8)

func validatePrice(field string, price decimal.Decimal) error {
	if !price.IsPositive() {
		return invalid(field, field+" must be greater than 0")
	}
	return checkPriceScale(field, price)
}

// checkPriceScale rejects values the price column would round or overflow
func checkPriceScale(field string, price decimal.Decimal) error {
	if !price.Equal(price.Truncate(2)) {
		return invalid(field, field+" must have at most 2 decimal places")
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return invalid(field, field+" must be less than 100000000")
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrProductNotFound
		case errors.Is(err, repository.ErrForeignKey):
			return ErrProductInUse
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
