package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"
)

// ProductRepository defines operations for catalog products
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product, stockQuantity int) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product, stockQuantity *int) error
	Delete(ctx context.Context, id int) error
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productSelect = `SELECT p.id, p.product_name, p.description, p.price, p.category_id, p.created_at, p.updated_at,
       c.name, s.id, s.quantity
FROM products p
JOIN categories c ON c.id = p.category_id
LEFT JOIN stocks s ON s.product_id = p.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p        model.Product
		catName  string
		stockID  *int
		quantity *int
	)
	if err := row.Scan(&p.ID, &p.ProductName, &p.Description, &p.Price, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&catName, &stockID, &quantity); err != nil {
		return nil, err
	}
	p.Category = &model.Category{ID: p.CategoryID, Name: catName}
	if stockID != nil && quantity != nil {
		p.Stock = &model.Stock{ID: *stockID, ProductID: p.ID, Quantity: *quantity}
	}
	return &p, nil
}

// Create inserts the product together with its stock record and addons in
// one transaction
func (r *productRepository) Create(ctx context.Context, p *model.Product, stockQuantity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin product transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	sql := `INSERT INTO products (product_name, description, price, category_id)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, sql, p.ProductName, p.Description, p.Price, p.CategoryID).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create product: %w", classify(err))
	}

	stock := &model.Stock{ProductID: p.ID, Quantity: stockQuantity}
	if err := tx.QueryRow(ctx, `INSERT INTO stocks (product_id, quantity) VALUES ($1, $2) RETURNING id`,
		p.ID, stockQuantity).Scan(&stock.ID); err != nil {
		return fmt.Errorf("failed to create stock: %w", classify(err))
	}
	p.Stock = stock

	for i := range p.Addons {
		a := &p.Addons[i]
		a.ProductID = p.ID
		if err := tx.QueryRow(ctx, `INSERT INTO addons (product_id, name, price) VALUES ($1, $2, $3) RETURNING id`,
			p.ID, a.Name, a.Price).Scan(&a.ID); err != nil {
			return fmt.Errorf("failed to create addon: %w", classify(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	return nil
}

// FindByID retrieves a product with its category, stock and addons
func (r *productRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", classify(err))
	}

	rows, err := r.db.Query(ctx, `SELECT id, product_id, name, price FROM addons WHERE product_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query addons: %w", err)
	}
	defer rows.Close()

	p.Addons = []model.Addon{}
	for rows.Next() {
		var a model.Addon
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("failed to scan addon row: %w", err)
		}
		p.Addons = append(p.Addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating addon rows: %w", err)
	}
	return p, nil
}

// FindAll lists products with category and stock; addons are omitted
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Update replaces the editable product columns and, when stockQuantity is
// set, upserts the stock record
func (r *productRepository) Update(ctx context.Context, p *model.Product, stockQuantity *int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin product transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	sql := `UPDATE products SET product_name = $1, description = $2, price = $3, category_id = $4
            WHERE id = $5 RETURNING created_at, updated_at`
	if err := tx.QueryRow(ctx, sql, p.ProductName, p.Description, p.Price, p.CategoryID, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update product: %w", classify(err))
	}

	if stockQuantity != nil {
		stock := &model.Stock{ProductID: p.ID, Quantity: *stockQuantity}
		upsert := `INSERT INTO stocks (product_id, quantity) VALUES ($1, $2)
                   ON CONFLICT (product_id) DO UPDATE SET quantity = EXCLUDED.quantity RETURNING id`
		if err := tx.QueryRow(ctx, upsert, p.ID, *stockQuantity).Scan(&stock.ID); err != nil {
			return fmt.Errorf("failed to update stock: %w", classify(err))
		}
		p.Stock = stock
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	return nil
}

// Delete removes a product; stock and addons cascade, order details block it
func (r *productRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", classify(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}
