package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"
)

// OrderRepository defines operations for orders. Orders are never updated
// or deleted through it.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id int) (*model.Order, error)
	FindByUser(ctx context.Context, userID int) ([]model.Order, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its details atomically
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	sql := `INSERT INTO orders (user_id, employee_id, payment_method_id, address_detail)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if err := tx.QueryRow(ctx, sql, o.UserID, o.EmployeeID, o.PaymentMethodID, o.AddressDetail).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("failed to create order: %w", classify(err))
	}

	for i := range o.OrderDetails {
		d := &o.OrderDetails[i]
		d.OrderID = o.ID
		if err := tx.QueryRow(ctx, `INSERT INTO order_details (order_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
			o.ID, d.ProductID, d.Quantity).Scan(&d.ID); err != nil {
			return fmt.Errorf("failed to create order detail: %w", classify(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// FindByID retrieves an order with its details
func (r *orderRepository) FindByID(ctx context.Context, id int) (*model.Order, error) {
	o := &model.Order{}
	sql := `SELECT id, user_id, employee_id, payment_method_id, address_detail, created_at FROM orders WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&o.ID, &o.UserID, &o.EmployeeID, &o.PaymentMethodID, &o.AddressDetail, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", classify(err))
	}

	details, err := r.findDetails(ctx, []int{o.ID})
	if err != nil {
		return nil, err
	}
	o.OrderDetails = details[o.ID]
	if o.OrderDetails == nil {
		o.OrderDetails = []model.OrderDetail{}
	}
	return o, nil
}

// FindByUser lists the orders placed by a user, newest first
func (r *orderRepository) FindByUser(ctx context.Context, userID int) ([]model.Order, error) {
	sql := `SELECT id, user_id, employee_id, payment_method_id, address_detail, created_at
            FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by user: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	var ids []int
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.EmployeeID, &o.PaymentMethodID, &o.AddressDetail, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	details, err := r.findDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].OrderDetails = details[orders[i].ID]
		if orders[i].OrderDetails == nil {
			orders[i].OrderDetails = []model.OrderDetail{}
		}
	}
	return orders, nil
}

func (r *orderRepository) findDetails(ctx context.Context, orderIDs []int) (map[int][]model.OrderDetail, error) {
	sql := `SELECT id, order_id, product_id, quantity FROM order_details WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, sql, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order details: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[int][]model.OrderDetail, len(orderIDs))
	for rows.Next() {
		var d model.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order detail row: %w", err)
		}
		byOrder[d.OrderID] = append(byOrder[d.OrderID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order detail rows: %w", err)
	}
	return byOrder, nil
}
