package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// OrderService places and reads orders
type OrderService interface {
	Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error)
	ListMine(ctx context.Context, userID int) ([]model.Order, error)
	Get(ctx context.Context, orderID, actorID int) (*model.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	employees repository.EmployeeRepository
	users     repository.UserRepository
	policy    AssignmentPolicy
}

func NewOrderService(orders repository.OrderRepository, employees repository.EmployeeRepository,
	users repository.UserRepository, policy AssignmentPolicy) OrderService {
	return &orderService{orders: orders, employees: employees, users: users, policy: policy}
}

// Create validates the order, assigns an employee and persists the order
// with its details. Nothing is written when the employee pool is empty.
func (s *orderService) Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error) {
	if err := validateOrder(req); err != nil {
		return nil, err
	}

	pool, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee pool: %w", err)
	}
	employee, err := s.policy.Assign(pool)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:          userID,
		EmployeeID:      employee.ID,
		PaymentMethodID: req.PaymentMethodID,
		AddressDetail:   req.AddressDetail,
		OrderDetails:    make([]model.OrderDetail, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.OrderDetails = append(order.OrderDetails, model.OrderDetail{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, referenceError(err)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("order_id", order.ID).Int("employee_id", employee.ID).Msg("order assigned")
	return order, nil
}

func validateOrder(req model.CreateOrderRequest) error {
	if req.PaymentMethodID <= 0 {
		return invalid("paymentMethodId", "paymentMethodId is required")
	}
	if len(req.Items) == 0 {
		return invalid("items", "at least one item is required")
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return invalid("items", "productId is required for every item")
		}
		if item.Quantity <= 0 {
			return invalid("items", "quantity must be greater than 0")
		}
	}
	return nil
}

// referenceError turns a foreign key violation into the offending input
// field. An employee removed between selection and insert is not the
// caller's fault and stays an internal error.
func referenceError(err error) error {
	constraint := repository.ConstraintName(err)
	switch {
	case strings.Contains(constraint, "product"):
		return invalid("items", "product does not exist")
	case strings.Contains(constraint, "payment_method"):
		return invalid("paymentMethodId", "payment method does not exist")
	}
	return fmt.Errorf("failed to create order: %w", err)
}

func (s *orderService) ListMine(ctx context.Context, userID int) ([]model.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Get returns an order to its owner or to an ADMIN
func (s *orderService) Get(ctx context.Context, orderID, actorID int) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.UserID == actorID {
		return order, nil
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to look up caller: %w", err)
	}
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}
