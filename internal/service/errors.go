package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken            = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserHasOrders         = errors.New("user has placed orders")
	ErrProductNotFound       = errors.New("product not found")
	ErrProductInUse          = errors.New("product is referenced by existing orders")
	ErrOrderNotFound         = errors.New("order not found")
	ErrForbidden             = errors.New("forbidden: user does not have permission for this action")
	ErrNoFulfillmentCapacity = errors.New("no employees available to assign the order")
)

// ValidationError reports a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
