package model

import "time"

type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PaymentMethod struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
}

type OrderDetail struct {
	ID        int `json:"id"`
	OrderID   int `json:"orderId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Order is immutable once created
type Order struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	EmployeeID      int           `json:"employeeId"`
	PaymentMethodID int           `json:"paymentMethodId"`
	AddressDetail   *string       `json:"addressDetail,omitempty"`
	OrderDetails    []OrderDetail `json:"orderDetails"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type OrderItem struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the payload of POST /orders
type CreateOrderRequest struct {
	PaymentMethodID int         `json:"paymentMethodId" binding:"required,gt=0"`
	AddressDetail   *string     `json:"addressDetail"`
	Items           []OrderItem `json:"items" binding:"required,min=1,dive"`
}

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}
