package models

import "time"

// OrderItem is one line of an order payload: a snapshot of a cart line at
// submission time, priced as it was when added.
type OrderItem struct {
	ItemID   int64  `json:"item_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Price    int64  `json:"price" validate:"gt=0"`
	Quantity int    `json:"quantity" validate:"gte=1,lte=20"`
}

type CreateOrderRequest struct {
	CustomerName string      `json:"customer_name" validate:"required,min=2,max=100"`
	Phone        string      `json:"phone" validate:"required,min=10,max=15"`
	Address      string      `json:"address" validate:"required,min=10,max=500"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
}

type OrderSuccessResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"order_id"`
	Message       string `json:"message"`
	EstimatedTime string `json:"estimated_time"`
}

// StoredOrderItem is an order line as persisted (with its row id).
type StoredOrderItem struct {
	ID       int64  `json:"id"`
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customer_name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	TotalPrice   int64             `json:"total_price"`
	CreatedAt    time.Time         `json:"created_at"`
	Status       string            `json:"status"`
	Items        []StoredOrderItem `json:"items"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)
