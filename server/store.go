package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quality-fastfood/db"
	"quality-fastfood/models"
	"quality-fastfood/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NewOrderID generates ids like QFF-1A2B3C4D.
func NewOrderID() string {
	return "QFF-" + strings.ToUpper(uuid.New().String()[:8])
}

// SaveOrder inserts the order and its items in one transaction and returns
// the generated order id.
func SaveOrder(ctx context.Context, req models.CreateOrderRequest, totalPrice int64) (string, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	orderID := NewOrderID()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, customer_name, phone, address, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, req.CustomerName, req.Phone, req.Address, totalPrice, models.OrderStatusPending,
	)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	for _, it := range req.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, name, category, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, it.ItemID, it.Name, it.Category, it.Price, it.Quantity,
		)
		if err != nil {
			return "", fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return orderID, nil
}

// GetOrderByID loads an order with its items. Returns (nil, nil) when the
// order does not exist.
func GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, customer_name, phone, address, total_price, created_at, status
		FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.TotalPrice, &o.CreatedAt, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT id, item_id, name, category, price, quantity
		FROM order_items WHERE order_id = $1
		ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it models.StoredOrderItem
		if err := rows.Scan(&it.ID, &it.ItemID, &it.Name, &it.Category, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}

// ListOrders returns recent orders, newest first, without their items.
func ListOrders(ctx context.Context, skip, limit int) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, customer_name, phone, address, total_price, created_at, status
		FROM orders
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.TotalPrice, &o.CreatedAt, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus moves an order to a new status after checking the
// transition is allowed.
func UpdateOrderStatus(ctx context.Context, orderID, newStatus string) error {
	var current string
	err := db.Pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("order %s not found", orderID)
		}
		return err
	}
	if !services.ValidStatusTransition(current, newStatus) {
		return fmt.Errorf("cannot move order from %s to %s", current, newStatus)
	}
	_, err = db.Pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, newStatus, orderID)
	return err
}
