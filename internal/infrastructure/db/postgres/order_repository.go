package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// OrderRepository reads order records. Orders are written by an upstream
// system, so only queries live here.
type OrderRepository struct {
	db *sql.DB
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, customer_name, order_date, total_amount, status
		FROM orders
		ORDER BY order_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// Search matches a single lowercased pattern against customer name, status,
// the decimal order id and the order date rendered as YYYY-MM-DD. A row
// matching any of the four is included.
func (r *OrderRepository) Search(ctx context.Context, term string) ([]domain.Order, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, customer_name, order_date, total_amount, status
		FROM orders
		WHERE LOWER(customer_name) LIKE $1
		   OR LOWER(status) LIKE $1
		   OR CAST(order_id AS TEXT) LIKE $1
		   OR to_char(order_date, 'YYYY-MM-DD') LIKE $1
		ORDER BY order_date DESC
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order     domain.Order
			orderDate sql.NullTime
		)
		if err := rows.Scan(&order.OrderID, &order.CustomerName, &orderDate, &order.TotalAmount, &order.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if orderDate.Valid {
			t := orderDate.Time
			order.OrderDate = &t
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return orders, nil
}
