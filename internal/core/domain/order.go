package domain

import "time"

// Order is a customer order. Orders are written by an upstream system and are
// read-only here: there are no create/update/delete operations on them.
type Order struct {
	OrderID      int64      `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	OrderDate    *time.Time `json:"order_date"`
	TotalAmount  float64    `json:"total_amount"`
	Status       string     `json:"status"`
}
