package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")
var ErrDuplicateSKU = errors.New("sku already exists")

// Item is a stock-keeping unit tracked by the inventory.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
