package ports

import (
	"context"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

// ItemInput carries the writable fields of an inventory item. The same shape
// serves create and full-replace update.
type ItemInput struct {
	Name     string
	SKU      string
	Quantity int
	Price    float64
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, input ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id int64, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
