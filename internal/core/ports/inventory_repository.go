package ports

import (
	"context"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

// InventoryRepository defines the interface for inventory item persistence.
type InventoryRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	// Create inserts the item and returns its generated id.
	Create(ctx context.Context, item *domain.Item) (int64, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
}
