package ports

import (
	"context"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

// OrderRepository defines the read-only interface over order records.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Search(ctx context.Context, term string) ([]domain.Order, error)
}
