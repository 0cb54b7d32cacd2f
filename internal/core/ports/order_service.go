package ports

import (
	"context"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Search(ctx context.Context, term string) ([]domain.Order, error)
}
