package ports

import (
	"context"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

// AuthRepository defines the interface for account persistence.
type AuthRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}
