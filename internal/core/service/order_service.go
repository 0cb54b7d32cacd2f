package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// OrderService exposes read and search access to order records.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// List returns all orders, newest order date first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Search matches term case-insensitively against customer name, status, the
// decimal order id and the order date formatted as YYYY-MM-DD. A blank term
// behaves exactly like List.
func (s *OrderService) Search(ctx context.Context, term string) ([]domain.Order, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, term)
}
