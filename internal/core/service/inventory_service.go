package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// InventoryService implements CRUD operations on inventory items.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// List returns all items, most recently created first.
func (s *InventoryService) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

// Create inserts a new item and returns it with the generated id. The id comes
// back from the insert itself, so no re-read is needed.
func (s *InventoryService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	if input.Name == "" || input.SKU == "" {
		return nil, domain.NewValidationError("name and sku are required")
	}

	now := time.Now().UTC()
	item := &domain.Item{
		Name:      input.Name,
		SKU:       input.SKU,
		Quantity:  input.Quantity,
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateSKU) {
			s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to create item")
		}
		return nil, err
	}
	item.ID = id

	s.logger.Info().Int64("item_id", id).Str("sku", item.SKU).Msg("item created")
	return item, nil
}

// Update replaces every writable field of the item identified by id.
func (s *InventoryService) Update(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		ID:        id,
		Name:      input.Name,
		SKU:       input.SKU,
		Quantity:  input.Quantity,
		Price:     input.Price,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", id).Msg("item updated")
	return item, nil
}

// Delete removes the item identified by id.
func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("item_id", id).Msg("item deleted")
	return nil
}
