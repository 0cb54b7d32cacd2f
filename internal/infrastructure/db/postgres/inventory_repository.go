package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// InventoryRepository persists inventory items.
type InventoryRepository struct {
	db *sql.DB
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, name, sku, quantity, price, created_at, updated_at
		FROM inventory_items
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.SKU, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create inserts the item and returns the id generated by the database. The
// RETURNING clause makes insert and id retrieval a single atomic statement.
func (r *InventoryRepository) Create(ctx context.Context, item *domain.Item) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory_items (name, sku, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id
	`, item.Name, item.SKU, item.Quantity, item.Price, item.CreatedAt, item.UpdatedAt).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateSKU
		}
		return 0, fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.Item) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET name = $2, sku = $3, quantity = $4, price = $5, updated_at = $6
		WHERE item_id = $1
	`, item.ID, item.Name, item.SKU, item.Quantity, item.Price, item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update item: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
