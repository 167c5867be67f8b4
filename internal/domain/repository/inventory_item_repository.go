package repository

import (
	"context"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// InventoryItemRepository persistence port for InventoryItem.
// List methods return items with Warehouse populated.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	ListByShop(ctx context.Context, shopID string, limit int) ([]*entity.InventoryItem, error)
	CountByWarehouse(ctx context.Context, warehouseID string) (int, error)
	// SumQuantityByWarehouse total units stored in the warehouse, excluding excludeItemID when non-empty.
	SumQuantityByWarehouse(ctx context.Context, warehouseID, excludeItemID string) (int, error)
}
