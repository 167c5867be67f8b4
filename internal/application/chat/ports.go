// Package chat contains the assistant use case: it loads the caller's data,
// interprets one message and renders the reply. Create commands go through
// the same gateways the REST endpoints use.
package chat

import (
	"context"
	"errors"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// ErrProcessing is returned when interpreting a message fails unexpectedly.
var ErrProcessing = errors.New("error processing your request")

// SnapshotItemLimit maximum number of inventory items loaded per message.
const SnapshotItemLimit = 100

// ItemCreator creates inventory items for a shop (implemented by inventory.ItemUseCase).
type ItemCreator interface {
	Create(ctx context.Context, shopID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
}

// WarehouseCreator creates warehouses for a shop (implemented by usecase.WarehouseUseCase).
type WarehouseCreator interface {
	Create(ctx context.Context, shopID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error)
}

// TenantContext read-only snapshot of the caller's data for one message.
// Anonymous callers get an empty snapshot with a nil Shop.
type TenantContext struct {
	ShopID     string
	Inventory  []*entity.InventoryItem
	Warehouses []*entity.Warehouse
	Shop       *entity.Shop
}

// HasShop reports whether the shop profile was loaded.
func (tc TenantContext) HasShop() bool {
	return tc.Shop != nil
}
