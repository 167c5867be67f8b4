package repository

import (
	"context"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// WarehouseRepository persistence port for Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	// GetForUpdate reads the warehouse holding a row lock until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (*entity.Warehouse, error)
	ListByShop(ctx context.Context, shopID string) ([]*entity.Warehouse, error)
	Delete(ctx context.Context, id string) error
}
