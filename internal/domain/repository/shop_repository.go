package repository

import (
	"context"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// ShopRepository persistence port for Shop.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}
