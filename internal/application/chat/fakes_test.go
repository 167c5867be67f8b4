package chat_test

import (
	"context"
	"time"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

type itemCreator struct {
	calls []dto.CreateInventoryItemRequest
	err   error
	panic bool
}

func (c *itemCreator) Create(_ context.Context, shopID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if c.panic {
		panic("boom")
	}
	c.calls = append(c.calls, in)
	if c.err != nil {
		return nil, c.err
	}
	now := time.Now()
	return &dto.InventoryItemResponse{
		ID:          "item-new",
		ShopID:      shopID,
		WarehouseID: in.WarehouseID,
		ProductName: in.ProductName,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

type warehouseCreator struct {
	calls []dto.CreateWarehouseRequest
	err   error
}

func (c *warehouseCreator) Create(_ context.Context, shopID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	c.calls = append(c.calls, in)
	if c.err != nil {
		return nil, c.err
	}
	return &dto.WarehouseResponse{ID: "wh-new", ShopID: shopID, Name: in.Name, Location: in.Location, Capacity: in.Capacity}, nil
}

// tenantRepos serves fixed data and records how it was queried.
type tenantRepos struct {
	items      []*entity.InventoryItem
	warehouses []*entity.Warehouse
	shop       *entity.Shop

	itemsErr error
	limit    int

	// one counter per repo: the reads run on separate goroutines
	itemCalls, warehouseCalls, shopCalls int
}

func (r *tenantRepos) calls() int { return r.itemCalls + r.warehouseCalls + r.shopCalls }

type fakeItemRepo struct{ r *tenantRepos }
type fakeWarehouseRepo struct{ r *tenantRepos }
type fakeShopRepo struct{ r *tenantRepos }

func (f fakeItemRepo) Create(context.Context, *entity.InventoryItem) error { return nil }
func (f fakeItemRepo) GetByID(context.Context, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f fakeItemRepo) Update(context.Context, *entity.InventoryItem) error { return nil }
func (f fakeItemRepo) Delete(context.Context, string) error                { return nil }
func (f fakeItemRepo) ListByShop(_ context.Context, _ string, limit int) ([]*entity.InventoryItem, error) {
	f.r.itemCalls++
	f.r.limit = limit
	if f.r.itemsErr != nil {
		return nil, f.r.itemsErr
	}
	return f.r.items, nil
}
func (f fakeItemRepo) CountByWarehouse(context.Context, string) (int, error) { return 0, nil }
func (f fakeItemRepo) SumQuantityByWarehouse(context.Context, string, string) (int, error) {
	return 0, nil
}

func (f fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (f fakeWarehouseRepo) GetByID(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f fakeWarehouseRepo) GetForUpdate(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f fakeWarehouseRepo) ListByShop(context.Context, string) ([]*entity.Warehouse, error) {
	f.r.warehouseCalls++
	return f.r.warehouses, nil
}
func (f fakeWarehouseRepo) Delete(context.Context, string) error { return nil }

func (f fakeShopRepo) Create(context.Context, *entity.Shop) error { return nil }
func (f fakeShopRepo) GetByID(context.Context, string) (*entity.Shop, error) {
	f.r.shopCalls++
	return f.r.shop, nil
}
func (f fakeShopRepo) Update(context.Context, *entity.Shop) error { return nil }
