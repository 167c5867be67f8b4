package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

// UseCase answers assistant messages for a shop (or an anonymous caller).
type UseCase struct {
	itemRepo      repository.InventoryItemRepository
	warehouseRepo repository.WarehouseRepository
	shopRepo      repository.ShopRepository
	interpreter   *Interpreter
	log           *logger.Logger
}

// NewUseCase builds the use case. log may be nil.
func NewUseCase(
	itemRepo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
	shopRepo repository.ShopRepository,
	interpreter *Interpreter,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		shopRepo:      shopRepo,
		interpreter:   interpreter,
		log:           log,
	}
}

// Reply loads the caller's snapshot and interprets message.
// shopID empty means anonymous: the reply is computed over no data.
// A blank message yields domain.ErrInvalidInput; a failure during
// interpretation is recovered and reported as ErrProcessing.
func (uc *UseCase) Reply(ctx context.Context, shopID, message string) (reply string, err error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrInvalidInput
	}

	tc := uc.snapshot(ctx, shopID)

	defer func() {
		if r := recover(); r != nil {
			uc.log.Error().Str("shop_id", shopID).Interface("panic", r).Msg("chat: interpretation failed")
			reply, err = "", fmt.Errorf("%w: %v", ErrProcessing, r)
		}
	}()
	return uc.interpreter.Interpret(ctx, message, tc), nil
}

// snapshot runs the three tenant reads in parallel. A failed read is logged
// and leaves its part of the snapshot empty.
func (uc *UseCase) snapshot(ctx context.Context, shopID string) TenantContext {
	tc := TenantContext{ShopID: shopID}
	if shopID == "" {
		return tc
	}

	type itemsResult struct {
		items []*entity.InventoryItem
		err   error
	}
	type warehousesResult struct {
		warehouses []*entity.Warehouse
		err        error
	}
	type shopResult struct {
		shop *entity.Shop
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	warehousesCh := make(chan warehousesResult, 1)
	shopCh := make(chan shopResult, 1)

	go func() {
		items, err := uc.itemRepo.ListByShop(ctx, shopID, SnapshotItemLimit)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		whs, err := uc.warehouseRepo.ListByShop(ctx, shopID)
		warehousesCh <- warehousesResult{whs, err}
	}()
	go func() {
		shop, err := uc.shopRepo.GetByID(ctx, shopID)
		shopCh <- shopResult{shop, err}
	}()

	items := <-itemsCh
	whs := <-warehousesCh
	shop := <-shopCh

	if items.err != nil {
		uc.log.Error().Err(items.err).Str("shop_id", shopID).Msg("chat: load inventory")
	} else {
		tc.Inventory = items.items
	}
	if whs.err != nil {
		uc.log.Error().Err(whs.err).Str("shop_id", shopID).Msg("chat: load warehouses")
	} else {
		tc.Warehouses = whs.warehouses
	}
	if shop.err != nil {
		uc.log.Error().Err(shop.err).Str("shop_id", shopID).Msg("chat: load shop")
	} else {
		tc.Shop = shop.shop
	}
	return tc
}
