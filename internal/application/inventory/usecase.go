package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// ItemUseCase inventory item CRUD. Writes run in a transaction holding a row
// lock (SELECT FOR UPDATE) on the target warehouse so the sum of quantities
// never exceeds its capacity.
type ItemUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.InventoryItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create adds an item to one of the shop's warehouses. The SKU is stored upper-case;
// a SKU already used by the shop yields domain.ErrDuplicate.
func (uc *ItemUseCase) Create(ctx context.Context, shopID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if shopID == "" {
		return nil, domain.ErrUnauthorized
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		ShopID:      shopID,
		WarehouseID: in.WarehouseID,
		ProductName: strings.TrimSpace(in.ProductName),
		SKU:         strings.ToUpper(strings.TrimSpace(in.SKU)),
		Quantity:    in.Quantity,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, warehouseRepo repository.WarehouseRepository) error {
		wh, err := lockWarehouse(ctx, warehouseRepo, shopID, item.WarehouseID)
		if err != nil {
			return err
		}
		if err := checkCapacity(ctx, itemRepo, wh, "", item.Quantity); err != nil {
			return err
		}
		item.Warehouse = wh
		return itemRepo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Update changes the fields present in the request. Quantity changes re-check warehouse capacity.
func (uc *ItemUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	var out *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, warehouseRepo repository.WarehouseRepository) error {
		item, err := ownedItem(ctx, itemRepo, shopID, id)
		if err != nil {
			return err
		}
		if in.ProductName != nil {
			item.ProductName = strings.TrimSpace(*in.ProductName)
		}
		if in.Category != nil {
			item.Category = strings.TrimSpace(*in.Category)
		}
		if in.Price != nil {
			item.Price = *in.Price
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if err := validateItem(item); err != nil {
			return err
		}
		if in.Quantity != nil {
			wh, err := lockWarehouse(ctx, warehouseRepo, shopID, item.WarehouseID)
			if err != nil {
				return err
			}
			if err := checkCapacity(ctx, itemRepo, wh, item.ID, item.Quantity); err != nil {
				return err
			}
		}
		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToItemResponse(out), nil
}

// UpdateQuantities applies several quantity changes in one transaction.
// Ids that do not exist or belong to another shop are skipped.
func (uc *ItemUseCase) UpdateQuantities(ctx context.Context, shopID string, updates []dto.QuantityUpdate) ([]dto.InventoryItemResponse, error) {
	for _, u := range updates {
		if u.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	var updated []*entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, warehouseRepo repository.WarehouseRepository) error {
		for _, u := range updates {
			item, err := itemRepo.GetByID(ctx, u.ID)
			if err != nil {
				return err
			}
			if item == nil || item.ShopID != shopID {
				continue
			}
			wh, err := lockWarehouse(ctx, warehouseRepo, shopID, item.WarehouseID)
			if err != nil {
				return err
			}
			if err := checkCapacity(ctx, itemRepo, wh, item.ID, u.Quantity); err != nil {
				return err
			}
			item.Quantity = u.Quantity
			item.UpdatedAt = time.Now()
			if err := itemRepo.Update(ctx, item); err != nil {
				return err
			}
			updated = append(updated, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(updated))
	for _, it := range updated {
		out = append(out, *ToItemResponse(it))
	}
	return out, nil
}

// Delete removes an item of the shop.
func (uc *ItemUseCase) Delete(ctx context.Context, shopID, id string) error {
	if _, err := ownedItem(ctx, uc.itemRepo, shopID, id); err != nil {
		return err
	}
	return uc.itemRepo.Delete(ctx, id)
}

// List every item of the shop with its warehouse.
func (uc *ItemUseCase) List(ctx context.Context, shopID string) (*dto.InventoryListResponse, error) {
	items, err := uc.itemRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *ToItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: out}, nil
}

// ByWarehouse groups the shop's items under each of its warehouses with per-warehouse totals.
// Warehouses without items are included with zero stats.
func (uc *ItemUseCase) ByWarehouse(ctx context.Context, shopID string) ([]dto.WarehouseInventoryGroup, error) {
	warehouses, err := uc.warehouseRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return nil, err
	}
	groups := make([]dto.WarehouseInventoryGroup, 0, len(warehouses))
	for _, w := range warehouses {
		g := dto.WarehouseInventoryGroup{
			Warehouse: *usecase.ToWarehouseResponse(w),
			Products:  []dto.InventoryItemResponse{},
		}
		value := decimal.Zero
		for _, it := range items {
			if it.WarehouseRef() != w.ID {
				continue
			}
			g.Products = append(g.Products, *ToItemResponse(it))
			g.Stats.TotalItems += it.Quantity
			value = value.Add(it.Value())
		}
		g.Stats.ProductCount = len(g.Products)
		g.Stats.TotalValue = value.StringFixed(2)
		groups = append(groups, g)
	}
	return groups, nil
}

func validateItem(it *entity.InventoryItem) error {
	if it.ProductName == "" || it.SKU == "" || it.Category == "" || it.WarehouseID == "" {
		return domain.ErrInvalidInput
	}
	if it.Quantity < 0 || it.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func ownedItem(ctx context.Context, repo repository.InventoryItemRepository, shopID, id string) (*entity.InventoryItem, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func lockWarehouse(ctx context.Context, repo repository.WarehouseRepository, shopID, id string) (*entity.Warehouse, error) {
	wh, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	return wh, nil
}

// checkCapacity fails when storing quantity units (replacing excludeItemID's) would overflow wh.
func checkCapacity(ctx context.Context, repo repository.InventoryItemRepository, wh *entity.Warehouse, excludeItemID string, quantity int) error {
	used, err := repo.SumQuantityByWarehouse(ctx, wh.ID, excludeItemID)
	if err != nil {
		return err
	}
	if used+quantity > wh.Capacity {
		return fmt.Errorf("%w: %s holds %d of %d units", domain.ErrCapacityExceeded, wh.Name, used, wh.Capacity)
	}
	return nil
}

// ToItemResponse maps the entity to its DTO.
func ToItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:          it.ID,
		ShopID:      it.ShopID,
		WarehouseID: it.WarehouseID,
		Warehouse:   usecase.ToWarehouseResponse(it.Warehouse),
		ProductName: it.ProductName,
		SKU:         it.SKU,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Category:    it.Category,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
