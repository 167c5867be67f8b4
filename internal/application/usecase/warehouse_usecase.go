package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// WarehouseUseCase warehouse CRUD scoped to a shop.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	itemRepo repository.InventoryItemRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(repo repository.WarehouseRepository, itemRepo repository.InventoryItemRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, itemRepo: itemRepo}
}

// Create creates a warehouse for shopID. Name and location are required and capacity must be at least 1.
func (uc *WarehouseUseCase) Create(ctx context.Context, shopID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if shopID == "" {
		return nil, domain.ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if name == "" || location == "" || in.Capacity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		Name:      name,
		Location:  location,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// GetByID returns the warehouse when it belongs to shopID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, shopID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.owned(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// List lists the shop's warehouses, oldest first.
func (uc *WarehouseUseCase) List(ctx context.Context, shopID string) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *ToWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items}, nil
}

// Delete removes an empty warehouse. Fails with ErrWarehouseNotEmpty while it still holds items.
func (uc *WarehouseUseCase) Delete(ctx context.Context, shopID, id string) error {
	if _, err := uc.owned(ctx, shopID, id); err != nil {
		return err
	}
	n, err := uc.itemRepo.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: it contains %d inventory item(s)", domain.ErrWarehouseNotEmpty, n)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *WarehouseUseCase) owned(ctx context.Context, shopID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

// ToWarehouseResponse maps the entity to its DTO.
func ToWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		ShopID:    w.ShopID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
