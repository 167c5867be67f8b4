package usecase

import (
	"context"
	"time"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// ShopUseCase shop profile reads and edits.
type ShopUseCase struct {
	repo repository.ShopRepository
}

// NewShopUseCase builds the use case.
func NewShopUseCase(repo repository.ShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

// Get returns the shop entity, or ErrNotFound.
func (uc *ShopUseCase) Get(ctx context.Context, shopID string) (*entity.Shop, error) {
	shop, err := uc.repo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

// Profile returns the public profile of the shop.
func (uc *ShopUseCase) Profile(ctx context.Context, shopID string) (*dto.ShopResponse, error) {
	shop, err := uc.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// UpdateProfile changes the fields present in the request.
// Empty name or email are ignored; phone and address may be cleared.
func (uc *ShopUseCase) UpdateProfile(ctx context.Context, shopID string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != "" {
		shop.Name = *in.Name
	}
	if in.Email != nil && *in.Email != "" {
		shop.Email = *in.Email
	}
	if in.Phone != nil {
		shop.Phone = *in.Phone
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	shop.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
