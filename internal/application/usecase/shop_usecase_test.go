package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

type memShops map[string]*entity.Shop

func (m memShops) Create(_ context.Context, s *entity.Shop) error {
	m[s.ID] = s
	return nil
}

func (m memShops) GetByID(_ context.Context, id string) (*entity.Shop, error) {
	return m[id], nil
}

func (m memShops) Update(_ context.Context, s *entity.Shop) error {
	m[s.ID] = s
	return nil
}

func strPtr(s string) *string { return &s }

func TestShopUseCase_Profile(t *testing.T) {
	shops := memShops{"shop-1": {ID: "shop-1", Name: "Aurify", Email: "a@b.c", PasswordHash: "secret"}}
	uc := usecase.NewShopUseCase(shops)

	out, err := uc.Profile(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "Aurify", out.Name)

	_, err = uc.Profile(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShopUseCase_UpdateProfile(t *testing.T) {
	shops := memShops{"shop-1": {ID: "shop-1", Name: "Aurify", Email: "a@b.c", Phone: "123"}}
	uc := usecase.NewShopUseCase(shops)

	out, err := uc.UpdateProfile(context.Background(), "shop-1", dto.UpdateShopRequest{
		Name:    strPtr(""),
		Phone:   strPtr(""),
		Address: strPtr("Nashik"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Aurify", out.Name, "empty name is ignored")
	assert.Empty(t, out.Phone, "phone may be cleared")
	assert.Equal(t, "Nashik", shops["shop-1"].Address)
	assert.False(t, shops["shop-1"].UpdatedAt.IsZero())
}
