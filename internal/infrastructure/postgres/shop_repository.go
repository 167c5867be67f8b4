package postgres

import (
	"context"
	"fmt"

	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo ShopRepository on PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository builds the shop adapter.
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persists a new shop. A taken email yields domain.ErrDuplicate.
func (r *ShopRepo) Create(ctx context.Context, s *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, email, phone, address, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.PasswordHash, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID returns the shop or nil when it does not exist.
func (r *ShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT id, name, email, phone, address, password_hash, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// Update writes the profile fields.
func (r *ShopRepo) Update(ctx context.Context, s *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Email, s.Phone, s.Address, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}
