package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("23503 in a plain message")))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("00000000-0000-0000-0000-000000000002"))
	assert.False(t, isUUID("wh-1"))
	assert.False(t, isUUID(""))
}

// Malformed ids never reach the database, so a nil querier is enough here.
func TestRepositories_MalformedIDMatchesNothing(t *testing.T) {
	ctx := context.Background()

	w, err := NewWarehouseRepository(nil).GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, w)

	w, err = NewWarehouseRepository(nil).GetForUpdate(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, w)

	it, err := NewInventoryItemRepository(nil).GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, it)

	s, err := NewShopRepository(nil).GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.NoError(t, NewWarehouseRepository(nil).Delete(ctx, "not-a-uuid"))
	assert.NoError(t, NewInventoryItemRepository(nil).Delete(ctx, "not-a-uuid"))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("other")))
}

func TestMigrationsEmbedded(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/0001_init.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(sql), "ux_inventory_items_shop_sku")
}
