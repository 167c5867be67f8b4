package postgres

import (
	"context"
	"fmt"

	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo InventoryItemRepository on PostgreSQL (pool or tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository builds the item adapter. Pass the pool or a tx.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `i.id, i.shop_id, i.warehouse_id, i.product_name, i.sku, i.quantity, i.price, i.category, i.created_at, i.updated_at`

// Create persists a new item. The (shop_id, sku) unique index maps to domain.ErrDuplicate.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, shop_id, warehouse_id, product_name, sku, quantity, price, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.ShopID, it.WarehouseID, it.ProductName, it.SKU,
		it.Quantity, it.Price, it.Category, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID returns the item (without its warehouse) or nil.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items i WHERE i.id = $1`, id).Scan(
		&it.ID, &it.ShopID, &it.WarehouseID, &it.ProductName, &it.SKU,
		&it.Quantity, &it.Price, &it.Category, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// Update writes every mutable field.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET warehouse_id = $2, product_name = $3, quantity = $4, price = $5, category = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.WarehouseID, it.ProductName, it.Quantity, it.Price, it.Category, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete removes an item by id.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// ListByShop items of a shop with their warehouse, oldest first. limit <= 0 returns all.
func (r *InventoryItemRepo) ListByShop(ctx context.Context, shopID string, limit int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `,
		       w.id, w.shop_id, w.name, w.location, w.capacity, w.created_at, w.updated_at
		FROM inventory_items i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.shop_id = $1
		ORDER BY i.created_at, i.sku`
	args := []any{shopID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		var it entity.InventoryItem
		var w entity.Warehouse
		if err := rows.Scan(
			&it.ID, &it.ShopID, &it.WarehouseID, &it.ProductName, &it.SKU,
			&it.Quantity, &it.Price, &it.Category, &it.CreatedAt, &it.UpdatedAt,
			&w.ID, &w.ShopID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		it.Warehouse = &w
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountByWarehouse number of items stored in a warehouse.
func (r *InventoryItemRepo) CountByWarehouse(ctx context.Context, warehouseID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items WHERE warehouse_id = $1`, warehouseID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inventory items: %w", err)
	}
	return n, nil
}

// SumQuantityByWarehouse units stored in a warehouse, optionally excluding one item.
func (r *InventoryItemRepo) SumQuantityByWarehouse(ctx context.Context, warehouseID, excludeItemID string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM inventory_items WHERE warehouse_id = $1`
	args := []any{warehouseID}
	if excludeItemID != "" {
		query += ` AND id <> $2`
		args = append(args, excludeItemID)
	}
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum warehouse quantity: %w", err)
	}
	return n, nil
}
