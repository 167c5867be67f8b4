package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body of POST /api/inventory.
type CreateInventoryItemRequest struct {
	WarehouseID string          `json:"warehouse_id" validate:"required,uuid"`
	ProductName string          `json:"product_name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=64"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
}

// UpdateInventoryItemRequest body of PUT /api/inventory/:id. Only fields sent are changed.
type UpdateInventoryItemRequest struct {
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	ProductName *string          `json:"product_name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
}

// QuantityUpdate one entry of a bulk quantity update.
type QuantityUpdate struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// BulkQuantityRequest body of PATCH /api/inventory/update-quantities.
type BulkQuantityRequest struct {
	Updates []QuantityUpdate `json:"updates" validate:"required,min=1,dive"`
}

// BulkQuantityResponse items actually updated; unknown ids are skipped.
type BulkQuantityResponse struct {
	Message      string                  `json:"message"`
	UpdatedItems []InventoryItemResponse `json:"updated_items"`
}

// InventoryItemResponse inventory item output. Warehouse is set on list reads.
type InventoryItemResponse struct {
	ID          string             `json:"id"`
	ShopID      string             `json:"shop_id"`
	WarehouseID string             `json:"warehouse_id"`
	Warehouse   *WarehouseResponse `json:"warehouse,omitempty"`
	ProductName string             `json:"product_name"`
	SKU         string             `json:"sku"`
	Quantity    int                `json:"quantity"`
	Price       decimal.Decimal    `json:"price"`
	Category    string             `json:"category"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// InventoryListResponse items of a shop.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// WarehouseStats aggregates of one warehouse's items. TotalValue has two decimals.
type WarehouseStats struct {
	ProductCount int    `json:"product_count"`
	TotalItems   int    `json:"total_items"`
	TotalValue   string `json:"total_value"`
}

// WarehouseInventoryGroup a warehouse with its items and stats.
type WarehouseInventoryGroup struct {
	Warehouse WarehouseResponse       `json:"warehouse"`
	Products  []InventoryItemResponse `json:"products"`
	Stats     WarehouseStats          `json:"stats"`
}

// ReorderSuggestion reorder plan for one item.
type ReorderSuggestion struct {
	ItemID            string `json:"item_id"`
	SKU               string `json:"sku"`
	ProductName       string `json:"product_name"`
	CurrentStock      int    `json:"current_stock"`
	SafetyStock       int    `json:"safety_stock"`
	ReorderPoint      int    `json:"reorder_point"`
	SuggestedOrderQty int    `json:"suggested_order_qty"`
	DaysUntilReorder  int    `json:"days_until_reorder"`
	Urgency           string `json:"urgency"`  // CRITICAL, Medium, Low
	Priority          int    `json:"priority"` // 1 = most urgent
}
