package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem a stocked product line of a shop, stored in one warehouse.
// SKU is upper-case and unique per shop.
type InventoryItem struct {
	ID          string
	ShopID      string
	WarehouseID string
	Warehouse   *Warehouse // populated on reads that join warehouses; nil otherwise
	ProductName string
	SKU         string
	Quantity    int
	Price       decimal.Decimal
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Value quantity × price.
func (i *InventoryItem) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// WarehouseRef the warehouse id the item points at, from the populated object when present.
func (i *InventoryItem) WarehouseRef() string {
	if i.Warehouse != nil {
		return i.Warehouse.ID
	}
	return i.WarehouseID
}
