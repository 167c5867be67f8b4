package inventory

import (
	"context"
	"time"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/inventory"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// TxRunner runs fn inside a database transaction, handing it repositories bound to that transaction.
// Capacity checks rely on it: the warehouse row stays locked until fn returns.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}

// Report the data rendered in the inventory report document.
type Report struct {
	ShopName    string
	GeneratedAt time.Time
	Summary     inventory.Summary
	Warehouses  int
	Categories  []inventory.CategoryStat
	TopItems    []*entity.InventoryItem
}

// ReportGenerator renders a Report to a document.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report Report) ([]byte, error)
}
