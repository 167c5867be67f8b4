package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/inventory"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// ReportUseCase builds the downloadable inventory report.
type ReportUseCase struct {
	itemRepo      repository.InventoryItemRepository
	warehouseRepo repository.WarehouseRepository
	shopRepo      repository.ShopRepository
	generator     ReportGenerator
	now           func() time.Time
}

// NewReportUseCase builds the use case.
func NewReportUseCase(
	itemRepo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
	shopRepo repository.ShopRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		shopRepo:      shopRepo,
		generator:     generator,
		now:           time.Now,
	}
}

// Build collects the report data for shopID.
func (uc *ReportUseCase) Build(ctx context.Context, shopID string) (Report, error) {
	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return Report{}, fmt.Errorf("report: get shop: %w", err)
	}
	if shop == nil {
		return Report{}, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return Report{}, fmt.Errorf("report: list items: %w", err)
	}
	warehouses, err := uc.warehouseRepo.ListByShop(ctx, shopID)
	if err != nil {
		return Report{}, fmt.Errorf("report: list warehouses: %w", err)
	}
	return Report{
		ShopName:    shop.Name,
		GeneratedAt: uc.now(),
		Summary:     inventory.Summarize(items),
		Warehouses:  len(warehouses),
		Categories:  inventory.CategoryBreakdown(items),
		TopItems:    inventory.TopByValue(items, 5),
	}, nil
}

// GeneratePDF renders the report and returns the document with a download file name.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, shopID string) ([]byte, string, error) {
	report, err := uc.Build(ctx, shopID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.generator.GenerateInventoryReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("report: render: %w", err)
	}
	return doc, fmt.Sprintf("inventory-report-%s.pdf", report.GeneratedAt.Format("2006-01-02")), nil
}
