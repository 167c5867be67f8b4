package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zammmm09/StockMate/internal/application/inventory"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

type captureGenerator struct {
	got inventory.Report
	err error
}

func (g *captureGenerator) GenerateInventoryReport(_ context.Context, r inventory.Report) ([]byte, error) {
	g.got = r
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-"), nil
}

func TestReportUseCase_GeneratePDF(t *testing.T) {
	s := newMemStore()
	s.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Aurify"}
	s.warehouses["w1"] = &entity.Warehouse{ID: "w1", ShopID: "shop-1", Name: "Main", Capacity: 1000}
	s.items["i1"] = &entity.InventoryItem{ID: "i1", ShopID: "shop-1", WarehouseID: "w1", ProductName: "Pen", SKU: "PEN", Category: "Office", Quantity: 5, Price: decimal.NewFromInt(2)}
	s.items["i2"] = &entity.InventoryItem{ID: "i2", ShopID: "shop-1", WarehouseID: "w1", ProductName: "Mug", SKU: "MUG", Category: "Kitchen", Quantity: 20, Price: decimal.NewFromInt(8)}

	gen := &captureGenerator{}
	uc := inventory.NewReportUseCase(memItems{s}, memWarehouses{s}, memShops{s}, gen)

	doc, name, err := uc.GeneratePDF(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), doc)
	assert.Regexp(t, `^inventory-report-\d{4}-\d{2}-\d{2}\.pdf$`, name)

	assert.Equal(t, "Aurify", gen.got.ShopName)
	assert.Equal(t, 1, gen.got.Warehouses)
	assert.Equal(t, 25, gen.got.Summary.Units)
	require.Len(t, gen.got.Categories, 2)
	assert.Equal(t, "Kitchen", gen.got.Categories[0].Category)
	require.Len(t, gen.got.TopItems, 2)
	assert.Equal(t, "Mug", gen.got.TopItems[0].ProductName)
}

func TestReportUseCase_Errors(t *testing.T) {
	s := newMemStore()
	uc := inventory.NewReportUseCase(memItems{s}, memWarehouses{s}, memShops{s}, &captureGenerator{})
	_, _, err := uc.GeneratePDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	s.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Aurify"}
	boom := errors.New("boom")
	uc = inventory.NewReportUseCase(memItems{s}, memWarehouses{s}, memShops{s}, &captureGenerator{err: boom})
	_, _, err = uc.GeneratePDF(context.Background(), "shop-1")
	assert.ErrorIs(t, err, boom)
}
