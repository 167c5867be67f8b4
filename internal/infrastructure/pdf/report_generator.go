// Package pdf renders the inventory report with Maroto v2.
//
// Layout of the A4 page:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: shop name          │  INVENTORY REPORT + date       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OVERVIEW: products / units / value / avg / low / warehouses │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BY CATEGORY: Category | Items | Units | Value               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP 5 VALUABLE ITEMS: # | Product | Qty × Price | Value      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/Zammmm09/StockMate/internal/application/inventory"
)

var _ appinventory.ReportGenerator = (*ReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportGenerator implements inventory.ReportGenerator with Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator builds the generator.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateInventoryReport renders the report and returns the PDF bytes.
func (g *ReportGenerator) GenerateInventoryReport(_ context.Context, r appinventory.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		WithAuthor(r.ShopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("OVERVIEW"))
	m.AddRows(overviewRows(r)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("BY CATEGORY"))
	m.AddRows(tableHeader([]string{"Category", "Items", "Units", "Value"}, []int{6, 2, 2, 2}))
	for _, c := range r.Categories {
		m.AddRows(tableRow(
			[]string{c.Category, fmt.Sprint(c.Count), fmt.Sprint(c.Units), "$" + c.Value.StringFixed(2)},
			[]int{6, 2, 2, 2},
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TOP 5 VALUABLE ITEMS"))
	m.AddRows(tableHeader([]string{"#", "Product", "Qty × Price", "Value"}, []int{1, 5, 3, 3}))
	for i, it := range r.TopItems {
		m.AddRows(tableRow(
			[]string{
				fmt.Sprint(i + 1),
				it.ProductName,
				fmt.Sprintf("%d × $%s", it.Quantity, it.Price.String()),
				"$" + it.Value().StringFixed(2),
			},
			[]int{1, 5, 3, 3},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(r appinventory.Report) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.ShopName, "StockMate"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INVENTORY REPORT", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+r.GeneratedAt.Format("1/2/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})))
}

func overviewRows(r appinventory.Report) []core.Row {
	s := r.Summary
	pairs := [][2]string{
		{"Total Products", fmt.Sprint(s.Products)},
		{"Total Units", fmt.Sprint(s.Units)},
		{"Total Value", "$" + s.Value.StringFixed(2)},
		{"Average Price/Unit", "$" + s.AveragePricePerUnit.StringFixed(2)},
		{"Low Stock Items", fmt.Sprint(s.LowStock)},
		{"Warehouses", fmt.Sprint(r.Warehouses)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p[0], props.Text{Size: 9, Color: colorGray, Top: 1})),
			col.New(6).Add(text.New(p[1], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: cellAlign(i), Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Align: cellAlign(i), Top: 1}))
	}
	return row.New(6).Add(cols...)
}

// cellAlign first column left, numbers right.
func cellAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
