package inventory

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// Stock thresholds in units.
const (
	LowStockThreshold       = 10
	FastMovingThreshold     = 20
	SlowMovingThreshold     = 100
	PlanReorderThreshold    = 50
	MediumUrgencyThreshold  = 30
	ReorderPointBufferUnits = 10
)

var hundred = decimal.NewFromInt(100)

// Summary headline figures of an inventory.
type Summary struct {
	Products            int
	Units               int
	Value               decimal.Decimal
	AveragePricePerUnit decimal.Decimal // Value / Units; zero when there are no units
	LowStock            int
}

// Summarize computes the headline figures.
func Summarize(items []*entity.InventoryItem) Summary {
	s := Summary{Products: len(items), Value: decimal.Zero, AveragePricePerUnit: decimal.Zero}
	for _, it := range items {
		s.Units += it.Quantity
		s.Value = s.Value.Add(it.Value())
		if it.Quantity < LowStockThreshold {
			s.LowStock++
		}
	}
	if s.Units > 0 {
		s.AveragePricePerUnit = s.Value.Div(decimal.NewFromInt(int64(s.Units)))
	}
	return s
}

// CategoryStat aggregate of one category.
type CategoryStat struct {
	Category string
	Count    int
	Units    int
	Value    decimal.Decimal
}

// groupByCategory aggregates in first-seen order.
func groupByCategory(items []*entity.InventoryItem) []CategoryStat {
	idx := make(map[string]int)
	var out []CategoryStat
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(out)
			idx[it.Category] = i
			out = append(out, CategoryStat{Category: it.Category, Value: decimal.Zero})
		}
		out[i].Count++
		out[i].Units += it.Quantity
		out[i].Value = out[i].Value.Add(it.Value())
	}
	return out
}

// CategoryBreakdown groups items by category, highest value first.
// The category values always add up to the inventory total value.
func CategoryBreakdown(items []*entity.InventoryItem) []CategoryStat {
	out := groupByCategory(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

// CategoryCounts groups items by category, most items first.
func CategoryCounts(items []*entity.InventoryItem) []CategoryStat {
	out := groupByCategory(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TopByValue the n items with the highest quantity × price.
func TopByValue(items []*entity.InventoryItem, n int) []*entity.InventoryItem {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value().GreaterThan(out[j].Value()) })
	return head(out, n)
}

// MostExpensive the n items with the highest unit price.
func MostExpensive(items []*entity.InventoryItem, n int) []*entity.InventoryItem {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	return head(out, n)
}

// Cheapest the n items with the lowest unit price.
func Cheapest(items []*entity.InventoryItem, n int) []*entity.InventoryItem {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	return head(out, n)
}

// AveragePrice arithmetic mean of unit prices (not weighted by quantity).
func AveragePrice(items []*entity.InventoryItem) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(items))))
}

// LowStock items under LowStockThreshold, in inventory order.
func LowStock(items []*entity.InventoryItem) []*entity.InventoryItem {
	return filter(items, func(it *entity.InventoryItem) bool { return it.Quantity < LowStockThreshold })
}

// Search items whose name, category or SKU contains term, ignoring case.
func Search(items []*entity.InventoryItem, term string) []*entity.InventoryItem {
	term = strings.ToLower(term)
	return filter(items, func(it *entity.InventoryItem) bool {
		return strings.Contains(strings.ToLower(it.ProductName), term) ||
			strings.Contains(strings.ToLower(it.Category), term) ||
			strings.Contains(strings.ToLower(it.SKU), term)
	})
}

// MarginLine estimated profitability of one item.
type MarginLine struct {
	Item          *entity.InventoryItem
	EstimatedCost decimal.Decimal
	ProfitPerUnit decimal.Decimal
	TotalProfit   decimal.Decimal
	MarginPercent decimal.Decimal // one decimal
}

// Margins estimates cost and profit of every item from the markup assumption.
func Margins(items []*entity.InventoryItem) []MarginLine {
	out := make([]MarginLine, 0, len(items))
	for _, it := range items {
		cost := EstimateCost(it.Price)
		profit := it.Price.Sub(cost)
		out = append(out, MarginLine{
			Item:          it,
			EstimatedCost: cost,
			ProfitPerUnit: profit,
			TotalProfit:   profit.Mul(decimal.NewFromInt(int64(it.Quantity))),
			MarginPercent: MarginPercent(it.Price, cost),
		})
	}
	return out
}

// MarginTotals total estimated profit and the mean of the rounded per-item margins.
func MarginTotals(lines []MarginLine) (totalProfit, averageMargin decimal.Decimal) {
	totalProfit, sum := decimal.Zero, decimal.Zero
	for _, l := range lines {
		totalProfit = totalProfit.Add(l.TotalProfit)
		sum = sum.Add(l.MarginPercent)
	}
	if len(lines) == 0 {
		return totalProfit, decimal.Zero
	}
	return totalProfit, sum.Div(decimal.NewFromInt(int64(len(lines))))
}

// HighestMargin the n lines with the highest margin percent.
func HighestMargin(lines []MarginLine, n int) []MarginLine {
	out := append([]MarginLine(nil), lines...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MarginPercent.GreaterThan(out[j].MarginPercent) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// MostProfitable the n lines with the highest total profit.
func MostProfitable(lines []MarginLine, n int) []MarginLine {
	out := append([]MarginLine(nil), lines...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalProfit.GreaterThan(out[j].TotalProfit) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Velocity stock-velocity bucket, estimated from the quantity on hand alone.
type Velocity string

const (
	VelocityHigh   Velocity = "High"
	VelocityMedium Velocity = "Medium"
	VelocityLow    Velocity = "Low"
)

// VelocityOf classifies a quantity and returns the matching days-of-supply label.
func VelocityOf(quantity int) (Velocity, string) {
	switch {
	case quantity < FastMovingThreshold:
		return VelocityHigh, "< 30 days"
	case quantity < SlowMovingThreshold:
		return VelocityMedium, "30-90 days"
	default:
		return VelocityLow, "> 90 days"
	}
}

// ByVelocity splits items into velocity buckets keeping inventory order.
func ByVelocity(items []*entity.InventoryItem) map[Velocity][]*entity.InventoryItem {
	out := map[Velocity][]*entity.InventoryItem{}
	for _, it := range items {
		v, _ := VelocityOf(it.Quantity)
		out[v] = append(out[v], it)
	}
	return out
}

// Urgency of a reorder.
type Urgency string

const (
	UrgencyCritical Urgency = "CRITICAL"
	UrgencyMedium   Urgency = "Medium"
	UrgencyLow      Urgency = "Low"
)

// ReorderPlan reorder recommendation for one item.
type ReorderPlan struct {
	SafetyStock       int
	ReorderPoint      int
	SuggestedOrderQty int
	DaysUntilReorder  int
	Urgency           Urgency
}

// PlanReorder safety stock 20 % of the quantity, reorder point safety + 10,
// suggested order 50 % of the quantity.
func PlanReorder(quantity int) ReorderPlan {
	p := ReorderPlan{
		SafetyStock:       ceilFraction(quantity, 0.2),
		SuggestedOrderQty: ceilFraction(quantity, 0.5),
	}
	p.ReorderPoint = p.SafetyStock + ReorderPointBufferUnits

	switch {
	case quantity <= p.ReorderPoint:
		p.DaysUntilReorder = 0
	case quantity < PlanReorderThreshold:
		p.DaysUntilReorder = 7
	case quantity < SlowMovingThreshold:
		p.DaysUntilReorder = 14
	default:
		p.DaysUntilReorder = 30
	}

	switch {
	case quantity <= p.ReorderPoint:
		p.Urgency = UrgencyCritical
	case quantity < MediumUrgencyThreshold:
		p.Urgency = UrgencyMedium
	default:
		p.Urgency = UrgencyLow
	}
	return p
}

// FindReorderTarget first item whose name contains term or whose SKU equals it, ignoring case.
func FindReorderTarget(items []*entity.InventoryItem, term string) *entity.InventoryItem {
	if term == "" {
		return nil
	}
	term = strings.ToLower(term)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.ProductName), term) || strings.ToLower(it.SKU) == term {
			return it
		}
	}
	return nil
}

// ImmediateReorder items under the fast-moving threshold.
func ImmediateReorder(items []*entity.InventoryItem) []*entity.InventoryItem {
	return filter(items, func(it *entity.InventoryItem) bool { return it.Quantity < FastMovingThreshold })
}

// ReorderSoon items between the fast-moving and plan thresholds.
func ReorderSoon(items []*entity.InventoryItem) []*entity.InventoryItem {
	return filter(items, func(it *entity.InventoryItem) bool {
		return it.Quantity >= FastMovingThreshold && it.Quantity < PlanReorderThreshold
	})
}

// RestockQuantity suggested order for an item needing immediate reorder: double the quantity.
func RestockQuantity(quantity int) int {
	return ceilFraction(quantity, 2)
}

// CapacityUsage aggregate capacity of a shop's warehouses.
type CapacityUsage struct {
	Total   int
	Used    int
	Percent decimal.Decimal // Used / Total × 100; zero when Total is zero
}

// PercentText the usage with one decimal, or "0" without capacity.
func (u CapacityUsage) PercentText() string {
	if u.Total <= 0 {
		return "0"
	}
	return u.Percent.StringFixed(1)
}

// Usage sums capacities and stored units.
func Usage(warehouses []*entity.Warehouse, items []*entity.InventoryItem) CapacityUsage {
	u := CapacityUsage{Percent: decimal.Zero}
	for _, w := range warehouses {
		u.Total += w.Capacity
	}
	for _, it := range items {
		u.Used += it.Quantity
	}
	if u.Total > 0 {
		u.Percent = decimal.NewFromInt(int64(u.Used)).Div(decimal.NewFromInt(int64(u.Total))).Mul(hundred)
	}
	return u
}

// EmptyWarehouses warehouses no item points at.
func EmptyWarehouses(warehouses []*entity.Warehouse, items []*entity.InventoryItem) []*entity.Warehouse {
	used := make(map[string]bool, len(items))
	for _, it := range items {
		used[it.WarehouseRef()] = true
	}
	var out []*entity.Warehouse
	for _, w := range warehouses {
		if !used[w.ID] {
			out = append(out, w)
		}
	}
	return out
}

// ceilFraction ceil(quantity × f) computed in float64.
func ceilFraction(quantity int, f float64) int {
	return int(math.Ceil(float64(quantity) * f))
}

func clone(items []*entity.InventoryItem) []*entity.InventoryItem {
	return append([]*entity.InventoryItem(nil), items...)
}

func head(items []*entity.InventoryItem, n int) []*entity.InventoryItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func filter(items []*entity.InventoryItem, keep func(*entity.InventoryItem) bool) []*entity.InventoryItem {
	var out []*entity.InventoryItem
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
