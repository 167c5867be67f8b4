package chat

import (
	"fmt"
	"strings"
	"time"

	domainchat "github.com/Zammmm09/StockMate/internal/domain/chat"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/inventory"
)

const (
	listLimit = 5
	rule      = "━━━━━━━━━━━━━━━━━━━━━━"
)

const (
	greetingReply  = "Hello! I'm your StockMate AI assistant. I have access to your inventory and warehouse data. How can I help you today?"
	gratitudeReply = "You're welcome! Let me know if you need anything else with your inventory management!"
	helpReply      = "I can help you with:\n\n" +
		"📦 Inventory Management:\n• \"How many products do I have?\"\n• \"Show me low stock items\"\n• \"Find [product name]\"\n• \"Add product/item\"\n\n" +
		"🏢 Warehouse Management:\n• \"List my warehouses\"\n• \"Add warehouse\"\n\n" +
		"📊 Smart Analytics:\n• \"Generate inventory report\"\n• \"Show profit margins\"\n• \"Inventory turnover rate\"\n• \"Predict reorder for [product]\"\n• \"Items by category\"\n• \"Top performing products\"\n\n" +
		"I can create warehouses, add items, and provide detailed analytics! Just ask me anything!"

	fallbackInventoryReply = "I can help with inventory questions! Try asking:\n• \"How many products do I have?\"\n• \"What's my total inventory value?\"\n• \"Show me low stock items\"\n• \"Find [product name]\""
	fallbackWarehouseReply = "I can help with warehouse questions! Try asking:\n• \"List my warehouses\"\n• \"Which warehouses are empty?\"\n• \"What's my warehouse capacity?\""
	defaultReply           = "I'm not sure I understood that. I can help you with:\n\n" +
		"📦 Inventory: product counts, values, stock levels, search\n🏢 Warehouses: capacity, locations, empty warehouses\n📊 Analytics: overviews, statistics, reports\n\n" +
		"Try asking a specific question or type \"help\" for examples!"

	noProductsReply = "You don't have any products in inventory yet."
)

func plural(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}

// reportDate month/day/year without padding, e.g. 3/7/2026.
func reportDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func inventoryReport(items []*entity.InventoryItem, warehouses []*entity.Warehouse, now time.Time) string {
	if len(items) == 0 {
		return "You don't have any inventory items yet. Add some products first to generate a report!"
	}
	sum := inventory.Summarize(items)

	cats := make([]string, 0)
	for _, c := range inventory.CategoryBreakdown(items) {
		cats = append(cats, fmt.Sprintf("  • %s: %d items, %d units, $%s", c.Category, c.Count, c.Units, c.Value.StringFixed(2)))
	}
	top := make([]string, 0, listLimit)
	for i, it := range inventory.TopByValue(items, listLimit) {
		top = append(top, fmt.Sprintf("  %d. %s: %d × $%s = $%s", i+1, it.ProductName, it.Quantity, it.Price.String(), it.Value().StringFixed(2)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 INVENTORY REPORT\nGenerated: %s\n\n", reportDate(now))
	fmt.Fprintf(&b, "%s\n📦 OVERVIEW\n%s\n", rule, rule)
	fmt.Fprintf(&b, "• Total Products: %d\n• Total Units: %d\n• Total Value: $%s\n• Average Price/Unit: $%s\n• Low Stock Items: %d\n• Warehouses: %d\n\n",
		sum.Products, sum.Units, sum.Value.StringFixed(2), sum.AveragePricePerUnit.StringFixed(2), sum.LowStock, len(warehouses))
	fmt.Fprintf(&b, "%s\n📂 BY CATEGORY\n%s\n%s\n\n", rule, rule, strings.Join(cats, "\n"))
	fmt.Fprintf(&b, "%s\n💰 TOP 5 VALUABLE ITEMS\n%s\n%s\n\n%s", rule, rule, strings.Join(top, "\n"), rule)
	return b.String()
}

func marginAnalysis(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return "You don't have any inventory items yet. Add products to analyze profit margins!"
	}
	lines := inventory.Margins(items)
	totalProfit, avgMargin := inventory.MarginTotals(lines)

	high := make([]string, 0, listLimit)
	for i, l := range inventory.HighestMargin(lines, listLimit) {
		high = append(high, fmt.Sprintf("  %d. %s: %s%% margin, $%s/unit", i+1, l.Item.ProductName, l.MarginPercent.String(), l.ProfitPerUnit.StringFixed(2)))
	}
	profitable := make([]string, 0, listLimit)
	for i, l := range inventory.MostProfitable(lines, listLimit) {
		profitable = append(profitable, fmt.Sprintf("  %d. %s: $%s total profit", i+1, l.Item.ProductName, l.TotalProfit.StringFixed(2)))
	}

	var b strings.Builder
	b.WriteString("💰 PROFIT MARGIN ANALYSIS\n\n")
	b.WriteString("Note: Profit calculations assume a 40% markup on cost.\nFor accurate margins, track product cost separately.\n\n")
	fmt.Fprintf(&b, "📈 OVERALL METRICS\n• Total Estimated Profit: $%s\n• Average Margin: %s%%\n\n", totalProfit.StringFixed(2), avgMargin.StringFixed(1))
	fmt.Fprintf(&b, "🏆 HIGHEST MARGIN PRODUCTS\n%s\n\n", strings.Join(high, "\n"))
	fmt.Fprintf(&b, "💎 MOST PROFITABLE PRODUCTS\n%s", strings.Join(profitable, "\n"))
	return b.String()
}

func turnoverAnalysis(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return "You don't have any inventory items yet. Add products to analyze turnover rates!"
	}
	buckets := inventory.ByVelocity(items)
	high, medium, low := buckets[inventory.VelocityHigh], buckets[inventory.VelocityMedium], buckets[inventory.VelocityLow]

	var b strings.Builder
	b.WriteString("📉 INVENTORY TURNOVER ANALYSIS\n\n")
	b.WriteString("Note: Accurate turnover requires sales/COGS data over time.\nThis analysis shows current stock velocity indicators.\n\n")
	b.WriteString("🚀 VELOCITY DISTRIBUTION\n")
	fmt.Fprintf(&b, "• High Velocity (Fast-moving): %d items\n", len(high))
	fmt.Fprintf(&b, "• Medium Velocity: %d items\n", len(medium))
	fmt.Fprintf(&b, "• Low Velocity (Slow-moving): %d items\n\n", len(low))

	if len(high) > 0 {
		fmt.Fprintf(&b, "⚡ FAST-MOVING ITEMS (Consider Reordering)\n%s\n\n", velocityLines(high))
	}
	if len(low) > 0 {
		fmt.Fprintf(&b, "🐌 SLOW-MOVING ITEMS (Consider Promotions)\n%s\n\n", velocityLines(low))
	}

	b.WriteString("💡 RECOMMENDATIONS\n")
	b.WriteString("• Monitor fast-moving items to prevent stockouts\n")
	b.WriteString("• Consider promotions for slow-moving inventory\n")
	b.WriteString("• Track sales data to calculate actual turnover ratio")
	return b.String()
}

func velocityLines(items []*entity.InventoryItem) string {
	if len(items) > listLimit {
		items = items[:listLimit]
	}
	out := make([]string, len(items))
	for i, it := range items {
		_, days := inventory.VelocityOf(it.Quantity)
		out[i] = fmt.Sprintf("  %d. %s: %d units (%s)", i+1, it.ProductName, it.Quantity, days)
	}
	return strings.Join(out, "\n")
}

var urgencyLabels = map[inventory.Urgency]string{
	inventory.UrgencyCritical: "🔴 CRITICAL",
	inventory.UrgencyMedium:   "🟡 Medium",
	inventory.UrgencyLow:      "🟢 Low",
}

func reorderPrediction(message string, items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return "You don't have any inventory items yet. Add products to get reorder predictions!"
	}

	if target := inventory.FindReorderTarget(items, domainchat.ReorderTarget(message)); target != nil {
		p := inventory.PlanReorder(target.Quantity)
		advice := "MONITOR: No immediate action needed"
		switch {
		case target.Quantity <= p.ReorderPoint:
			advice = "ACTION REQUIRED: Place order now!"
		case target.Quantity < inventory.MediumUrgencyThreshold:
			advice = "PLAN AHEAD: Order within a week"
		}
		return fmt.Sprintf("📊 REORDER PREDICTION\n\n📦 Product: %s\n🏷️ SKU: %s\n📍 Current Stock: %d units\n\n%s\n⚠️ Urgency Level: %s\n%s\n\n📈 RECOMMENDATIONS\n• Reorder Point: %d units\n• Safety Stock: %d units\n• Suggested Order Qty: %d units\n• Estimated Days Until Reorder: %d days\n\n💡 %s",
			target.ProductName, target.SKU, target.Quantity, rule, urgencyLabels[p.Urgency], rule,
			p.ReorderPoint, p.SafetyStock, p.SuggestedOrderQty, p.DaysUntilReorder, advice)
	}

	now, soon := inventory.ImmediateReorder(items), inventory.ReorderSoon(items)

	var b strings.Builder
	b.WriteString("📊 REORDER PREDICTIONS\n\n")
	if len(now) > 0 {
		fmt.Fprintf(&b, "🔴 IMMEDIATE REORDER NEEDED (%d items)\n", len(now))
		for i, it := range firstN(now, listLimit) {
			fmt.Fprintf(&b, "  %d. %s (%d left) - Order %d units\n", i+1, it.ProductName, it.Quantity, inventory.RestockQuantity(it.Quantity))
		}
		b.WriteString("\n")
	}
	if len(soon) > 0 {
		fmt.Fprintf(&b, "🟡 PLAN TO REORDER SOON (%d items)\n", len(soon))
		for i, it := range firstN(soon, listLimit) {
			fmt.Fprintf(&b, "  %d. %s: %d units (~7-14 days)\n", i+1, it.ProductName, it.Quantity)
		}
		b.WriteString("\n")
	}
	if len(now) == 0 && len(soon) == 0 {
		b.WriteString("🟢 ALL ITEMS WELL STOCKED\nNo immediate reorder needed!\n\n")
	}
	b.WriteString("💡 TIP: Say \"predict reorder for [product name]\" for detailed predictions!")
	return b.String()
}

func productCount(items []*entity.InventoryItem) string {
	n := len(items)
	if n == 0 {
		return "You currently have 0 products in your inventory. To get started, go to the Inventory page and click 'Add Item' to add your first product!"
	}
	return fmt.Sprintf("You have %d product%s in your inventory.", n, plural(n))
}

func inventoryValue(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return "Your inventory is empty. Start by adding products from the Inventory page!"
	}
	sum := inventory.Summarize(items)
	return fmt.Sprintf("Your total inventory is worth $%s with %d units across %d products.", sum.Value.StringFixed(2), sum.Units, sum.Products)
}

func lowStock(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	low := inventory.LowStock(items)
	if len(low) == 0 {
		return "Good news! No items are running low on stock right now. All your products are well stocked! ✅"
	}
	lines := make([]string, 0, listLimit)
	for _, it := range firstN(low, listLimit) {
		lines = append(lines, fmt.Sprintf("• %s (%d left)", it.ProductName, it.Quantity))
	}
	more := ""
	if len(low) > listLimit {
		more = "\n...and more."
	}
	return fmt.Sprintf("⚠️ You have %d item%s running low:\n%s%s", len(low), plural(len(low)), strings.Join(lines, "\n"), more)
}

func mostExpensive(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	return "💰 Your most expensive items:\n" + priceList(inventory.MostExpensive(items, listLimit))
}

func cheapest(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	return "💵 Your most affordable items:\n" + priceList(inventory.Cheapest(items, listLimit))
}

func priceList(items []*entity.InventoryItem) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%d. %s - $%s", i+1, it.ProductName, it.Price.String())
	}
	return strings.Join(out, "\n")
}

func averagePrice(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	return fmt.Sprintf("The average product price in your inventory is $%s.", inventory.AveragePrice(items).StringFixed(2))
}

func search(message string, items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	term := domainchat.SearchTerm(message)
	found := inventory.Search(items, term)
	if len(found) == 0 {
		return fmt.Sprintf("❌ No products found matching \"%s\". Try a different search term or check your spelling.", term)
	}
	details := make([]string, 0, listLimit)
	for _, it := range firstN(found, listLimit) {
		details = append(details, fmt.Sprintf("• %s\n  SKU: %s | Qty: %d | Price: $%s | Category: %s", it.ProductName, it.SKU, it.Quantity, it.Price.String(), it.Category))
	}
	more := ""
	if len(found) > listLimit {
		more = "\n\n...and more results."
	}
	return fmt.Sprintf("🔍 Found %d matching product%s:\n\n%s%s", len(found), plural(len(found)), strings.Join(details, "\n\n"), more)
}

func categories(items []*entity.InventoryItem) string {
	if len(items) == 0 {
		return noProductsReply
	}
	stats := inventory.CategoryCounts(items)
	lines := make([]string, len(stats))
	for i, c := range stats {
		lines[i] = fmt.Sprintf("• %s: %d item%s", c.Category, c.Count, plural(c.Count))
	}
	return "📂 Your inventory by category:\n" + strings.Join(lines, "\n")
}

func warehouseList(warehouses []*entity.Warehouse) string {
	if len(warehouses) == 0 {
		return "You don't have any warehouses set up yet. Create one from the Warehouses page!"
	}
	lines := make([]string, len(warehouses))
	for i, w := range warehouses {
		lines[i] = fmt.Sprintf("%d. %s - %s (Capacity: %d)", i+1, w.Name, w.Location, w.Capacity)
	}
	return fmt.Sprintf("🏢 You have %d warehouse%s:\n%s", len(warehouses), plural(len(warehouses)), strings.Join(lines, "\n"))
}

func warehouseCapacity(warehouses []*entity.Warehouse, items []*entity.InventoryItem) string {
	if len(warehouses) == 0 {
		return "You don't have any warehouses set up yet."
	}
	u := inventory.Usage(warehouses, items)
	// One decimal (10.0%), bare "0" without capacity.
	return fmt.Sprintf("📦 Warehouse capacity:\n• Total capacity: %d units\n• Currently used: %d units\n• Usage: %s%%", u.Total, u.Used, u.PercentText())
}

func emptyWarehouses(warehouses []*entity.Warehouse, items []*entity.InventoryItem) string {
	empty := inventory.EmptyWarehouses(warehouses, items)
	if len(empty) == 0 {
		return "All your warehouses have inventory items stored in them! ✅"
	}
	lines := make([]string, len(empty))
	for i, w := range empty {
		lines[i] = fmt.Sprintf("• %s (%s)", w.Name, w.Location)
	}
	verb := " is"
	if len(empty) != 1 {
		verb = "s are"
	}
	return fmt.Sprintf("📭 %d warehouse%s empty:\n%s", len(empty), verb, strings.Join(lines, "\n"))
}

func shopInfo(shop *entity.Shop) string {
	return fmt.Sprintf("🏪 Your Shop Information:\n• Name: %s\n• Location: %s\n• Email: %s\n• Phone: %s", shop.Name, shop.Address, shop.Email, shop.Phone)
}

func statsOverview(items []*entity.InventoryItem, warehouses []*entity.Warehouse) string {
	products, whs := len(items), len(warehouses)
	if products == 0 && whs == 0 {
		return "📊 Your StockMate Summary:\n• Products: 0\n• Warehouses: 0\n\n🚀 Getting Started:\n1. Create a warehouse from the Warehouses page\n2. Add products from the Inventory page\n3. Start managing your stock!"
	}
	if products == 0 {
		return fmt.Sprintf("📊 Your StockMate Summary:\n• Products: 0\n• Warehouses: %d\n\n✅ You have warehouses set up!\nNow add some products from the Inventory page to start tracking your stock.", whs)
	}

	sum := inventory.Summarize(items)
	low := ""
	if sum.LowStock > 0 {
		low = fmt.Sprintf("• ⚠️ %d item%s low on stock\n", sum.LowStock, plural(sum.LowStock))
	}
	return fmt.Sprintf("📊 Your StockMate Summary:\n\n📦 Inventory:\n• %d product%s\n• %d total units\n• $%s total value\n• $%s average price per unit\n%s\n🏢 Warehouses: %d",
		products, plural(products), sum.Units, sum.Value.StringFixed(2), sum.AveragePricePerUnit.StringFixed(2), low, whs)
}

func gettingStarted(items []*entity.InventoryItem, warehouses []*entity.Warehouse) string {
	if len(items) == 0 && len(warehouses) == 0 {
		return "🚀 Here's how to get started with StockMate:\n\n" +
			"1️⃣ Create your first warehouse:\n   • Go to the Warehouses page\n   • Click \"Add Warehouse\"\n   • Enter warehouse details\n\n" +
			"2️⃣ Add your first product:\n   • Go to the Inventory page\n   • Click \"Add Item\"\n   • Fill in product details\n\n" +
			"3️⃣ Start tracking:\n   • Monitor stock levels\n   • Get low stock alerts\n   • Analyze your inventory data"
	}
	return fmt.Sprintf("💡 Here's what you can do:\n• View and manage your %d product%s\n• Monitor your %d warehouse%s\n• Track stock levels and get alerts\n• Analyze inventory data and trends\n\nJust ask me any questions!",
		len(items), plural(len(items)), len(warehouses), plural(len(warehouses)))
}

func firstN(items []*entity.InventoryItem, n int) []*entity.InventoryItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}
