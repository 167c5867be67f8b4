package chat_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zammmm09/StockMate/internal/application/chat"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

const laptopMessage = "Product Name: Laptop, SKU: LAP-001, Quantity: 50, Price: 999, Category: Electronics, Warehouse: Main Storage"

func newInterpreter() (*chat.Interpreter, *itemCreator, *warehouseCreator) {
	items, whs := &itemCreator{}, &warehouseCreator{}
	ip := chat.NewInterpreter(items, whs, nil).
		WithClock(func() time.Time { return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC) })
	return ip, items, whs
}

func item(name, sku string, qty int, price, category, warehouseID string) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          "id-" + sku,
		ShopID:      "shop-1",
		WarehouseID: warehouseID,
		ProductName: name,
		SKU:         sku,
		Quantity:    qty,
		Price:       decimal.RequireFromString(price),
		Category:    category,
	}
}

func mainStorage() *entity.Warehouse {
	return &entity.Warehouse{ID: "wh-1", ShopID: "shop-1", Name: "Main Storage", Location: "Nashik", Capacity: 1000}
}

func TestInterpret_AddItemCreatesWhenComplete(t *testing.T) {
	ip, items, _ := newInterpreter()
	tc := chat.TenantContext{ShopID: "shop-1", Warehouses: []*entity.Warehouse{mainStorage()}}

	reply := ip.Interpret(context.Background(), laptopMessage, tc)

	require.Len(t, items.calls, 1)
	got := items.calls[0]
	assert.Equal(t, "Laptop", got.ProductName)
	assert.Equal(t, "LAP-001", got.SKU)
	assert.Equal(t, 50, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(999)))
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, "wh-1", got.WarehouseID)

	assert.Equal(t, "✅ Product added to inventory successfully!\n\n📦 Product Details:\n• Name: Laptop\n• SKU: LAP-001\n• Quantity: 50 units\n• Price: $999\n• Category: Electronics\n• Warehouse: Main Storage\n• Created: Just now\n\n🎉 Your inventory has been updated!", reply)
}

func TestInterpret_AddItemResolvesWarehouseIgnoringCase(t *testing.T) {
	ip, items, _ := newInterpreter()
	tc := chat.TenantContext{ShopID: "shop-1", Warehouses: []*entity.Warehouse{mainStorage()}}

	ip.Interpret(context.Background(), strings.Replace(laptopMessage, "Main Storage", "main storage", 1), tc)

	require.Len(t, items.calls, 1)
	assert.Equal(t, "wh-1", items.calls[0].WarehouseID)
}

func TestInterpret_AddItemWithoutWarehouses(t *testing.T) {
	ip, items, _ := newInterpreter()

	reply := ip.Interpret(context.Background(), laptopMessage, chat.TenantContext{ShopID: "shop-1"})

	assert.Empty(t, items.calls)
	assert.Contains(t, reply, "❌ Warehouse - You need to create a warehouse first! Say \"add warehouse\" to create one.")
	assert.Contains(t, reply, "✅ Product Name: Laptop\n✅ SKU: LAP-001\n✅ Quantity: 50\n✅ Price: $999\n✅ Category: Electronics\n")
	assert.True(t, strings.HasSuffix(reply, "Category: Electronics, Warehouse: Main Storage\""))
}

func TestInterpret_AddItemPartialListsMissingSlots(t *testing.T) {
	ip, items, _ := newInterpreter()
	tc := chat.TenantContext{ShopID: "shop-1", Warehouses: []*entity.Warehouse{
		{ID: "wh-2", Name: "Depot"}, mainStorage(),
	}}

	reply := ip.Interpret(context.Background(), "add item SKU: mug-1, Quantity: 12", tc)

	assert.Empty(t, items.calls)
	assert.True(t, strings.HasPrefix(reply, "I can help you add a product! I have:\n✅ SKU: MUG-1\n✅ Quantity: 12\n\nStill need:\n"))
	assert.Contains(t, reply, "❌ Product name (e.g., \"Laptop\", \"T-Shirt\")\n")
	assert.Contains(t, reply, "❌ Price (e.g., 49.99, 1200)\n")
	assert.Contains(t, reply, "❌ Warehouse name (Available: Depot, Main Storage)\n")
	assert.True(t, strings.HasSuffix(reply, "Warehouse: Depot\""))
}

func TestInterpret_AddItemGuides(t *testing.T) {
	ip, _, _ := newInterpreter()

	noWarehouse := ip.Interpret(context.Background(), "add item", chat.TenantContext{})
	assert.Equal(t, "To add products, you first need to create a warehouse! 🏢\n\nSay \"add warehouse\" and I'll guide you through creating one.", noWarehouse)

	tc := chat.TenantContext{Warehouses: []*entity.Warehouse{mainStorage()}}
	guide := ip.Interpret(context.Background(), "add item", tc)
	assert.True(t, strings.HasPrefix(guide, "I'd be happy to help you add a product to inventory! 📦"))
	assert.Contains(t, guide, "   Available: Main Storage\n")
	assert.True(t, strings.HasSuffix(guide, "What would you like to add?"))
}

func TestInterpret_AddItemBeatsLowStock(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{
		Warehouses: []*entity.Warehouse{mainStorage()},
		Inventory:  []*entity.InventoryItem{item("Pen", "PEN1", 5, "1.5", "Office", "wh-1")},
	}

	reply := ip.Interpret(context.Background(), "add item low stock", tc)

	assert.True(t, strings.HasPrefix(reply, "I'd be happy to help you add a product"))
}

func TestInterpret_AddItemDuplicateSKU(t *testing.T) {
	ip, items, _ := newInterpreter()
	items.err = fmt.Errorf("insert inventory item: %w", domain.ErrDuplicate)
	tc := chat.TenantContext{ShopID: "shop-1", Warehouses: []*entity.Warehouse{mainStorage()}}

	reply := ip.Interpret(context.Background(), laptopMessage, tc)

	assert.Equal(t, "❌ A product with SKU \"LAP-001\" already exists.\n\nPlease use a unique SKU or update the existing product.", reply)
}

func TestInterpret_AddItemGenericFailure(t *testing.T) {
	ip, items, _ := newInterpreter()
	items.err = errors.New("db down")
	tc := chat.TenantContext{ShopID: "shop-1", Warehouses: []*entity.Warehouse{mainStorage()}}

	reply := ip.Interpret(context.Background(), laptopMessage, tc)

	assert.Equal(t, "❌ Oops! I couldn't add the product.\n\nError: db down\n\nPlease check the details and try again.", reply)
}

func TestInterpret_AddWarehouseNatural(t *testing.T) {
	ip, _, whs := newInterpreter()

	reply := ip.Interpret(context.Background(), "Add warehouse called Main Storage at Nashik with capacity 1000", chat.TenantContext{ShopID: "shop-1"})

	require.Len(t, whs.calls, 1)
	assert.Equal(t, "Main Storage", whs.calls[0].Name)
	assert.Equal(t, "Nashik", whs.calls[0].Location)
	assert.Equal(t, 1000, whs.calls[0].Capacity)
	assert.Equal(t, "✅ Warehouse created successfully!\n\n📦 Details:\n• Name: Main Storage\n• Location: Nashik\n• Capacity: 1000 units\n• Created: Just now\n\n🎉 You can now assign inventory items to this warehouse from the Inventory page!", reply)
}

func TestInterpret_AddWarehouseZeroCapacityRejected(t *testing.T) {
	ip, _, whs := newInterpreter()

	reply := ip.Interpret(context.Background(), "Warehouse Name: X, Location: Y, Capacity: 0", chat.TenantContext{ShopID: "shop-1"})

	assert.Empty(t, whs.calls)
	assert.Equal(t, "❌ Capacity must be a positive number greater than 0.\n\nPlease try again with a valid capacity, for example:\n\"Warehouse Name: X, Location: Y, Capacity: 1000\"", reply)
}

func TestInterpret_AddWarehouseFailure(t *testing.T) {
	ip, _, whs := newInterpreter()
	whs.err = domain.ErrUnauthorized

	reply := ip.Interpret(context.Background(), "Warehouse Name: X, Location: Y, Capacity: 10", chat.TenantContext{})

	assert.Equal(t, "❌ Oops! I couldn't create the warehouse.\n\nError: unauthorized\n\nPlease check the details and try again.", reply)
}

func TestInterpret_AddWarehousePartialAndGuide(t *testing.T) {
	ip, _, whs := newInterpreter()

	partial := ip.Interpret(context.Background(), "add warehouse with capacity 500", chat.TenantContext{})
	assert.True(t, strings.HasPrefix(partial, "I can help you create a warehouse! I have:\n✅ Capacity: 500 units\n\nStill need:\n❌ Warehouse name"))
	assert.Contains(t, partial, "❌ Location (e.g., \"Nashik\", \"New York\")\n")
	assert.True(t, strings.HasSuffix(partial, "Just tell me the missing information!"))

	guide := ip.Interpret(context.Background(), "add warehouse", chat.TenantContext{})
	assert.True(t, strings.HasPrefix(guide, "I'd be happy to help you create a new warehouse! 🏢"))
	assert.Empty(t, whs.calls)
}

func TestInterpret_LowStock(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{
		item("Pen", "PEN1", 5, "1", "Office", "wh-1"),
		item("Mug", "MUG1", 20, "4", "Kitchen", "wh-1"),
	}}

	reply := ip.Interpret(context.Background(), "low stock", tc)

	assert.Equal(t, "⚠️ You have 1 item running low:\n• Pen (5 left)", reply)
	assert.NotContains(t, reply, "Mug")
}

func TestInterpret_LowStockTruncates(t *testing.T) {
	ip, _, _ := newInterpreter()
	var inv []*entity.InventoryItem
	for i := 0; i < 7; i++ {
		inv = append(inv, item(fmt.Sprintf("P%d", i), fmt.Sprintf("S%d", i), i, "1", "C", "wh-1"))
	}

	reply := ip.Interpret(context.Background(), "what is running low", chat.TenantContext{Inventory: inv})

	assert.True(t, strings.HasPrefix(reply, "⚠️ You have 7 items running low:\n• P0 (0 left)"))
	assert.True(t, strings.HasSuffix(reply, "• P4 (4 left)\n...and more."))
}

func TestInterpret_ReorderForProduct(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{item("Pen", "PEN1", 5, "1", "Office", "wh-1")}}

	reply := ip.Interpret(context.Background(), "predict reorder for Pen", tc)

	assert.Contains(t, reply, "📦 Product: Pen\n🏷️ SKU: PEN1\n📍 Current Stock: 5 units")
	assert.Contains(t, reply, "⚠️ Urgency Level: 🔴 CRITICAL")
	assert.Contains(t, reply, "• Reorder Point: 11 units\n• Safety Stock: 1 units\n• Suggested Order Qty: 3 units\n• Estimated Days Until Reorder: 0 days")
	assert.True(t, strings.HasSuffix(reply, "💡 ACTION REQUIRED: Place order now!"))
}

func TestInterpret_ReorderGeneral(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{
		item("Pen", "PEN1", 5, "1", "Office", "wh-1"),
		item("Mug", "MUG1", 25, "4", "Kitchen", "wh-1"),
		item("Desk", "DSK1", 80, "90", "Furniture", "wh-1"),
	}}

	reply := ip.Interpret(context.Background(), "when to reorder", tc)

	assert.Equal(t, "📊 REORDER PREDICTIONS\n\n"+
		"🔴 IMMEDIATE REORDER NEEDED (1 items)\n  1. Pen (5 left) - Order 10 units\n\n"+
		"🟡 PLAN TO REORDER SOON (1 items)\n  1. Mug: 25 units (~7-14 days)\n\n"+
		"💡 TIP: Say \"predict reorder for [product name]\" for detailed predictions!", reply)
}

func TestInterpret_ProfitMargin(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{
		item("Chair", "CH1", 10, "100", "Furniture", "wh-1"),
		item("Lamp", "LA1", 20, "50", "Lighting", "wh-1"),
	}}

	reply := ip.Interpret(context.Background(), "show profit margin", tc)

	assert.Contains(t, reply, "• Total Estimated Profit: $571.43\n• Average Margin: 28.6%")
	assert.Contains(t, reply, "  1. Chair: 28.6% margin, $28.57/unit\n  2. Lamp: 28.6% margin, $14.29/unit")
	assert.Contains(t, reply, "💎 MOST PROFITABLE PRODUCTS\n  1. Chair: $285.71 total profit\n  2. Lamp: $285.71 total profit")
}

func TestInterpret_InventoryReport(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{
		Warehouses: []*entity.Warehouse{mainStorage()},
		Inventory: []*entity.InventoryItem{
			item("Pen", "PEN1", 5, "1.5", "Office", "wh-1"),
			item("Chair", "CH1", 10, "100", "Furniture", "wh-1"),
		},
	}

	reply := ip.Interpret(context.Background(), "generate report", tc)

	assert.True(t, strings.HasPrefix(reply, "📊 INVENTORY REPORT\nGenerated: 3/7/2026\n\n"))
	assert.Contains(t, reply, "• Total Products: 2\n• Total Units: 15\n• Total Value: $1007.50\n• Average Price/Unit: $67.17\n• Low Stock Items: 1\n• Warehouses: 1")
	assert.Contains(t, reply, "  • Furniture: 1 items, 10 units, $1000.00\n  • Office: 1 items, 5 units, $7.50")
	assert.Contains(t, reply, "  1. Chair: 10 × $100 = $1000.00\n  2. Pen: 5 × $1.5 = $7.50")
}

func TestInterpret_TurnoverVelocityBuckets(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{
		item("Pen", "PEN1", 5, "1.5", "Office", "wh-1"),
		item("Chair", "CH1", 19, "100", "Furniture", "wh-1"),
		item("Desk", "DK1", 50, "250", "Furniture", "wh-1"),
		item("Lamp", "LA1", 150, "20", "Lighting", "wh-1"),
	}}

	reply := ip.Interpret(context.Background(), "inventory turnover rate", tc)

	assert.Equal(t, "📉 INVENTORY TURNOVER ANALYSIS\n\n"+
		"Note: Accurate turnover requires sales/COGS data over time.\nThis analysis shows current stock velocity indicators.\n\n"+
		"🚀 VELOCITY DISTRIBUTION\n"+
		"• High Velocity (Fast-moving): 2 items\n"+
		"• Medium Velocity: 1 items\n"+
		"• Low Velocity (Slow-moving): 1 items\n\n"+
		"⚡ FAST-MOVING ITEMS (Consider Reordering)\n"+
		"  1. Pen: 5 units (< 30 days)\n"+
		"  2. Chair: 19 units (< 30 days)\n\n"+
		"🐌 SLOW-MOVING ITEMS (Consider Promotions)\n"+
		"  1. Lamp: 150 units (> 90 days)\n\n"+
		"💡 RECOMMENDATIONS\n"+
		"• Monitor fast-moving items to prevent stockouts\n"+
		"• Consider promotions for slow-moving inventory\n"+
		"• Track sales data to calculate actual turnover ratio", reply)
}

func TestInterpret_TurnoverWithoutFastOrSlowItems(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{item("Desk", "DK1", 20, "250", "Furniture", "wh-1")}}

	reply := ip.Interpret(context.Background(), "turnover", tc)

	assert.Contains(t, reply, "Note: Accurate turnover requires sales/COGS data over time.")
	assert.Contains(t, reply, "• High Velocity (Fast-moving): 0 items\n• Medium Velocity: 1 items\n• Low Velocity (Slow-moving): 0 items\n\n💡 RECOMMENDATIONS")
	assert.NotContains(t, reply, "FAST-MOVING ITEMS")
	assert.NotContains(t, reply, "SLOW-MOVING ITEMS")
}

func TestInterpret_EmptyInventoryShortCircuits(t *testing.T) {
	ip, _, _ := newInterpreter()
	cases := map[string]string{
		"inventory report":   "You don't have any inventory items yet. Add some products first to generate a report!",
		"profitability":      "You don't have any inventory items yet. Add products to analyze profit margins!",
		"turnover":           "You don't have any inventory items yet. Add products to analyze turnover rates!",
		"predict reorder":    "You don't have any inventory items yet. Add products to get reorder predictions!",
		"how many products":  "You currently have 0 products in your inventory. To get started, go to the Inventory page and click 'Add Item' to add your first product!",
		"inventory value":    "Your inventory is empty. Start by adding products from the Inventory page!",
		"most expensive":     "You don't have any products in inventory yet.",
		"average price":      "You don't have any products in inventory yet.",
		"low stock":          "You don't have any products in inventory yet.",
		"find laptop":        "You don't have any products in inventory yet.",
		"stats":              "📊 Your StockMate Summary:\n• Products: 0\n• Warehouses: 0\n\n🚀 Getting Started:\n1. Create a warehouse from the Warehouses page\n2. Add products from the Inventory page\n3. Start managing your stock!",
		"list my warehouses": "You don't have any warehouses set up yet. Create one from the Warehouses page!",
		"xyz":                "I'm not sure I understood that. I can help you with:\n\n📦 Inventory: product counts, values, stock levels, search\n🏢 Warehouses: capacity, locations, empty warehouses\n📊 Analytics: overviews, statistics, reports\n\nTry asking a specific question or type \"help\" for examples!",
	}
	for msg, want := range cases {
		assert.Equal(t, want, ip.Interpret(context.Background(), msg, chat.TenantContext{}), msg)
	}
}

func TestInterpret_ReadIntentsAreIdempotent(t *testing.T) {
	ip, items, whs := newInterpreter()
	inv := []*entity.InventoryItem{
		item("Pen", "PEN1", 5, "1.5", "Office", "wh-1"),
		item("Chair", "CH1", 10, "100", "Furniture", "wh-1"),
		item("Lamp", "LA1", 150, "20", "Lighting", "wh-1"),
	}
	tc := chat.TenantContext{Inventory: inv, Warehouses: []*entity.Warehouse{mainStorage()}}
	order := []string{inv[0].SKU, inv[1].SKU, inv[2].SKU}

	for _, msg := range []string{"most expensive", "cheapest", "inventory report", "profit margin", "turnover", "find chair", "stats"} {
		first := ip.Interpret(context.Background(), msg, tc)
		second := ip.Interpret(context.Background(), msg, tc)
		assert.Equal(t, first, second, msg)
	}
	assert.Equal(t, order, []string{tc.Inventory[0].SKU, tc.Inventory[1].SKU, tc.Inventory[2].SKU})
	assert.Empty(t, items.calls)
	assert.Empty(t, whs.calls)
}

func TestInterpret_SearchAndCategories(t *testing.T) {
	ip, _, _ := newInterpreter()
	tc := chat.TenantContext{Inventory: []*entity.InventoryItem{
		item("Blue Pen", "PEN1", 5, "1.5", "Office", "wh-1"),
		item("Red Pen", "PEN2", 8, "1.5", "Office", "wh-1"),
		item("Chair", "CH1", 10, "100", "Furniture", "wh-1"),
	}}

	found := ip.Interpret(context.Background(), "find pen", tc)
	assert.Equal(t, "🔍 Found 2 matching products:\n\n• Blue Pen\n  SKU: PEN1 | Qty: 5 | Price: $1.5 | Category: Office\n\n• Red Pen\n  SKU: PEN2 | Qty: 8 | Price: $1.5 | Category: Office", found)

	missing := ip.Interpret(context.Background(), "search the sofa", tc)
	assert.Equal(t, "❌ No products found matching \"sofa\". Try a different search term or check your spelling.", missing)

	cats := ip.Interpret(context.Background(), "categories", tc)
	assert.Equal(t, "📂 Your inventory by category:\n• Office: 2 items\n• Furniture: 1 item", cats)
}

func TestInterpret_Warehouses(t *testing.T) {
	ip, _, _ := newInterpreter()
	depot := &entity.Warehouse{ID: "wh-2", Name: "Depot", Location: "Pune", Capacity: 500}
	tc := chat.TenantContext{
		Warehouses: []*entity.Warehouse{mainStorage(), depot},
		Inventory:  []*entity.InventoryItem{item("Chair", "CH1", 150, "100", "Furniture", "wh-1")},
	}

	assert.Equal(t, "🏢 You have 2 warehouses:\n1. Main Storage - Nashik (Capacity: 1000)\n2. Depot - Pune (Capacity: 500)",
		ip.Interpret(context.Background(), "list my warehouses", tc))
	assert.Equal(t, "📦 Warehouse capacity:\n• Total capacity: 1500 units\n• Currently used: 150 units\n• Usage: 10.0%",
		ip.Interpret(context.Background(), "how much space is in storage", tc))
	assert.Equal(t, "📭 1 warehouse is empty:\n• Depot (Pune)",
		ip.Interpret(context.Background(), "any unused warehouse", tc))
}

func TestInterpret_ShopInfoNeedsShop(t *testing.T) {
	ip, _, _ := newInterpreter()
	shop := &entity.Shop{ID: "shop-1", Name: "Aurify", Address: "Nashik", Email: "a@b.c", Phone: "123"}

	assert.Equal(t, "🏪 Your Shop Information:\n• Name: Aurify\n• Location: Nashik\n• Email: a@b.c\n• Phone: 123",
		ip.Interpret(context.Background(), "my shop", chat.TenantContext{ShopID: "shop-1", Shop: shop}))
	assert.NotContains(t, ip.Interpret(context.Background(), "my shop", chat.TenantContext{}), "Shop Information")
}
