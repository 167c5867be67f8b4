package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain"
	domainchat "github.com/Zammmm09/StockMate/internal/domain/chat"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

const defaultWarehouseExample = "Main Storage"

// addItem runs the add-item command: create when every slot resolves,
// otherwise answer with a checklist or the onboarding guide.
func (ip *Interpreter) addItem(ctx context.Context, message string, tc TenantContext) string {
	s := domainchat.ExtractItem(message)
	wh := s.ResolveWarehouse(tc.Warehouses)

	if s.ProductName != nil && s.SKU != nil && s.Quantity != nil && s.Price != nil && s.Category != nil && wh != nil {
		if *s.Quantity < 0 {
			return "❌ Quantity must be 0 or greater.\n\nPlease provide a valid quantity."
		}
		if s.Price.IsNegative() {
			return "❌ Price must be 0 or greater.\n\nPlease provide a valid price."
		}

		created, err := ip.items.Create(ctx, tc.ShopID, dto.CreateInventoryItemRequest{
			WarehouseID: wh.ID,
			ProductName: *s.ProductName,
			SKU:         *s.SKU,
			Quantity:    *s.Quantity,
			Price:       *s.Price,
			Category:    *s.Category,
		})
		if err != nil {
			ip.log.Warn().Err(err).Str("shop_id", tc.ShopID).Str("sku", *s.SKU).Msg("chat: create item failed")
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Sprintf("❌ A product with SKU \"%s\" already exists.\n\nPlease use a unique SKU or update the existing product.", *s.SKU)
			}
			return fmt.Sprintf("❌ Oops! I couldn't add the product.\n\nError: %s\n\nPlease check the details and try again.", err.Error())
		}

		return fmt.Sprintf("✅ Product added to inventory successfully!\n\n📦 Product Details:\n• Name: %s\n• SKU: %s\n• Quantity: %d units\n• Price: $%s\n• Category: %s\n• Warehouse: %s\n• Created: Just now\n\n🎉 Your inventory has been updated!",
			created.ProductName, created.SKU, created.Quantity, created.Price.String(), created.Category, wh.Name)
	}

	if s.ProductName != nil || s.SKU != nil || s.Quantity != nil || s.Price != nil || s.Category != nil || wh != nil {
		return itemChecklist(s, wh, tc.Warehouses)
	}

	if len(tc.Warehouses) == 0 {
		return "To add products, you first need to create a warehouse! 🏢\n\nSay \"add warehouse\" and I'll guide you through creating one."
	}
	return fmt.Sprintf(addItemGuide, warehouseNames(tc.Warehouses), tc.Warehouses[0].Name)
}

func itemChecklist(s domainchat.ItemSlots, wh *entity.Warehouse, warehouses []*entity.Warehouse) string {
	var b strings.Builder
	b.WriteString("I can help you add a product! I have:\n")
	if s.ProductName != nil {
		fmt.Fprintf(&b, "✅ Product Name: %s\n", *s.ProductName)
	}
	if s.SKU != nil {
		fmt.Fprintf(&b, "✅ SKU: %s\n", *s.SKU)
	}
	if s.Quantity != nil {
		fmt.Fprintf(&b, "✅ Quantity: %d\n", *s.Quantity)
	}
	if s.Price != nil {
		fmt.Fprintf(&b, "✅ Price: $%s\n", s.Price.String())
	}
	if s.Category != nil {
		fmt.Fprintf(&b, "✅ Category: %s\n", *s.Category)
	}
	if wh != nil {
		fmt.Fprintf(&b, "✅ Warehouse: %s\n", wh.Name)
	}

	b.WriteString("\nStill need:\n")
	if s.ProductName == nil {
		b.WriteString("❌ Product name (e.g., \"Laptop\", \"T-Shirt\")\n")
	}
	if s.SKU == nil {
		b.WriteString("❌ SKU code (e.g., \"LAP-001\", \"TSH-BLK-M\")\n")
	}
	if s.Quantity == nil {
		b.WriteString("❌ Quantity (e.g., 100, 500)\n")
	}
	if s.Price == nil {
		b.WriteString("❌ Price (e.g., 49.99, 1200)\n")
	}
	if s.Category == nil {
		b.WriteString("❌ Category (e.g., \"Electronics\", \"Clothing\")\n")
	}
	if wh == nil {
		if len(warehouses) == 0 {
			b.WriteString("❌ Warehouse - You need to create a warehouse first! Say \"add warehouse\" to create one.\n")
		} else {
			fmt.Fprintf(&b, "❌ Warehouse name (Available: %s)\n", warehouseNames(warehouses))
		}
	}

	example := defaultWarehouseExample
	if len(warehouses) > 0 {
		example = warehouses[0].Name
	}
	fmt.Fprintf(&b, "\n💡 Complete format:\n\"Product Name: Laptop, SKU: LAP-001, Quantity: 50, Price: 999, Category: Electronics, Warehouse: %s\"", example)
	return b.String()
}

// addWarehouse runs the add-warehouse command. A capacity of 0 counts as
// given and is then rejected by validation.
func (ip *Interpreter) addWarehouse(ctx context.Context, message string, tc TenantContext) string {
	s := domainchat.ExtractWarehouse(message)

	if s.Name != nil && s.Location != nil && s.Capacity != nil {
		if *s.Capacity < 1 {
			return fmt.Sprintf("❌ Capacity must be a positive number greater than 0.\n\nPlease try again with a valid capacity, for example:\n\"Warehouse Name: %s, Location: %s, Capacity: 1000\"", *s.Name, *s.Location)
		}

		created, err := ip.warehouses.Create(ctx, tc.ShopID, dto.CreateWarehouseRequest{
			Name:     *s.Name,
			Location: *s.Location,
			Capacity: *s.Capacity,
		})
		if err != nil {
			ip.log.Warn().Err(err).Str("shop_id", tc.ShopID).Msg("chat: create warehouse failed")
			return fmt.Sprintf("❌ Oops! I couldn't create the warehouse.\n\nError: %s\n\nPlease check the details and try again.", err.Error())
		}
		return fmt.Sprintf("✅ Warehouse created successfully!\n\n📦 Details:\n• Name: %s\n• Location: %s\n• Capacity: %d units\n• Created: Just now\n\n🎉 You can now assign inventory items to this warehouse from the Inventory page!",
			created.Name, created.Location, created.Capacity)
	}

	if !s.Empty() {
		return warehouseChecklist(s)
	}
	return addWarehouseGuide
}

func warehouseChecklist(s domainchat.WarehouseSlots) string {
	var b strings.Builder
	b.WriteString("I can help you create a warehouse! I have:\n")
	if s.Name != nil {
		fmt.Fprintf(&b, "✅ Name: %s\n", *s.Name)
	}
	if s.Location != nil {
		fmt.Fprintf(&b, "✅ Location: %s\n", *s.Location)
	}
	if s.Capacity != nil {
		fmt.Fprintf(&b, "✅ Capacity: %d units\n", *s.Capacity)
	}

	b.WriteString("\nStill need:\n")
	if s.Name == nil {
		b.WriteString("❌ Warehouse name (e.g., \"Aurify Clothing\", \"Main Storage\")\n")
	}
	if s.Location == nil {
		b.WriteString("❌ Location (e.g., \"Nashik\", \"New York\")\n")
	}
	if s.Capacity == nil {
		b.WriteString("❌ Capacity in units (e.g., 1000, 5000)\n")
	}

	b.WriteString("\n💡 You can provide it in any of these formats:\n\n📝 Format 1 (Structured):\n\"Warehouse Name: Main Storage, Location: Nashik, Capacity: 1000\"\n\n📝 Format 2 (Natural):\n\"Add warehouse called Main Storage at Nashik with capacity 1000\"\n\nJust tell me the missing information!")
	return b.String()
}

func warehouseNames(warehouses []*entity.Warehouse) string {
	names := make([]string, len(warehouses))
	for i, w := range warehouses {
		names[i] = w.Name
	}
	return strings.Join(names, ", ")
}

const addItemGuide = "I'd be happy to help you add a product to inventory! 📦\n\n" +
	"To add a product, I need:\n\n" +
	"1️⃣ **Product Name**\n   What is the product called?\n   Examples: \"Laptop\", \"T-Shirt\", \"Coffee Mug\"\n\n" +
	"2️⃣ **SKU (Stock Keeping Unit)**\n   Unique product code\n   Examples: \"LAP-001\", \"TSH-BLK-M\", \"MUG-WHT\"\n\n" +
	"3️⃣ **Quantity**\n   How many units?\n   Examples: 50, 100, 1000\n\n" +
	"4️⃣ **Price**\n   Price per unit\n   Examples: 49.99, 15, 999.99\n\n" +
	"5️⃣ **Category**\n   Product category\n   Examples: \"Electronics\", \"Clothing\", \"Accessories\"\n\n" +
	"6️⃣ **Warehouse**\n   Which warehouse to store it in?\n   Available: %s\n\n" +
	"💡 **Tell me all at once:**\n\"Product Name: Laptop, SKU: LAP-001, Quantity: 50, Price: 999, Category: Electronics, Warehouse: %s\"\n\n" +
	"What would you like to add?"

const addWarehouseGuide = "I'd be happy to help you create a new warehouse! 🏢\n\n" +
	"To create a warehouse, I need three things:\n\n" +
	"1️⃣ **Warehouse Name**\n   What would you like to call it?\n   Examples: \"Aurify Clothing\", \"Main Storage\", \"Downtown Warehouse\"\n\n" +
	"2️⃣ **Location**\n   Where is the warehouse located?\n   Examples: \"Nashik\", \"New York\", \"123 Main St, Boston\"\n\n" +
	"3️⃣ **Capacity**\n   How many units can it hold?\n   Examples: 1000, 5000, 10000\n\n" +
	"💡 **Tell me in any format:**\n\n" +
	"📝 Option 1 (Structured):\n\"Warehouse Name: Aurify Clothing, Location: Nashik, Capacity: 1000\"\n\n" +
	"📝 Option 2 (Natural language):\n\"Add warehouse called Main Storage at New York with capacity 5000\"\n\n" +
	"📝 Option 3 (Simple):\n\"Create warehouse Downtown at Boston capacity 3000\"\n\n" +
	"What would you like to do?"
