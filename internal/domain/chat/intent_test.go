package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zammmm09/StockMate/internal/domain/chat"
)

func TestClassify_RuleOrder(t *testing.T) {
	cases := []struct {
		msg     string
		hasShop bool
		want    chat.Intent
	}{
		{"Add item please", false, chat.IntentAddItem},
		{"Product Name: Laptop, SKU: LAP-001", false, chat.IntentAddItem},
		{"create warehouse", false, chat.IntentAddWarehouse},
		{"Warehouse Name: X, Location: Y, Capacity: 0", false, chat.IntentAddWarehouse},
		{"hello there", false, chat.IntentGreeting},
		{"thanks a lot", false, chat.IntentGratitude},
		{"what can you do", false, chat.IntentHelp},
		{"generate report", false, chat.IntentInventoryReport},
		{"profit margin", false, chat.IntentProfitMargin},
		{"inventory turnover", false, chat.IntentTurnover},
		{"predict reorder for Pen", false, chat.IntentReorderPrediction},
		{"how many products", false, chat.IntentProductCount},
		{"inventory size", false, chat.IntentProductCount},
		{"total value", false, chat.IntentInventoryValue},
		{"low stock", false, chat.IntentLowStock},
		{"most expensive", false, chat.IntentMostExpensive},
		{"cheapest", false, chat.IntentCheapest},
		{"average price", false, chat.IntentAveragePrice},
		{"find laptop", false, chat.IntentSearch},
		{"categories", false, chat.IntentCategoryBreakdown},
		{"list warehouses", false, chat.IntentWarehouseList},
		{"warehouse capacity", false, chat.IntentWarehouseCapacity},
		{"empty warehouses", false, chat.IntentEmptyWarehouses},
		{"my shop", true, chat.IntentShopInfo},
		{"overview", false, chat.IntentStatsOverview},
		{"next steps", false, chat.IntentGettingStarted},
		{"stock", false, chat.IntentFallbackInventory},
		{"storage", false, chat.IntentFallbackWarehouse},
		{"xyz", false, chat.IntentDefault},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			assert.Equal(t, tc.want, chat.Classify(tc.msg, tc.hasShop))
		})
	}
}

func TestClassify_AddItemBeatsLowStock(t *testing.T) {
	assert.Equal(t, chat.IntentAddItem, chat.Classify("add item, low stock", false))
}

func TestClassify_ShortSearchTermFallsThrough(t *testing.T) {
	assert.Equal(t, chat.IntentDefault, chat.Classify("find ab", false))
	assert.Equal(t, chat.IntentCategoryBreakdown, chat.Classify("what type do i have", false))
	assert.Equal(t, chat.IntentFallbackInventory, chat.Classify("find an item", false))
}

func TestClassify_ShopInfoNeedsShop(t *testing.T) {
	assert.Equal(t, chat.IntentDefault, chat.Classify("my business", false))
	assert.Equal(t, chat.IntentShopInfo, chat.Classify("my business", true))
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	assert.Equal(t, chat.IntentLowStock, chat.Classify("LOW STOCK", false))
}

func TestClassify_Total(t *testing.T) {
	assert.Equal(t, chat.IntentDefault, chat.Classify("", false))
}

func TestInput_ContainsAll(t *testing.T) {
	in := chat.NewInput("Show Me The Warehouses", false)
	assert.True(t, in.ContainsAll("show", "warehouse"))
	assert.False(t, in.ContainsAll("show", "capacity"))
	assert.Equal(t, []string{"show", "me", "the", "warehouses"}, in.Tokens)
}

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "Laptop", chat.SearchTerm("find the Laptop"))
	assert.Equal(t, "blue widget", chat.SearchTerm("Do I have a blue widget"))
	assert.Equal(t, "", chat.SearchTerm("nothing to see"))
	// keywords are tried in list order: "find" wins over the earlier "search"
	assert.Equal(t, "mugs", chat.SearchTerm("search and find mugs"))
}

func TestReorderTarget(t *testing.T) {
	assert.Equal(t, "pen", chat.ReorderTarget("predict reorder for Pen"))
	assert.Equal(t, "lap-001", chat.ReorderTarget("reorder for LAP-001  "))
	assert.Equal(t, "", chat.ReorderTarget("when to reorder"))
}
