// Package chat holds the rule-based language layer of the assistant: intent
// classification over ordered keyword rules and slot extraction for the
// create commands. It has no I/O and no knowledge of tenants.
package chat

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Intent the action a message asks for.
type Intent string

const (
	IntentAddItem           Intent = "add_item"
	IntentAddWarehouse      Intent = "add_warehouse"
	IntentGreeting          Intent = "greeting"
	IntentGratitude         Intent = "gratitude"
	IntentHelp              Intent = "help"
	IntentInventoryReport   Intent = "inventory_report"
	IntentProfitMargin      Intent = "profit_margin"
	IntentTurnover          Intent = "turnover"
	IntentReorderPrediction Intent = "reorder_prediction"
	IntentProductCount      Intent = "product_count"
	IntentInventoryValue    Intent = "inventory_value"
	IntentLowStock          Intent = "low_stock"
	IntentMostExpensive     Intent = "most_expensive"
	IntentCheapest          Intent = "cheapest"
	IntentAveragePrice      Intent = "average_price"
	IntentSearch            Intent = "search"
	IntentCategoryBreakdown Intent = "category_breakdown"
	IntentWarehouseList     Intent = "warehouse_list"
	IntentWarehouseCapacity Intent = "warehouse_capacity"
	IntentEmptyWarehouses   Intent = "empty_warehouses"
	IntentShopInfo          Intent = "shop_info"
	IntentStatsOverview     Intent = "stats_overview"
	IntentGettingStarted    Intent = "getting_started"
	IntentFallbackInventory Intent = "fallback_inventory"
	IntentFallbackWarehouse Intent = "fallback_warehouse"
	IntentDefault           Intent = "default"
)

// Input a message prepared for rule matching.
type Input struct {
	Raw     string
	Lower   string
	Tokens  []string
	HasShop bool
}

// NewInput lower-cases and tokenises message.
func NewInput(message string, hasShop bool) Input {
	lower := Lower(message)
	return Input{
		Raw:     message,
		Lower:   lower,
		Tokens:  strings.Fields(lower),
		HasShop: hasShop,
	}
}

// ContainsAny reports whether any keyword occurs as a substring of the lower-cased message.
func (in Input) ContainsAny(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(in.Lower, kw) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every keyword occurs in the lower-cased message.
func (in Input) ContainsAll(keywords ...string) bool {
	for _, kw := range keywords {
		if !strings.Contains(in.Lower, kw) {
			return false
		}
	}
	return true
}

// Rule pairs an intent with its predicate.
type Rule struct {
	Intent Intent
	Match  func(Input) bool
}

// Keyword sets. Substring matching means "hi" also fires inside "this" or
// "shipping"; rule order, not word boundaries, decides the winner.
var (
	addItemKeywords       = []string{"add item", "add product", "create item", "create product", "new item", "new product", "product name:", "item name:"}
	addWarehouseKeywords  = []string{"add warehouse", "create warehouse", "new warehouse", "make warehouse", "build warehouse", "warehouse name", "warehouse:"}
	greetingKeywords      = []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"}
	gratitudeKeywords     = []string{"thank", "thanks", "appreciate"}
	helpKeywords          = []string{"help", "what can you do", "capabilities", "features", "assist"}
	reportKeywords        = []string{"inventory report", "generate report", "full report", "detailed report", "stock report"}
	marginKeywords        = []string{"profit margin", "profit analysis", "margin analysis", "profitability"}
	turnoverKeywords      = []string{"turnover", "turnover rate", "inventory turnover", "stock turnover", "rotation"}
	reorderKeywords       = []string{"predict reorder", "when to reorder", "reorder prediction", "restock prediction", "reorder for"}
	countVerbs            = []string{"how many", "number of", "count", "total"}
	countNouns            = []string{"product", "item", "sku"}
	countPhrases          = []string{"product count", "item count", "inventory size"}
	valueScopes           = []string{"total", "overall", "entire"}
	valueNouns            = []string{"value", "worth", "price", "cost"}
	valuePhrases          = []string{"inventory value", "stock value", "how much is", "what is the value"}
	lowStockKeywords      = []string{"low stock", "running low", "need reorder", "restock", "shortage", "almost empty", "out of stock"}
	expensiveKeywords     = []string{"most expensive", "highest price", "costliest", "priciest", "top price"}
	cheapestKeywords      = []string{"cheapest", "lowest price", "most affordable", "least expensive", "budget"}
	averagePriceKeywords  = []string{"average price", "mean price", "typical price", "average cost"}
	searchKeywords        = []string{"find", "search", "look for", "locate", "show me", "do i have", "tell me about"}
	categoryKeywords      = []string{"categor", "type", "classification", "group"}
	warehouseNouns        = []string{"warehouse", "storage", "location"}
	listVerbs             = []string{"how many", "list", "show", "tell me"}
	capacityNouns         = []string{"capacity", "space", "room"}
	storageNouns          = []string{"warehouse", "storage"}
	emptyAdjectives       = []string{"empty", "unused", "vacant"}
	shopKeywords          = []string{"my shop", "my business", "shop name", "business name", "my store", "company info"}
	statsKeywords         = []string{"stat", "overview", "summary", "dashboard", "report", "analytics", "performance"}
	gettingStartedPhrases = []string{"what should i do", "how to start", "getting started", "what now", "next steps", "what first"}
	inventoryNouns        = []string{"inventory", "product", "item", "stock"}
)

func anyOf(keywords []string) func(Input) bool {
	return func(in Input) bool { return in.ContainsAny(keywords...) }
}

func both(a, b []string) func(Input) bool {
	return func(in Input) bool { return in.ContainsAny(a...) && in.ContainsAny(b...) }
}

// Rules the ordered rule table; the first matching rule wins.
var Rules = []Rule{
	{IntentAddItem, anyOf(addItemKeywords)},
	{IntentAddWarehouse, anyOf(addWarehouseKeywords)},
	{IntentGreeting, anyOf(greetingKeywords)},
	{IntentGratitude, anyOf(gratitudeKeywords)},
	{IntentHelp, anyOf(helpKeywords)},
	{IntentInventoryReport, anyOf(reportKeywords)},
	{IntentProfitMargin, anyOf(marginKeywords)},
	{IntentTurnover, anyOf(turnoverKeywords)},
	{IntentReorderPrediction, anyOf(reorderKeywords)},
	{IntentProductCount, func(in Input) bool {
		return both(countVerbs, countNouns)(in) || in.ContainsAny(countPhrases...)
	}},
	{IntentInventoryValue, func(in Input) bool {
		return both(valueScopes, valueNouns)(in) || in.ContainsAny(valuePhrases...)
	}},
	{IntentLowStock, anyOf(lowStockKeywords)},
	{IntentMostExpensive, anyOf(expensiveKeywords)},
	{IntentCheapest, anyOf(cheapestKeywords)},
	{IntentAveragePrice, anyOf(averagePriceKeywords)},
	{IntentSearch, func(in Input) bool {
		return in.ContainsAny(searchKeywords...) && utf8.RuneCountInString(SearchTerm(in.Raw)) > 2
	}},
	{IntentCategoryBreakdown, anyOf(categoryKeywords)},
	{IntentWarehouseList, both(warehouseNouns, listVerbs)},
	{IntentWarehouseCapacity, both(capacityNouns, storageNouns)},
	{IntentEmptyWarehouses, both(emptyAdjectives, storageNouns)},
	{IntentShopInfo, func(in Input) bool { return in.HasShop && in.ContainsAny(shopKeywords...) }},
	{IntentStatsOverview, anyOf(statsKeywords)},
	{IntentGettingStarted, anyOf(gettingStartedPhrases)},
	{IntentFallbackInventory, anyOf(inventoryNouns)},
	{IntentFallbackWarehouse, anyOf(warehouseNouns)},
	{IntentDefault, func(Input) bool { return true }},
}

// Classify returns the intent of the first rule matching message.
// hasShop tells whether the caller's shop profile is available.
func Classify(message string, hasShop bool) Intent {
	in := NewInput(message, hasShop)
	for _, r := range Rules {
		if r.Match(in) {
			return r.Intent
		}
	}
	return IntentDefault
}

// Lower lower-cases s with Unicode-aware case mapping.
// A Caser is stateful, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
