package chat

import (
	"context"
	"time"

	domainchat "github.com/Zammmm09/StockMate/internal/domain/chat"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

// Interpreter turns one message plus a tenant snapshot into a reply.
// It never fails: every message gets a text answer.
type Interpreter struct {
	items      ItemCreator
	warehouses WarehouseCreator
	log        *logger.Logger
	now        func() time.Time
}

// NewInterpreter builds an interpreter. log may be nil.
func NewInterpreter(items ItemCreator, warehouses WarehouseCreator, log *logger.Logger) *Interpreter {
	if log == nil {
		log = logger.Nop()
	}
	return &Interpreter{items: items, warehouses: warehouses, log: log, now: time.Now}
}

// WithClock replaces the clock used for report dates.
func (ip *Interpreter) WithClock(now func() time.Time) *Interpreter {
	ip.now = now
	return ip
}

// Interpret classifies message and dispatches to the matching handler.
func (ip *Interpreter) Interpret(ctx context.Context, message string, tc TenantContext) string {
	intent := domainchat.Classify(message, tc.HasShop())
	ip.log.Debug().Str("intent", string(intent)).Str("shop_id", tc.ShopID).Msg("chat: intent classified")

	inv, whs := tc.Inventory, tc.Warehouses
	switch intent {
	case domainchat.IntentAddItem:
		return ip.addItem(ctx, message, tc)
	case domainchat.IntentAddWarehouse:
		return ip.addWarehouse(ctx, message, tc)
	case domainchat.IntentGreeting:
		return greetingReply
	case domainchat.IntentGratitude:
		return gratitudeReply
	case domainchat.IntentHelp:
		return helpReply
	case domainchat.IntentInventoryReport:
		return inventoryReport(inv, whs, ip.now())
	case domainchat.IntentProfitMargin:
		return marginAnalysis(inv)
	case domainchat.IntentTurnover:
		return turnoverAnalysis(inv)
	case domainchat.IntentReorderPrediction:
		return reorderPrediction(message, inv)
	case domainchat.IntentProductCount:
		return productCount(inv)
	case domainchat.IntentInventoryValue:
		return inventoryValue(inv)
	case domainchat.IntentLowStock:
		return lowStock(inv)
	case domainchat.IntentMostExpensive:
		return mostExpensive(inv)
	case domainchat.IntentCheapest:
		return cheapest(inv)
	case domainchat.IntentAveragePrice:
		return averagePrice(inv)
	case domainchat.IntentSearch:
		return search(message, inv)
	case domainchat.IntentCategoryBreakdown:
		return categories(inv)
	case domainchat.IntentWarehouseList:
		return warehouseList(whs)
	case domainchat.IntentWarehouseCapacity:
		return warehouseCapacity(whs, inv)
	case domainchat.IntentEmptyWarehouses:
		return emptyWarehouses(whs, inv)
	case domainchat.IntentShopInfo:
		return shopInfo(tc.Shop)
	case domainchat.IntentStatsOverview:
		return statsOverview(inv, whs)
	case domainchat.IntentGettingStarted:
		return gettingStarted(inv, whs)
	case domainchat.IntentFallbackInventory:
		return fallbackInventoryReply
	case domainchat.IntentFallbackWarehouse:
		return fallbackWarehouseReply
	default:
		return defaultReply
	}
}
