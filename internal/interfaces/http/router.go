package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Zammmm09/StockMate/internal/application/inventory"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Chat          ChatReplier
	ChatLimiter   RateLimiter // nil disables rate limiting
	WarehouseUC   *usecase.WarehouseUseCase
	ShopUC        *usecase.ShopUseCase
	ItemUC        *inventory.ItemUseCase
	Reports       *inventory.ReportUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Validator     *validator.Validate
	JWTSecret     string
	Log           *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = NewValidator()
	}
	auth := AuthMiddleware(deps.JWTSecret)
	api := app.Group("/api")

	// Assistant (token optional)
	chatHandler := NewChatHandler(deps.Chat, deps.ChatLimiter, deps.Log)
	api.Post("/chat", OptionalAuth(deps.JWTSecret, deps.Log), chatHandler.Send)

	shop := api.Group("/shop", auth)
	shopHandler := NewShopHandler(deps.ShopUC, v)
	shop.Get("/profile", shopHandler.Profile)
	shop.Put("/profile", shopHandler.UpdateProfile)

	warehouses := api.Group("/warehouse", auth)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, v)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	inv := api.Group("/inventory", auth)
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.Reports, deps.Replenishment, v)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/by-warehouse", inventoryHandler.ByWarehouse)
	inv.Get("/report.pdf", inventoryHandler.ReportPDF)
	inv.Get("/reorder-suggestions", inventoryHandler.ReorderSuggestions)
	inv.Patch("/update-quantities", inventoryHandler.UpdateQuantities)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)
}
