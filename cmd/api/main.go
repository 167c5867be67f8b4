package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"

	"github.com/Zammmm09/StockMate/internal/application/chat"
	"github.com/Zammmm09/StockMate/internal/application/inventory"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
	infrapdf "github.com/Zammmm09/StockMate/internal/infrastructure/pdf"
	"github.com/Zammmm09/StockMate/internal/infrastructure/postgres"
	"github.com/Zammmm09/StockMate/internal/infrastructure/ratelimit"
	httpRouter "github.com/Zammmm09/StockMate/internal/interfaces/http"
	"github.com/Zammmm09/StockMate/pkg/config"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	shopRepo := postgres.NewShopRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	shopUC := usecase.NewShopUseCase(shopRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, itemRepo)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, warehouseRepo)
	reportUC := inventory.NewReportUseCase(itemRepo, warehouseRepo, shopRepo, infrapdf.NewReportGenerator())
	replenishmentUC := inventory.NewReplenishmentUseCase(itemRepo)

	interpreter := chat.NewInterpreter(itemUC, warehouseUC, log)
	chatUC := chat.NewUseCase(itemRepo, warehouseRepo, shopRepo, interpreter, log)

	// Chat rate limiting is optional: without Redis every message is accepted.
	var limiter httpRouter.RateLimiter
	if cfg.Redis.Enabled() {
		rdb, err := ratelimit.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, chat rate limiting disabled")
		} else {
			defer rdb.Close()
			limiter = ratelimit.NewRedisLimiter(rdb, cfg.Chat.RateLimitPerMinute, time.Minute)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  jsoniter.Marshal,
		JSONDecoder:  jsoniter.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI at http://localhost:<port>/docs once swagger.json has been generated.
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "StockMate API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Chat:          chatUC,
		ChatLimiter:   limiter,
		WarehouseUC:   warehouseUC,
		ShopUC:        shopUC,
		ItemUC:        itemUC,
		Reports:       reportUC,
		Replenishment: replenishmentUC,
		Validator:     httpRouter.NewValidator(),
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
