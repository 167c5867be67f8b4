// seed creates a demo shop with two warehouses and a handful of inventory
// items, then prints a development token for it.
//
// Usage: go run ./cmd/seed [-email demo@stockmate.local] [-password demo1234]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/application/inventory"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/infrastructure/postgres"
	"github.com/Zammmm09/StockMate/pkg/config"
	"github.com/Zammmm09/StockMate/pkg/jwt"
)

type seedItem struct {
	name, sku, category string
	qty                 int
	price               string
	warehouse           int
}

var demoItems = []seedItem{
	{"Laptop", "LAP-001", "Electronics", 25, "999", 0},
	{"Wireless Mouse", "MOU-002", "Electronics", 8, "24.99", 0},
	{"T-Shirt", "TSH-BLK-M", "Clothing", 140, "15", 1},
	{"Hoodie", "HOD-GRY-L", "Clothing", 35, "42.5", 1},
	{"Coffee Mug", "MUG-WHT", "Accessories", 4, "9.99", 0},
}

func main() {
	email := flag.String("email", "demo@stockmate.local", "demo shop email")
	password := flag.String("password", "demo1234", "demo shop password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("load config", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect to PostgreSQL", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("apply migrations", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash password", err)
	}

	now := time.Now()
	shop := &entity.Shop{
		ID:           uuid.New().String(),
		Name:         "Aurify",
		Email:        *email,
		Phone:        "+91 90000 00000",
		Address:      "Nashik, Maharashtra",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	shopRepo := postgres.NewShopRepository(pool)
	if err := shopRepo.Create(ctx, shop); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			fmt.Fprintf(os.Stderr, "a shop with email %s already exists\n", *email)
			os.Exit(1)
		}
		fail("create shop", err)
	}

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, itemRepo)
	itemUC := inventory.NewItemUseCase(postgres.NewTxRunner(pool), itemRepo, warehouseRepo)

	var warehouseIDs []string
	for _, w := range []dto.CreateWarehouseRequest{
		{Name: "Main Storage", Location: "Nashik", Capacity: 1000},
		{Name: "Aurify Clothing", Location: "Pune", Capacity: 500},
	} {
		out, err := warehouseUC.Create(ctx, shop.ID, w)
		if err != nil {
			fail("create warehouse "+w.Name, err)
		}
		warehouseIDs = append(warehouseIDs, out.ID)
	}

	for _, it := range demoItems {
		_, err := itemUC.Create(ctx, shop.ID, dto.CreateInventoryItemRequest{
			WarehouseID: warehouseIDs[it.warehouse],
			ProductName: it.name,
			SKU:         it.sku,
			Quantity:    it.qty,
			Price:       decimal.RequireFromString(it.price),
			Category:    it.category,
		})
		if err != nil {
			fail("create item "+it.sku, err)
		}
	}

	token, err := jwt.Generate(cfg.JWT.Secret, shop.ID, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		fail("sign token", err)
	}
	fmt.Printf("Seeded shop %s (%s): %d warehouses, %d items\n", shop.Name, shop.ID, len(warehouseIDs), len(demoItems))
	fmt.Printf("Authorization: Bearer %s\n", token)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
