package inventory_test

import (
	"context"
	"sort"

	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/internal/domain/entity"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// memStore in-memory repositories shared by the fake tx runner.
type memStore struct {
	items      map[string]*entity.InventoryItem
	warehouses map[string]*entity.Warehouse
	shops      map[string]*entity.Shop
	locked     []string
}

func newMemStore() *memStore {
	return &memStore{
		items:      map[string]*entity.InventoryItem{},
		warehouses: map[string]*entity.Warehouse{},
		shops:      map[string]*entity.Shop{},
	}
}

type memItems struct{ s *memStore }
type memWarehouses struct{ s *memStore }
type memShops struct{ s *memStore }

func (r memItems) Create(_ context.Context, it *entity.InventoryItem) error {
	for _, other := range r.s.items {
		if other.ShopID == it.ShopID && other.SKU == it.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}

func (r memItems) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r memItems) Update(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}

func (r memItems) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

func (r memItems) ListByShop(_ context.Context, shopID string, limit int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.s.items {
		if it.ShopID == shopID {
			cp := *it
			cp.Warehouse = r.s.warehouses[it.WarehouseID]
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memItems) CountByWarehouse(_ context.Context, warehouseID string) (int, error) {
	n := 0
	for _, it := range r.s.items {
		if it.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func (r memItems) SumQuantityByWarehouse(_ context.Context, warehouseID, excludeItemID string) (int, error) {
	sum := 0
	for _, it := range r.s.items {
		if it.WarehouseID == warehouseID && it.ID != excludeItemID {
			sum += it.Quantity
		}
	}
	return sum, nil
}

func (r memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r memWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}

func (r memWarehouses) GetForUpdate(ctx context.Context, id string) (*entity.Warehouse, error) {
	r.s.locked = append(r.s.locked, id)
	return r.GetByID(ctx, id)
}

func (r memWarehouses) ListByShop(_ context.Context, shopID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.ShopID == shopID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memWarehouses) Delete(_ context.Context, id string) error {
	delete(r.s.warehouses, id)
	return nil
}

func (r memShops) Create(_ context.Context, s *entity.Shop) error {
	r.s.shops[s.ID] = s
	return nil
}

func (r memShops) GetByID(_ context.Context, id string) (*entity.Shop, error) {
	return r.s.shops[id], nil
}

func (r memShops) Update(_ context.Context, s *entity.Shop) error {
	r.s.shops[s.ID] = s
	return nil
}

// memTx runs fn against the same store; no isolation is simulated.
type memTx struct{ s *memStore }

func (t memTx) Run(_ context.Context, fn func(repository.InventoryItemRepository, repository.WarehouseRepository) error) error {
	return fn(memItems{t.s}, memWarehouses{t.s})
}
