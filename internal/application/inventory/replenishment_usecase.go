package inventory

import (
	"context"
	"sort"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain/inventory"
	"github.com/Zammmm09/StockMate/internal/domain/repository"
)

// ReplenishmentUseCase lists the shop's items that should be reordered, most urgent first.
type ReplenishmentUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewReplenishmentUseCase builds the use case.
func NewReplenishmentUseCase(itemRepo repository.InventoryItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// Suggestions returns a reorder plan for every item below the plan-ahead threshold.
// Ordered by urgency, then by lowest stock; Priority 1 is the most urgent.
func (uc *ReplenishmentUseCase) Suggestions(ctx context.Context, shopID string) ([]dto.ReorderSuggestion, error) {
	items, err := uc.itemRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReorderSuggestion, 0)
	for _, it := range items {
		if it.Quantity >= inventory.PlanReorderThreshold {
			continue
		}
		plan := inventory.PlanReorder(it.Quantity)
		out = append(out, dto.ReorderSuggestion{
			ItemID:            it.ID,
			SKU:               it.SKU,
			ProductName:       it.ProductName,
			CurrentStock:      it.Quantity,
			SafetyStock:       plan.SafetyStock,
			ReorderPoint:      plan.ReorderPoint,
			SuggestedOrderQty: plan.SuggestedOrderQty,
			DaysUntilReorder:  plan.DaysUntilReorder,
			Urgency:           string(plan.Urgency),
		})
	}

	rank := map[string]int{
		string(inventory.UrgencyCritical): 0,
		string(inventory.UrgencyMedium):   1,
		string(inventory.UrgencyLow):      2,
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if rank[a.Urgency] != rank[b.Urgency] {
			return rank[a.Urgency] < rank[b.Urgency]
		}
		return a.CurrentStock < b.CurrentStock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
