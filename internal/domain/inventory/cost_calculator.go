package inventory

import "github.com/shopspring/decimal"

// MarkupRate assumed selling-price-to-cost ratio while purchase cost is not tracked.
var MarkupRate = decimal.RequireFromString("1.4")

// EstimateCost derives the unit cost from the selling price: price / MarkupRate.
func EstimateCost(price decimal.Decimal) decimal.Decimal {
	return price.Div(MarkupRate)
}

// MarginPercent (price - cost) / price × 100, rounded to one decimal.
// A zero price yields 0.
func MarginPercent(price, cost decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}
	return price.Sub(cost).Div(price).Mul(decimal.NewFromInt(100)).Round(1)
}
