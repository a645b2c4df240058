// Package proposal computes monetary totals for proposal line items under
// the four commercial operation modes. All functions are pure; division
// guards return 0 instead of NaN or Inf.
package proposal

import (
	"math"

	"github.com/google/uuid"

	"github.com/veracrm/crmcore/internal/domain"
)

// LineItem is the engine's input. RentalPeriodMonths at zero means unset
// and defaults to one month; CommissionPercent is carried through for
// agency pricing helpers.
type LineItem struct {
	ProductID          uuid.UUID
	SupplierID         *uuid.UUID
	Quantity           int
	UnitCost           float64
	UnitPrice          float64
	CommissionPercent  float64
	RentalPeriodMonths int
}

// ComputedLineItem extends a LineItem with its derived subtotals.
type ComputedLineItem struct {
	LineItem
	SubtotalValue  float64
	SubtotalProfit float64
}

// Summary aggregates a proposal's computed items and totals. MarginPercent
// is cost-based markup, rounded to two decimals.
type Summary struct {
	Items         []ComputedLineItem
	TotalValue    float64
	TotalCost     float64
	TotalProfit   float64
	MarginPercent float64
}

// Compute derives per-item and aggregate figures for the given mode. Sale
// subtotals are quantity-driven; rental subtotals additionally multiply by
// the rental period. The aggregate cost is always period-aware, even in
// sale modes where the per-item value subtotal is not.
func Compute(items []LineItem, mode domain.OperationMode) Summary {
	out := Summary{Items: make([]ComputedLineItem, 0, len(items))}

	for _, it := range items {
		period := effectivePeriod(it)
		qty := float64(it.Quantity)

		var subtotalValue, subtotalCost float64
		if mode.IsRental() {
			subtotalValue = it.UnitPrice * qty * float64(period)
			subtotalCost = it.UnitCost * qty * float64(period)
		} else {
			subtotalValue = it.UnitPrice * qty
			subtotalCost = it.UnitCost * qty
		}

		out.Items = append(out.Items, ComputedLineItem{
			LineItem:       it,
			SubtotalValue:  subtotalValue,
			SubtotalProfit: subtotalValue - subtotalCost,
		})

		out.TotalValue += subtotalValue
		out.TotalCost += it.UnitCost * qty * float64(period)
	}

	out.TotalProfit = out.TotalValue - out.TotalCost
	if out.TotalCost > 0 {
		out.MarginPercent = round2(out.TotalProfit / out.TotalCost * 100)
	}
	return out
}

func effectivePeriod(it LineItem) int {
	if it.RentalPeriodMonths <= 0 {
		return 1
	}
	return it.RentalPeriodMonths
}

// RentalUnitCost spreads an acquisition cost over the asset's useful life.
func RentalUnitCost(acquisitionCost float64, usefulLifeMonths int) float64 {
	if usefulLifeMonths <= 0 {
		return 0
	}
	return acquisitionCost / float64(usefulLifeMonths)
}

// PriceWithCommission adds a commission percentage on top of cost.
func PriceWithCommission(cost, commissionPercent float64) float64 {
	return cost * (1 + commissionPercent/100)
}

// MarginFromPrice returns profit as a percentage of the sale price.
func MarginFromPrice(price, cost float64) float64 {
	if price == 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// PriceFromMargin returns the sale price that yields the given cost-based
// margin.
func PriceFromMargin(cost, marginPercent float64) float64 {
	return cost * (1 + marginPercent/100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
