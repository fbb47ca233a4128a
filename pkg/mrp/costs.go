package mrp

import (
	"github.com/shopspring/decimal"
)

// CostBreakdown is the §4.8 cost analysis: setup, holding and stockout
// cost plus each term's percentage share of the total.
type CostBreakdown struct {
	Setup    float64
	Holding  float64
	Stockout float64
	Total    float64

	SetupPercent    float64
	HoldingPercent  float64
	StockoutPercent float64
}

const stockoutCostMultiplier = 2.5

// computeCostBreakdown sums the three cost terms of spec §4.8 using
// decimal.Decimal for the per-day stockout terms and the cost products,
// rounding once on the way out. The average stock behind the holding
// term is summed in float64.
func computeCostBreakdown(batches []Batch, sim SimulationResult, sizing BatchSizing, params PlanningParameters) CostBreakdown {
	periodYears := decimal.NewFromInt(int64(params.PeriodEnd.Sub(params.PeriodStart) + 1)).Div(decimal.NewFromInt(365))

	setup := decimal.NewFromFloat(params.SetupCost).Mul(decimal.NewFromInt(int64(len(batches))))

	var stockSum float64
	for _, d := range sim.Evolution.Days {
		stockSum += sim.Evolution.At(d)
	}
	avgStock := 0.0
	if len(sim.Evolution.Days) > 0 {
		avgStock = stockSum / float64(len(sim.Evolution.Days))
	}
	unitProxy := sizing.HoldingCostUnit
	holding := decimal.NewFromFloat(avgStock).
		Mul(decimal.NewFromFloat(unitProxy)).
		Mul(decimal.NewFromFloat(params.HoldingCostRate)).
		Mul(periodYears)

	var negativeStockSum decimal.Decimal
	for _, cp := range sim.CriticalPoints {
		if cp.Severity == SeverityStockout {
			negativeStockSum = negativeStockSum.Add(decimal.NewFromFloat(-cp.Stock))
		}
	}
	stockout := negativeStockSum.Mul(decimal.NewFromFloat(stockoutCostMultiplier))

	total := setup.Add(holding).Add(stockout)

	pct := func(term decimal.Decimal) float64 {
		if total.IsZero() {
			return 0
		}
		f, _ := term.Div(total).Mul(decimal.NewFromInt(100)).Round(4).Float64()
		return f
	}

	toFloat := func(d decimal.Decimal) float64 {
		f, _ := d.Round(6).Float64()
		return f
	}

	return CostBreakdown{
		Setup:           toFloat(setup),
		Holding:         toFloat(holding),
		Stockout:        toFloat(stockout),
		Total:           toFloat(total),
		SetupPercent:    pct(setup),
		HoldingPercent:  pct(holding),
		StockoutPercent: pct(stockout),
	}
}
