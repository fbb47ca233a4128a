package mrp

import "testing"

func TestComputeCostBreakdownSetupScalesWithBatchCount(t *testing.T) {
	batches := []Batch{{Quantity: 10}, {Quantity: 10}}
	sim := SimulationResult{}
	sizing := BatchSizing{HoldingCostUnit: 0}
	params := PlanningParameters{
		PeriodStart: day("2025-01-01"),
		PeriodEnd:   day("2025-01-10"),
		SetupCost:   40,
	}

	cb := computeCostBreakdown(batches, sim, sizing, params)
	if cb.Setup != 80 {
		t.Fatalf("Setup = %v, want 80 (2 batches * 40)", cb.Setup)
	}
	if cb.Total != 80 {
		t.Fatalf("Total = %v, want 80 with no holding or stockout cost", cb.Total)
	}
	if cb.SetupPercent != 100 {
		t.Fatalf("SetupPercent = %v, want 100", cb.SetupPercent)
	}
}

func TestComputeCostBreakdownZeroTotalHasZeroPercentages(t *testing.T) {
	cb := computeCostBreakdown(nil, SimulationResult{}, BatchSizing{}, PlanningParameters{
		PeriodStart: day("2025-01-01"),
		PeriodEnd:   day("2025-01-05"),
	})
	if cb.Total != 0 {
		t.Fatalf("Total = %v, want 0", cb.Total)
	}
	if cb.SetupPercent != 0 || cb.HoldingPercent != 0 || cb.StockoutPercent != 0 {
		t.Fatalf("expected all percentages to be 0 for a zero total, got %+v", cb)
	}
}

func TestComputeCostBreakdownCountsStockoutSeverity(t *testing.T) {
	sim := SimulationResult{
		CriticalPoints: []CriticalPoint{
			{Date: day("2025-01-02"), Stock: -20, Severity: SeverityStockout},
		},
	}
	params := PlanningParameters{
		PeriodStart: day("2025-01-01"),
		PeriodEnd:   day("2025-01-05"),
	}
	cb := computeCostBreakdown(nil, sim, BatchSizing{}, params)
	if cb.Stockout != 50 {
		t.Fatalf("Stockout = %v, want 50 (20 * 2.5 multiplier)", cb.Stockout)
	}
}
