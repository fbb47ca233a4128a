package mrp

import (
	"context"
	"math"
	"testing"
)

func basicParams() PlanningParameters {
	return PlanningParameters{
		PeriodStart: day("2025-01-01"),
		PeriodEnd:   day("2025-01-31"),
		StartCutoff: day("2025-01-01"),
		EndCutoff:   day("2025-01-31"),
	}
}

// S1 — JIT, lead time 0.
func TestScenarioJIT(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 0
	params.InitialStock = 0

	demand := map[Day]float64{
		day("2025-01-10"): 100,
		day("2025-01-20"): 150,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 2 {
		t.Fatalf("len(Batches) = %d, want 2", len(result.Batches))
	}
	for _, b := range result.Batches {
		if b.OrderDate != b.ArrivalDate {
			t.Fatalf("JIT batch order/arrival mismatch: %+v", b)
		}
	}
	if result.Batches[0].Quantity != 100 || result.Batches[1].Quantity != 150 {
		t.Fatalf("quantities = %v, %v; want 100, 150", result.Batches[0].Quantity, result.Batches[1].Quantity)
	}
	if result.Analytics.Summary.DemandFulfillmentRate != 100 {
		t.Fatalf("DemandFulfillmentRate = %v, want 100", result.Analytics.Summary.DemandFulfillmentRate)
	}
}

// S2 — Short lead time, consolidation.
func TestScenarioShortLeadtimeConsolidation(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:         day("2025-03-01"),
		PeriodEnd:           day("2025-03-31"),
		StartCutoff:         day("2025-03-01"),
		EndCutoff:           day("2025-03-31"),
		LeadtimeDays:        5,
		InitialStock:        100,
		SetupCost:           250,
		HoldingCostRate:     0.2,
		EnableConsolidation: true,
	}
	demand := map[Day]float64{
		day("2025-03-10"): 500,
		day("2025-03-14"): 500,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 1 {
		t.Fatalf("len(Batches) = %d, want 1", len(result.Batches))
	}
	b := result.Batches[0]
	if b.ArrivalDate.After(day("2025-03-10")) {
		t.Fatalf("ArrivalDate = %v, want <= 2025-03-10", b.ArrivalDate)
	}
	if b.Quantity < 900 {
		t.Fatalf("Quantity = %v, want >= 900", b.Quantity)
	}
	if !b.Analytics.ConsolidatedGroup {
		t.Fatal("expected ConsolidatedGroup = true")
	}
}

// S3 — Long lead time coverage.
func TestScenarioLongLeadtimeCoverage(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:  day("2025-05-01"),
		PeriodEnd:    day("2025-12-31"),
		StartCutoff:  day("2025-04-01"),
		EndCutoff:    day("2025-12-31"),
		LeadtimeDays: 70,
		InitialStock: 1908,
	}
	demand := map[Day]float64{
		day("2025-07-07"): 4000,
		day("2025-08-27"): 4000,
		day("2025-10-17"): 4000,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) < 2 {
		t.Fatalf("len(Batches) = %d, want >= 2", len(result.Batches))
	}

	sawLongOptimization := false
	for _, b := range result.Batches {
		if b.Analytics.LongLeadtimeOptimization {
			sawLongOptimization = true
		}
	}
	if !sawLongOptimization {
		t.Fatal("expected at least one batch with LongLeadtimeOptimization = true")
	}

	checkNoNegativeStock(t, params, demand, result)
}

func checkNoNegativeStock(t *testing.T, params PlanningParameters, demand map[Day]float64, result *PlanResult) {
	t.Helper()
	events, err := NormalizeDemand(demand, params.PeriodStart, params.PeriodEnd, true)
	if err != nil {
		t.Fatalf("NormalizeDemand: %v", err)
	}
	sim := Simulate(params.InitialStock, realBatches(result.Batches), events, params.PeriodStart, params.PeriodEnd, 0)
	for _, d := range sim.Evolution.Days {
		if sim.Evolution.At(d) < 0 {
			t.Fatalf("negative stock on %v: %v", d, sim.Evolution.At(d))
		}
	}
}

// S4 — Exact quantity match.
func TestScenarioExactQuantityMatch(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:        day("2025-07-01"),
		PeriodEnd:          day("2025-09-30"),
		StartCutoff:        day("2025-06-01"),
		EndCutoff:          day("2025-09-30"),
		LeadtimeDays:       50,
		InitialStock:       0,
		ExactQuantityMatch: true,
		IgnoreSafetyStock:  true,
	}
	demand := map[Day]float64{
		day("2025-07-15"): 6500,
		day("2025-08-15"): 4500,
		day("2025-09-15"): 2555,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	var total float64
	for _, b := range result.Batches {
		total += b.Quantity
	}
	if math.Abs(total-13555) > 1e-6 {
		t.Fatalf("total quantity = %v, want 13555", total)
	}
	if math.Abs(result.Analytics.Summary.FinalStock) > 1e-6 {
		t.Fatalf("FinalStock = %v, want 0", result.Analytics.Summary.FinalStock)
	}
}

// S5 — Informative-only.
func TestScenarioInformativeOnly(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:             day("2025-08-01"),
		PeriodEnd:               day("2025-08-31"),
		StartCutoff:             day("2025-08-01"),
		EndCutoff:               day("2025-08-31"),
		LeadtimeDays:            20,
		InitialStock:            200,
		ForceInformativeBatches: true,
	}
	demand := map[Day]float64{
		day("2025-08-01"): 50,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 1 || !result.Batches[0].Analytics.InformativeBatch {
		t.Fatalf("expected exactly one informative batch, got %+v", result.Batches)
	}
	if result.Analytics.Summary.BatchCount != 0 {
		t.Fatalf("BatchCount = %d, want 0", result.Analytics.Summary.BatchCount)
	}
	if result.Analytics.Summary.TotalProduced != 0 {
		t.Fatalf("TotalProduced = %v, want 0", result.Analytics.Summary.TotalProduced)
	}
	if result.Analytics.Summary.FinalStock != 150 {
		t.Fatalf("FinalStock = %v, want 150", result.Analytics.Summary.FinalStock)
	}
}

// S6 — Max-gap consolidation override.
func TestScenarioMaxGapConsolidationOverride(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:         day("2025-01-01"),
		PeriodEnd:           day("2025-07-01"),
		StartCutoff:         day("2025-01-01"),
		EndCutoff:           day("2025-07-01"),
		LeadtimeDays:        10,
		InitialStock:        0,
		EnableConsolidation: true,
		MaxGapDays:          365,
	}
	demand := map[Day]float64{
		day("2025-01-05"): 100,
		day("2025-02-15"): 100,
		day("2025-03-25"): 100,
		day("2025-05-01"): 100,
		day("2025-06-10"): 100,
	}

	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 1 {
		t.Fatalf("len(Batches) = %d, want 1", len(result.Batches))
	}
	if len(result.Batches[0].Analytics.DemandsCovered) != 5 {
		t.Fatalf("DemandsCovered = %d, want 5", len(result.Batches[0].Analytics.DemandsCovered))
	}
}

// Invariant 1 & 2: arrival - order = leadtime, and both respect the cutoff window.
func TestInvariantLeadtimeAndCutoffs(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 7
	params.InitialStock = 20
	demand := map[Day]float64{
		day("2025-01-15"): 50,
		day("2025-01-25"): 80,
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, b := range result.Batches {
		if got := b.ArrivalDate.Sub(b.OrderDate); got != params.LeadtimeDays {
			t.Fatalf("arrival-order = %d, want %d", got, params.LeadtimeDays)
		}
		if b.OrderDate.Before(params.StartCutoff) {
			t.Fatalf("OrderDate %v before StartCutoff %v", b.OrderDate, params.StartCutoff)
		}
		if b.ArrivalDate.After(params.EndCutoff) {
			t.Fatalf("ArrivalDate %v after EndCutoff %v", b.ArrivalDate, params.EndCutoff)
		}
	}
}

// Invariant 3: quantity bounds, unless exact_quantity_match.
func TestInvariantBatchSizeBounds(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 5
	params.MinBatchSize = 40
	params.MaxBatchSize = 200
	demand := map[Day]float64{
		day("2025-01-15"): 10,  // below min_batch_size, should be floored
		day("2025-01-28"): 500, // above max_batch_size, should be capped
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, b := range result.Batches {
		if b.Quantity < params.MinBatchSize-1e-9 {
			t.Fatalf("Quantity %v below MinBatchSize %v", b.Quantity, params.MinBatchSize)
		}
		if b.Quantity > params.MaxBatchSize+1e-9 {
			t.Fatalf("Quantity %v above MaxBatchSize %v", b.Quantity, params.MaxBatchSize)
		}
	}
}

// Invariant 8: determinism across repeated calls with identical inputs.
func TestInvariantDeterminism(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 10
	params.InitialStock = 30
	demand := map[Day]float64{
		day("2025-01-05"): 60,
		day("2025-01-18"): 90,
	}

	a, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	b, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(a.Batches) != len(b.Batches) {
		t.Fatalf("batch count differs across calls: %d vs %d", len(a.Batches), len(b.Batches))
	}
	for i := range a.Batches {
		if a.Batches[i].OrderDate != b.Batches[i].OrderDate ||
			a.Batches[i].ArrivalDate != b.Batches[i].ArrivalDate ||
			math.Abs(a.Batches[i].Quantity-b.Batches[i].Quantity) > 1e-9 {
			t.Fatalf("batch %d differs across calls: %+v vs %+v", i, a.Batches[i], b.Batches[i])
		}
	}
}

// Invariant 4: stock_after = stock_before + arrivals - demands, every day.
func TestInvariantStockConservation(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 10
	params.InitialStock = 40
	demand := map[Day]float64{
		day("2025-01-05"): 60,
		day("2025-01-18"): 90,
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	events, err := NormalizeDemand(demand, params.PeriodStart, params.PeriodEnd, true)
	if err != nil {
		t.Fatalf("NormalizeDemand: %v", err)
	}
	arrivals := map[Day]float64{}
	for _, b := range realBatches(result.Batches) {
		arrivals[b.ArrivalDate] += b.Quantity
	}
	demandByDate := map[Day]float64{}
	for _, e := range events {
		demandByDate[e.Date] += e.Quantity
	}

	sim := Simulate(params.InitialStock, realBatches(result.Batches), events, params.PeriodStart, params.PeriodEnd, 0)
	prev := params.InitialStock
	for _, d := range sim.Evolution.Days {
		want := prev + arrivals[d] - demandByDate[d]
		got := sim.Evolution.At(d)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("stock on %v = %v, want %v (prev %v + arrivals %v - demand %v)", d, got, want, prev, arrivals[d], demandByDate[d])
		}
		prev = got
	}
}

// Invariant 5: ignore_safety_stock + exact_quantity_match never produces
// stock above the quantity needed to exactly cover demand.
func TestInvariantExactMatchNeverOverProduces(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:        day("2025-07-01"),
		PeriodEnd:          day("2025-09-30"),
		StartCutoff:        day("2025-06-01"),
		EndCutoff:          day("2025-09-30"),
		LeadtimeDays:       30,
		InitialStock:       0,
		ExactQuantityMatch: true,
		IgnoreSafetyStock:  true,
	}
	demand := map[Day]float64{
		day("2025-07-15"): 1000,
		day("2025-08-15"): 1000,
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	var total float64
	for _, b := range result.Batches {
		total += b.Quantity
	}
	if math.Abs(total-2000) > 1e-6 {
		t.Fatalf("total quantity = %v, want exactly 2000 (no safety-stock padding)", total)
	}
}

// Invariant 6: disabling consolidation keeps one batch per demand event.
func TestInvariantNoConsolidationKeepsBatchesSeparate(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 5
	params.EnableConsolidation = false
	demand := map[Day]float64{
		day("2025-01-10"): 50,
		day("2025-01-12"): 60,
		day("2025-01-14"): 70,
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 3 {
		t.Fatalf("len(Batches) = %d, want 3 when consolidation is disabled", len(result.Batches))
	}
}

// Invariant 7: force_excess_production's single batch is counted in every
// analytics aggregate the way a real batch would be.
func TestInvariantExcessProductionCountsInAnalytics(t *testing.T) {
	params := PlanningParameters{
		PeriodStart:           day("2025-08-01"),
		PeriodEnd:             day("2025-08-31"),
		StartCutoff:           day("2025-08-01"),
		EndCutoff:             day("2025-08-31"),
		LeadtimeDays:          20,
		InitialStock:          200,
		ForceExcessProduction: true,
	}
	demand := map[Day]float64{
		day("2025-08-01"): 50,
	}
	result, err := Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(result.Batches) != 1 || !result.Batches[0].Analytics.ExcessProduction {
		t.Fatalf("expected exactly one excess batch, got %+v", result.Batches)
	}
	if result.Analytics.Summary.BatchCount != 1 {
		t.Fatalf("BatchCount = %d, want 1 (excess batch counted)", result.Analytics.Summary.BatchCount)
	}
	if result.Analytics.Summary.TotalProduced != result.Batches[0].Quantity {
		t.Fatalf("TotalProduced = %v, want %v (excess batch counted)", result.Analytics.Summary.TotalProduced, result.Batches[0].Quantity)
	}
}

func TestPlanInvalidWindow(t *testing.T) {
	params := basicParams()
	params.LeadtimeDays = 60 // exceeds the period length
	demand := map[Day]float64{day("2025-01-10"): 10}
	result, err := Plan(context.Background(), params, demand)
	pe, ok := AsPlanningError(err)
	if !ok {
		t.Fatalf("expected *PlanningError, got %v", err)
	}
	if pe.Kind != KindInfeasibleWindow {
		t.Fatalf("Kind = %v, want KindInfeasibleWindow", pe.Kind)
	}
	if result == nil {
		t.Fatal("expected a partial result alongside the infeasible-window error")
	}
	if len(result.Batches) != 0 {
		t.Fatalf("Batches = %v, want none", result.Batches)
	}
	if result.Analytics.Summary.TotalDemand != 10 {
		t.Fatalf("Analytics.Summary.TotalDemand = %v, want 10 (computed over demand alone)", result.Analytics.Summary.TotalDemand)
	}
}

func TestPlanInvalidInputOnEmptyDemand(t *testing.T) {
	params := basicParams()
	_, err := Plan(context.Background(), params, nil)
	pe, ok := AsPlanningError(err)
	if !ok {
		t.Fatalf("expected *PlanningError, got %v", err)
	}
	if pe.Kind != KindInvalidInput {
		t.Fatalf("Kind = %v, want KindInvalidInput", pe.Kind)
	}
}
