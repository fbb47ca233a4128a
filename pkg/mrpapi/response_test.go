package mrpapi

import (
	"context"
	"testing"

	"github.com/sporadicmrp/engine/pkg/mrp"
)

func TestFromPlanResultShapesBatchesAndAnalytics(t *testing.T) {
	params := mrp.PlanningParameters{
		PeriodStart: mustDay("2025-01-01"),
		PeriodEnd:   mustDay("2025-01-31"),
		StartCutoff: mustDay("2025-01-01"),
		EndCutoff:   mustDay("2025-01-31"),
	}

	demandDate := mustDay("2025-01-15")
	demand := map[mrp.Day]float64{demandDate: 100}

	result, err := mrp.Plan(context.Background(), params, demand)
	if err != nil {
		t.Fatalf("unexpected planning error: %v", err)
	}

	resp := FromPlanResult(result)
	if len(resp.Batches) != len(result.Batches) {
		t.Fatalf("len(resp.Batches) = %d, want %d", len(resp.Batches), len(result.Batches))
	}
	if resp.Analytics.Summary["total_demand"] != 100.0 {
		t.Fatalf("Analytics.Summary[total_demand] = %v, want 100", resp.Analytics.Summary["total_demand"])
	}
	if len(resp.Analytics.WhatIf) == 0 {
		t.Fatal("expected what-if scenarios in the response")
	}
}

func TestFromErrorShapesKindAndMessage(t *testing.T) {
	ctx := context.Background()
	_, err := mrp.Plan(ctx, mrp.PlanningParameters{
		PeriodStart: mustDay("2025-01-01"),
		PeriodEnd:   mustDay("2025-01-05"),
	}, nil)
	if err == nil {
		t.Fatal("expected a validation error for an empty demand map")
	}

	planningErr, ok := err.(*mrp.PlanningError)
	if !ok {
		t.Fatalf("error %v is not a *mrp.PlanningError", err)
	}

	out := FromError(planningErr, nil)
	if !out.Error {
		t.Fatal("Error = false, want true")
	}
	if out.Message == "" {
		t.Fatal("expected a non-empty message")
	}
	if len(out.Batches) != 0 {
		t.Fatalf("Batches = %v, want empty for a non-infeasible-window error", out.Batches)
	}
}

func TestFromErrorCarriesPartialAnalyticsForInfeasibleWindow(t *testing.T) {
	params := mrp.PlanningParameters{
		PeriodStart:  mustDay("2025-01-01"),
		PeriodEnd:    mustDay("2025-01-31"),
		StartCutoff:  mustDay("2025-01-01"),
		EndCutoff:    mustDay("2025-01-31"),
		LeadtimeDays: 60,
	}
	demandDate := mustDay("2025-01-10")
	demand := map[mrp.Day]float64{demandDate: 100}

	result, err := mrp.Plan(context.Background(), params, demand)
	if err == nil {
		t.Fatal("expected an infeasible-window error")
	}
	planningErr, ok := err.(*mrp.PlanningError)
	if !ok {
		t.Fatalf("error %v is not a *mrp.PlanningError", err)
	}
	if planningErr.Kind != mrp.KindInfeasibleWindow {
		t.Fatalf("Kind = %v, want KindInfeasibleWindow", planningErr.Kind)
	}
	if result == nil {
		t.Fatal("expected a partial result alongside the infeasible-window error")
	}

	out := FromError(planningErr, result)
	if !out.Error {
		t.Fatal("Error = false, want true")
	}
	if len(out.Batches) != 0 {
		t.Fatalf("Batches = %v, want empty", out.Batches)
	}
	if out.Analytics.Summary["total_demand"] != 100.0 {
		t.Fatalf("Analytics.Summary[total_demand] = %v, want 100 (computed over demand alone)", out.Analytics.Summary["total_demand"])
	}
}

func mustDay(s string) mrp.Day {
	d, err := mrp.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}
