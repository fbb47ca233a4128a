package mrpapi

import "github.com/sporadicmrp/engine/pkg/mrp"

// DemandEventOut is one demand entry as echoed back inside a batch's
// analytics, shaped per spec.md §6.
type DemandEventOut struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
}

// BatchAnalyticsOut mirrors mrp.BatchAnalytics field-for-field in
// snake_case, per spec.md §4.6.
type BatchAnalyticsOut struct {
	StockBeforeArrival          float64          `json:"stock_before_arrival"`
	StockAfterArrival           float64          `json:"stock_after_arrival"`
	ConsumptionSinceLastArrival float64          `json:"consumption_since_last_arrival"`
	CoverageDays                int              `json:"coverage_days"`
	ActualLeadTimeDays          int              `json:"actual_lead_time_days"`
	UrgencyLevel                string           `json:"urgency_level"`
	IsCritical                  bool             `json:"is_critical"`
	DemandsCovered              []DemandEventOut `json:"demands_covered"`
	ShortfallCovered            float64          `json:"shortfall_covered"`
	EfficiencyRatio             float64          `json:"efficiency_ratio"`
	SafetyMarginDays            float64          `json:"safety_margin_days"`
	ConsolidatedGroup           bool             `json:"consolidated_group"`
	GroupSize                   int              `json:"group_size"`
	ConsolidationQuality        string           `json:"consolidation_quality"`
	NetSavings                  float64          `json:"net_savings"`
	HoldingCostIncrease         float64          `json:"holding_cost_increase"`
	OverlapPrevented            bool             `json:"overlap_prevented"`
	LongLeadtimeOptimization    bool             `json:"long_leadtime_optimization"`
	FutureDemandConsidered      float64          `json:"future_demand_considered"`
	CoverageWindowDays          int              `json:"coverage_window_days"`
	GapToNextDemandDays         int              `json:"gap_to_next_demand_days"`
	InformativeBatch            bool             `json:"informative_batch"`
	ExcessProduction            bool             `json:"excess_production"`
	ArrivalDelayDays            int              `json:"arrival_delay_days"`
}

// BatchOut is one planned batch shaped per spec.md §6.
type BatchOut struct {
	OrderDate   string            `json:"order_date"`
	ArrivalDate string            `json:"arrival_date"`
	Quantity    float64           `json:"quantity"`
	Analytics   BatchAnalyticsOut `json:"analytics"`
}

// AnalyticsOut is the full reporting bundle, shaped per spec.md §4.8.
type AnalyticsOut struct {
	Summary         map[string]any   `json:"summary"`
	Performance     map[string]any   `json:"performance"`
	Cost            map[string]any   `json:"cost"`
	Demand          map[string]any   `json:"demand"`
	Risk            map[string]any   `json:"risk"`
	WhatIf          []map[string]any `json:"what_if"`
	Recommendations []string         `json:"recommendations"`
}

// Response is the success envelope of spec.md §6.
type Response struct {
	Batches   []BatchOut   `json:"batches"`
	Analytics AnalyticsOut `json:"analytics"`
}

// ErrorResponse is returned instead of Response when Plan fails. Per
// spec.md §6, an infeasible-window failure still carries batches (empty)
// and the partial analytics computed over initial stock and demand
// alone, so callers can see the resulting stockouts even without a plan.
type ErrorResponse struct {
	Error     bool         `json:"error"`
	Message   string       `json:"message"`
	Batches   []BatchOut   `json:"batches"`
	Analytics AnalyticsOut `json:"analytics"`
}

// FromPlanResult shapes a *mrp.PlanResult into the wire Response.
func FromPlanResult(result *mrp.PlanResult) Response {
	return Response{
		Batches:   batchesOut(result.Batches),
		Analytics: analyticsOut(result.Analytics),
	}
}

// FromError shapes a *mrp.PlanningError into the wire ErrorResponse. For
// an infeasible-window error, result carries the partial plan (no
// batches, analytics computed over initial stock alone) that mrp.Plan
// returns alongside the error; for any other error kind result is nil
// and the envelope carries no batches or analytics.
func FromError(err *mrp.PlanningError, result *mrp.PlanResult) ErrorResponse {
	resp := ErrorResponse{
		Error:   true,
		Message: err.Message,
		Batches: []BatchOut{},
	}
	if result != nil {
		resp.Batches = batchesOut(result.Batches)
		resp.Analytics = analyticsOut(result.Analytics)
	}
	return resp
}

func batchesOut(batches []mrp.Batch) []BatchOut {
	out := make([]BatchOut, len(batches))
	for i, b := range batches {
		out[i] = batchOut(b)
	}
	return out
}

func batchOut(b mrp.Batch) BatchOut {
	demands := make([]DemandEventOut, len(b.Analytics.DemandsCovered))
	for i, d := range b.Analytics.DemandsCovered {
		demands[i] = DemandEventOut{Date: d.Date.String(), Quantity: d.Quantity}
	}
	a := b.Analytics
	return BatchOut{
		OrderDate:   b.OrderDate.String(),
		ArrivalDate: b.ArrivalDate.String(),
		Quantity:    b.Quantity,
		Analytics: BatchAnalyticsOut{
			StockBeforeArrival:          a.StockBeforeArrival,
			StockAfterArrival:           a.StockAfterArrival,
			ConsumptionSinceLastArrival: a.ConsumptionSinceLastArrival,
			CoverageDays:                a.CoverageDays,
			ActualLeadTimeDays:          a.ActualLeadTimeDays,
			UrgencyLevel:                a.UrgencyLevel.String(),
			IsCritical:                  a.IsCritical,
			DemandsCovered:              demands,
			ShortfallCovered:            a.ShortfallCovered,
			EfficiencyRatio:             a.EfficiencyRatio,
			SafetyMarginDays:            a.SafetyMarginDays,
			ConsolidatedGroup:           a.ConsolidatedGroup,
			GroupSize:                   a.GroupSize,
			ConsolidationQuality:        a.ConsolidationQuality.String(),
			NetSavings:                  a.NetSavings,
			HoldingCostIncrease:         a.HoldingCostIncrease,
			OverlapPrevented:            a.OverlapPrevented,
			LongLeadtimeOptimization:    a.LongLeadtimeOptimization,
			FutureDemandConsidered:      a.FutureDemandConsidered,
			CoverageWindowDays:          a.CoverageWindowDays,
			GapToNextDemandDays:         a.GapToNextDemandDays,
			InformativeBatch:            a.InformativeBatch,
			ExcessProduction:            a.ExcessProduction,
			ArrivalDelayDays:            a.ArrivalDelayDays,
		},
	}
}

func analyticsOut(bundle mrp.AnalyticsBundle) AnalyticsOut {
	s := bundle.Summary
	p := bundle.Performance
	c := bundle.Cost
	d := bundle.Demand
	r := bundle.Risk

	whatIf := make([]map[string]any, len(bundle.WhatIf))
	for i, w := range bundle.WhatIf {
		whatIf[i] = map[string]any{
			"name":               w.Name,
			"safety_stock_delta": w.SafetyStockDelta,
			"cost_delta":         w.CostDelta,
		}
	}

	return AnalyticsOut{
		Summary: map[string]any{
			"initial_stock":            s.InitialStock,
			"final_stock":              s.FinalStock,
			"minimum_stock":            s.MinimumStock,
			"minimum_stock_date":       s.MinimumStockDate.String(),
			"batch_count":              s.BatchCount,
			"demand_event_count":       s.DemandEventCount,
			"total_produced":           s.TotalProduced,
			"total_demand":             s.TotalDemand,
			"production_coverage_rate": s.ProductionCoverageRate,
			"demands_met":              s.DemandsMet,
			"demand_fulfillment_rate":  s.DemandFulfillmentRate,
		},
		Performance: map[string]any{
			"realized_service_level": p.RealizedServiceLevel,
			"inventory_turnover":     p.InventoryTurnover,
			"avg_days_of_inventory":  p.AvgDaysOfInventory,
			"setup_frequency":        p.SetupFrequency,
			"avg_batch_size":         p.AvgBatchSize,
			"stock_cv":               p.StockCV,
			"perfect_order_rate":     p.PerfectOrderRate,
		},
		Cost: map[string]any{
			"setup":            c.Setup,
			"holding":          c.Holding,
			"stockout":         c.Stockout,
			"total":            c.Total,
			"setup_percent":    c.SetupPercent,
			"holding_percent":  c.HoldingPercent,
			"stockout_percent": c.StockoutPercent,
		},
		Demand: map[string]any{
			"total":               d.Total,
			"mean":                d.Mean,
			"stdev":               d.Stdev,
			"cv":                  d.CV,
			"concentration_index": d.ConcentrationIndex,
			"concentration_level": d.ConcentrationLevel.String(),
			"predictability":      d.Predictability.String(),
			"xyz":                 d.XYZ.String(),
		},
		Risk: map[string]any{
			"stockout_probability":        r.StockoutProbability,
			"expected_stockouts_per_year": r.ExpectedStockoutsPerYear,
			"value_at_risk":               r.ValueAtRisk,
			"conditional_var":             r.ConditionalVaR,
			"demand_uncertainty_cv":       r.DemandUncertaintyCV,
			"demand_uncertainty_label":    r.DemandUncertaintyLabel,
		},
		WhatIf:          whatIf,
		Recommendations: bundle.Recommendations,
	}
}
