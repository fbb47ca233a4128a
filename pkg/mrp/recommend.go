package mrp

// buildRecommendations derives a rule-based, order-stable list of
// advisory messages per spec §4.8. Each rule is independent; more than
// one may fire.
func buildRecommendations(summary SummaryMetrics, performance PerformanceMetrics, cost CostBreakdown, risk RiskMetrics, params PlanningParameters) []string {
	var recs []string

	if params.LeadtimeDays >= 45 {
		recs = append(recs, "lead time exceeds 45 days; negotiate a shorter lead time with the supplier to reduce safety stock requirements")
	}

	if performance.RealizedServiceLevel < 0.90 {
		recs = append(recs, "realized service level is below 90%; increase safety stock or safety margin percent")
	}

	if cost.Total > 0 && cost.HoldingPercent > 50 {
		recs = append(recs, "holding cost accounts for more than half of total cost; consider fewer, larger batches")
	}

	if risk.StockoutProbability > 0.05 {
		recs = append(recs, "stockout probability exceeds 5% of the planning period; review the reorder point and safety stock")
	}

	if performance.SetupFrequency > 4 {
		recs = append(recs, "more than 4 orders per month on average; enable consolidation to reduce setup frequency")
	}

	if summary.DemandFulfillmentRate < 100 && summary.DemandFulfillmentRate > 0 {
		recs = append(recs, "not every demand event is fully covered by the current plan; consider lowering minimum_stock_percent thresholds or increasing max_batch_size")
	}

	if risk.DemandUncertaintyLabel == "high" {
		recs = append(recs, "demand variability is high; a higher service level target would reduce the chance of uncovered peaks")
	}

	return recs
}
