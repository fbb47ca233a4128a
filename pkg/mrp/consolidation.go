package mrp

// consolidateBatches runs Phase D of the batch planner: it walks
// adjacent candidate batches and merges a pair when any of the six
// criteria of spec §4.5 Phase D holds, accumulating operational
// benefits until no adjacent pair qualifies.
func consolidateBatches(batches []Batch, events []DemandEvent, sizing BatchSizing, params PlanningParameters) []Batch {
	if len(batches) < 2 {
		return batches
	}

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(batches)-1; i++ {
			a, b := batches[i], batches[i+1]
			decision := evaluateConsolidation(a, b, sizing, params)
			if !decision.consolidate {
				continue
			}
			combined := mergeBatches(a, b, decision, params)
			batches = append(batches[:i], append([]Batch{combined}, batches[i+2:]...)...)
			merged = true
			break
		}
	}
	return batches
}

type consolidationDecision struct {
	consolidate         bool
	gapDays             int
	holdingCostIncrease float64
	operationalBenefit  float64
	netBenefit          float64
	overlapPrevented    bool
}

func evaluateConsolidation(a, b Batch, sizing BatchSizing, params PlanningParameters) consolidationDecision {
	gapDays := b.Analytics.DemandsCovered[0].Date.Sub(a.Analytics.DemandsCovered[len(a.Analytics.DemandsCovered)-1].Date)

	dailyHoldingCost := sizing.HoldingCostUnit / 365
	holdingCostIncrease := b.Quantity * dailyHoldingCost * float64(gapDays)

	withinLeadtime := gapDays <= params.LeadtimeDays

	benefit := 0.0
	overlapPrevented := false
	if withinLeadtime {
		benefit += 0.5 * params.SetupCost
		if params.OverlapPreventionPriority {
			benefit += params.MinConsolidationBenefit
			overlapPrevented = true
		}
	}
	if gapDays <= 14 {
		benefit += 0.2 * params.SetupCost
	}

	smallThreshold := sizing.MinBatch * 2
	if smallThreshold <= 0 {
		smallThreshold = sizing.MeanDailyDemand * float64(params.LeadtimeDays)
	}
	bothSmall := a.Quantity <= smallThreshold && b.Quantity <= smallThreshold
	if a.Quantity+b.Quantity >= 1.5*sizing.MinBatch {
		benefit += 0.1 * params.SetupCost
	}
	benefit *= params.OperationalEfficiencyWeight

	totalBenefit := params.SetupCost + benefit
	netBenefit := totalBenefit - holdingCostIncrease

	consolidate := false
	switch {
	case netBenefit > 0:
		consolidate = true
	case totalBenefit >= params.MinConsolidationBenefit:
		consolidate = true
	case withinLeadtime && params.ForceConsolidationWithinLeadtime && holdingCostIncrease < 1.5*params.SetupCost:
		consolidate = true
	case gapDays <= 7 && holdingCostIncrease < 1.2*params.SetupCost:
		consolidate = true
	case gapDays <= 14 && bothSmall && holdingCostIncrease < 2*params.MinConsolidationBenefit:
		consolidate = true
	case params.SetupCost < 100 && gapDays <= 21 && holdingCostIncrease < 200:
		consolidate = true
	}

	return consolidationDecision{
		consolidate:         consolidate,
		gapDays:             gapDays,
		holdingCostIncrease: holdingCostIncrease,
		operationalBenefit:  totalBenefit,
		netBenefit:          netBenefit,
		overlapPrevented:    overlapPrevented,
	}
}

func mergeBatches(a, b Batch, decision consolidationDecision, params PlanningParameters) Batch {
	merged := a
	merged.Quantity = a.Quantity + b.Quantity
	if b.ArrivalDate.Before(a.ArrivalDate) {
		merged.OrderDate = b.OrderDate
		merged.ArrivalDate = b.ArrivalDate
	}

	demands := append(append([]DemandEvent(nil), a.Analytics.DemandsCovered...), b.Analytics.DemandsCovered...)

	quality := ConsolidationLow
	switch {
	case decision.netBenefit > params.SetupCost:
		quality = ConsolidationHigh
	case decision.netBenefit > 0:
		quality = ConsolidationMedium
	}

	merged.Analytics = a.Analytics
	merged.Analytics.DemandsCovered = demands
	merged.Analytics.GroupSize = len(demands)
	merged.Analytics.ConsolidatedGroup = true
	merged.Analytics.ConsolidationQuality = quality
	merged.Analytics.NetSavings = decision.netBenefit
	merged.Analytics.HoldingCostIncrease = decision.holdingCostIncrease
	merged.Analytics.OverlapPrevented = decision.overlapPrevented
	merged.Analytics.StockAfterArrival = merged.Analytics.StockBeforeArrival + merged.Quantity
	if a.Quantity+b.Quantity > 0 {
		merged.Analytics.EfficiencyRatio = merged.Quantity / TotalDemand(demands)
	}

	return merged
}
