package mrp

import "math"

// runWhatIfScenarios evaluates the three canned sensitivity scenarios
// of spec §4.8 against the resolved sizing and cost baseline, reporting
// the delta each would cause to safety stock and total cost.
func runWhatIfScenarios(profile DemandProfile, sizing BatchSizing, params PlanningParameters, baseline CostBreakdown) []WhatIfScenario {
	scenarios := []WhatIfScenario{
		demandIncreaseScenario(profile, sizing, params, baseline),
		leadtimeReductionScenario(profile, sizing, params, baseline),
		perfectForecastScenario(sizing, baseline),
	}
	return scenarios
}

func demandIncreaseScenario(profile DemandProfile, sizing BatchSizing, params PlanningParameters, baseline CostBreakdown) WhatIfScenario {
	scaled := profile
	scaled.Mean *= 1.2
	scaled.Stdev *= 1.2
	scaled.Total *= 1.2

	adjusted := EstimateBatchSizing(scaled, 0, params, daysOrOne(params))
	safetyDelta := adjusted.SafetyStock - sizing.SafetyStock
	costDelta := baseline.Total * 0.2

	return WhatIfScenario{Name: "demand +20%", SafetyStockDelta: safetyDelta, CostDelta: costDelta}
}

func leadtimeReductionScenario(profile DemandProfile, sizing BatchSizing, params PlanningParameters, baseline CostBreakdown) WhatIfScenario {
	reduced := params
	reduced.LeadtimeDays = int(math.Round(float64(params.LeadtimeDays) * 0.5))

	adjusted := EstimateBatchSizing(profile, 0, reduced, daysOrOne(params))
	safetyDelta := adjusted.SafetyStock - sizing.SafetyStock
	costDelta := -baseline.Holding * 0.15

	return WhatIfScenario{Name: "leadtime -50%", SafetyStockDelta: safetyDelta, CostDelta: costDelta}
}

func perfectForecastScenario(sizing BatchSizing, baseline CostBreakdown) WhatIfScenario {
	return WhatIfScenario{
		Name:             "perfect forecast",
		SafetyStockDelta: -sizing.SafetyStock,
		CostDelta:        -baseline.Holding * 0.1,
	}
}

func daysOrOne(params PlanningParameters) int {
	d := params.PeriodEnd.Sub(params.PeriodStart) + 1
	if d <= 0 {
		return 1
	}
	return d
}
