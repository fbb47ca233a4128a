package mrp

import "math"

// zTable is the small inverse-normal lookup of spec §4.3, linearly
// interpolated between the tabulated service levels.
var zTable = []struct {
	service float64
	z       float64
}{
	{0.90, 1.28},
	{0.95, 1.65},
	{0.98, 2.05},
	{0.99, 2.33},
}

func serviceLevelZ(serviceLevel float64) float64 {
	if serviceLevel <= zTable[0].service {
		return zTable[0].z
	}
	last := zTable[len(zTable)-1]
	if serviceLevel >= last.service {
		return last.z
	}
	for i := 1; i < len(zTable); i++ {
		lo, hi := zTable[i-1], zTable[i]
		if serviceLevel <= hi.service {
			frac := (serviceLevel - lo.service) / (hi.service - lo.service)
			return lo.z + frac*(hi.z-lo.z)
		}
	}
	return last.z
}

// BatchSizing is the output of the Batch-Size Estimator (C4).
type BatchSizing struct {
	EOQ             float64 // advisory only
	SafetyStock     float64
	ReorderPoint    float64
	MinBatch        float64
	MaxBatch        float64
	MeanDailyDemand float64
	HoldingCostUnit float64 // holding_cost_rate * mean_daily_demand * 365 (SPEC_FULL.md §8.3)
}

// EstimateBatchSizing computes EOQ, safety stock, reorder point and the
// resolved [min, max] batch bounds per spec §4.3. maxSingleDemand is the
// largest individual DemandEvent quantity, used only when
// AutoCalculateMaxBatchSize is set.
func EstimateBatchSizing(profile DemandProfile, maxSingleDemand float64, params PlanningParameters, periodDays int) BatchSizing {
	meanDailyDemand := 0.0
	if periodDays > 0 {
		meanDailyDemand = profile.Total / float64(periodDays)
	}

	holdingCostUnit := params.HoldingCostRate * meanDailyDemand * 365

	eoq := 0.0
	if params.EnableEOQOptimization && params.SetupCost > 0 && holdingCostUnit > 0 {
		annualDemand := meanDailyDemand * 365
		eoq = math.Sqrt(2 * annualDemand * params.SetupCost / holdingCostUnit)
	}

	safetyStock := 0.0
	if !params.IgnoreSafetyStock && profile.Stdev > 0 && params.LeadtimeDays > 0 {
		z := serviceLevelZ(params.ServiceLevel)
		safetyStock = z * profile.Stdev * math.Sqrt(float64(params.LeadtimeDays))

		capDays := math.Max(30, 0.3*float64(params.LeadtimeDays))
		cap := capDays * meanDailyDemand
		if cap > 0 && safetyStock > cap {
			safetyStock = cap
		}
	}

	reorderPoint := meanDailyDemand*float64(params.LeadtimeDays) + safetyStock

	maxBatch := params.MaxBatchSize
	if params.AutoCalculateMaxBatchSize {
		multiplier := params.MaxBatchMultiplier
		if multiplier < 2 {
			multiplier = 2
		}
		autoMax := math.Max(profile.Total, maxSingleDemand*multiplier)
		if autoMax > maxBatch {
			maxBatch = autoMax
		}
	}
	if maxBatch <= 0 {
		maxBatch = math.Inf(1)
	}

	minBatch := math.Max(params.MinBatchSize, 1)
	if params.ExactQuantityMatch {
		minBatch = 0
	}

	return BatchSizing{
		EOQ:             eoq,
		SafetyStock:     safetyStock,
		ReorderPoint:    reorderPoint,
		MinBatch:        minBatch,
		MaxBatch:        maxBatch,
		MeanDailyDemand: meanDailyDemand,
		HoldingCostUnit: holdingCostUnit,
	}
}
