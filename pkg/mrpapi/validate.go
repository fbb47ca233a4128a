package mrpapi

import (
	"fmt"

	"github.com/sporadicmrp/engine/pkg/mrp"
)

// ToPlanningInputs validates a Request's structure (required fields,
// date parsing) and converts it into the PlanningParameters/demand map
// pair mrp.Plan expects. It never reaches into planning semantics;
// anything beyond shape is mrp.Plan's own job.
func ToPlanningInputs(req Request) (mrp.PlanningParameters, map[mrp.Day]float64, error) {
	periodStart, err := mrp.ParseDay(req.PeriodStart)
	if err != nil {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("period_start: %w", err)
	}
	periodEnd, err := mrp.ParseDay(req.PeriodEnd)
	if err != nil {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("period_end: %w", err)
	}
	startCutoff, err := mrp.ParseDay(req.StartCutoff)
	if err != nil {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("start_cutoff: %w", err)
	}
	endCutoff, err := mrp.ParseDay(req.EndCutoff)
	if err != nil {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("end_cutoff: %w", err)
	}
	if req.LeadtimeDays < 0 {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("leadtime_days must be non-negative")
	}
	if req.InitialStock < 0 {
		return mrp.PlanningParameters{}, nil, fmt.Errorf("initial_stock must be non-negative")
	}

	demand := make(map[mrp.Day]float64, len(req.Demand))
	for i, e := range req.Demand {
		date, err := mrp.ParseDay(e.Date)
		if err != nil {
			return mrp.PlanningParameters{}, nil, fmt.Errorf("demand[%d].date: %w", i, err)
		}
		demand[date] += e.Quantity
	}

	params := mrp.PlanningParameters{
		InitialStock: req.InitialStock,
		LeadtimeDays: req.LeadtimeDays,

		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		StartCutoff: startCutoff,
		EndCutoff:   endCutoff,

		SafetyMarginPercent: req.SafetyMarginPercent,
		SafetyDays:          req.SafetyDays,
		MinimumStockPercent: req.MinimumStockPercent,
		MaxGapDays:          req.MaxGapDays,

		SetupCost:       req.SetupCost,
		HoldingCostRate: req.HoldingCostRate,
		ServiceLevel:    req.ServiceLevel,
		MinBatchSize:    req.MinBatchSize,
		MaxBatchSize:    req.MaxBatchSize,

		EnableConsolidation:              req.EnableConsolidation,
		EnableEOQOptimization:            req.EnableEOQOptimization,
		ForceConsolidationWithinLeadtime: req.ForceConsolidationWithinLeadtime,
		MinConsolidationBenefit:         req.MinConsolidationBenefit,
		OperationalEfficiencyWeight:     req.OperationalEfficiencyWeight,
		OverlapPreventionPriority:       req.OverlapPreventionPriority,

		ExactQuantityMatch:        req.ExactQuantityMatch,
		IgnoreSafetyStock:         req.IgnoreSafetyStock,
		ForceInformativeBatches:   req.ForceInformativeBatches,
		ForceExcessProduction:     req.ForceExcessProduction,
		AutoCalculateMaxBatchSize: req.AutoCalculateMaxBatchSize,
		MaxBatchMultiplier:        req.MaxBatchMultiplier,
	}

	return params, demand, nil
}
