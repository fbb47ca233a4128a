// Package mrpapi shapes the JSON request/response envelope of spec.md
// §6 around the pkg/mrp planning engine. It is a thin, external-facing
// collaborator: no planning logic lives here, only validation and
// marshaling.
package mrpapi

// DemandEventJSON is one dated demand entry as received over the wire.
type DemandEventJSON struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
}

// Request mirrors PlanningParameters plus the raw demand list,
// field-for-field with spec.md §3/§6.
type Request struct {
	InitialStock float64 `json:"initial_stock"`
	LeadtimeDays int     `json:"leadtime_days"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	StartCutoff string `json:"start_cutoff"`
	EndCutoff   string `json:"end_cutoff"`

	SafetyMarginPercent float64 `json:"safety_margin_percent"`
	SafetyDays          int     `json:"safety_days"`
	MinimumStockPercent float64 `json:"minimum_stock_percent"`
	MaxGapDays          int     `json:"max_gap_days"`

	SetupCost       float64 `json:"setup_cost"`
	HoldingCostRate float64 `json:"holding_cost_rate"`
	ServiceLevel    float64 `json:"service_level"`
	MinBatchSize    float64 `json:"min_batch_size"`
	MaxBatchSize    float64 `json:"max_batch_size"`

	EnableConsolidation              bool    `json:"enable_consolidation"`
	EnableEOQOptimization            bool    `json:"enable_eoq_optimization"`
	ForceConsolidationWithinLeadtime bool    `json:"force_consolidation_within_leadtime"`
	MinConsolidationBenefit         float64 `json:"min_consolidation_benefit"`
	OperationalEfficiencyWeight     float64 `json:"operational_efficiency_weight"`
	OverlapPreventionPriority       bool    `json:"overlap_prevention_priority"`

	ExactQuantityMatch        bool    `json:"exact_quantity_match"`
	IgnoreSafetyStock         bool    `json:"ignore_safety_stock"`
	ForceInformativeBatches   bool    `json:"force_informative_batches"`
	ForceExcessProduction     bool    `json:"force_excess_production"`
	AutoCalculateMaxBatchSize bool    `json:"auto_calculate_max_batch_size"`
	MaxBatchMultiplier        float64 `json:"max_batch_multiplier"`

	Demand []DemandEventJSON `json:"demand"`
}
