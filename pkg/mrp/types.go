package mrp

// DemandEvent is a single unit of dated demand within the planning
// period. After normalization there is exactly one DemandEvent per
// calendar date.
type DemandEvent struct {
	Date     Day
	Quantity float64
}

// Strategy is the planning approach selected by the Strategy Selector
// (C5) based on lead time and, for the Long strategy, demand profile.
type Strategy int

const (
	StrategyJIT Strategy = iota
	StrategyShort
	StrategyMedium
	StrategyLong
)

func (s Strategy) String() string {
	switch s {
	case StrategyJIT:
		return "jit"
	case StrategyShort:
		return "short"
	case StrategyMedium:
		return "medium"
	case StrategyLong:
		return "long"
	default:
		return "unknown"
	}
}

// Urgency classifies how pressed a batch's timing is.
type Urgency int

const (
	UrgencyPlanned Urgency = iota
	UrgencyNormal
	UrgencyHigh
	UrgencyCritical
	UrgencyJIT
)

func (u Urgency) String() string {
	switch u {
	case UrgencyCritical:
		return "critical"
	case UrgencyHigh:
		return "high"
	case UrgencyNormal:
		return "normal"
	case UrgencyPlanned:
		return "planned"
	case UrgencyJIT:
		return "jit"
	default:
		return "unknown"
	}
}

// ConsolidationQuality grades how beneficial a consolidation decision
// turned out to be.
type ConsolidationQuality int

const (
	ConsolidationNone ConsolidationQuality = iota
	ConsolidationLow
	ConsolidationMedium
	ConsolidationHigh
)

func (c ConsolidationQuality) String() string {
	switch c {
	case ConsolidationHigh:
		return "high"
	case ConsolidationMedium:
		return "medium"
	case ConsolidationLow:
		return "low"
	default:
		return "none"
	}
}

// Severity classifies a CriticalPoint found by the Stock Simulator.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityStockout
)

func (s Severity) String() string {
	switch s {
	case SeverityStockout:
		return "stockout"
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "none"
	}
}

// ConcentrationLevel buckets the demand profile's concentration index.
type ConcentrationLevel int

const (
	ConcentrationLow ConcentrationLevel = iota
	ConcentrationMedium
	ConcentrationHigh
)

func (c ConcentrationLevel) String() string {
	switch c {
	case ConcentrationHigh:
		return "high"
	case ConcentrationMedium:
		return "medium"
	default:
		return "low"
	}
}

// Predictability buckets the demand profile's coefficient of variation.
type Predictability int

const (
	PredictabilityHigh Predictability = iota
	PredictabilityMedium
	PredictabilityLow
)

func (p Predictability) String() string {
	switch p {
	case PredictabilityHigh:
		return "high"
	case PredictabilityMedium:
		return "medium"
	default:
		return "low"
	}
}

// ABCClass is a per-event magnitude classification (see SPEC_FULL.md §8.2
// for why this engine does not attempt portfolio-level ABC analysis).
type ABCClass int

const (
	ABCClassC ABCClass = iota
	ABCClassB
	ABCClassA
)

func (a ABCClass) String() string {
	switch a {
	case ABCClassA:
		return "A"
	case ABCClassB:
		return "B"
	default:
		return "C"
	}
}

// XYZClass buckets demand variability.
type XYZClass int

const (
	XYZClassX XYZClass = iota
	XYZClassY
	XYZClassZ
)

func (x XYZClass) String() string {
	switch x {
	case XYZClassX:
		return "X"
	case XYZClassY:
		return "Y"
	default:
		return "Z"
	}
}

// BatchAnalytics carries the descriptive fields attached to every
// emitted Batch, per spec §4.6.
type BatchAnalytics struct {
	StockBeforeArrival          float64
	StockAfterArrival           float64
	ConsumptionSinceLastArrival float64
	CoverageDays                int
	ActualLeadTimeDays          int
	UrgencyLevel                Urgency
	IsCritical                  bool
	DemandsCovered              []DemandEvent
	ShortfallCovered            float64
	EfficiencyRatio             float64
	SafetyMarginDays            float64
	ConsolidatedGroup           bool
	GroupSize                   int
	ConsolidationQuality        ConsolidationQuality
	NetSavings                  float64
	HoldingCostIncrease         float64
	OverlapPrevented            bool

	// Long-lead-time specific fields (spec §4.6).
	LongLeadtimeOptimization bool
	FutureDemandConsidered   float64
	CoverageWindowDays       int
	GapToNextDemandDays      int

	// Informative/excess (C10) markers; both false for ordinary batches.
	InformativeBatch bool
	ExcessProduction bool

	// Set when Phase B had to clamp the order date later than the
	// demand required (spec §4.5 Phase B).
	ArrivalDelayDays int
}

// Batch is a single planned replenishment: order → arrival → quantity.
type Batch struct {
	OrderDate   Day
	ArrivalDate Day
	Quantity    float64
	Analytics   BatchAnalytics
}

// PlanningParameters are the complete inputs to a single Plan call.
type PlanningParameters struct {
	InitialStock float64
	LeadtimeDays int

	PeriodStart Day
	PeriodEnd   Day
	StartCutoff Day
	EndCutoff   Day

	SafetyMarginPercent float64 // default 8
	SafetyDays          int     // default 2
	MinimumStockPercent float64 // default 0
	MaxGapDays          int     // default 999

	SetupCost       float64
	HoldingCostRate float64
	ServiceLevel    float64
	MinBatchSize    float64
	MaxBatchSize    float64

	EnableConsolidation               bool
	EnableEOQOptimization             bool
	ForceConsolidationWithinLeadtime  bool
	MinConsolidationBenefit          float64
	OperationalEfficiencyWeight     float64
	OverlapPreventionPriority        bool

	ExactQuantityMatch        bool
	IgnoreSafetyStock         bool
	ForceInformativeBatches   bool
	ForceExcessProduction     bool
	AutoCalculateMaxBatchSize bool
	MaxBatchMultiplier        float64 // default 2, floor 2
}

// WithDefaults returns a copy of p with documented defaults filled in
// for zero-valued fields that have a non-zero default per spec §3.
func (p PlanningParameters) WithDefaults() PlanningParameters {
	if p.SafetyMarginPercent == 0 {
		p.SafetyMarginPercent = 8
	}
	if p.SafetyDays == 0 {
		p.SafetyDays = 2
	}
	if p.MaxGapDays == 0 {
		p.MaxGapDays = 999
	}
	if p.OperationalEfficiencyWeight == 0 {
		p.OperationalEfficiencyWeight = 1
	}
	if p.MaxBatchMultiplier < 2 {
		p.MaxBatchMultiplier = 2
	}
	return p
}

// StockEvolution is an ordered day→stock-level mapping covering the
// whole planning period.
type StockEvolution struct {
	Days   []Day
	Levels map[Day]float64
}

// At returns the stock level recorded for d.
func (s StockEvolution) At(d Day) float64 {
	return s.Levels[d]
}

// CriticalPoint flags a day whose stock level requires attention.
type CriticalPoint struct {
	Date            Day
	Stock           float64
	DaysOfCoverage  float64
	Severity        Severity
}

// SimulationResult is the output of the Stock Simulator (C7).
type SimulationResult struct {
	Evolution        StockEvolution
	MinimumStock     float64
	MinimumStockDate Day
	FinalStock       float64
	CriticalPoints   []CriticalPoint
}

// PlanResult is the public output of a single Plan call: the batch
// sequence plus the full analytics bundle.
type PlanResult struct {
	Batches   []Batch
	Analytics AnalyticsBundle
}
