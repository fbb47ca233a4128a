package mrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// planOptions carries the optional, purely informational inputs to
// Plan. Logging never affects a plan's output (spec §5's determinism
// requirement).
type planOptions struct {
	logger *zerolog.Logger
}

// Option configures a single Plan call.
type Option func(*planOptions)

// WithLogger attaches a logger for informational events during this
// call only. Defaults to zerolog.Nop() when omitted.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *planOptions) {
		o.logger = logger
	}
}

// Plan runs the full C2→C8 pipeline for one set of inputs and returns
// the batch sequence plus analytics bundle, per spec §4.9. It never
// panics: any defect surfaced from the pipeline is wrapped as a
// KindInternal *PlanningError.
func Plan(ctx context.Context, params PlanningParameters, demand map[Day]float64, opts ...Option) (result *PlanResult, err error) {
	options := planOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	runID := uuid.NewString()
	log := logger.With().Str("run_id", runID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from planner defect")
			err = internalError(fmt.Errorf("%v", r), "planner defect")
			result = nil
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, internalError(err, "planning call abandoned before start")
	}

	params = params.WithDefaults()

	if verr := validateParameters(params); verr != nil {
		if pe, ok := AsPlanningError(verr); ok && pe.Kind == KindInfeasibleWindow {
			log.Warn().Msg("infeasible ordering window; no batches, analytics computed over initial stock alone")
			return infeasibleWindowResult(params, demand), verr
		}
		return nil, verr
	}

	allowEmpty := params.ForceInformativeBatches || params.ForceExcessProduction
	events, err := NormalizeDemand(demand, params.PeriodStart, params.PeriodEnd, allowEmpty)
	if err != nil {
		return nil, err
	}

	periodDays := params.PeriodEnd.Sub(params.PeriodStart) + 1
	profile := ProfileDemand(events, periodDays)
	maxSingle := MaxSingleDemand(events)
	sizing := EstimateBatchSizing(profile, maxSingle, params, periodDays)
	strategy := SelectStrategy(params.LeadtimeDays, profile)

	log.Debug().
		Int("events", len(events)).
		Str("strategy", strategy.String()).
		Float64("eoq", sizing.EOQ).
		Msg("planning inputs resolved")

	batches, err := PlanBatches(events, profile, sizing, strategy, params)
	if err != nil {
		return nil, err
	}

	if !hasRealNeed(batches) {
		switch {
		case params.ForceInformativeBatches:
			batches = []Batch{InformativeBatch(params, TotalDemand(events))}
		case params.ForceExcessProduction:
			batches = []Batch{ExcessBatch(params, TotalDemand(events))}
		}
	}

	sim := Simulate(params.InitialStock, realBatches(batches), events, params.PeriodStart, params.PeriodEnd, sizing.MeanDailyDemand)
	analytics := AssembleAnalytics(batches, events, profile, sim, sizing, params)

	log.Info().
		Int("batches", len(batches)).
		Float64("total_produced", analytics.Summary.TotalProduced).
		Msg("plan complete")

	return &PlanResult{Batches: batches, Analytics: analytics}, nil
}

// hasRealNeed reports whether any batch the planner produced was
// actually covering a shortfall, as opposed to existing only because
// of a floor like min_batch_size. The C10 informative/excess path only
// applies when there is no real need (spec §4.9/§4.10).
func hasRealNeed(batches []Batch) bool {
	for _, b := range batches {
		if b.Analytics.ShortfallCovered > 1e-9 {
			return true
		}
	}
	return false
}

// infeasibleWindowResult builds the partial result spec §7 requires for
// an infeasible ordering window: no batches, but analytics still
// computed over initial stock and demand alone so stockouts surface.
func infeasibleWindowResult(params PlanningParameters, demand map[Day]float64) *PlanResult {
	events, _ := NormalizeDemand(demand, params.PeriodStart, params.PeriodEnd, true)

	periodDays := params.PeriodEnd.Sub(params.PeriodStart) + 1
	profile := ProfileDemand(events, periodDays)
	maxSingle := MaxSingleDemand(events)
	sizing := EstimateBatchSizing(profile, maxSingle, params, periodDays)

	sim := Simulate(params.InitialStock, nil, events, params.PeriodStart, params.PeriodEnd, sizing.MeanDailyDemand)
	analytics := AssembleAnalytics(nil, events, profile, sim, sizing, params)

	return &PlanResult{Batches: nil, Analytics: analytics}
}

// validateParameters checks the feasibility of the ordering window per
// spec §7: start_cutoff + leadtime_days must not exceed end_cutoff.
func validateParameters(params PlanningParameters) error {
	if params.PeriodEnd.Before(params.PeriodStart) {
		return invalidInput("period_end %s precedes period_start %s", params.PeriodEnd, params.PeriodStart)
	}
	if params.EndCutoff.Before(params.StartCutoff) {
		return invalidInput("end_cutoff %s precedes start_cutoff %s", params.EndCutoff, params.StartCutoff)
	}
	if params.LeadtimeDays < 0 {
		return invalidInput("leadtime_days must be non-negative, got %d", params.LeadtimeDays)
	}
	if params.StartCutoff.AddDays(params.LeadtimeDays).After(params.EndCutoff) {
		return infeasibleWindow("start_cutoff %s plus leadtime_days %d exceeds end_cutoff %s", params.StartCutoff, params.LeadtimeDays, params.EndCutoff)
	}
	return nil
}
