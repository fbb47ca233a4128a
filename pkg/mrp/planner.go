package mrp

import "math"

// candidateGroup is the Phase A output: one set of demand events that
// will become a single candidate batch.
type candidateGroup struct {
	events     []DemandEvent
	windowDays int
}

func (g candidateGroup) firstDate() Day { return g.events[0].Date }
func (g candidateGroup) lastDate() Day  { return g.events[len(g.events)-1].Date }
func (g candidateGroup) total() float64 {
	var t float64
	for _, e := range g.events {
		t += e.Quantity
	}
	return t
}

// windowMultiplier implements the max_gap_days consolidation-aggressiveness
// dial of spec §4.5 (the Open Question resolved in SPEC_FULL.md §8.1).
func windowMultiplier(maxGapDays int) int {
	switch {
	case maxGapDays >= 90:
		return 5
	case maxGapDays >= 30:
		return 3
	default:
		return 1
	}
}

func baseCoverageWindow(leadtimeDays int) int {
	w := 2 * leadtimeDays
	if w > 45 {
		w = 45
	}
	return w
}

// groupDemand runs Phase A: greedy grouping of sorted demand events
// within a coverage window that widens with the max_gap_days dial, or
// (when forced) to prevent a new order's arrival from overlapping an
// order still in transit.
func groupDemand(events []DemandEvent, leadtimeDays int, params PlanningParameters) []candidateGroup {
	if len(events) == 0 {
		return nil
	}
	if !params.EnableConsolidation {
		groups := make([]candidateGroup, len(events))
		for i, e := range events {
			groups[i] = candidateGroup{events: []DemandEvent{e}, windowDays: 0}
		}
		return groups
	}

	window := baseCoverageWindow(leadtimeDays) * windowMultiplier(params.MaxGapDays)

	var groups []candidateGroup
	i := 0
	for i < len(events) {
		group := []DemandEvent{events[i]}
		anchor := events[i].Date
		j := i + 1
		for j < len(events) {
			gap := events[j].Date.Sub(anchor)
			overlapForce := params.ForceConsolidationWithinLeadtime && events[j].Date.Sub(anchor) <= leadtimeDays
			if gap <= window || overlapForce {
				group = append(group, events[j])
				j++
				continue
			}
			break
		}
		groups = append(groups, candidateGroup{events: group, windowDays: window})
		i = j
	}
	return groups
}

// phaseBOrderDate computes the order date for a group per spec §4.5
// Phase B, clamping into [start_cutoff, end_cutoff - leadtime_days] and
// reporting whether the clamp forced a late (critical) arrival.
func phaseBOrderDate(targetArrival Day, leadtimeDays, safetyDays int, params PlanningParameters) (orderDate, arrivalDate Day, critical bool, delayDays int) {
	if leadtimeDays == 0 {
		// no lead time means nothing to hedge against with an early order.
		safetyDays = 0
	}
	raw := targetArrival.AddDays(-leadtimeDays - safetyDays)
	lo := params.StartCutoff
	hi := params.EndCutoff.AddDays(-leadtimeDays)
	orderDate = raw.Clamp(lo, hi)
	arrivalDate = orderDate.AddDays(leadtimeDays)

	if arrivalDate.After(targetArrival) {
		critical = true
		delayDays = arrivalDate.Sub(targetArrival)
	}
	return orderDate, arrivalDate, critical, delayDays
}

// phaseCQuantity computes a group's batch quantity per spec §4.5 Phase C,
// using named components instead of stacked multipliers (SPEC_FULL.md
// note following spec.md §9's design direction).
type phaseCInputs struct {
	group           candidateGroup
	stockBefore     float64
	maxSingleDemand float64
	meanDailyDemand float64
	gapToNext       int // days to the next group's first demand; -1 if none
	futureDemand    float64
	sizing          BatchSizing
	params          PlanningParameters
	leadtimeDays    int
}

type phaseCResult struct {
	quantity            float64
	needed              bool
	shortfall           float64
	safety              float64
	minStockFloor       float64
	criticalBuffer      float64
	leadTimeSafety      float64
	futureDemand        float64
	longLeadtimeApplied bool
}

func phaseCQuantity(in phaseCInputs) phaseCResult {
	dGroup := in.group.total()
	shortfall := math.Max(0, dGroup-in.stockBefore)

	safety := 0.0
	minStockFloor := 0.0
	if !in.params.IgnoreSafetyStock && in.leadtimeDays > 0 {
		safety = shortfall * in.params.SafetyMarginPercent / 100
		minStockFloor = in.params.MinimumStockPercent / 100 * in.maxSingleDemand
	}

	base := shortfall + safety + minStockFloor

	var criticalBuffer, leadTimeSafety, futureDemand float64
	longApplied := false
	if in.leadtimeDays >= 45 {
		longApplied = true
		leadTimeSafety = in.meanDailyDemand * math.Min(0.3*float64(in.leadtimeDays), 45)
		base += leadTimeSafety
		// The heavier critical-buffer and forward-demand terms only make
		// sense when the next order is further away than this one's own
		// lead time, i.e. this batch is genuinely isolated in time.
		if in.gapToNext < 0 || in.gapToNext > in.leadtimeDays {
			criticalBuffer = 0.5 * dGroup
			futureDemand = in.futureDemand
			base += criticalBuffer + futureDemand
		}
	}

	// A group with no real need (stock already covers it, and no safety,
	// floor, or long-leadtime term applies) gets no batch at all, per
	// spec §7 — the min_batch_size floor only applies once a batch is
	// already warranted, it never manufactures a need on its own.
	needed := base > 1e-9
	quantity := 0.0
	if needed {
		quantity = base
		if quantity < in.sizing.MinBatch {
			quantity = in.sizing.MinBatch
		}
		if quantity > in.sizing.MaxBatch {
			quantity = in.sizing.MaxBatch
		}
	}

	return phaseCResult{
		quantity:            quantity,
		needed:              needed,
		shortfall:           shortfall,
		safety:              safety,
		minStockFloor:       minStockFloor,
		criticalBuffer:      criticalBuffer,
		leadTimeSafety:      leadTimeSafety,
		futureDemand:        futureDemand,
		longLeadtimeApplied: longApplied,
	}
}

// weightedForwardDemand sums demand events after `after`, within
// windowDays of `arrival`, weighted linearly from 1.0 at arrival to 0.2
// at the window edge (spec §4.5 Phase C, D_future).
func weightedForwardDemand(events []DemandEvent, after Day, arrival Day, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	var total float64
	for _, e := range events {
		if !e.Date.After(after) {
			continue
		}
		offset := e.Date.Sub(arrival)
		if offset < 0 || offset > windowDays {
			continue
		}
		weight := 1.0 - 0.8*(float64(offset)/float64(windowDays))
		if weight < 0.2 {
			weight = 0.2
		}
		total += weight * e.Quantity
	}
	return total
}

// consumptionSinceLastArrival sums the demand consumed between the
// previous batch's arrival and this one (inclusive of this one), or,
// for the first batch, every demand event up to and including this
// arrival, per spec §4.6.
func consumptionSinceLastArrival(events []DemandEvent, lastArrival Day, arrival Day, hasPrior bool) float64 {
	var sum float64
	for _, e := range events {
		if hasPrior {
			if e.Date.After(lastArrival) && !e.Date.After(arrival) {
				sum += e.Quantity
			}
		} else if !e.Date.After(arrival) {
			sum += e.Quantity
		}
	}
	return sum
}

// projectedStockBefore sums initial stock plus every already-finalized
// batch quantity, minus every demand event strictly before `date`.
func projectedStockBefore(date Day, initialStock float64, priorBatches []Batch, events []DemandEvent) float64 {
	stock := initialStock
	for _, b := range priorBatches {
		if !b.ArrivalDate.After(date) {
			stock += b.Quantity
		}
	}
	for _, e := range events {
		if e.Date.Before(date) {
			stock -= e.Quantity
		}
	}
	return stock
}

// PlanBatches is the Batch Planner (C6): it runs Phases A-F and returns
// the final batch sequence for one strategy/parameter combination.
func PlanBatches(events []DemandEvent, profile DemandProfile, sizing BatchSizing, strategy Strategy, params PlanningParameters) ([]Batch, error) {
	if len(events) == 0 {
		return nil, nil
	}

	groups := groupDemand(events, params.LeadtimeDays, params)
	maxSingle := MaxSingleDemand(events)

	batches := make([]Batch, 0, len(groups))
	var lastArrivalDate Day
	haveLastArrival := false
	for gi, group := range groups {
		targetArrival := group.firstDate()
		orderDate, arrivalDate, critical, delay := phaseBOrderDate(targetArrival, params.LeadtimeDays, params.SafetyDays, params)

		gapToNext := -1
		if gi+1 < len(groups) {
			gapToNext = groups[gi+1].firstDate().Sub(group.lastDate())
		}

		stockBefore := projectedStockBefore(arrivalDate, params.InitialStock, batches, events)

		future := weightedForwardDemand(events, group.lastDate(), arrivalDate, group.windowDays)

		pc := phaseCQuantity(phaseCInputs{
			group:           group,
			stockBefore:     stockBefore,
			maxSingleDemand: maxSingle,
			meanDailyDemand: sizing.MeanDailyDemand,
			gapToNext:       gapToNext,
			futureDemand:    future,
			sizing:          sizing,
			params:          params,
			leadtimeDays:    params.LeadtimeDays,
		})

		if !pc.needed {
			continue
		}

		urgency := UrgencyNormal
		switch {
		case params.LeadtimeDays == 0:
			urgency = UrgencyJIT
		case critical:
			urgency = UrgencyCritical
		case pc.shortfall > 0 && stockBefore <= 0:
			urgency = UrgencyHigh
		case strategy == StrategyLong:
			urgency = UrgencyPlanned
		}

		efficiency := 0.0
		if group.total() > 0 {
			efficiency = pc.quantity / group.total()
		}

		consumption := consumptionSinceLastArrival(events, lastArrivalDate, arrivalDate, haveLastArrival)
		lastArrivalDate = arrivalDate
		haveLastArrival = true

		batch := Batch{
			OrderDate:   orderDate,
			ArrivalDate: arrivalDate,
			Quantity:    pc.quantity,
			Analytics: BatchAnalytics{
				StockBeforeArrival:          stockBefore,
				StockAfterArrival:           stockBefore + pc.quantity,
				ConsumptionSinceLastArrival: consumption,
				CoverageDays:                group.windowDays,
				ActualLeadTimeDays:          arrivalDate.Sub(orderDate),
				UrgencyLevel:                urgency,
				IsCritical:                  critical,
				DemandsCovered:              append([]DemandEvent(nil), group.events...),
				ShortfallCovered:            pc.shortfall,
				EfficiencyRatio:             efficiency,
				SafetyMarginDays:            float64(params.SafetyDays),
				GroupSize:                   len(group.events),
				ConsolidatedGroup:           len(group.events) > 1,
				LongLeadtimeOptimization:    pc.longLeadtimeApplied,
				FutureDemandConsidered:      pc.futureDemand,
				CoverageWindowDays:          group.windowDays,
				GapToNextDemandDays:         gapToNext,
				ArrivalDelayDays:            delay,
			},
		}
		batches = append(batches, batch)
	}

	if params.EnableConsolidation {
		batches = consolidateBatches(batches, events, sizing, params)
	}

	if strategy == StrategyLong && len(batches) > 1 {
		batches = applyIntelligentDistribution(batches, events, params)
	}

	if params.ExactQuantityMatch {
		applyExactQuantityMatch(batches, events, params.InitialStock)
	}

	return batches, nil
}

// applyExactQuantityMatch rescales every batch's quantity in place so
// the total exactly covers total demand minus initial stock, per
// exact_quantity_match (spec §3/§4.5 Phase F). Rounding residue is
// folded into the last batch so the invariant holds exactly.
func applyExactQuantityMatch(batches []Batch, events []DemandEvent, initialStock float64) {
	if len(batches) == 0 {
		return
	}
	target := math.Max(0, TotalDemand(events)-initialStock)

	rawSum := 0.0
	for _, b := range batches {
		rawSum += b.Quantity
	}

	if rawSum > 0 {
		scale := target / rawSum
		for i := range batches {
			batches[i].Quantity *= scale
		}
	} else if target > 0 {
		share := target / float64(len(batches))
		for i := range batches {
			batches[i].Quantity = share
		}
	}

	assigned := 0.0
	for i := 0; i < len(batches)-1; i++ {
		assigned += batches[i].Quantity
	}
	last := len(batches) - 1
	batches[last].Quantity = target - assigned
	for i := range batches {
		batches[i].Analytics.StockAfterArrival = batches[i].Analytics.StockBeforeArrival + batches[i].Quantity
	}
}
