package mrp

import "math"

// applyIntelligentDistribution runs Phase E of the batch planner: for
// long-lead-time plans with multiple batches it tests four quantity
// distributions across the already-dated batches, scores each with the
// Stock Simulator, and keeps the one with the lowest stockout severity
// (CV of batch sizes breaks ties), per spec §4.5 Phase E.
func applyIntelligentDistribution(batches []Batch, events []DemandEvent, params PlanningParameters) []Batch {
	total := 0.0
	for _, b := range batches {
		total += b.Quantity
	}
	if total <= 0 {
		return batches
	}

	candidates := []func(int) []float64{
		func(n int) []float64 { return uniformWeights(n) },
		func(n int) []float64 { return progressiveWeights(n) },
		func(n int) []float64 { return frontLoadedWeights(n) },
		func(n int) []float64 { return smartBalancedWeights(batches, params.PeriodEnd) },
	}

	dailyMean := total / float64(params.PeriodEnd.Sub(params.PeriodStart)+1)

	bestBatches := batches
	bestSeverity := math.Inf(1)
	bestCV := math.Inf(1)

	for _, weightFn := range candidates {
		weights := weightFn(len(batches))
		trial := applyWeights(batches, weights, total)

		sim := Simulate(params.InitialStock, trial, events, params.PeriodStart, params.PeriodEnd, dailyMean)
		severity := stockoutSeverity(sim)
		cv := quantityCV(trial)

		if severity < bestSeverity || (severity == bestSeverity && cv < bestCV) {
			bestBatches = trial
			bestSeverity = severity
			bestCV = cv
		}
	}

	return bestBatches
}

func applyWeights(batches []Batch, weights []float64, total float64) []Batch {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]Batch, len(batches))
	for i, b := range batches {
		out[i] = b
		if sum > 0 {
			out[i].Quantity = total * weights[i] / sum
		}
		out[i].Analytics.StockAfterArrival = out[i].Analytics.StockBeforeArrival + out[i].Quantity
	}
	return out
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// progressiveWeights front-load the earlier batches the most, decaying
// linearly to the last.
func progressiveWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(n - i)
	}
	return w
}

// frontLoadedWeights give the first batch twice the share of every
// later batch, distinct from the linear decay of progressiveWeights.
func frontLoadedWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		if i == 0 {
			w[i] = 2
		} else {
			w[i] = 1
		}
	}
	return w
}

// smartBalancedWeights weight each batch by the length of the stretch
// it alone must cover, i.e. the gap to the next batch's arrival (or to
// period end for the last batch).
func smartBalancedWeights(batches []Batch, periodEnd Day) []float64 {
	n := len(batches)
	w := make([]float64, n)
	for i, b := range batches {
		var next Day
		if i+1 < n {
			next = batches[i+1].ArrivalDate
		} else {
			next = periodEnd
		}
		gap := next.Sub(b.ArrivalDate)
		if gap < 1 {
			gap = 1
		}
		w[i] = float64(gap)
	}
	return w
}

func stockoutSeverity(sim SimulationResult) float64 {
	var severity float64
	for _, cp := range sim.CriticalPoints {
		if cp.Severity == SeverityStockout {
			severity += -cp.Stock
		}
	}
	return severity
}

func quantityCV(batches []Batch) float64 {
	n := len(batches)
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, b := range batches {
		mean += b.Quantity
	}
	mean /= float64(n)
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, b := range batches {
		d := b.Quantity - mean
		variance += d * d
	}
	variance /= float64(n)
	return math.Sqrt(variance) / mean
}
