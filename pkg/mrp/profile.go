package mrp

import "math"

// IntervalStats summarizes the gaps, in days, between consecutive
// demand dates.
type IntervalStats struct {
	Min      int
	Max      int
	Mean     float64
	Variance float64
}

// DemandProfile is the statistical fingerprint of a normalized demand
// list, computed by the Demand Profiler (C3).
type DemandProfile struct {
	Total float64
	Mean  float64
	Stdev float64
	CV    float64

	Intervals IntervalStats

	ConcentrationIndex float64
	ConcentrationLevel ConcentrationLevel

	PeakThreshold float64
	Peaks         []Day

	Predictability Predictability

	// ABC is parallel to the normalized event list: ABC[i] classifies
	// events[i] by magnitude against the ensemble (see SPEC_FULL.md §8.2).
	ABC []ABCClass
	XYZ XYZClass
}

// ProfileDemand computes demand statistics per spec §4.2. It never
// fails; an empty event list yields a zero-valued DemandProfile.
func ProfileDemand(events []DemandEvent, periodDays int) DemandProfile {
	if len(events) == 0 {
		return DemandProfile{}
	}

	quantities := make([]float64, len(events))
	total := 0.0
	for i, e := range events {
		quantities[i] = e.Quantity
		total += e.Quantity
	}
	mean := total / float64(len(events))

	var variance float64
	for _, q := range quantities {
		d := q - mean
		variance += d * d
	}
	variance /= float64(len(events))
	stdev := math.Sqrt(variance)

	cv := 0.0
	if mean > 0 {
		cv = stdev / mean
	}

	intervals := computeIntervals(events)

	concentrationIndex := 0.0
	if periodDays > 0 {
		concentrationIndex = float64(len(events)) / float64(periodDays)
	}
	concentrationLevel := ConcentrationLow
	switch {
	case concentrationIndex > 0.3:
		concentrationLevel = ConcentrationHigh
	case concentrationIndex >= 0.1:
		concentrationLevel = ConcentrationMedium
	}

	peakThreshold := mean + stdev
	if stdev == 0 {
		peakThreshold = mean * 1.5
	}
	var peaks []Day
	for _, e := range events {
		if e.Quantity > peakThreshold {
			peaks = append(peaks, e.Date)
		}
	}

	predictability := PredictabilityLow
	switch {
	case cv <= 0.3:
		predictability = PredictabilityHigh
	case cv <= 0.6:
		predictability = PredictabilityMedium
	}

	abc := classifyABC(quantities, total)
	xyz := XYZClassZ
	switch {
	case cv <= 0.2:
		xyz = XYZClassX
	case cv <= 0.5:
		xyz = XYZClassY
	}

	return DemandProfile{
		Total:              total,
		Mean:               mean,
		Stdev:              stdev,
		CV:                 cv,
		Intervals:          intervals,
		ConcentrationIndex: concentrationIndex,
		ConcentrationLevel: concentrationLevel,
		PeakThreshold:      peakThreshold,
		Peaks:              peaks,
		Predictability:     predictability,
		ABC:                abc,
		XYZ:                xyz,
	}
}

func computeIntervals(events []DemandEvent) IntervalStats {
	if len(events) < 2 {
		return IntervalStats{}
	}
	gaps := make([]int, 0, len(events)-1)
	for i := 1; i < len(events); i++ {
		gaps = append(gaps, events[i].Date.Sub(events[i-1].Date))
	}

	min, max := gaps[0], gaps[0]
	sum := 0
	for _, g := range gaps {
		if g < min {
			min = g
		}
		if g > max {
			max = g
		}
		sum += g
	}
	mean := float64(sum) / float64(len(gaps))

	var variance float64
	for _, g := range gaps {
		d := float64(g) - mean
		variance += d * d
	}
	variance /= float64(len(gaps))

	return IntervalStats{Min: min, Max: max, Mean: mean, Variance: variance}
}

// classifyABC labels each event by the cumulative share of total demand
// its magnitude-sorted rank accounts for, against the 0.7/0.9 thresholds
// of spec §4.2, then maps labels back onto the original event order.
func classifyABC(quantities []float64, total float64) []ABCClass {
	n := len(quantities)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Sort indices by descending quantity (stable, ties keep original order).
	for i := 1; i < n; i++ {
		for j := i; j > 0 && quantities[order[j]] > quantities[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	classes := make([]ABCClass, n)
	if total <= 0 {
		for i := range classes {
			classes[i] = ABCClassC
		}
		return classes
	}

	cumulative := 0.0
	for _, idx := range order {
		cumulative += quantities[idx]
		share := cumulative / total
		switch {
		case share <= 0.7:
			classes[idx] = ABCClassA
		case share <= 0.9:
			classes[idx] = ABCClassB
		default:
			classes[idx] = ABCClassC
		}
	}
	return classes
}
