package mrp

import "sort"

// NormalizeDemand validates and filters raw demand against the planning
// period, coalescing same-day entries by summation, and returns an
// ordered, deduplicated event list (C2).
//
// It fails with KindInvalidInput only when no events remain and the
// caller has not opted into one of the zero-demand fallback paths
// (force_informative_batches / force_excess_production).
func NormalizeDemand(raw map[Day]float64, periodStart, periodEnd Day, allowEmpty bool) ([]DemandEvent, error) {
	events := make([]DemandEvent, 0, len(raw))
	for date, qty := range raw {
		if date.Before(periodStart) || date.After(periodEnd) {
			continue
		}
		if qty <= 0 {
			continue
		}
		events = append(events, DemandEvent{Date: date, Quantity: qty})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })

	merged := make([]DemandEvent, 0, len(events))
	for _, e := range events {
		if n := len(merged); n > 0 && merged[n-1].Date == e.Date {
			merged[n-1].Quantity += e.Quantity
			continue
		}
		merged = append(merged, e)
	}

	if len(merged) == 0 && !allowEmpty {
		return nil, invalidInput("no demand events fall within the planning period [%s, %s]", periodStart, periodEnd)
	}

	return merged, nil
}

// TotalDemand sums the quantity of every event.
func TotalDemand(events []DemandEvent) float64 {
	var total float64
	for _, e := range events {
		total += e.Quantity
	}
	return total
}

// MaxSingleDemand returns the largest single event quantity, or 0 if
// events is empty.
func MaxSingleDemand(events []DemandEvent) float64 {
	var max float64
	for _, e := range events {
		if e.Quantity > max {
			max = e.Quantity
		}
	}
	return max
}
