package mrp

// Simulate walks the planning period day by day, applying batch
// arrivals before that day's demand per spec §4.7, and records stock
// evolution, the minimum stock point, and every critical point.
func Simulate(initialStock float64, batches []Batch, events []DemandEvent, periodStart, periodEnd Day, dailyMean float64) SimulationResult {
	arrivals := make(map[Day]float64)
	for _, b := range batches {
		arrivals[b.ArrivalDate] += b.Quantity
	}
	demand := make(map[Day]float64)
	for _, e := range events {
		demand[e.Date] += e.Quantity
	}

	days := DaysInRange(periodStart, periodEnd)
	levels := make(map[Day]float64, len(days))

	stock := initialStock
	minStock := initialStock
	minDate := periodStart
	first := true

	var criticalPoints []CriticalPoint
	for _, d := range days {
		stock += arrivals[d]
		stock -= demand[d]
		levels[d] = stock

		if first || stock < minStock {
			minStock = stock
			minDate = d
			first = false
		}

		severity := classifySeverity(stock, dailyMean)
		if severity != SeverityNone {
			coverage := 0.0
			if dailyMean > 0 {
				coverage = stock / dailyMean
			}
			criticalPoints = append(criticalPoints, CriticalPoint{
				Date:           d,
				Stock:          stock,
				DaysOfCoverage: coverage,
				Severity:       severity,
			})
		}
	}

	finalStock := initialStock
	if len(days) > 0 {
		finalStock = levels[days[len(days)-1]]
	}

	return SimulationResult{
		Evolution:        StockEvolution{Days: days, Levels: levels},
		MinimumStock:      minStock,
		MinimumStockDate:  minDate,
		FinalStock:        finalStock,
		CriticalPoints:    criticalPoints,
	}
}

// classifySeverity implements the three severity thresholds of spec
// §4.7: stockout when negative, critical below one day of mean demand,
// warning when below two days of mean demand and stock/dailyMean (days
// of coverage) is under five. With dailyMean <= 0 only stockouts are
// flagged.
func classifySeverity(stock, dailyMean float64) Severity {
	switch {
	case stock < 0:
		return SeverityStockout
	case dailyMean > 0 && stock < dailyMean:
		return SeverityCritical
	case dailyMean > 0 && stock < 2*dailyMean && stock/dailyMean < 5:
		return SeverityWarning
	default:
		return SeverityNone
	}
}
