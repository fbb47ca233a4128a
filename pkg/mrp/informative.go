package mrp

// InformativeBatch builds the single placeholder batch emitted when
// force_informative_batches is set and the planner produced zero real
// batches (spec §4.10). It is excluded from every analytics aggregate
// by its Analytics.InformativeBatch marker. totalDemand is 0 when
// there is no demand at all, in which case a symbolic quantity of 50
// is used so the batch still renders meaningfully.
func InformativeBatch(params PlanningParameters, totalDemand float64) Batch {
	quantity := totalDemand
	if quantity <= 0 {
		quantity = 50
	}

	arrival := midPeriodArrival(params)
	order := arrival.AddDays(-params.LeadtimeDays)

	return Batch{
		OrderDate:   order,
		ArrivalDate: arrival,
		Quantity:    quantity,
		Analytics: BatchAnalytics{
			InformativeBatch: true,
			UrgencyLevel:     UrgencyPlanned,
		},
	}
}

// ExcessBatch builds the single real batch emitted when
// force_excess_production is set and the planner produced zero real
// batches (spec §4.10). Unlike an informative batch, it is counted in
// every analytics aggregate.
func ExcessBatch(params PlanningParameters, totalDemand float64) Batch {
	arrival := midPeriodArrival(params)
	order := arrival.AddDays(-params.LeadtimeDays)

	return Batch{
		OrderDate:   order,
		ArrivalDate: arrival,
		Quantity:    totalDemand,
		Analytics: BatchAnalytics{
			ExcessProduction:  true,
			UrgencyLevel:      UrgencyNormal,
			StockAfterArrival: totalDemand,
		},
	}
}

// midPeriodArrival places an arrival date near the middle of the
// planning period, clamped to [start_cutoff + leadtime, end_cutoff].
func midPeriodArrival(params PlanningParameters) Day {
	mid := params.PeriodStart.AddDays(params.PeriodEnd.Sub(params.PeriodStart) / 2)
	lo := params.StartCutoff.AddDays(params.LeadtimeDays)
	hi := params.EndCutoff
	return mid.Clamp(lo, hi)
}
