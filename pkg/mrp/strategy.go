package mrp

// SelectStrategy picks one of {JIT, Short, Medium, Long} per spec §4.4.
// Within the Medium band (15-45 days) the selector promotes to Long when
// the profile shows both high demand concentration and low
// predictability, since that combination behaves like the
// long-lead-time hybrid case. JIT and Short lead times are never
// promoted.
func SelectStrategy(leadtimeDays int, profile DemandProfile) Strategy {
	switch {
	case leadtimeDays == 0:
		return StrategyJIT
	case leadtimeDays <= 14:
		return StrategyShort
	case leadtimeDays <= 45:
		if profile.ConcentrationLevel == ConcentrationHigh && profile.Predictability == PredictabilityLow {
			return StrategyLong
		}
		return StrategyMedium
	default:
		return StrategyLong
	}
}
