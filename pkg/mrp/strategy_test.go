package mrp

import "testing"

func TestSelectStrategy(t *testing.T) {
	cases := []struct {
		name      string
		leadtime  int
		profile   DemandProfile
		want      Strategy
	}{
		{"jit", 0, DemandProfile{}, StrategyJIT},
		{"short", 14, DemandProfile{}, StrategyShort},
		{"medium default", 45, DemandProfile{}, StrategyMedium},
		{"medium promoted to long", 45, DemandProfile{ConcentrationLevel: ConcentrationHigh, Predictability: PredictabilityLow}, StrategyLong},
		{"long", 90, DemandProfile{}, StrategyLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SelectStrategy(c.leadtime, c.profile); got != c.want {
				t.Fatalf("SelectStrategy(%d) = %v, want %v", c.leadtime, got, c.want)
			}
		})
	}
}
