package combat

import "math"

// DefaultHPPools are the target hit point totals reported by Table.
var DefaultHPPools = []float64{25, 50, 75, 100, 150, 200, 300, 500}

// Multipliers applied to the expected rounds for the two upper bounds.
const (
	BoundAMultiplier = 1.5
	BoundBMultiplier = 2.0
)

// TimeToKill estimates how many rounds a target with HP lasts.
type TimeToKill struct {
	HP             float64 `json:"hp"`
	ExpectedRounds float64 `json:"expected_rounds"`
	BoundA         float64 `json:"bound_a"`
	BoundB         float64 `json:"bound_b"`
	// NoOffense is set when damage per round is not positive; the round
	// fields are then zero.
	NoOffense             bool    `json:"no_offense,omitempty"`
	KillChanceOneRound    float64 `json:"kill_chance_one_round"`
	KillChanceThreeRounds float64 `json:"kill_chance_three_rounds"`
}

// EstimateTimeToKill divides hp by dpr. The bounds are fixed multiples of
// the expectation, not variance derived.
func EstimateTimeToKill(dpr, hp float64) TimeToKill {
	if !(dpr > 0) {
		return TimeToKill{HP: hp, NoOffense: true}
	}

	rounds := hp / dpr
	return TimeToKill{
		HP:                    hp,
		ExpectedRounds:        rounds,
		BoundA:                rounds * BoundAMultiplier,
		BoundB:                rounds * BoundBMultiplier,
		KillChanceOneRound:    killChance(dpr, hp, 1),
		KillChanceThreeRounds: killChance(dpr, hp, 3),
	}
}

func killChance(dpr, hp, rounds float64) float64 {
	if hp <= 0 {
		return 1
	}
	return math.Min(1, rounds*dpr/hp)
}

// Table estimates time to kill for each pool, or DefaultHPPools when pools
// is empty. No offense yields an empty table.
func Table(dpr float64, pools []float64) []TimeToKill {
	if !(dpr > 0) {
		return []TimeToKill{}
	}
	if len(pools) == 0 {
		pools = DefaultHPPools
	}

	rows := make([]TimeToKill, len(pools))
	for i, hp := range pools {
		rows[i] = EstimateTimeToKill(dpr, hp)
	}
	return rows
}
