// Package combat aggregates per-attack expectations into damage per round
// and estimates how long a target survives it.
package combat

import (
	"slices"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
)

// Profile is one attack made each round with its bonus already resolved.
type Profile struct {
	Name           string
	AttackBonus    float64
	HitDamage      string
	CritDamage     string
	CritThreshold  int
	RerollLowFaces bool
	// BestOfThree rolls three d20s when the scenario grants advantage.
	BestOfThree bool
}

// Scenario is the target and roll conditions. Defense already includes cover.
type Scenario struct {
	Defense int
	Mode    probability.RollMode
	// ModifierDie is added to (or with ModifierPenalty subtracted from)
	// every attack roll, e.g. "1d4" for Bless. Empty means none.
	ModifierDie  string
	ModifierKind probability.ModifierKind
}

// AttackResult is one profile's contribution to the round.
type AttackResult struct {
	Name           string  `json:"name"`
	HitChance      float64 `json:"hit_chance"`
	CritRate       float64 `json:"crit_rate"`
	ExpectedDamage float64 `json:"expected_damage"`
}

// Result is a full round.
type Result struct {
	TotalDPR  float64                     `json:"total_dpr"`
	PerAttack []AttackResult              `json:"per_attack"`
	Riders    probability.RiderAllocation `json:"riders"`
	// Unparseable lists damage text that evaluated to 0, sorted and unique.
	Unparseable []string `json:"unparseable,omitempty"`
}

// Aggregate evaluates every profile against the scenario. PerAttack keeps
// the profile order and Riders reads it as resolution order. TotalDPR is
// summed in sorted order so it does not depend on that order.
func Aggregate(profiles []Profile, scenario Scenario) Result {
	result := Result{PerAttack: make([]AttackResult, 0, len(profiles))}
	if len(profiles) == 0 {
		return result
	}

	mode := scenario.Mode
	if mode == "" {
		mode = probability.ModeNormal
	}

	chances := make([]probability.AttackChance, 0, len(profiles))
	expected := make([]float64, 0, len(profiles))
	var unparseable []string

	for _, p := range profiles {
		hit, crit := chancesFor(p, scenario, mode)

		dmg := damage.ExpectedDamagePerHit(p.HitDamage, p.CritDamage, hit, crit, p.RerollLowFaces)
		result.PerAttack = append(result.PerAttack, AttackResult{
			Name:           p.Name,
			HitChance:      hit,
			CritRate:       crit,
			ExpectedDamage: dmg,
		})
		chances = append(chances, probability.AttackChance{HitChance: hit, CritChance: crit})
		expected = append(expected, dmg)

		for _, text := range []string{p.HitDamage, p.CritDamage} {
			if !notation.Parse(text).Valid() {
				unparseable = append(unparseable, text)
			}
		}
	}

	slices.Sort(expected)
	for _, dmg := range expected {
		result.TotalDPR += dmg
	}

	result.Riders = probability.OncePerTurnAllocation(chances)

	if len(unparseable) > 0 {
		slices.Sort(unparseable)
		result.Unparseable = slices.Compact(unparseable)
	}

	return result
}

func chancesFor(p Profile, scenario Scenario, mode probability.RollMode) (hit, crit float64) {
	threshold := p.CritThreshold
	if threshold == 0 {
		threshold = 20
	}

	bonus := p.AttackBonus + probability.ModifierShift(scenario.ModifierDie, scenario.ModifierKind)

	if p.BestOfThree && mode == probability.ModeAdvantage {
		return probability.BestOfThreeHit(bonus, scenario.Defense), probability.BestOfThreeCrit(threshold)
	}

	return probability.HitProbability(bonus, scenario.Defense, mode), probability.CritProbability(threshold, mode)
}
