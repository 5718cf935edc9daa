// Package probability computes d20 attack-roll outcome chances.
package probability

import (
	"math"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

// RollMode is how many d20s are rolled and which one is kept.
type RollMode string

const (
	ModeNormal       RollMode = "normal"
	ModeAdvantage    RollMode = "advantage"
	ModeDisadvantage RollMode = "disadvantage"
)

// Natural 1 always misses and natural 20 always hits.
const (
	MinChance = 0.05
	MaxChance = 0.95
)

// RollModes lists every accepted mode.
var RollModes = []string{string(ModeNormal), string(ModeAdvantage), string(ModeDisadvantage)}

// ParseRollMode accepts "normal", "advantage" or "disadvantage". Empty means normal.
func ParseRollMode(s string) (RollMode, error) {
	switch RollMode(s) {
	case "", ModeNormal:
		return ModeNormal, nil
	case ModeAdvantage:
		return ModeAdvantage, nil
	case ModeDisadvantage:
		return ModeDisadvantage, nil
	default:
		return "", errors.InvalidArgumentf("unknown roll mode %q", s).
			WithMeta("allowed", RollModes)
	}
}

// Apply composes a single-roll chance p under the mode.
func (m RollMode) Apply(p float64) float64 {
	switch m {
	case ModeAdvantage:
		return 1 - (1-p)*(1-p)
	case ModeDisadvantage:
		return p * p
	default:
		return p
	}
}

// singleRollHit is the chance one d20 plus attackBonus meets defense.
func singleRollHit(attackBonus float64, defense int) float64 {
	required := float64(defense) - attackBonus
	switch {
	case required <= 1:
		return MaxChance
	case required >= 20:
		return MinChance
	}
	return clamp((21-required)/20, MinChance, MaxChance)
}

// HitProbability is the chance an attack with attackBonus hits defense.
func HitProbability(attackBonus float64, defense int, mode RollMode) float64 {
	return mode.Apply(singleRollHit(attackBonus, defense))
}

// CritProbability is the chance a d20 lands on threshold or higher.
// Threshold 20 gives 0.05, 19 gives 0.10, 18 gives 0.15.
func CritProbability(threshold int, mode RollMode) float64 {
	return mode.Apply(float64(21-threshold) / 20)
}

// BestOfThreeHit is the hit chance when three d20s are rolled and the best
// kept, as with Elven Accuracy on an advantaged attack.
func BestOfThreeHit(attackBonus float64, defense int) float64 {
	required := clamp(float64(defense)-attackBonus, 1, 20)
	miss := (required - 1) / 20
	return 1 - miss*miss*miss
}

// BestOfThreeCrit is the crit chance over three d20s.
func BestOfThreeCrit(threshold int) float64 {
	miss := 1 - float64(21-threshold)/20
	return 1 - miss*miss*miss
}

// ModifierKind says whether a modifier die helps or hurts the attack.
type ModifierKind string

const (
	ModifierBonus   ModifierKind = "bonus"
	ModifierPenalty ModifierKind = "penalty"
)

// HitProbabilityWithModifierDie shifts attackBonus by the average of die
// (Bless adds 1d4, Bane subtracts it) and then applies the mode. The average
// stands in for a full convolution.
func HitProbabilityWithModifierDie(attackBonus float64, defense int, die string, kind ModifierKind, mode RollMode) float64 {
	return HitProbability(attackBonus+ModifierShift(die, kind), defense, mode)
}

// ModifierShift is the signed average a modifier die adds to an attack roll.
// An empty die shifts nothing.
func ModifierShift(die string, kind ModifierKind) float64 {
	shift := notation.Evaluate(die, false)
	if kind == ModifierPenalty {
		return -shift
	}
	return shift
}

// AttackChance is one attack's outcome chances in resolution order.
type AttackChance struct {
	HitChance  float64 `json:"hit_chance"`
	CritChance float64 `json:"crit_chance"`
}

// RiderAllocation describes how likely a once-per-turn rider gets to fire.
type RiderAllocation struct {
	FirstHitIsCrit float64 `json:"first_hit_is_crit"`
	AtLeastOneHit  float64 `json:"at_least_one_hit"`
	AtLeastOneCrit float64 `json:"at_least_one_crit"`
}

// OncePerTurnAllocation summarises a turn's attacks for a rider that can
// only apply once, like Sneak Attack. attacks must be in the order they are
// resolved; FirstHitIsCrit reads the first entry only.
func OncePerTurnAllocation(attacks []AttackChance) RiderAllocation {
	if len(attacks) == 0 {
		return RiderAllocation{}
	}

	allMiss, noCrit := 1.0, 1.0
	for _, a := range attacks {
		allMiss *= 1 - a.HitChance
		noCrit *= 1 - a.CritChance
	}

	return RiderAllocation{
		FirstHitIsCrit: attacks[0].CritChance,
		AtLeastOneHit:  1 - allMiss,
		AtLeastOneCrit: 1 - noCrit,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
