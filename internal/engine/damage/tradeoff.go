package damage

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
)

// Choice names which arm of a trade-off wins.
type Choice string

const (
	ChoiceBaseline Choice = "baseline"
	ChoiceModified Choice = "modified"
)

// Delta is the accuracy given up and damage gained. Sharpshooter and Great
// Weapon Master both use DefaultDelta.
type Delta struct {
	ToHit    int `json:"to_hit" yaml:"to_hit"`
	ToDamage int `json:"to_damage" yaml:"to_damage"`
}

// DefaultDelta is -5 to hit for +10 damage.
var DefaultDelta = Delta{ToHit: -5, ToDamage: 10}

// Default defense sweep, inclusive.
const (
	DefaultSweepFrom = 10
	DefaultSweepTo   = 25
)

// TradeoffInput describes one attack against one defense.
// A zero Delta means DefaultDelta and a zero CritThreshold means 20.
// BestOfThree only takes effect under advantage.
type TradeoffInput struct {
	AttackBonus    float64
	HitDamage      string
	CritDamage     string
	Defense        int
	Mode           probability.RollMode
	Delta          Delta
	CritThreshold  int
	RerollLowFaces bool
	BestOfThree    bool
}

// Option is one arm of the comparison.
type Option struct {
	HitProbability float64 `json:"hit_probability"`
	ExpectedDamage float64 `json:"expected_damage"`
}

// TradeoffResult compares attacking normally against taking the trade-off.
type TradeoffResult struct {
	Baseline Option `json:"baseline"`
	Modified Option `json:"modified"`
	Chosen   Choice `json:"chosen"`
}

// Gain is how much expected damage the modified arm adds. Negative when the
// trade-off loses damage.
func (r TradeoffResult) Gain() float64 {
	return r.Modified.ExpectedDamage - r.Baseline.ExpectedDamage
}

func (in TradeoffInput) withDefaults() TradeoffInput {
	if in.Delta == (Delta{}) {
		in.Delta = DefaultDelta
	}
	if in.CritThreshold == 0 {
		in.CritThreshold = 20
	}
	if in.Mode == "" {
		in.Mode = probability.ModeNormal
	}
	return in
}

func (in TradeoffInput) bestOfThree() bool {
	return in.BestOfThree && in.Mode == probability.ModeAdvantage
}

func (in TradeoffInput) hitChance(bonus float64) float64 {
	if in.bestOfThree() {
		return probability.BestOfThreeHit(bonus, in.Defense)
	}
	return probability.HitProbability(bonus, in.Defense, in.Mode)
}

func (in TradeoffInput) critChance() float64 {
	if in.bestOfThree() {
		return probability.BestOfThreeCrit(in.CritThreshold)
	}
	return probability.CritProbability(in.CritThreshold, in.Mode)
}

// EvaluateTradeoff computes both arms. The modified arm only wins when it is
// strictly better; ties keep the baseline.
func EvaluateTradeoff(in TradeoffInput) TradeoffResult {
	in = in.withDefaults()
	crit := in.critChance()

	baseHit := in.hitChance(in.AttackBonus)
	baseline := Option{
		HitProbability: baseHit,
		ExpectedDamage: ExpectedDamagePerHit(in.HitDamage, in.CritDamage, baseHit, crit, in.RerollLowFaces),
	}

	modHit := in.hitChance(in.AttackBonus + float64(in.Delta.ToHit))
	modified := Option{
		HitProbability: modHit,
		ExpectedDamage: ExpectedDamagePerHit(
			notation.AddFlat(in.HitDamage, in.Delta.ToDamage),
			notation.AddFlat(in.CritDamage, in.Delta.ToDamage),
			modHit, crit, in.RerollLowFaces,
		),
	}

	chosen := ChoiceBaseline
	if modified.ExpectedDamage > baseline.ExpectedDamage {
		chosen = ChoiceModified
	}

	return TradeoffResult{Baseline: baseline, Modified: modified, Chosen: chosen}
}

// SweepPoint is the trade-off result at one defense value.
type SweepPoint struct {
	Defense int            `json:"defense"`
	Result  TradeoffResult `json:"result"`
}

// SweepTradeoff evaluates in at every integer defense in [from, to]. The
// input's own Defense is ignored. from > to yields nil.
func SweepTradeoff(in TradeoffInput, from, to int) []SweepPoint {
	if from > to {
		return nil
	}

	points := make([]SweepPoint, 0, to-from+1)
	for defense := from; defense <= to; defense++ {
		in.Defense = defense
		points = append(points, SweepPoint{Defense: defense, Result: EvaluateTradeoff(in)})
	}
	return points
}

// Window is a contiguous defense range with the same choice.
type Window struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Chosen Choice `json:"chosen"`
}

// Windows collapses consecutive sweep points that share a choice.
func Windows(points []SweepPoint) []Window {
	var windows []Window
	for _, p := range points {
		last := len(windows) - 1
		if last >= 0 && windows[last].Chosen == p.Result.Chosen && windows[last].To+1 == p.Defense {
			windows[last].To = p.Defense
			continue
		}
		windows = append(windows, Window{From: p.Defense, To: p.Defense, Chosen: p.Result.Chosen})
	}
	return windows
}
