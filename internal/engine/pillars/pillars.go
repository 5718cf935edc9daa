// Package pillars scores a character on the non-combat pillars of play:
// social, exploration, control, mobility and survivability. Every score is
// on a 0 to 100 scale and comes from capped additive heuristics over
// ability modifiers, class, feats and descriptive tags.
package pillars

import (
	"slices"
	"strings"
)

// Character is the slice of a build the heuristics read
type Character struct {
	Class    string
	Subclass string
	Level    int
	STR      int
	DEX      int
	CON      int
	INT      int
	WIS      int
	CHA      int
	Feats    []string
	Tags     []string
}

// Tags the heuristics react to
const (
	TagPersuasion   = "persuasion"
	TagDeception    = "deception"
	TagIntimidation = "intimidation"
	TagFly          = "fly"
	TagClimb        = "climb"
	TagSwim         = "swim"
	TagRitualCaster = "ritual-caster"
	TagTelepathy    = "telepathy"
	TagTeleport     = "teleport"
	TagHeavyArmor   = "heavy-armor"
	TagMediumArmor  = "medium-armor"
	TagShieldSpell  = "shield-spell"
)

// MaxScore caps every pillar
const MaxScore = 100.0

// Scores holds one value per pillar
type Scores struct {
	Social        float64 `json:"social"`
	Exploration   float64 `json:"exploration"`
	Control       float64 `json:"control"`
	Mobility      float64 `json:"mobility"`
	Survivability float64 `json:"survivability"`
}

// Weights says how much a campaign cares about each pillar
type Weights struct {
	Social        float64 `json:"social" yaml:"social"`
	Exploration   float64 `json:"exploration" yaml:"exploration"`
	Control       float64 `json:"control" yaml:"control"`
	Mobility      float64 `json:"mobility" yaml:"mobility"`
	Survivability float64 `json:"survivability" yaml:"survivability"`
}

// EqualWeights counts every pillar the same
var EqualWeights = Weights{Social: 1, Exploration: 1, Control: 1, Mobility: 1, Survivability: 1}

// Total is the sum of all weights
func (w Weights) Total() float64 {
	return w.Social + w.Exploration + w.Control + w.Mobility + w.Survivability
}

func modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

func (c Character) hasTag(tag string) bool {
	return slices.ContainsFunc(c.Tags, func(have string) bool { return strings.EqualFold(have, tag) })
}

func (c Character) hasFeat(feat string) bool {
	return slices.ContainsFunc(c.Feats, func(have string) bool { return strings.EqualFold(have, feat) })
}

// bonus adds points when cond holds
func bonus(cond bool, points float64) float64 {
	if cond {
		return points
	}
	return 0
}

// Social rewards Charisma, social skill tags and talker classes
func Social(c Character) float64 {
	score := float64(max(0, modifier(c.CHA))) * 10
	score += bonus(c.hasTag(TagPersuasion), 20)
	score += bonus(c.hasTag(TagDeception), 20)
	score += bonus(c.hasTag(TagIntimidation), 20)
	score += bonus(c.Class == "Bard", 30)
	score += bonus(c.Class == "Warlock", 20)
	score += bonus(c.Subclass == "College of Eloquence", 40)
	return min(MaxScore, score)
}

// Exploration rewards movement modes, perception, utility and wilderness classes
func Exploration(c Character) float64 {
	score := bonus(c.hasTag(TagFly), 25)
	score += bonus(c.hasTag(TagClimb), 15)
	score += bonus(c.hasTag(TagSwim), 10)
	score += float64(max(0, modifier(c.DEX))) * 5
	score += float64(max(0, modifier(c.WIS))) * 5
	score += bonus(c.hasTag(TagRitualCaster), 20)
	score += bonus(c.hasTag(TagTelepathy), 15)
	score += bonus(c.Class == "Ranger", 25)
	score += bonus(c.Class == "Druid", 20)
	return min(MaxScore, score)
}

// Control rewards a strong casting ability on control classes and the
// battlefield control feats.
func Control(c Character) float64 {
	score := 0.0
	if mod := SpellcastingModifier(c); mod > 0 {
		score += float64(mod) * 8
		score += bonus(c.Class == "Wizard", 30)
		score += bonus(c.Class == "Sorcerer", 25)
		score += bonus(c.Class == "Warlock", 20)
		score += bonus(c.Subclass == "School of Enchantment", 20)
	}
	score += bonus(c.hasFeat("Sentinel"), 15)
	score += bonus(c.hasFeat("Polearm Master"), 10)
	return min(MaxScore, score)
}

// Mobility starts at 30 for base speed
func Mobility(c Character) float64 {
	score := 30.0
	score += bonus(c.hasTag(TagFly), 30)
	score += bonus(c.hasTag(TagTeleport), 25)
	score += bonus(c.hasFeat("Mobile"), 20)
	score += bonus(c.Class == "Monk", 25)
	score += bonus(c.Class == "Rogue", 15)
	score += float64(max(0, modifier(c.DEX))) * 3
	return min(MaxScore, score)
}

// Survivability splits the scale between hit points (d8 hit dice, up to
// 50) and armor class (3 points per AC above 10, up to 50). Armor tags
// replace the unarmored AC and the Shield spell adds 2.
func Survivability(c Character) float64 {
	dex := modifier(c.DEX)
	hp := float64(c.Level * (8 + modifier(c.CON)))

	ac := 10 + dex
	switch {
	case c.hasTag(TagHeavyArmor):
		ac = 18
	case c.hasTag(TagMediumArmor):
		ac = 14 + min(2, dex)
	}
	if c.hasTag(TagShieldSpell) {
		ac += 2
	}

	hpScore := max(0, min(50, hp/2))
	acScore := max(0, min(50, float64(ac-10)*3))
	return hpScore + acScore
}

// SpellcastingModifier is the modifier of the class's casting ability, or 0
// for classes that do not cast.
func SpellcastingModifier(c Character) int {
	switch c.Class {
	case "Wizard", "Eldritch Knight", "Arcane Trickster":
		return modifier(c.INT)
	case "Cleric", "Druid", "Ranger":
		return modifier(c.WIS)
	case "Bard", "Sorcerer", "Warlock", "Paladin":
		return modifier(c.CHA)
	}
	return 0
}

// Score computes every pillar for c
func Score(c Character) Scores {
	return Scores{
		Social:        Social(c),
		Exploration:   Exploration(c),
		Control:       Control(c),
		Mobility:      Mobility(c),
		Survivability: Survivability(c),
	}
}

// Weighted is the weight-averaged pillar score. Zero total weight gives 0.
func Weighted(s Scores, w Weights) float64 {
	total := w.Total()
	if total == 0 {
		return 0
	}
	sum := s.Social*w.Social +
		s.Exploration*w.Exploration +
		s.Control*w.Control +
		s.Mobility*w.Mobility +
		s.Survivability*w.Survivability
	return sum / total
}
