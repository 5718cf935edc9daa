// Package entities holds the build and scenario records the service stores
// and analyses.
package entities

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeBuild    = "build"
	EntityTypeScenario = "scenario"
)

// Feat names the analyser reacts to
const (
	FeatSharpshooter      = "Sharpshooter"
	FeatGreatWeaponMaster = "Great Weapon Master"
	FeatElvenAccuracy     = "Elven Accuracy"
)

// Fighting styles the analyser reacts to
const (
	FightingStyleArchery             = "Archery"
	FightingStyleGreatWeaponFighting = "Great Weapon Fighting"
)

// Weapon properties, matching SRD property names in lower case
const (
	PropertyFinesse   = "finesse"
	PropertyHeavy     = "heavy"
	PropertyTwoHanded = "two-handed"
	PropertyRanged    = "ranged"
	PropertyVersatile = "versatile"
)

// AttackType classifies an attack profile
type AttackType string

const (
	AttackTypeWeapon  AttackType = "weapon"
	AttackTypeCantrip AttackType = "cantrip"
	AttackTypeSpell   AttackType = "spell"
)

// AbilityScores holds the six raw ability scores
type AbilityScores struct {
	STR int `json:"str" yaml:"str"`
	DEX int `json:"dex" yaml:"dex"`
	CON int `json:"con" yaml:"con"`
	INT int `json:"int" yaml:"int"`
	WIS int `json:"wis" yaml:"wis"`
	CHA int `json:"cha" yaml:"cha"`
}

// Modifiers maps ability abbreviations to their modifiers
func (a AbilityScores) Modifiers() map[string]int {
	return map[string]int{
		"STR": AbilityModifier(a.STR),
		"DEX": AbilityModifier(a.DEX),
		"CON": AbilityModifier(a.CON),
		"INT": AbilityModifier(a.INT),
		"WIS": AbilityModifier(a.WIS),
		"CHA": AbilityModifier(a.CHA),
	}
}

// AbilityModifier is floor((score - 10) / 2)
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyBonus for a character level, +2 at 1st rising to +6 at 17th
func ProficiencyBonus(level int) int {
	if level < 1 {
		return 2
	}
	return 2 + (level-1)/4
}

// Features are class features that change attack math
type Features struct {
	FightingStyle   string `json:"fighting_style,omitempty" yaml:"fighting_style,omitempty"`
	SneakAttackDice int    `json:"sneak_attack_dice,omitempty" yaml:"sneak_attack_dice,omitempty"`
	ActionSurge     int    `json:"action_surge,omitempty" yaml:"action_surge,omitempty"`
	ExtraAttack     int    `json:"extra_attack,omitempty" yaml:"extra_attack,omitempty"`
	HexbladeCurse   bool   `json:"hexblade_curse,omitempty" yaml:"hexblade_curse,omitempty"`
}

// Rider is extra damage dice attached to an attack, like Hunter's Mark
type Rider struct {
	Name        string `json:"name" yaml:"name"`
	Dice        string `json:"dice" yaml:"dice"`
	OncePerTurn bool   `json:"once_per_turn,omitempty" yaml:"once_per_turn,omitempty"`
}

// AttackProfile is one attack a build makes each round. Formulas may use
// PB, LEVEL and the ability abbreviations, e.g. "PB + DEX" or "1d8+STR".
type AttackProfile struct {
	ID                 string     `json:"id" yaml:"id"`
	Name               string     `json:"name" yaml:"name"`
	Type               AttackType `json:"type" yaml:"type"`
	AttackBonusFormula string     `json:"attack_bonus_formula,omitempty" yaml:"attack_bonus_formula,omitempty"`
	DamageHit          string     `json:"damage_hit" yaml:"damage_hit"`
	DamageCrit         string     `json:"damage_crit,omitempty" yaml:"damage_crit,omitempty"`
	DamageType         string     `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	// CritRange is the lowest natural roll that crits; 0 means 20.
	CritRange  int      `json:"crit_range,omitempty" yaml:"crit_range,omitempty"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Riders     []Rider  `json:"riders,omitempty" yaml:"riders,omitempty"`
}

// HasProperty reports whether the profile lists the weapon property
func (p *AttackProfile) HasProperty(property string) bool {
	return slices.ContainsFunc(p.Properties, func(have string) bool {
		return strings.EqualFold(have, property)
	})
}

// CritThreshold returns CritRange or 20 when unset
func (p *AttackProfile) CritThreshold() int {
	if p.CritRange == 0 {
		return 20
	}
	return p.CritRange
}

// Item is equipment with a flat bonus, e.g. a +1 weapon
type Item struct {
	Slot  string `json:"slot" yaml:"slot"`
	Name  string `json:"name" yaml:"name"`
	Bonus int    `json:"bonus" yaml:"bonus"`
}

// Build is a character configuration for combat analysis
type Build struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Level       int             `json:"level" yaml:"level"`
	Class       string          `json:"class" yaml:"class"`
	Subclass    string          `json:"subclass,omitempty" yaml:"subclass,omitempty"`
	Abilities   AbilityScores   `json:"abilities" yaml:"abilities"`
	Proficiency int             `json:"proficiency" yaml:"proficiency"`
	Feats       []string        `json:"feats,omitempty" yaml:"feats,omitempty"`
	Features    Features        `json:"features" yaml:"features"`
	Profiles    []AttackProfile `json:"profiles" yaml:"profiles"`
	Items       []Item          `json:"items,omitempty" yaml:"items,omitempty"`
	Tags        []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   int64           `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt   int64           `json:"updated_at,omitempty" yaml:"-"`
}

var _ core.Entity = (*Build)(nil)

// GetID implements core.Entity
func (b *Build) GetID() string {
	return b.ID
}

// GetType implements core.Entity
func (b *Build) GetType() string {
	return EntityTypeBuild
}

// HasFeat matches feat names case-insensitively
func (b *Build) HasFeat(feat string) bool {
	return slices.ContainsFunc(b.Feats, func(have string) bool {
		return strings.EqualFold(have, feat)
	})
}

// ProficiencyOrDefault returns Proficiency, falling back to the level table
func (b *Build) ProficiencyOrDefault() int {
	if b.Proficiency > 0 {
		return b.Proficiency
	}
	return ProficiencyBonus(b.Level)
}

// Clone returns a deep copy
func (b *Build) Clone() *Build {
	if b == nil {
		return nil
	}
	c := *b
	c.Feats = slices.Clone(b.Feats)
	c.Items = slices.Clone(b.Items)
	c.Tags = slices.Clone(b.Tags)
	c.Profiles = make([]AttackProfile, len(b.Profiles))
	for i, p := range b.Profiles {
		p.Properties = slices.Clone(p.Properties)
		p.Riders = slices.Clone(p.Riders)
		c.Profiles[i] = p
	}
	return &c
}

// DefaultBuild is a first level Champion swinging a longsword
func DefaultBuild(name string) *Build {
	if name == "" {
		name = "New Build"
	}
	return &Build{
		Name:        name,
		Level:       1,
		Class:       "Fighter",
		Subclass:    "Champion",
		Abilities:   AbilityScores{STR: 15, DEX: 14, CON: 13, INT: 12, WIS: 10, CHA: 8},
		Proficiency: 2,
		Profiles: []AttackProfile{
			{
				ID:                 "longsword",
				Name:               "Longsword",
				Type:               AttackTypeWeapon,
				AttackBonusFormula: "PB + STR",
				DamageHit:          "1d8+STR",
				DamageCrit:         "2d8+STR",
				DamageType:         "slashing",
				CritRange:          20,
				Properties:         []string{PropertyVersatile},
			},
		},
	}
}
