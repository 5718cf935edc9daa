package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// TradeoffPolicy controls when Sharpshooter or Great Weapon Master is used
type TradeoffPolicy string

const (
	// PolicyAuto uses the trade-off only when it raises expected damage
	PolicyAuto   TradeoffPolicy = "auto"
	PolicyAlways TradeoffPolicy = "always"
	PolicyOff    TradeoffPolicy = "off"
)

// TradeoffPolicies lists every accepted policy
var TradeoffPolicies = []string{string(PolicyAuto), string(PolicyAlways), string(PolicyOff)}

// Enemy is the target being attacked
type Enemy struct {
	AC      int      `json:"ac" yaml:"ac"`
	HP      int      `json:"hp" yaml:"hp"`
	Resists []string `json:"resists,omitempty" yaml:"resists,omitempty"`
	Immunes []string `json:"immunes,omitempty" yaml:"immunes,omitempty"`
}

// Buffs are effects on the attacker or the target
type Buffs struct {
	// Bless is the die added to attack rolls, usually "1d4"
	Bless string `json:"bless,omitempty" yaml:"bless,omitempty"`
	// Bane is the die subtracted from attack rolls
	Bane string `json:"bane,omitempty" yaml:"bane,omitempty"`
	// FaerieFire grants advantage against the target
	FaerieFire bool `json:"faerie_fire,omitempty" yaml:"faerie_fire,omitempty"`
}

// Policies choose per-feat trade-off behaviour
type Policies struct {
	Sharpshooter      TradeoffPolicy `json:"ss,omitempty" yaml:"ss,omitempty"`
	GreatWeaponMaster TradeoffPolicy `json:"gwm,omitempty" yaml:"gwm,omitempty"`
}

// Scenario describes the fight a build is analysed against
type Scenario struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Enemy     Enemy    `json:"enemy" yaml:"enemy"`
	Advantage string   `json:"advantage" yaml:"advantage"`
	Cover     int      `json:"cover,omitempty" yaml:"cover,omitempty"`
	Buffs     Buffs    `json:"buffs" yaml:"buffs"`
	Policies  Policies `json:"policies" yaml:"policies"`
	CreatedAt int64    `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt int64    `json:"updated_at,omitempty" yaml:"-"`
}

var _ core.Entity = (*Scenario)(nil)

// GetID implements core.Entity
func (s *Scenario) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Scenario) GetType() string {
	return EntityTypeScenario
}

// EffectiveAC is the enemy AC plus cover
func (s *Scenario) EffectiveAC() int {
	return s.Enemy.AC + s.Cover
}

// PolicyFor returns the policy for a trade-off feat. Unset means auto.
func (s *Scenario) PolicyFor(feat string) TradeoffPolicy {
	var p TradeoffPolicy
	switch feat {
	case FeatSharpshooter:
		p = s.Policies.Sharpshooter
	case FeatGreatWeaponMaster:
		p = s.Policies.GreatWeaponMaster
	}
	if p == "" {
		return PolicyAuto
	}
	return p
}

// DefaultScenario is a typical AC 16, 90 HP opponent with no modifiers
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:      "Default",
		Enemy:     Enemy{AC: 16, HP: 90},
		Advantage: "normal",
		Policies: Policies{
			Sharpshooter:      PolicyAuto,
			GreatWeaponMaster: PolicyAuto,
		},
	}
}

// Ref identifies a stored entity without loading it
type Ref struct {
	ID   string
	Type string
}

var _ core.Entity = Ref{}

// GetID implements core.Entity
func (r Ref) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r Ref) GetType() string {
	return r.Type
}
