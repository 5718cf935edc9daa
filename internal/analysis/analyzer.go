// Package analysis runs a build against a scenario. It resolves the build's
// formulas, applies scenario buffs and trade-off policies, and hands plain
// numbers to the combat engine. It holds no state besides the formula
// registry and does no I/O.
package analysis

import (
	"fmt"
	"strings"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

// Analyzer turns build and scenario snapshots into reports
type Analyzer struct {
	rules *rules.Registry
}

// New creates an analyzer backed by the formula registry
func New(registry *rules.Registry) (*Analyzer, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("formula registry is required")
	}
	return &Analyzer{rules: registry}, nil
}

// TradeoffReport records how a trade-off feat was handled for one attack
type TradeoffReport struct {
	Feat    string                  `json:"feat"`
	Policy  entities.TradeoffPolicy `json:"policy"`
	Result  damage.TradeoffResult   `json:"result"`
	Applied bool                    `json:"applied"`
}

// AttackReport is one attack profile after resolution and evaluation
type AttackReport struct {
	ProfileID      string          `json:"profile_id"`
	Name           string          `json:"name"`
	AttackBonus    float64         `json:"attack_bonus"`
	HitDamage      string          `json:"hit_damage"`
	CritDamage     string          `json:"crit_damage"`
	CritThreshold  int             `json:"crit_threshold"`
	RerollLowFaces bool            `json:"reroll_low_faces,omitempty"`
	BestOfThree    bool            `json:"best_of_three,omitempty"`
	HitChance      float64         `json:"hit_chance"`
	CritRate       float64         `json:"crit_rate"`
	ExpectedDamage float64         `json:"expected_damage"`
	Tradeoff       *TradeoffReport `json:"tradeoff,omitempty"`
}

// RiderReport is the expected damage of one rider per round
type RiderReport struct {
	Name           string  `json:"name"`
	Dice           string  `json:"dice"`
	OncePerTurn    bool    `json:"once_per_turn"`
	Usage          float64 `json:"usage"`
	ExpectedDamage float64 `json:"expected_damage"`
}

// Report is the full analysis of a build against a scenario
type Report struct {
	BuildID         string               `json:"build_id,omitempty"`
	ScenarioID      string               `json:"scenario_id,omitempty"`
	Defense         int                  `json:"defense"`
	Mode            probability.RollMode `json:"mode"`
	Attacks         []AttackReport       `json:"attacks"`
	Round           combat.Result        `json:"round"`
	Riders          []RiderReport        `json:"riders,omitempty"`
	RiderDPR        float64              `json:"rider_dpr"`
	CombinedDPR     float64              `json:"combined_dpr"`
	AverageCritRate float64              `json:"average_crit_rate"`
	TimeToKill      combat.TimeToKill    `json:"time_to_kill"`
	TimeToKillTable []combat.TimeToKill  `json:"time_to_kill_table"`
	Findings        []Finding            `json:"findings,omitempty"`
	Warnings        []string             `json:"warnings,omitempty"`
}

// conditions are the scenario inputs shared by every attack
type conditions struct {
	defense   int
	mode      probability.RollMode
	blessDie  string
	baneShift float64
	vars      rules.Variables
	warnings  []string
}

// resolved keeps the profile before (base) and after (core) any trade-off
type resolved struct {
	profile  entities.AttackProfile
	base     combat.Profile
	core     combat.Profile
	tradeoff *TradeoffReport
}

func (a *Analyzer) conditionsFor(build *entities.Build, scenario *entities.Scenario) (*conditions, error) {
	if build == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	if scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}

	mode, err := probability.ParseRollMode(scenario.Advantage)
	if err != nil {
		return nil, errors.Wrap(err, "invalid scenario advantage")
	}
	if scenario.Buffs.FaerieFire {
		switch mode {
		case probability.ModeNormal:
			mode = probability.ModeAdvantage
		case probability.ModeDisadvantage:
			mode = probability.ModeNormal
		}
	}

	c := &conditions{
		defense:   scenario.EffectiveAC(),
		mode:      mode,
		blessDie:  scenario.Buffs.Bless,
		baneShift: probability.ModifierShift(scenario.Buffs.Bane, probability.ModifierPenalty),
		vars:      rules.VariablesFor(build),
	}
	for _, die := range []string{scenario.Buffs.Bless, scenario.Buffs.Bane} {
		if die != "" && !notation.Parse(die).Valid() {
			c.warnings = append(c.warnings, fmt.Sprintf("buff die %q is not dice notation and counts as 0", die))
		}
	}
	return c, nil
}

// validateCritRanges rejects crit ranges the d20 cannot produce
func validateCritRanges(build *entities.Build) error {
	vb := errors.NewValidationBuilder()
	for i := range build.Profiles {
		errors.ValidateRange(fmt.Sprintf("profiles[%d].crit_range", i), build.Profiles[i].CritThreshold(), 2, 20, vb)
	}
	return vb.Build()
}

// Analyze evaluates every attack profile of build against scenario
func (a *Analyzer) Analyze(build *entities.Build, scenario *entities.Scenario) (*Report, error) {
	c, err := a.conditionsFor(build, scenario)
	if err != nil {
		return nil, err
	}
	if err := validateCritRanges(build); err != nil {
		return nil, err
	}

	report := &Report{
		BuildID:    build.ID,
		ScenarioID: scenario.ID,
		Defense:    c.defense,
		Mode:       c.mode,
		Attacks:    make([]AttackReport, 0, len(build.Profiles)),
		Findings:   Lint(build),
	}

	attacks := make([]resolved, 0, len(build.Profiles))
	profiles := make([]combat.Profile, 0, len(build.Profiles))
	for _, p := range build.Profiles {
		r := a.resolve(build, scenario, p, c)
		attacks = append(attacks, r)
		profiles = append(profiles, r.core)
	}

	report.Round = combat.Aggregate(profiles, c.coreScenario())

	critSum := 0.0
	for i, r := range attacks {
		out := report.Round.PerAttack[i]
		critSum += out.CritRate
		report.Attacks = append(report.Attacks, AttackReport{
			ProfileID:      r.profile.ID,
			Name:           r.profile.Name,
			AttackBonus:    r.core.AttackBonus,
			HitDamage:      r.core.HitDamage,
			CritDamage:     r.core.CritDamage,
			CritThreshold:  r.core.CritThreshold,
			RerollLowFaces: r.core.RerollLowFaces,
			BestOfThree:    r.core.BestOfThree,
			HitChance:      out.HitChance,
			CritRate:       out.CritRate,
			ExpectedDamage: out.ExpectedDamage,
			Tradeoff:       r.tradeoff,
		})
	}
	if len(attacks) > 0 {
		report.AverageCritRate = critSum / float64(len(attacks))
	}

	report.Riders, report.RiderDPR = riderDamage(build, attacks, report.Round.PerAttack)
	report.CombinedDPR = report.Round.TotalDPR + report.RiderDPR

	if scenario.Enemy.HP > 0 {
		report.TimeToKill = combat.EstimateTimeToKill(report.CombinedDPR, float64(scenario.Enemy.HP))
	}
	report.TimeToKillTable = combat.Table(report.CombinedDPR, nil)

	report.Warnings = append(report.Warnings, c.warnings...)
	for _, text := range report.Round.Unparseable {
		report.Warnings = append(report.Warnings, fmt.Sprintf("damage %q is not dice notation and counts as 0", text))
	}

	return report, nil
}

// tradeoffInput folds the Bless die into the bonus since the optimizer takes
// a plain number.
func (c *conditions) tradeoffInput(p combat.Profile) damage.TradeoffInput {
	return damage.TradeoffInput{
		AttackBonus:    p.AttackBonus + probability.ModifierShift(c.blessDie, probability.ModifierBonus),
		HitDamage:      p.HitDamage,
		CritDamage:     p.CritDamage,
		Defense:        c.defense,
		Mode:           c.mode,
		CritThreshold:  p.CritThreshold,
		RerollLowFaces: p.RerollLowFaces,
		BestOfThree:    p.BestOfThree,
	}
}

func (c *conditions) coreScenario() combat.Scenario {
	return combat.Scenario{
		Defense:      c.defense,
		Mode:         c.mode,
		ModifierDie:  c.blessDie,
		ModifierKind: probability.ModifierBonus,
	}
}

// resolve turns a stored profile into engine input, applying any trade-off
// policy. Formula problems become warnings on c.
func (a *Analyzer) resolve(build *entities.Build, scenario *entities.Scenario, p entities.AttackProfile, c *conditions) resolved {
	bonus := a.attackBonus(build, p, c)

	hit, err := a.rules.ResolveDamage(p.DamageHit, c.vars)
	if err != nil {
		c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", p.Name, errors.GetMessage(err)))
	}

	crit := notation.DoubleDice(hit)
	if strings.TrimSpace(p.DamageCrit) != "" {
		crit, err = a.rules.ResolveDamage(p.DamageCrit, c.vars)
		if err != nil {
			c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", p.Name, errors.GetMessage(err)))
		}
	}

	core := combat.Profile{
		Name:           p.Name,
		AttackBonus:    float64(bonus) + c.baneShift,
		HitDamage:      hit,
		CritDamage:     crit,
		CritThreshold:  p.CritThreshold(),
		RerollLowFaces: rerollsLowFaces(build, p),
		BestOfThree:    build.HasFeat(entities.FeatElvenAccuracy),
	}

	out := resolved{profile: p, base: core, core: core}

	feat := tradeoffFeat(build, p)
	if feat == "" {
		return out
	}
	policy := scenario.PolicyFor(feat)
	if policy == entities.PolicyOff {
		return out
	}

	result := damage.EvaluateTradeoff(c.tradeoffInput(core))
	applied := policy == entities.PolicyAlways || result.Chosen == damage.ChoiceModified
	out.tradeoff = &TradeoffReport{Feat: feat, Policy: policy, Result: result, Applied: applied}

	if applied {
		out.core.AttackBonus += float64(damage.DefaultDelta.ToHit)
		out.core.HitDamage = notation.AddFlat(core.HitDamage, damage.DefaultDelta.ToDamage)
		out.core.CritDamage = notation.AddFlat(core.CritDamage, damage.DefaultDelta.ToDamage)
	}
	return out
}

// attackBonus evaluates the profile formula. Without one it falls back to
// proficiency plus the weapon's ability, plus Archery and magic weapon bonuses.
func (a *Analyzer) attackBonus(build *entities.Build, p entities.AttackProfile, c *conditions) int {
	if strings.TrimSpace(p.AttackBonusFormula) != "" {
		bonus, err := a.rules.Eval(p.AttackBonusFormula, c.vars)
		if err == nil {
			return bonus
		}
		c.warnings = append(c.warnings, fmt.Sprintf("%s: %s, using default attack bonus", p.Name, errors.GetMessage(err)))
	}

	mods := c.vars.Modifiers
	bonus := c.vars.PB
	switch {
	case p.Type == entities.AttackTypeSpell || p.Type == entities.AttackTypeCantrip:
		bonus += max(mods["INT"], mods["WIS"], mods["CHA"])
	case p.HasProperty(entities.PropertyFinesse):
		bonus += max(mods["STR"], mods["DEX"])
	case p.HasProperty(entities.PropertyRanged):
		bonus += mods["DEX"]
	default:
		bonus += mods["STR"]
	}

	if isWeapon(p) {
		if p.HasProperty(entities.PropertyRanged) && strings.EqualFold(build.Features.FightingStyle, entities.FightingStyleArchery) {
			bonus += 2
		}
		for _, item := range build.Items {
			if strings.EqualFold(item.Slot, "weapon") {
				bonus += item.Bonus
			}
		}
	}
	return bonus
}

func isWeapon(p entities.AttackProfile) bool {
	return p.Type == "" || p.Type == entities.AttackTypeWeapon
}

// rerollsLowFaces applies Great Weapon Fighting to two-handed and versatile
// melee weapons.
func rerollsLowFaces(build *entities.Build, p entities.AttackProfile) bool {
	if !isWeapon(p) || p.HasProperty(entities.PropertyRanged) {
		return false
	}
	if !strings.EqualFold(build.Features.FightingStyle, entities.FightingStyleGreatWeaponFighting) {
		return false
	}
	return p.HasProperty(entities.PropertyTwoHanded) || p.HasProperty(entities.PropertyVersatile)
}

// tradeoffFeat names the -5/+10 feat that applies to the profile, if any
func tradeoffFeat(build *entities.Build, p entities.AttackProfile) string {
	if !isWeapon(p) {
		return ""
	}
	switch {
	case p.HasProperty(entities.PropertyRanged) && build.HasFeat(entities.FeatSharpshooter):
		return entities.FeatSharpshooter
	case !p.HasProperty(entities.PropertyRanged) && p.HasProperty(entities.PropertyHeavy) && build.HasFeat(entities.FeatGreatWeaponMaster):
		return entities.FeatGreatWeaponMaster
	}
	return ""
}
