package analysis

import (
	"fmt"
	"strings"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// Severity of a build finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem Lint found with a build
type Finding struct {
	ID       string   `json:"id"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

var martialClasses = map[string]bool{"Barbarian": true, "Monk": true, "Paladin": true, "Ranger": true}

var pointBuyCost = map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}

type linter struct {
	findings []Finding
}

func (l *linter) add(sev Severity, id, field, format string, args ...any) {
	l.findings = append(l.findings, Finding{
		ID:       id,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

// Lint checks a build for rule mistakes. Errors make the build unusable for
// analysis; warnings are advisory.
func Lint(b *entities.Build) []Finding {
	l := &linter{}

	l.basics(b)
	l.abilities(b)
	l.feats(b)
	l.classFeatures(b)
	l.profiles(b)

	return l.findings
}

// HasErrors reports whether any finding is an error
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (l *linter) basics(b *entities.Build) {
	if strings.TrimSpace(b.Name) == "" {
		l.add(SeverityError, "empty-name", "name", "build must have a name")
	}
	if b.Level < 1 || b.Level > 20 {
		l.add(SeverityError, "invalid-level", "level", "level must be between 1 and 20")
		return
	}
	if expected := entities.ProficiencyBonus(b.Level); b.Proficiency != 0 && b.Proficiency != expected {
		l.add(SeverityWarning, "incorrect-proficiency", "proficiency",
			"proficiency bonus should be %d for level %d", expected, b.Level)
	}
}

func (l *linter) abilities(b *entities.Build) {
	scores := []struct {
		name  string
		score int
	}{
		{"STR", b.Abilities.STR}, {"DEX", b.Abilities.DEX}, {"CON", b.Abilities.CON},
		{"INT", b.Abilities.INT}, {"WIS", b.Abilities.WIS}, {"CHA", b.Abilities.CHA},
	}

	total := 0
	for _, s := range scores {
		switch {
		case s.score < 1 || s.score > 30:
			l.add(SeverityError, "invalid-"+strings.ToLower(s.name), "abilities."+strings.ToLower(s.name),
				"%s must be between 1 and 30", s.name)
		case s.score > 20:
			l.add(SeverityWarning, "high-"+strings.ToLower(s.name), "abilities",
				"%s above 20 needs a magic item or boon", s.name)
		}

		cost, ok := pointBuyCost[s.score]
		if !ok {
			cost = max(0, (s.score-13)*2+5)
		}
		total += cost
	}
	if total > 27 {
		l.add(SeverityWarning, "point-buy-exceeded", "abilities",
			"ability scores cost %d points (standard point buy is 27)", total)
	}
	if b.Abilities.CON < 10 {
		l.add(SeverityWarning, "low-constitution", "abilities", "low Constitution hurts survivability")
	}
}

func (l *linter) feats(b *entities.Build) {
	if b.HasFeat(entities.FeatSharpshooter) && b.HasFeat(entities.FeatGreatWeaponMaster) {
		l.add(SeverityWarning, "conflicting-weapon-feats", "feats",
			"Sharpshooter and Great Weapon Master apply to different weapons")
	}
	if b.HasFeat(entities.FeatElvenAccuracy) && b.Class != "Barbarian" && !b.HasFeat("Reckless Attack") {
		l.add(SeverityWarning, "elven-accuracy-no-advantage", "feats",
			"Elven Accuracy needs a reliable source of advantage")
	}
}

func expectedExtraAttacks(class string, level int) int {
	switch {
	case class == "Fighter":
		switch {
		case level >= 20:
			return 3
		case level >= 11:
			return 2
		case level >= 5:
			return 1
		}
		return 0
	case martialClasses[class] && level >= 5:
		return 1
	}
	return 0
}

func (l *linter) classFeatures(b *entities.Build) {
	f := b.Features

	if expected := expectedExtraAttacks(b.Class, b.Level); f.ExtraAttack != expected {
		l.add(SeverityWarning, "incorrect-extra-attack", "features.extra_attack",
			"%s level %d should have %d extra attack(s)", b.Class, b.Level, expected)
	}

	if b.Class == "Fighter" {
		expected := 0
		switch {
		case b.Level >= 17:
			expected = 2
		case b.Level >= 2:
			expected = 1
		}
		if f.ActionSurge != expected {
			l.add(SeverityWarning, "incorrect-action-surge", "features.action_surge",
				"Fighter level %d should have %d Action Surge use(s)", b.Level, expected)
		}
	} else if f.ActionSurge > 0 {
		l.add(SeverityError, "invalid-action-surge", "features.action_surge", "only Fighters get Action Surge")
	}

	if b.Class == "Rogue" {
		if expected := (b.Level + 1) / 2; f.SneakAttackDice != expected {
			l.add(SeverityWarning, "incorrect-sneak-attack", "features.sneak_attack_dice",
				"Rogue level %d should have %dd6 Sneak Attack", b.Level, expected)
		}
	} else if f.SneakAttackDice > 0 {
		l.add(SeverityWarning, "sneak-attack-no-rogue", "features.sneak_attack_dice",
			"Sneak Attack usually needs Rogue levels")
	}

	if f.HexbladeCurse && !(b.Class == "Warlock" && b.Subclass == "The Hexblade") {
		l.add(SeverityWarning, "hexblade-curse-no-hexblade", "features.hexblade_curse",
			"Hexblade's Curse needs the Hexblade patron")
	}
}

func (l *linter) profiles(b *entities.Build) {
	if len(b.Profiles) == 0 {
		l.add(SeverityWarning, "no-attack-profiles", "profiles", "build has no attack profiles")
		return
	}

	for i, p := range b.Profiles {
		label := p.Name
		if strings.TrimSpace(label) == "" {
			label = fmt.Sprintf("profile %d", i+1)
			l.add(SeverityError, fmt.Sprintf("profile-%d-no-name", i), "profiles", "%s must have a name", label)
		}
		if strings.TrimSpace(p.DamageHit) == "" {
			l.add(SeverityError, fmt.Sprintf("profile-%d-no-damage", i), "profiles", "%s must have a damage formula", label)
		}

		threshold := p.CritThreshold()
		switch {
		case threshold < 2 || threshold > 20:
			l.add(SeverityError, fmt.Sprintf("profile-%d-invalid-crit", i), "profiles",
				"%s crit range must be between 2 and 20", label)
		case threshold < 19:
			l.add(SeverityWarning, fmt.Sprintf("profile-%d-unusual-crit", i), "profiles",
				"%s has an unusual critical range", label)
		}

		if strings.Contains(p.DamageHit, "STR") && b.Abilities.STR < 13 {
			l.add(SeverityWarning, fmt.Sprintf("profile-%d-low-str", i), "profiles", "%s uses STR but STR is low", label)
		}
		if strings.Contains(p.DamageHit, "DEX") && b.Abilities.DEX < 13 {
			l.add(SeverityWarning, fmt.Sprintf("profile-%d-low-dex", i), "profiles", "%s uses DEX but DEX is low", label)
		}
	}
}
