package external

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// ToAttackProfile builds an attack profile template from an SRD weapon.
// Formulas reference ability modifiers and are resolved per build.
func ToAttackProfile(w *WeaponData) entities.AttackProfile {
	props := make([]string, 0, len(w.Properties)+1)
	for _, p := range w.Properties {
		props = append(props, strings.ToLower(p))
	}
	if w.IsRanged() && !slices.Contains(props, entities.PropertyRanged) {
		props = append(props, entities.PropertyRanged)
	}

	ability := "STR"
	switch {
	case slices.Contains(props, entities.PropertyFinesse):
		ability = "max(STR, DEX)"
	case w.IsRanged():
		ability = "DEX"
	}

	profile := entities.AttackProfile{
		ID:                 Slug(w.ID),
		Name:               w.Name,
		Type:               entities.AttackTypeWeapon,
		AttackBonusFormula: "PB + " + ability,
		DamageType:         strings.ToLower(w.DamageType),
		CritRange:          20,
		Properties:         props,
	}

	// Some SRD weapons (net, blowgun) have no die or a flat one
	expr := notation.Parse(w.DamageDice)
	switch expr.Kind {
	case notation.KindDice:
		profile.DamageHit = fmt.Sprintf("%dd%d+%s", expr.Count, expr.Sides, ability)
		profile.DamageCrit = fmt.Sprintf("%dd%d+%s", expr.Count*2, expr.Sides, ability)
	case notation.KindFlat:
		profile.DamageHit = w.DamageDice
		profile.DamageCrit = w.DamageDice
	}
	return profile
}
