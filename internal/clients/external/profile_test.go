package external_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

func weapon(id, weaponRange, dice, damageType string, props ...string) *external.WeaponData {
	return &external.WeaponData{
		ID:          id,
		Name:        id,
		WeaponRange: weaponRange,
		DamageDice:  dice,
		DamageType:  damageType,
		Properties:  props,
	}
}

func TestToAttackProfile(t *testing.T) {
	testCases := []struct {
		name       string
		weapon     *external.WeaponData
		wantBonus  string
		wantHit    string
		wantCrit   string
		wantProps  []string
		wantDamage string
	}{
		{
			name:       "strength weapon",
			weapon:     weapon("greatsword", "Melee", "2d6", "Slashing", "Heavy", "Two-Handed"),
			wantBonus:  "PB + STR",
			wantHit:    "2d6+STR",
			wantCrit:   "4d6+STR",
			wantProps:  []string{entities.PropertyHeavy, entities.PropertyTwoHanded},
			wantDamage: "slashing",
		},
		{
			name:       "finesse weapon",
			weapon:     weapon("rapier", "Melee", "1d8", "Piercing", "Finesse"),
			wantBonus:  "PB + max(STR, DEX)",
			wantHit:    "1d8+max(STR, DEX)",
			wantCrit:   "2d8+max(STR, DEX)",
			wantProps:  []string{entities.PropertyFinesse},
			wantDamage: "piercing",
		},
		{
			name:       "ranged weapon",
			weapon:     weapon("longbow", "Ranged", "1d8", "Piercing", "Heavy", "Two-Handed"),
			wantBonus:  "PB + DEX",
			wantHit:    "1d8+DEX",
			wantCrit:   "2d8+DEX",
			wantProps:  []string{entities.PropertyHeavy, entities.PropertyTwoHanded, entities.PropertyRanged},
			wantDamage: "piercing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := external.ToAttackProfile(tc.weapon)

			assert.Equal(t, tc.weapon.ID, p.ID)
			assert.Equal(t, entities.AttackTypeWeapon, p.Type)
			assert.Equal(t, tc.wantBonus, p.AttackBonusFormula)
			assert.Equal(t, tc.wantHit, p.DamageHit)
			assert.Equal(t, tc.wantCrit, p.DamageCrit)
			assert.Equal(t, tc.wantProps, p.Properties)
			assert.Equal(t, tc.wantDamage, p.DamageType)
			assert.Equal(t, 20, p.CritRange)
		})
	}
}

func TestToAttackProfileWithoutDice(t *testing.T) {
	p := external.ToAttackProfile(&external.WeaponData{ID: "net", Name: "Net", WeaponRange: "Ranged"})
	assert.Empty(t, p.DamageHit)

	p = external.ToAttackProfile(&external.WeaponData{ID: "blowgun", Name: "Blowgun", DamageDice: "1"})
	assert.Equal(t, "1", p.DamageHit)
}
