package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

func TestAbilityModifier(t *testing.T) {
	cases := map[int]int{1: -5, 7: -2, 8: -1, 9: -1, 10: 0, 11: 0, 15: 2, 18: 4, 20: 5, 30: 10}
	for score, want := range cases {
		assert.Equal(t, want, entities.AbilityModifier(score), "score %d", score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	cases := map[int]int{0: 2, 1: 2, 4: 2, 5: 3, 9: 4, 13: 5, 17: 6, 20: 6}
	for level, want := range cases {
		assert.Equal(t, want, entities.ProficiencyBonus(level), "level %d", level)
	}
}

func TestAbilityScoresModifiers(t *testing.T) {
	mods := entities.AbilityScores{STR: 16, DEX: 14, CON: 12, INT: 10, WIS: 8, CHA: 6}.Modifiers()
	assert.Equal(t, map[string]int{"STR": 3, "DEX": 2, "CON": 1, "INT": 0, "WIS": -1, "CHA": -2}, mods)
}

func TestBuildHelpers(t *testing.T) {
	b := entities.DefaultBuild("")
	b.ID = "build_1"
	b.Feats = []string{"great weapon master"}

	assert.Equal(t, "New Build", b.Name)
	assert.Equal(t, "build_1", b.GetID())
	assert.Equal(t, entities.EntityTypeBuild, b.GetType())
	assert.True(t, b.HasFeat(entities.FeatGreatWeaponMaster))
	assert.False(t, b.HasFeat(entities.FeatSharpshooter))

	b.Proficiency = 0
	b.Level = 9
	assert.Equal(t, 4, b.ProficiencyOrDefault())

	require.Len(t, b.Profiles, 1)
	p := b.Profiles[0]
	assert.True(t, p.HasProperty("Versatile"))
	assert.False(t, p.HasProperty(entities.PropertyHeavy))
	assert.Equal(t, 20, p.CritThreshold())
	p.CritRange = 0
	assert.Equal(t, 20, p.CritThreshold())
}

func TestBuildCloneIsDeep(t *testing.T) {
	b := entities.DefaultBuild("Original")
	b.Profiles[0].Riders = []entities.Rider{{Name: "Hex", Dice: "1d6"}}

	c := b.Clone()
	c.Name = "Copy"
	c.Profiles[0].Properties[0] = "heavy"
	c.Profiles[0].Riders[0].Dice = "2d6"

	assert.Equal(t, "Original", b.Name)
	assert.Equal(t, entities.PropertyVersatile, b.Profiles[0].Properties[0])
	assert.Equal(t, "1d6", b.Profiles[0].Riders[0].Dice)

	var nilBuild *entities.Build
	assert.Nil(t, nilBuild.Clone())
}

func TestScenarioHelpers(t *testing.T) {
	s := entities.DefaultScenario()
	s.ID = "scn_1"
	s.Cover = 2
	s.Policies.GreatWeaponMaster = ""
	s.Policies.Sharpshooter = entities.PolicyOff

	assert.Equal(t, 18, s.EffectiveAC())
	assert.Equal(t, entities.EntityTypeScenario, s.GetType())
	assert.Equal(t, entities.PolicyAuto, s.PolicyFor(entities.FeatGreatWeaponMaster))
	assert.Equal(t, entities.PolicyOff, s.PolicyFor(entities.FeatSharpshooter))
	assert.Equal(t, entities.PolicyAuto, s.PolicyFor("Lucky"))

	ref := entities.Ref{ID: "build_2", Type: entities.EntityTypeBuild}
	assert.Equal(t, "build_2", ref.GetID())
	assert.Equal(t, entities.EntityTypeBuild, ref.GetType())
}
