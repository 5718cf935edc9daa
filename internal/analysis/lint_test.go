package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

type LintTestSuite struct {
	suite.Suite
	build *entities.Build
}

func TestLintSuite(t *testing.T) {
	suite.Run(t, new(LintTestSuite))
}

func (s *LintTestSuite) SetupTest() {
	s.build = entities.DefaultBuild("")
}

func (s *LintTestSuite) ids(findings []analysis.Finding) []string {
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.ID)
	}
	return ids
}

func (s *LintTestSuite) TestDefaultBuildIsClean() {
	findings := analysis.Lint(s.build)
	s.Assert().Empty(findings)
	s.Assert().False(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestEmptyName() {
	s.build.Name = "  "

	findings := analysis.Lint(s.build)
	s.Assert().Contains(s.ids(findings), "empty-name")
	s.Assert().True(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestInvalidLevel() {
	s.build.Level = 21

	findings := analysis.Lint(s.build)
	s.Assert().Contains(s.ids(findings), "invalid-level")
	s.Assert().NotContains(s.ids(findings), "incorrect-proficiency")
	s.Assert().True(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestProficiencyMismatch() {
	s.build.Proficiency = 4

	findings := analysis.Lint(s.build)
	s.Require().Len(findings, 1)
	s.Assert().Equal("incorrect-proficiency", findings[0].ID)
	s.Assert().Equal(analysis.SeverityWarning, findings[0].Severity)
	s.Assert().False(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestAbilityOutOfRange() {
	s.build.Abilities.WIS = 0

	findings := analysis.Lint(s.build)
	s.Require().NotEmpty(findings)
	s.Assert().Equal("invalid-wis", findings[0].ID)
	s.Assert().Equal("abilities.wis", findings[0].Field)
	s.Assert().True(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestPointBuyExceeded() {
	s.build.Abilities = entities.AbilityScores{STR: 15, DEX: 15, CON: 15, INT: 15, WIS: 8, CHA: 8}

	s.Assert().Contains(s.ids(analysis.Lint(s.build)), "point-buy-exceeded")
}

func (s *LintTestSuite) TestConflictingWeaponFeats() {
	s.build.Feats = []string{entities.FeatSharpshooter, entities.FeatGreatWeaponMaster}

	s.Assert().Contains(s.ids(analysis.Lint(s.build)), "conflicting-weapon-feats")
}

func (s *LintTestSuite) TestExtraAttackByClassAndLevel() {
	s.build.Level = 11
	s.build.Proficiency = 4
	s.build.Features.ActionSurge = 1
	s.build.Features.ExtraAttack = 1

	findings := analysis.Lint(s.build)
	s.Require().Len(findings, 1)
	s.Assert().Equal("incorrect-extra-attack", findings[0].ID)
	s.Assert().Contains(findings[0].Message, "2 extra attack")
}

func (s *LintTestSuite) TestActionSurgeOnlyForFighters() {
	s.build.Class = "Wizard"
	s.build.Features.ActionSurge = 1

	findings := analysis.Lint(s.build)
	s.Assert().Contains(s.ids(findings), "invalid-action-surge")
	s.Assert().True(analysis.HasErrors(findings))
}

func (s *LintTestSuite) TestSneakAttackDice() {
	s.build.Class = "Rogue"
	s.build.Level = 5
	s.build.Proficiency = 3
	s.build.Features.SneakAttackDice = 2

	s.Assert().Contains(s.ids(analysis.Lint(s.build)), "incorrect-sneak-attack")
}

func (s *LintTestSuite) TestProfileChecks() {
	s.build.Profiles = append(s.build.Profiles, entities.AttackProfile{CritRange: 1})

	ids := s.ids(analysis.Lint(s.build))
	s.Assert().Contains(ids, "profile-1-no-name")
	s.Assert().Contains(ids, "profile-1-no-damage")
	s.Assert().Contains(ids, "profile-1-invalid-crit")
}

func (s *LintTestSuite) TestNoProfiles() {
	s.build.Profiles = nil

	findings := analysis.Lint(s.build)
	s.Require().Len(findings, 1)
	s.Assert().Equal("no-attack-profiles", findings[0].ID)
}
