package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

type SweepTestSuite struct {
	suite.Suite
	analyzer *analysis.Analyzer
	build    *entities.Build
	scenario *entities.Scenario
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) SetupTest() {
	registry, err := rules.NewRegistry()
	s.Require().NoError(err)
	a, err := analysis.New(registry)
	s.Require().NoError(err)
	s.analyzer = a
	s.build = entities.DefaultBuild("Champion")
	s.scenario = entities.DefaultScenario()
}

func (s *SweepTestSuite) TestDefaultRange() {
	report, err := s.analyzer.SweepProfile(s.build, s.scenario, "", 0, 0)
	s.Require().NoError(err)

	s.Assert().Equal("longsword", report.ProfileID)
	s.Assert().Empty(report.Feat)
	s.Assert().InDelta(4, report.AttackBonus, 1e-9)
	s.Assert().Equal("1d8+2", report.HitDamage)
	s.Require().Len(report.Points, 16)
	s.Assert().Equal(10, report.Points[0].Defense)
	s.Assert().Equal(25, report.Points[15].Defense)

	// AC 16 matches the plain analysis
	s.Assert().InDelta(3.15, report.Points[6].Result.Baseline.ExpectedDamage, 1e-9)
	s.Assert().InDelta(3.525, report.Points[6].Result.Modified.ExpectedDamage, 1e-9)

	s.Require().Len(report.Windows, 3)
	s.Assert().Equal(damage.Window{From: 10, To: 16, Chosen: damage.ChoiceModified}, report.Windows[0])
	s.Assert().Equal(damage.Window{From: 17, To: 22, Chosen: damage.ChoiceBaseline}, report.Windows[1])
	s.Assert().Equal(damage.Window{From: 23, To: 25, Chosen: damage.ChoiceModified}, report.Windows[2])
}

func (s *SweepTestSuite) TestCoverShiftsDefense() {
	s.scenario.Cover = 5

	report, err := s.analyzer.SweepProfile(s.build, s.scenario, "longsword", 12, 14)
	s.Require().NoError(err)
	s.Require().Len(report.Points, 3)
	s.Assert().Equal(17, report.Points[0].Defense)
	s.Assert().Equal(19, report.Points[2].Defense)
}

func (s *SweepTestSuite) TestIgnoresAppliedPolicy() {
	s.build.Feats = []string{entities.FeatGreatWeaponMaster}
	s.build.Profiles[0].Properties = []string{entities.PropertyHeavy, entities.PropertyTwoHanded}
	s.scenario.Policies.GreatWeaponMaster = entities.PolicyAlways

	report, err := s.analyzer.SweepProfile(s.build, s.scenario, "", 16, 16)
	s.Require().NoError(err)
	s.Assert().Equal(entities.FeatGreatWeaponMaster, report.Feat)
	s.Assert().InDelta(4, report.AttackBonus, 1e-9)
	s.Assert().Equal("1d8+2", report.HitDamage)
}

func (s *SweepTestSuite) TestEmptyRange() {
	_, err := s.analyzer.SweepProfile(s.build, s.scenario, "", 20, 10)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SweepTestSuite) TestUnknownProfile() {
	_, err := s.analyzer.SweepProfile(s.build, s.scenario, "halberd", 0, 0)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("halberd", errors.GetMeta(err)["profile_id"])
}

func (s *SweepTestSuite) TestNoProfiles() {
	s.build.Profiles = nil

	_, err := s.analyzer.SweepProfile(s.build, s.scenario, "", 0, 0)
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}
