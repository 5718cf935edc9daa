package combatlab_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds"
	buildsmock "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds/mock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
	scenariosmock "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios/mock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	buildRepo    *buildsmock.MockRepository
	scenarioRepo *scenariosmock.MockRepository
	svc          combatlab.Service
	ctx          context.Context
	build        *entities.Build
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.buildRepo = buildsmock.NewMockRepository(s.ctrl)
	s.scenarioRepo = scenariosmock.NewMockRepository(s.ctrl)

	registry, err := rules.NewRegistry()
	s.Require().NoError(err)
	analyzer, err := analysis.New(registry)
	s.Require().NoError(err)

	svc, err := combatlab.NewOrchestrator(&combatlab.Config{
		BuildRepo:    s.buildRepo,
		ScenarioRepo: s.scenarioRepo,
		Analyzer:     analyzer,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()

	s.build = entities.DefaultBuild("Champion")
	s.build.ID = "build_1"
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := combatlab.NewOrchestrator(&combatlab.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	for _, field := range []string{"BuildRepo", "ScenarioRepo", "Analyzer"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestAnalyzeStoredBuildAgainstDefaultScenario() {
	s.buildRepo.EXPECT().
		Get(s.ctx, builds.GetInput{ID: "build_1"}).
		Return(&builds.GetOutput{Build: s.build}, nil)

	out, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
		Selection: combatlab.Selection{BuildID: "build_1"},
	})
	s.Require().NoError(err)

	report := out.Report
	s.Equal("build_1", report.BuildID)
	s.Equal(16, report.Defense)
	s.Require().Len(report.Attacks, 1)
	s.InDelta(3.15, report.CombinedDPR, 1e-9)
	s.InDelta(90/3.15, report.TimeToKill.ExpectedRounds, 1e-9)
}

func (s *OrchestratorTestSuite) TestAnalyzeStoredScenario() {
	scenario := entities.DefaultScenario()
	scenario.ID = "scn_1"
	scenario.Enemy.AC = 12

	s.scenarioRepo.EXPECT().
		Get(s.ctx, scenarios.GetInput{ID: "scn_1"}).
		Return(&scenarios.GetOutput{Scenario: scenario}, nil)

	out, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
		Selection: combatlab.Selection{Build: s.build, ScenarioID: "scn_1"},
	})
	s.Require().NoError(err)
	s.Equal("scn_1", out.Report.ScenarioID)
	s.Equal(12, out.Report.Defense)
	s.InDelta(0.65, out.Report.Attacks[0].HitChance, 1e-9)
}

func (s *OrchestratorTestSuite) TestAnalyzeInlineSnapshotsSkipRepositories() {
	scenario := entities.DefaultScenario()
	scenario.Advantage = "advantage"

	out, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
		Selection: combatlab.Selection{Build: s.build, BuildID: "ignored", Scenario: scenario},
	})
	s.Require().NoError(err)
	s.Equal(probability.ModeAdvantage, out.Report.Mode)
}

func (s *OrchestratorTestSuite) TestAnalyzeErrors() {
	s.Run("nothing selected", func() {
		_, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing build", func() {
		s.buildRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("build not found"))
		_, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
			Selection: combatlab.Selection{BuildID: "nope"},
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("missing scenario", func() {
		s.scenarioRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("scenario not found"))
		_, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
			Selection: combatlab.Selection{Build: s.build, ScenarioID: "nope"},
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("bad advantage", func() {
		scenario := entities.DefaultScenario()
		scenario.Advantage = "sideways"
		_, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
			Selection: combatlab.Selection{Build: s.build, Scenario: scenario},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("crit range out of bounds", func() {
		build := s.build.Clone()
		build.Profiles[0].CritRange = 25
		_, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
			Selection: combatlab.Selection{Build: build},
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAnalyzeKeepsWarnings() {
	s.build.Profiles[0].DamageHit = "a lot"
	s.build.Profiles[0].DamageCrit = "even more"

	out, err := s.svc.AnalyzeBuild(s.ctx, &combatlab.AnalyzeBuildInput{
		Selection: combatlab.Selection{Build: s.build},
	})
	s.Require().NoError(err)
	s.NotEmpty(out.Report.Warnings)
	s.True(out.Report.TimeToKill.NoOffense)
}

func (s *OrchestratorTestSuite) TestSweepTradeoff() {
	s.buildRepo.EXPECT().
		Get(s.ctx, builds.GetInput{ID: "build_1"}).
		Return(&builds.GetOutput{Build: s.build}, nil)

	out, err := s.svc.SweepTradeoff(s.ctx, &combatlab.SweepTradeoffInput{
		Selection: combatlab.Selection{BuildID: "build_1"},
		FromAC:    12,
		ToAC:      14,
	})
	s.Require().NoError(err)
	s.Equal("longsword", out.Report.ProfileID)
	s.Require().Len(out.Report.Points, 3)
	s.Equal(12, out.Report.Points[0].Defense)
	s.Equal(14, out.Report.Points[2].Defense)
}

func (s *OrchestratorTestSuite) TestSweepTradeoffUnknownProfile() {
	_, err := s.svc.SweepTradeoff(s.ctx, &combatlab.SweepTradeoffInput{
		Selection: combatlab.Selection{Build: s.build},
		ProfileID: "bow",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEstimateTimeToKill() {
	out, err := s.svc.EstimateTimeToKill(s.ctx, &combatlab.EstimateTimeToKillInput{DPR: 10, HP: 100})
	s.Require().NoError(err)
	s.InDelta(10, out.Estimate.ExpectedRounds, 1e-9)
	s.InDelta(15, out.Estimate.BoundA, 1e-9)
	s.InDelta(20, out.Estimate.BoundB, 1e-9)
	s.Len(out.Table, len(combat.DefaultHPPools))

	out, err = s.svc.EstimateTimeToKill(s.ctx, &combatlab.EstimateTimeToKillInput{DPR: 10, HP: 100, Pools: []float64{40}})
	s.Require().NoError(err)
	s.Require().Len(out.Table, 1)
	s.InDelta(4, out.Table[0].ExpectedRounds, 1e-9)

	out, err = s.svc.EstimateTimeToKill(s.ctx, &combatlab.EstimateTimeToKillInput{DPR: 0, HP: 100})
	s.Require().NoError(err)
	s.True(out.Estimate.NoOffense)
	s.Empty(out.Table)
}

func (s *OrchestratorTestSuite) TestEstimateTimeToKillValidation() {
	_, err := s.svc.EstimateTimeToKill(s.ctx, &combatlab.EstimateTimeToKillInput{DPR: 10, HP: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.EstimateTimeToKill(s.ctx, &combatlab.EstimateTimeToKillInput{DPR: 10, HP: 50, Pools: []float64{0}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestHitChance() {
	testCases := []struct {
		name     string
		input    *combatlab.HitChanceInput
		wantHit  float64
		wantCrit float64
	}{
		{
			name:     "even odds",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16},
			wantHit:  0.5,
			wantCrit: 0.05,
		},
		{
			name:     "advantage with expanded crit",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16, Mode: "advantage", CritThreshold: 19},
			wantHit:  0.75,
			wantCrit: 0.19,
		},
		{
			name:     "bless",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16, ModifierDie: "1d4"},
			wantHit:  0.625,
			wantCrit: 0.05,
		},
		{
			name:     "bane",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16, ModifierDie: "1d4", ModifierKind: "penalty"},
			wantHit:  0.375,
			wantCrit: 0.05,
		},
		{
			name:     "best of three",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16, Mode: "advantage", BestOfThree: true},
			wantHit:  0.875,
			wantCrit: 1 - 0.95*0.95*0.95,
		},
		{
			name:     "best of three needs advantage",
			input:    &combatlab.HitChanceInput{AttackBonus: 5, Defense: 16, BestOfThree: true},
			wantHit:  0.5,
			wantCrit: 0.05,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.HitChance(s.ctx, tc.input)
			s.Require().NoError(err)
			s.InDelta(tc.wantHit, out.HitChance, 1e-9)
			s.InDelta(tc.wantCrit, out.CritChance, 1e-9)
		})
	}
}

func (s *OrchestratorTestSuite) TestHitChanceValidation() {
	testCases := []struct {
		name  string
		input *combatlab.HitChanceInput
	}{
		{name: "nil input", input: nil},
		{name: "unknown mode", input: &combatlab.HitChanceInput{Mode: "double"}},
		{name: "crit threshold too low", input: &combatlab.HitChanceInput{CritThreshold: 1}},
		{name: "crit threshold too high", input: &combatlab.HitChanceInput{CritThreshold: 21}},
		{name: "unknown modifier kind", input: &combatlab.HitChanceInput{ModifierDie: "1d4", ModifierKind: "curse"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.HitChance(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestScorePillarsStoredBuild() {
	s.buildRepo.EXPECT().
		Get(s.ctx, builds.GetInput{ID: "build_1"}).
		Return(&builds.GetOutput{Build: s.build}, nil)

	out, err := s.svc.ScorePillars(s.ctx, &combatlab.ScorePillarsInput{BuildID: "build_1"})
	s.Require().NoError(err)
	s.Equal("build_1", out.Report.BuildID)
	s.InDelta(36, out.Report.Scores.Mobility, 1e-9)
	s.InDelta(11.3, out.Report.Weighted, 1e-9)
}

func (s *OrchestratorTestSuite) TestScorePillarsInlineWithWeights() {
	out, err := s.svc.ScorePillars(s.ctx, &combatlab.ScorePillarsInput{
		Build:   s.build,
		Weights: pillars.Weights{Survivability: 1},
	})
	s.Require().NoError(err)
	s.InDelta(10.5, out.Report.Weighted, 1e-9)
}

func (s *OrchestratorTestSuite) TestScorePillarsErrors() {
	_, err := s.svc.ScorePillars(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ScorePillars(s.ctx, &combatlab.ScorePillarsInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ScorePillars(s.ctx, &combatlab.ScorePillarsInput{
		Build:   s.build,
		Weights: pillars.Weights{Control: -2},
	})
	s.True(errors.IsInvalidArgument(err))
}
