// Package combatlab runs combat analyses for stored or inline builds
package combatlab

//go:generate mockgen -destination=mock/mock_service.go -package=combatlabmock github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab Service

import (
	"context"
	"log/slog"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
)

// Service defines the combat analysis operations
type Service interface {
	AnalyzeBuild(ctx context.Context, input *AnalyzeBuildInput) (*AnalyzeBuildOutput, error)
	SweepTradeoff(ctx context.Context, input *SweepTradeoffInput) (*SweepTradeoffOutput, error)
	EstimateTimeToKill(ctx context.Context, input *EstimateTimeToKillInput) (*EstimateTimeToKillOutput, error)
	HitChance(ctx context.Context, input *HitChanceInput) (*HitChanceOutput, error)
	ScorePillars(ctx context.Context, input *ScorePillarsInput) (*ScorePillarsOutput, error)
}

// Config holds the dependencies for the combat lab orchestrator
type Config struct {
	BuildRepo    builds.Repository
	ScenarioRepo scenarios.Repository
	Analyzer     *analysis.Analyzer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.ScenarioRepo == nil {
		vb.RequiredField("ScenarioRepo")
	}
	if c.Analyzer == nil {
		vb.RequiredField("Analyzer")
	}

	return vb.Build()
}

type orchestrator struct {
	buildRepo    builds.Repository
	scenarioRepo scenarios.Repository
	analyzer     *analysis.Analyzer
}

// NewOrchestrator creates a new combat lab orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		buildRepo:    cfg.BuildRepo,
		scenarioRepo: cfg.ScenarioRepo,
		analyzer:     cfg.Analyzer,
	}, nil
}

// loadBuild prefers the inline snapshot over the stored build
func (o *orchestrator) loadBuild(ctx context.Context, sel Selection) (*entities.Build, error) {
	if sel.Build != nil {
		return sel.Build, nil
	}
	if sel.BuildID == "" {
		return nil, errors.InvalidArgument("build ID or build is required")
	}

	out, err := o.buildRepo.Get(ctx, builds.GetInput{ID: sel.BuildID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get build %s", sel.BuildID)
	}
	return out.Build, nil
}

// loadScenario falls back to the default scenario when none is named
func (o *orchestrator) loadScenario(ctx context.Context, sel Selection) (*entities.Scenario, error) {
	if sel.Scenario != nil {
		return sel.Scenario, nil
	}
	if sel.ScenarioID == "" {
		return entities.DefaultScenario(), nil
	}

	out, err := o.scenarioRepo.Get(ctx, scenarios.GetInput{ID: sel.ScenarioID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get scenario %s", sel.ScenarioID)
	}
	return out.Scenario, nil
}

func (o *orchestrator) load(ctx context.Context, sel Selection) (*entities.Build, *entities.Scenario, error) {
	build, err := o.loadBuild(ctx, sel)
	if err != nil {
		return nil, nil, err
	}
	scenario, err := o.loadScenario(ctx, sel)
	if err != nil {
		return nil, nil, err
	}
	return build, scenario, nil
}

// AnalyzeBuild evaluates every attack profile of a build against a scenario
func (o *orchestrator) AnalyzeBuild(ctx context.Context, input *AnalyzeBuildInput) (*AnalyzeBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	build, scenario, err := o.load(ctx, input.Selection)
	if err != nil {
		return nil, err
	}

	report, err := o.analyzer.Analyze(build, scenario)
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze build")
	}

	for _, warning := range report.Warnings {
		slog.WarnContext(ctx, "Analysis degraded",
			"build_id", build.ID,
			"scenario_id", scenario.ID,
			"warning", warning,
		)
	}

	slog.Info("Build analyzed",
		"build_id", build.ID,
		"scenario_id", scenario.ID,
		"attacks", len(report.Attacks),
		"combined_dpr", report.CombinedDPR,
		"expected_rounds", report.TimeToKill.ExpectedRounds,
	)

	return &AnalyzeBuildOutput{Report: report}, nil
}

// SweepTradeoff evaluates the -5/+10 trade-off across an AC range
func (o *orchestrator) SweepTradeoff(ctx context.Context, input *SweepTradeoffInput) (*SweepTradeoffOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	build, scenario, err := o.load(ctx, input.Selection)
	if err != nil {
		return nil, err
	}

	report, err := o.analyzer.SweepProfile(build, scenario, input.ProfileID, input.FromAC, input.ToAC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sweep trade-off")
	}

	slog.Info("Trade-off swept",
		"build_id", build.ID,
		"profile_id", report.ProfileID,
		"points", len(report.Points),
		"windows", len(report.Windows),
	)

	return &SweepTradeoffOutput{Report: report}, nil
}

// EstimateTimeToKill turns damage per round into rounds to kill
func (o *orchestrator) EstimateTimeToKill(_ context.Context, input *EstimateTimeToKillInput) (*EstimateTimeToKillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.HP < 0 {
		vb.Field("hp", "cannot be negative")
	}
	for _, pool := range input.Pools {
		if pool <= 0 {
			vb.Fieldf("pools", "must be positive, got %v", pool)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &EstimateTimeToKillOutput{
		Estimate: combat.EstimateTimeToKill(input.DPR, input.HP),
		Table:    combat.Table(input.DPR, input.Pools),
	}, nil
}

// HitChance reports single attack hit and crit chances
func (o *orchestrator) HitChance(_ context.Context, input *HitChanceInput) (*HitChanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode, err := probability.ParseRollMode(input.Mode)
	if err != nil {
		return nil, err
	}

	threshold := input.CritThreshold
	if threshold == 0 {
		threshold = 20
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("crit_threshold", threshold, 2, 20, vb)
	kind := probability.ModifierKind(input.ModifierKind)
	if kind == "" {
		kind = probability.ModifierBonus
	}
	errors.ValidateEnum("modifier_kind", string(kind), []string{string(probability.ModifierBonus), string(probability.ModifierPenalty)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &HitChanceOutput{Mode: mode}
	if input.BestOfThree && mode == probability.ModeAdvantage {
		bonus := input.AttackBonus + probability.ModifierShift(input.ModifierDie, kind)
		out.HitChance = probability.BestOfThreeHit(bonus, input.Defense)
		out.CritChance = probability.BestOfThreeCrit(threshold)
		out.BestOfThree = true
		return out, nil
	}

	out.HitChance = probability.HitProbabilityWithModifierDie(input.AttackBonus, input.Defense, input.ModifierDie, kind, mode)
	out.CritChance = probability.CritProbability(threshold, mode)
	return out, nil
}

// ScorePillars scores a stored or inline build on the non-combat pillars
func (o *orchestrator) ScorePillars(ctx context.Context, input *ScorePillarsInput) (*ScorePillarsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	build, err := o.loadBuild(ctx, Selection{BuildID: input.BuildID, Build: input.Build})
	if err != nil {
		return nil, err
	}

	report, err := analysis.ScorePillars(build, input.Weights)
	if err != nil {
		return nil, errors.Wrap(err, "failed to score pillars")
	}

	slog.Info("Pillars scored",
		"build_id", build.ID,
		"weighted", report.Weighted,
	)

	return &ScorePillarsOutput{Report: report}, nil
}
