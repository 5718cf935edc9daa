// Package builds manages the build and scenario library
package builds

//go:generate mockgen -destination=mock/mock_service.go -package=buildsvcmock github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/builds Service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/idgen"
	buildrepo "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
)

// Cover bonuses a scenario may carry: none, half and three-quarters
var validCover = []int{0, 2, 5}

// CopySuffix is appended to the name of a duplicated build
const CopySuffix = " (Copy)"

// maxIDAttempts bounds how often a colliding build ID is regenerated
const maxIDAttempts = 3

// Service defines the build library operations
type Service interface {
	CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)
	DuplicateBuild(ctx context.Context, input *DuplicateBuildInput) (*DuplicateBuildOutput, error)

	// Weapon catalog
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)
	ImportWeaponProfile(ctx context.Context, input *ImportWeaponProfileInput) (*ImportWeaponProfileOutput, error)

	// Scenarios
	SaveScenario(ctx context.Context, input *SaveScenarioInput) (*SaveScenarioOutput, error)
	GetScenario(ctx context.Context, input *GetScenarioInput) (*GetScenarioOutput, error)
	ListScenarios(ctx context.Context, input *ListScenariosInput) (*ListScenariosOutput, error)
	DeleteScenario(ctx context.Context, input *DeleteScenarioInput) (*DeleteScenarioOutput, error)
}

// Config holds the dependencies for the build orchestrator
type Config struct {
	BuildRepo           buildrepo.Repository
	ScenarioRepo        scenarios.Repository
	WeaponClient        external.Client
	BuildIDGenerator    idgen.Generator
	ScenarioIDGenerator idgen.Generator
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
	if c.WeaponClient == nil {
		vb.RequiredField("WeaponClient")
	}
	if c.BuildIDGenerator == nil {
		vb.RequiredField("BuildIDGenerator")
	}
	if c.ScenarioIDGenerator == nil {
		vb.RequiredField("ScenarioIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	buildRepo    buildrepo.Repository
	scenarioRepo scenarios.Repository
	weapons      external.Client
	buildIDs     idgen.Generator
	scenarioIDs  idgen.Generator
}

// NewOrchestrator creates a new build orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		buildRepo:    cfg.BuildRepo,
		scenarioRepo: cfg.ScenarioRepo,
		weapons:      cfg.WeaponClient,
		buildIDs:     cfg.BuildIDGenerator,
		scenarioIDs:  cfg.ScenarioIDGenerator,
	}, nil
}

// lintBuild rejects builds with error findings and returns the rest
func lintBuild(build *entities.Build) ([]analysis.Finding, error) {
	findings := analysis.Lint(build)
	if !analysis.HasErrors(findings) {
		return findings, nil
	}

	vb := errors.NewValidationBuilder()
	for _, f := range findings {
		if f.Severity == analysis.SeverityError {
			vb.Field(f.Field, f.Message)
		}
	}
	return findings, vb.Build()
}

// CreateBuild stores a new build. Without a build the default one is used.
func (o *orchestrator) CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	build := input.Build.Clone()
	if build == nil {
		build = entities.DefaultBuild(input.Name)
	}

	findings, err := lintBuild(build)
	if err != nil {
		return nil, err
	}

	out, err := o.createWithNewID(ctx, build)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create build")
	}

	slog.Info("Build created",
		"build_id", out.Build.ID,
		"name", out.Build.Name,
		"profiles", len(out.Build.Profiles),
		"warnings", len(findings),
	)

	return &CreateBuildOutput{
		Build:    out.Build,
		Findings: findings,
	}, nil
}

// GetBuild loads a build and lints it
func (o *orchestrator) GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	out, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	return &GetBuildOutput{
		Build:    out.Build,
		Findings: analysis.Lint(out.Build),
	}, nil
}

// ListBuilds returns builds, newest first
func (o *orchestrator) ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error) {
	if input == nil {
		input = &ListBuildsInput{}
	}

	out, err := o.buildRepo.List(ctx, buildrepo.ListInput{Tag: input.Tag})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list builds")
	}

	return &ListBuildsOutput{Builds: out.Builds}, nil
}

// DeleteBuild removes a build
func (o *orchestrator) DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	if _, err := o.buildRepo.Delete(ctx, buildrepo.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete build")
	}

	slog.Info("Build deleted", "build_id", input.BuildID)

	return &DeleteBuildOutput{}, nil
}

// DuplicateBuild copies a build under a new ID
func (o *orchestrator) DuplicateBuild(ctx context.Context, input *DuplicateBuildInput) (*DuplicateBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	src, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	dup := src.Build.Clone()
	dup.Name = input.Name
	if dup.Name == "" {
		dup.Name = src.Build.Name + CopySuffix
	}
	dup.CreatedAt = 0
	dup.UpdatedAt = 0

	out, err := o.createWithNewID(ctx, dup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create duplicate build")
	}

	slog.Info("Build duplicated",
		"source_id", input.BuildID,
		"build_id", out.Build.ID,
	)

	return &DuplicateBuildOutput{Build: out.Build}, nil
}

// createWithNewID stores build under a generated ID, drawing a fresh one
// when the store already holds it.
func (o *orchestrator) createWithNewID(ctx context.Context, build *entities.Build) (*buildrepo.CreateOutput, error) {
	var err error
	for range maxIDAttempts {
		build.ID = o.buildIDs.Generate()

		var out *buildrepo.CreateOutput
		out, err = o.buildRepo.Create(ctx, buildrepo.CreateInput{Build: build})
		if err == nil {
			return out, nil
		}
		if !errors.IsAlreadyExists(err) {
			return nil, err
		}
		slog.Warn("Build ID already taken", "build_id", build.ID)
	}
	return nil, err
}

// ListWeapons lists SRD weapons, optionally in one equipment category
func (o *orchestrator) ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error) {
	if input == nil {
		input = &ListWeaponsInput{}
	}

	weapons, err := o.weapons.ListWeapons(ctx, input.Category)
	if err != nil {
		if errors.IsUnavailable(err) {
			slog.WarnContext(ctx, "SRD catalog unavailable", "category", input.Category, "error", err)
		}
		return nil, errors.Wrap(err, "failed to list weapons")
	}

	return &ListWeaponsOutput{Weapons: weapons}, nil
}

// ImportWeaponProfile appends an attack profile built from an SRD weapon
func (o *orchestrator) ImportWeaponProfile(ctx context.Context, input *ImportWeaponProfileInput) (*ImportWeaponProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("build_id", input.BuildID, vb)
	errors.ValidateRequired("weapon_id", input.WeaponID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	weapon, err := o.weapons.GetWeapon(ctx, input.WeaponID)
	if err != nil {
		if errors.IsUnavailable(err) {
			slog.WarnContext(ctx, "SRD catalog unavailable", "weapon_id", input.WeaponID, "error", err)
		}
		return nil, errors.Wrapf(err, "failed to get weapon %s", input.WeaponID)
	}

	build := got.Build.Clone()
	profile := external.ToAttackProfile(weapon)
	profile.ID = uniqueProfileID(build, profile.ID)
	if input.Name != "" {
		profile.Name = input.Name
	}
	build.Profiles = append(build.Profiles, profile)

	out, err := o.buildRepo.Update(ctx, buildrepo.UpdateInput{Build: build})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update build")
	}

	slog.Info("Weapon profile imported",
		"build_id", build.ID,
		"weapon_id", weapon.ID,
		"profile_id", profile.ID,
	)

	return &ImportWeaponProfileOutput{
		Build:   out.Build,
		Profile: profile,
	}, nil
}

// uniqueProfileID suffixes id with -2, -3, ... until no profile uses it
func uniqueProfileID(build *entities.Build, id string) string {
	taken := func(candidate string) bool {
		return slices.ContainsFunc(build.Profiles, func(p entities.AttackProfile) bool {
			return p.ID == candidate
		})
	}
	if !taken(id) {
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

func validateScenario(s *entities.Scenario) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", s.Name, vb)
	if s.Enemy.AC < 1 {
		vb.Field("enemy.ac", "must be at least 1")
	}
	if s.Enemy.HP < 0 {
		vb.Field("enemy.hp", "cannot be negative")
	}
	if _, err := probability.ParseRollMode(s.Advantage); err != nil {
		vb.Fieldf("advantage", "must be one of: %s", strings.Join(probability.RollModes, ", "))
	}
	if !slices.Contains(validCover, s.Cover) {
		vb.Field("cover", "must be 0, 2 or 5")
	}
	if p := s.Policies.Sharpshooter; p != "" {
		errors.ValidateEnum("policies.ss", string(p), entities.TradeoffPolicies, vb)
	}
	if p := s.Policies.GreatWeaponMaster; p != "" {
		errors.ValidateEnum("policies.gwm", string(p), entities.TradeoffPolicies, vb)
	}

	return vb.Build()
}

// SaveScenario creates or replaces a scenario. An empty ID creates one.
func (o *orchestrator) SaveScenario(ctx context.Context, input *SaveScenarioInput) (*SaveScenarioOutput, error) {
	if input == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}
	if err := validateScenario(input.Scenario); err != nil {
		return nil, err
	}

	scenario := *input.Scenario
	if scenario.ID == "" {
		scenario.ID = o.scenarioIDs.Generate()
	}

	out, err := o.scenarioRepo.Save(ctx, scenarios.SaveInput{Scenario: &scenario})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save scenario")
	}

	slog.Info("Scenario saved",
		"scenario_id", out.Scenario.ID,
		"created", out.Created,
	)

	return &SaveScenarioOutput{
		Scenario: out.Scenario,
		Created:  out.Created,
	}, nil
}

// GetScenario loads a scenario
func (o *orchestrator) GetScenario(ctx context.Context, input *GetScenarioInput) (*GetScenarioOutput, error) {
	if input == nil || input.ScenarioID == "" {
		return nil, errors.InvalidArgument("scenario ID is required")
	}

	out, err := o.scenarioRepo.Get(ctx, scenarios.GetInput{ID: input.ScenarioID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get scenario")
	}

	return &GetScenarioOutput{Scenario: out.Scenario}, nil
}

// ListScenarios returns every stored scenario by name
func (o *orchestrator) ListScenarios(ctx context.Context, _ *ListScenariosInput) (*ListScenariosOutput, error) {
	out, err := o.scenarioRepo.List(ctx, scenarios.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scenarios")
	}

	return &ListScenariosOutput{Scenarios: out.Scenarios}, nil
}

// DeleteScenario removes a scenario
func (o *orchestrator) DeleteScenario(ctx context.Context, input *DeleteScenarioInput) (*DeleteScenarioOutput, error) {
	if input == nil || input.ScenarioID == "" {
		return nil, errors.InvalidArgument("scenario ID is required")
	}

	if _, err := o.scenarioRepo.Delete(ctx, scenarios.DeleteInput{ID: input.ScenarioID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete scenario")
	}

	slog.Info("Scenario deleted", "scenario_id", input.ScenarioID)

	return &DeleteScenarioOutput{}, nil
}
