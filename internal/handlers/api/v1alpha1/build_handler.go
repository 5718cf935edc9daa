package v1alpha1

import (
	"context"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/builds"
)

// BuildHandlerConfig holds dependencies for the build handler
type BuildHandlerConfig struct {
	BuildService builds.Service
}

// Validate ensures all required dependencies are present
func (c *BuildHandlerConfig) Validate() error {
	if c.BuildService == nil {
		return errors.InvalidArgument("build service is required")
	}
	return nil
}

// BuildHandler implements BuildServiceServer
type BuildHandler struct {
	builds builds.Service
}

var _ BuildServiceServer = (*BuildHandler)(nil)

// NewBuildHandler creates a new build handler
func NewBuildHandler(cfg *BuildHandlerConfig) (*BuildHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &BuildHandler{
		builds: cfg.BuildService,
	}, nil
}

// CreateBuild stores a new build
func (h *BuildHandler) CreateBuild(
	ctx context.Context,
	req *CreateBuildRequest,
) (*BuildResponse, error) {
	out, err := h.builds.CreateBuild(ctx, &builds.CreateBuildInput{
		Build: req.Build,
		Name:  req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuildResponse{
		Build:    out.Build,
		Findings: out.Findings,
	}, nil
}

// GetBuild loads a build
func (h *BuildHandler) GetBuild(
	ctx context.Context,
	req *GetBuildRequest,
) (*BuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	out, err := h.builds.GetBuild(ctx, &builds.GetBuildInput{BuildID: req.BuildID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuildResponse{
		Build:    out.Build,
		Findings: out.Findings,
	}, nil
}

// ListBuilds lists stored builds
func (h *BuildHandler) ListBuilds(
	ctx context.Context,
	req *ListBuildsRequest,
) (*ListBuildsResponse, error) {
	out, err := h.builds.ListBuilds(ctx, &builds.ListBuildsInput{Tag: req.Tag})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListBuildsResponse{Builds: out.Builds}, nil
}

// DeleteBuild removes a build
func (h *BuildHandler) DeleteBuild(
	ctx context.Context,
	req *DeleteBuildRequest,
) (*DeleteBuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	if _, err := h.builds.DeleteBuild(ctx, &builds.DeleteBuildInput{BuildID: req.BuildID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteBuildResponse{}, nil
}

// DuplicateBuild copies a build under a new ID
func (h *BuildHandler) DuplicateBuild(
	ctx context.Context,
	req *DuplicateBuildRequest,
) (*BuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	out, err := h.builds.DuplicateBuild(ctx, &builds.DuplicateBuildInput{
		BuildID: req.BuildID,
		Name:    req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuildResponse{Build: out.Build}, nil
}

// ListWeapons lists SRD weapons
func (h *BuildHandler) ListWeapons(
	ctx context.Context,
	req *ListWeaponsRequest,
) (*ListWeaponsResponse, error) {
	out, err := h.builds.ListWeapons(ctx, &builds.ListWeaponsInput{Category: req.Category})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListWeaponsResponse{Weapons: out.Weapons}, nil
}

// ImportWeaponProfile adds an SRD weapon to a build as an attack profile
func (h *BuildHandler) ImportWeaponProfile(
	ctx context.Context,
	req *ImportWeaponProfileRequest,
) (*ImportWeaponProfileResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}
	if req.WeaponID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_id is required"))
	}

	out, err := h.builds.ImportWeaponProfile(ctx, &builds.ImportWeaponProfileInput{
		BuildID:  req.BuildID,
		WeaponID: req.WeaponID,
		Name:     req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ImportWeaponProfileResponse{
		Build:   out.Build,
		Profile: out.Profile,
	}, nil
}

// SaveScenario creates or replaces a scenario
func (h *BuildHandler) SaveScenario(
	ctx context.Context,
	req *SaveScenarioRequest,
) (*SaveScenarioResponse, error) {
	if req.Scenario == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("scenario is required"))
	}

	out, err := h.builds.SaveScenario(ctx, &builds.SaveScenarioInput{Scenario: req.Scenario})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SaveScenarioResponse{
		Scenario: out.Scenario,
		Created:  out.Created,
	}, nil
}

// GetScenario loads a scenario
func (h *BuildHandler) GetScenario(
	ctx context.Context,
	req *GetScenarioRequest,
) (*GetScenarioResponse, error) {
	if req.ScenarioID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("scenario_id is required"))
	}

	out, err := h.builds.GetScenario(ctx, &builds.GetScenarioInput{ScenarioID: req.ScenarioID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetScenarioResponse{Scenario: out.Scenario}, nil
}
