package builds

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// CreateBuildInput defines the request for creating a build
type CreateBuildInput struct {
	// Build is copied before storing; nil stores the default build
	Build *entities.Build
	// Name names the default build when Build is nil
	Name string
}

// CreateBuildOutput defines the response for creating a build
type CreateBuildOutput struct {
	Build *entities.Build
	// Findings holds lint warnings; errors reject the build
	Findings []analysis.Finding
}

// GetBuildInput defines the request for getting a build
type GetBuildInput struct {
	BuildID string
}

// GetBuildOutput defines the response for getting a build
type GetBuildOutput struct {
	Build    *entities.Build
	Findings []analysis.Finding
}

// ListBuildsInput defines the request for listing builds
type ListBuildsInput struct {
	Tag string
}

// ListBuildsOutput defines the response for listing builds
type ListBuildsOutput struct {
	Builds []*entities.Build
}

// DeleteBuildInput defines the request for deleting a build
type DeleteBuildInput struct {
	BuildID string
}

// DeleteBuildOutput defines the response for deleting a build
type DeleteBuildOutput struct{}

// DuplicateBuildInput defines the request for duplicating a build
type DuplicateBuildInput struct {
	BuildID string
	// Name defaults to the source name plus " (Copy)"
	Name string
}

// DuplicateBuildOutput defines the response for duplicating a build
type DuplicateBuildOutput struct {
	Build *entities.Build
}

// ListWeaponsInput defines the request for listing catalog weapons
type ListWeaponsInput struct {
	// Category is an equipment category key, "weapon" when empty
	Category string
}

// ListWeaponsOutput defines the response for listing catalog weapons
type ListWeaponsOutput struct {
	Weapons []*external.WeaponData
}

// ImportWeaponProfileInput defines the request for importing a weapon
type ImportWeaponProfileInput struct {
	BuildID  string
	WeaponID string
	// Name overrides the weapon name on the profile
	Name string
}

// ImportWeaponProfileOutput defines the response for importing a weapon
type ImportWeaponProfileOutput struct {
	Build   *entities.Build
	Profile entities.AttackProfile
}

// SaveScenarioInput defines the request for saving a scenario
type SaveScenarioInput struct {
	Scenario *entities.Scenario
}

// SaveScenarioOutput defines the response for saving a scenario
type SaveScenarioOutput struct {
	Scenario *entities.Scenario
	Created  bool
}

// GetScenarioInput defines the request for getting a scenario
type GetScenarioInput struct {
	ScenarioID string
}

// GetScenarioOutput defines the response for getting a scenario
type GetScenarioOutput struct {
	Scenario *entities.Scenario
}

// ListScenariosInput defines the request for listing scenarios
type ListScenariosInput struct{}

// ListScenariosOutput defines the response for listing scenarios
type ListScenariosOutput struct {
	Scenarios []*entities.Scenario
}

// DeleteScenarioInput defines the request for deleting a scenario
type DeleteScenarioInput struct {
	ScenarioID string
}

// DeleteScenarioOutput defines the response for deleting a scenario
type DeleteScenarioOutput struct{}
