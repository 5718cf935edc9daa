package v1alpha1

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	dicesession "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session"
)

// Selection names a stored build and scenario or carries them inline
type Selection struct {
	BuildID    string             `json:"build_id,omitempty"`
	Build      *entities.Build    `json:"build,omitempty"`
	ScenarioID string             `json:"scenario_id,omitempty"`
	Scenario   *entities.Scenario `json:"scenario,omitempty"`
}

// AnalyzeBuildRequest asks for a full build analysis
type AnalyzeBuildRequest struct {
	Selection
}

// AnalyzeBuildResponse carries the analysis report
type AnalyzeBuildResponse struct {
	Report *analysis.Report `json:"report"`
}

// SweepTradeoffRequest asks for the trade-off across an AC range
type SweepTradeoffRequest struct {
	Selection
	ProfileID string `json:"profile_id,omitempty"`
	FromAC    int    `json:"from_ac,omitempty"`
	ToAC      int    `json:"to_ac,omitempty"`
}

// SweepTradeoffResponse carries the sweep
type SweepTradeoffResponse struct {
	Report *analysis.SweepReport `json:"report"`
}

// EstimateTimeToKillRequest asks how long a target lasts
type EstimateTimeToKillRequest struct {
	DPR   float64   `json:"dpr"`
	HP    float64   `json:"hp"`
	Pools []float64 `json:"pools,omitempty"`
}

// EstimateTimeToKillResponse carries the estimate and the pool table
type EstimateTimeToKillResponse struct {
	Estimate combat.TimeToKill   `json:"estimate"`
	Table    []combat.TimeToKill `json:"table"`
}

// HitChanceRequest asks for one attack's odds
type HitChanceRequest struct {
	AttackBonus   float64 `json:"attack_bonus"`
	Defense       int     `json:"defense"`
	Mode          string  `json:"mode,omitempty"`
	CritThreshold int     `json:"crit_threshold,omitempty"`
	ModifierDie   string  `json:"modifier_die,omitempty"`
	ModifierKind  string  `json:"modifier_kind,omitempty"`
	BestOfThree   bool    `json:"best_of_three,omitempty"`
}

// HitChanceResponse carries the odds
type HitChanceResponse struct {
	Mode        string  `json:"mode"`
	HitChance   float64 `json:"hit_chance"`
	CritChance  float64 `json:"crit_chance"`
	BestOfThree bool    `json:"best_of_three,omitempty"`
}

// ScorePillarsRequest asks for a build's non-combat pillar scores
type ScorePillarsRequest struct {
	BuildID string          `json:"build_id,omitempty"`
	Build   *entities.Build `json:"build,omitempty"`
	Weights pillars.Weights `json:"weights"`
}

// ScorePillarsResponse carries the pillar scores
type ScorePillarsResponse struct {
	Report *analysis.PillarReport `json:"report"`
}

// CreateBuildRequest stores a build, or the default build when Build is nil
type CreateBuildRequest struct {
	Build *entities.Build `json:"build,omitempty"`
	Name  string          `json:"name,omitempty"`
}

// BuildResponse carries one build and its lint findings
type BuildResponse struct {
	Build    *entities.Build    `json:"build"`
	Findings []analysis.Finding `json:"findings,omitempty"`
}

// GetBuildRequest names a build
type GetBuildRequest struct {
	BuildID string `json:"build_id"`
}

// ListBuildsRequest filters the build list
type ListBuildsRequest struct {
	Tag string `json:"tag,omitempty"`
}

// ListBuildsResponse carries builds, newest first
type ListBuildsResponse struct {
	Builds []*entities.Build `json:"builds"`
}

// DeleteBuildRequest names the build to delete
type DeleteBuildRequest struct {
	BuildID string `json:"build_id"`
}

// DeleteBuildResponse is empty on success
type DeleteBuildResponse struct{}

// DuplicateBuildRequest copies a build
type DuplicateBuildRequest struct {
	BuildID string `json:"build_id"`
	Name    string `json:"name,omitempty"`
}

// ListWeaponsRequest lists catalog weapons
type ListWeaponsRequest struct {
	Category string `json:"category,omitempty"`
}

// ListWeaponsResponse carries catalog weapons
type ListWeaponsResponse struct {
	Weapons []*external.WeaponData `json:"weapons"`
}

// ImportWeaponProfileRequest adds an SRD weapon to a build
type ImportWeaponProfileRequest struct {
	BuildID  string `json:"build_id"`
	WeaponID string `json:"weapon_id"`
	Name     string `json:"name,omitempty"`
}

// ImportWeaponProfileResponse carries the updated build and the new profile
type ImportWeaponProfileResponse struct {
	Build   *entities.Build        `json:"build"`
	Profile entities.AttackProfile `json:"profile"`
}

// SaveScenarioRequest creates or replaces a scenario
type SaveScenarioRequest struct {
	Scenario *entities.Scenario `json:"scenario"`
}

// SaveScenarioResponse carries the stored scenario
type SaveScenarioResponse struct {
	Scenario *entities.Scenario `json:"scenario"`
	Created  bool               `json:"created"`
}

// GetScenarioRequest names a scenario
type GetScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// GetScenarioResponse carries one scenario
type GetScenarioResponse struct {
	Scenario *entities.Scenario `json:"scenario"`
}

// RollDamageRequest rolls a damage expression into an owner's session
type RollDamageRequest struct {
	OwnerType      string `json:"owner_type"`
	OwnerID        string `json:"owner_id"`
	Context        string `json:"context,omitempty"`
	Notation       string `json:"notation"`
	Description    string `json:"description,omitempty"`
	RerollLowFaces bool   `json:"reroll_low_faces,omitempty"`
	Critical       bool   `json:"critical,omitempty"`
	TTLSeconds     int64  `json:"ttl_seconds,omitempty"`
}

// RollDamageResponse carries the new roll and every roll in the session
type RollDamageResponse struct {
	Roll      *dicesession.DiceRoll  `json:"roll"`
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	ExpiresAt int64                  `json:"expires_at"`
}

// GetRollSessionRequest names a roll session
type GetRollSessionRequest struct {
	OwnerType string `json:"owner_type"`
	OwnerID   string `json:"owner_id"`
	Context   string `json:"context,omitempty"`
}

// GetRollSessionResponse carries a session's rolls
type GetRollSessionResponse struct {
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	CreatedAt int64                  `json:"created_at"`
	ExpiresAt int64                  `json:"expires_at"`
}

// ClearRollSessionRequest names the roll session to clear
type ClearRollSessionRequest struct {
	OwnerType string `json:"owner_type"`
	OwnerID   string `json:"owner_id"`
	Context   string `json:"context,omitempty"`
}

// ClearRollSessionResponse reports how many rolls were discarded
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int    `json:"rolls_cleared"`
}
