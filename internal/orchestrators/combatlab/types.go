package combatlab

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// Selection names the build and scenario to analyse. Inline snapshots win
// over IDs and a missing scenario means the default scenario.
type Selection struct {
	BuildID    string
	Build      *entities.Build
	ScenarioID string
	Scenario   *entities.Scenario
}

// AnalyzeBuildInput defines the request for analysing a build
type AnalyzeBuildInput struct {
	Selection
}

// AnalyzeBuildOutput defines the response for analysing a build
type AnalyzeBuildOutput struct {
	Report *analysis.Report
}

// SweepTradeoffInput defines the request for a trade-off sweep
type SweepTradeoffInput struct {
	Selection
	ProfileID string
	// FromAC and ToAC default to 10 and 25 when both are zero
	FromAC int
	ToAC   int
}

// SweepTradeoffOutput defines the response for a trade-off sweep
type SweepTradeoffOutput struct {
	Report *analysis.SweepReport
}

// EstimateTimeToKillInput defines the request for a time to kill estimate
type EstimateTimeToKillInput struct {
	DPR float64
	HP  float64
	// Pools defaults to combat.DefaultHPPools
	Pools []float64
}

// EstimateTimeToKillOutput defines the response for a time to kill estimate
type EstimateTimeToKillOutput struct {
	Estimate combat.TimeToKill
	Table    []combat.TimeToKill
}

// HitChanceInput defines the request for a single attack's odds
type HitChanceInput struct {
	AttackBonus   float64
	Defense       int
	Mode          string
	CritThreshold int
	// ModifierDie is a die added to or subtracted from the roll, e.g. "1d4"
	ModifierDie  string
	ModifierKind string
	BestOfThree  bool
}

// HitChanceOutput defines the response for a single attack's odds
type HitChanceOutput struct {
	Mode        probability.RollMode
	HitChance   float64
	CritChance  float64
	BestOfThree bool
}

// ScorePillarsInput defines the request for non-combat pillar scores
type ScorePillarsInput struct {
	BuildID string
	Build   *entities.Build
	// Weights count every pillar equally when all zero
	Weights pillars.Weights
}

// ScorePillarsOutput defines the response for non-combat pillar scores
type ScorePillarsOutput struct {
	Report *analysis.PillarReport
}
