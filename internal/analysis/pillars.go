package analysis

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

// PillarReport scores a build on the non-combat pillars
type PillarReport struct {
	BuildID  string          `json:"build_id,omitempty"`
	Scores   pillars.Scores  `json:"scores"`
	Weights  pillars.Weights `json:"weights"`
	Weighted float64         `json:"weighted"`
}

// ScorePillars scores every pillar and averages them by weights. All-zero
// weights count each pillar equally.
func ScorePillars(build *entities.Build, weights pillars.Weights) (*PillarReport, error) {
	if build == nil {
		return nil, errors.InvalidArgument("build is required")
	}

	vb := errors.NewValidationBuilder()
	for field, w := range map[string]float64{
		"weights.social":        weights.Social,
		"weights.exploration":   weights.Exploration,
		"weights.control":       weights.Control,
		"weights.mobility":      weights.Mobility,
		"weights.survivability": weights.Survivability,
	} {
		if w < 0 {
			vb.Field(field, "cannot be negative")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if weights.Total() == 0 {
		weights = pillars.EqualWeights
	}

	scores := pillars.Score(pillarCharacter(build))
	return &PillarReport{
		BuildID:  build.ID,
		Scores:   scores,
		Weights:  weights,
		Weighted: pillars.Weighted(scores, weights),
	}, nil
}

func pillarCharacter(b *entities.Build) pillars.Character {
	return pillars.Character{
		Class:    b.Class,
		Subclass: b.Subclass,
		Level:    b.Level,
		STR:      b.Abilities.STR,
		DEX:      b.Abilities.DEX,
		CON:      b.Abilities.CON,
		INT:      b.Abilities.INT,
		WIS:      b.Abilities.WIS,
		CHA:      b.Abilities.CHA,
		Feats:    b.Feats,
		Tags:     b.Tags,
	}
}
