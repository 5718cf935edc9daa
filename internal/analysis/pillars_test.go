package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

func TestScorePillarsDefaultBuild(t *testing.T) {
	build := entities.DefaultBuild("Champion")
	build.ID = "build-1"

	report, err := analysis.ScorePillars(build, pillars.Weights{})
	require.NoError(t, err)

	assert.Equal(t, "build-1", report.BuildID)
	assert.Equal(t, pillars.EqualWeights, report.Weights)
	assert.Zero(t, report.Scores.Social)
	assert.InDelta(t, 10, report.Scores.Exploration, 1e-9)
	assert.Zero(t, report.Scores.Control)
	assert.InDelta(t, 36, report.Scores.Mobility, 1e-9)
	assert.InDelta(t, 10.5, report.Scores.Survivability, 1e-9)
	assert.InDelta(t, 11.3, report.Weighted, 1e-9)
}

func TestScorePillarsUsesWeights(t *testing.T) {
	report, err := analysis.ScorePillars(entities.DefaultBuild("Champion"), pillars.Weights{Mobility: 1})
	require.NoError(t, err)
	assert.InDelta(t, 36, report.Weighted, 1e-9)
}

func TestScorePillarsReadsTags(t *testing.T) {
	build := entities.DefaultBuild("Champion")
	plain, err := analysis.ScorePillars(build, pillars.Weights{})
	require.NoError(t, err)

	build.Tags = []string{pillars.TagHeavyArmor, pillars.TagFly}
	tagged, err := analysis.ScorePillars(build, pillars.Weights{})
	require.NoError(t, err)

	assert.Greater(t, tagged.Scores.Survivability, plain.Scores.Survivability)
	assert.Greater(t, tagged.Scores.Mobility, plain.Scores.Mobility)
}

func TestScorePillarsErrors(t *testing.T) {
	_, err := analysis.ScorePillars(nil, pillars.Weights{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = analysis.ScorePillars(entities.DefaultBuild("Champion"), pillars.Weights{Social: -1, Mobility: 2})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "weights.social")
}
