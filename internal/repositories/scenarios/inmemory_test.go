package scenarios_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	c := clock.NewFixed(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	repo := scenarios.NewInMemory(c)

	boss := entities.DefaultScenario()
	boss.ID = "scenario_boss"
	boss.Name = "Boss"

	saved, err := repo.Save(ctx, scenarios.SaveInput{Scenario: boss})
	require.NoError(t, err)
	assert.True(t, saved.Created)
	createdAt := saved.Scenario.CreatedAt

	c.Advance(time.Minute)
	boss.Enemy.AC = 19
	saved, err = repo.Save(ctx, scenarios.SaveInput{Scenario: boss})
	require.NoError(t, err)
	assert.False(t, saved.Created)
	assert.Equal(t, createdAt, saved.Scenario.CreatedAt)
	assert.Equal(t, c.Now().Unix(), saved.Scenario.UpdatedAt)

	minion := entities.DefaultScenario()
	minion.ID = "scenario_minion"
	minion.Name = "Alpha"
	_, err = repo.Save(ctx, scenarios.SaveInput{Scenario: minion})
	require.NoError(t, err)

	list, err := repo.List(ctx, scenarios.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Scenarios, 2)
	assert.Equal(t, "Alpha", list.Scenarios[0].Name)
	assert.Equal(t, 19, list.Scenarios[1].Enemy.AC)

	_, err = repo.Delete(ctx, scenarios.DeleteInput{ID: "scenario_boss"})
	require.NoError(t, err)
	_, err = repo.Get(ctx, scenarios.GetInput{ID: "scenario_boss"})
	assert.True(t, errors.IsNotFound(err))
	_, err = repo.Save(ctx, scenarios.SaveInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
