//go:build integration
// +build integration

package external_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
)

func TestGetWeapon_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	weapon, err := client.GetWeapon(context.Background(), "Longsword")
	require.NoError(t, err)
	assert.Equal(t, "Longsword", weapon.Name)
	assert.Equal(t, "1d8", weapon.DamageDice)

	profile := external.ToAttackProfile(weapon)
	assert.Equal(t, "1d8+STR", profile.DamageHit)
}

func TestListWeapons_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	weapons, err := client.ListWeapons(context.Background(), "simple-weapons")
	require.NoError(t, err)
	assert.NotEmpty(t, weapons)
}
