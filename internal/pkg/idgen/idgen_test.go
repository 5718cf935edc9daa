package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("build")
	assert.Equal(t, "build_1", g.Generate())
	assert.Equal(t, "build_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("scn").Generate()
	require.True(t, strings.HasPrefix(id, "scn_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "scn_"))
	assert.NoError(t, err)
}
