package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
)

func TestFixedAdvance(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestRealMovesForward(t *testing.T) {
	c := clock.New()
	first := c.Now()
	assert.False(t, c.Now().Before(first))
}
