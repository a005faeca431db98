package react

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneOrdering(t *testing.T) {
	assert.True(t, LaneImmediate.HigherThan(LaneDiscrete))
	assert.True(t, LaneDiscrete.HigherThan(LaneContinuous))
	assert.True(t, LaneContinuous.HigherThan(LaneDefault))
	assert.True(t, LaneDefault.HigherThan(LaneIdle))
	assert.False(t, LaneIdle.HigherThan(LaneImmediate))
	assert.False(t, LaneDiscrete.HigherThan(LaneDiscrete))
}

func TestLaneClassification(t *testing.T) {
	t.Run("built-in table", func(t *testing.T) {
		table := DefaultTable()

		assert.Equal(t, LaneDiscrete, table.Lane("click"))
		assert.Equal(t, LaneDiscrete, table.Lane("keydown"))
		assert.Equal(t, LaneDiscrete, table.Lane("focus"))
		assert.Equal(t, LaneDiscrete, table.Lane("submit"))
		assert.Equal(t, LaneContinuous, table.Lane("mousemove"))
		assert.Equal(t, LaneContinuous, table.Lane("scroll"))
		assert.Equal(t, LaneContinuous, table.Lane("drag"))
		assert.Equal(t, LaneDefault, table.Lane("load"))
		assert.Equal(t, LaneDefault, table.Lane("message"))
	})

	t.Run("unknown types use the fallback", func(t *testing.T) {
		table := DefaultTable()

		assert.Equal(t, LaneDefault, table.Lane("app:custom"))

		table.SetFallback(LaneContinuous)
		assert.Equal(t, LaneContinuous, table.Lane("app:custom"))
	})

	t.Run("one-line reclassification", func(t *testing.T) {
		table := DefaultTable()

		table.Set("app:save", LaneDiscrete)
		assert.Equal(t, LaneDiscrete, table.Lane("app:save"))
	})
}

func TestParseTable(t *testing.T) {
	t.Run("overrides and fallback", func(t *testing.T) {
		table, err := ParseTable([]byte(`
fallback: continuous
lanes:
  app:save: discrete
  mousemove: idle
`))
		assert.NoError(t, err)

		assert.Equal(t, LaneDiscrete, table.Lane("app:save"))
		assert.Equal(t, LaneIdle, table.Lane("mousemove"))
		assert.Equal(t, LaneContinuous, table.Lane("app:unknown"))

		// unlisted types keep the built-in defaults
		assert.Equal(t, LaneDiscrete, table.Lane("click"))
	})

	t.Run("unknown lane name", func(t *testing.T) {
		_, err := ParseTable([]byte("lanes:\n  click: urgent\n"))
		assert.ErrorContains(t, err, `unknown lane "urgent"`)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := ParseTable([]byte("lanes: [oops"))
		assert.Error(t, err)
	})
}

func TestLaneString(t *testing.T) {
	assert.Equal(t, "immediate", LaneImmediate.String())
	assert.Equal(t, "discrete", LaneDiscrete.String())
	assert.Equal(t, "continuous", LaneContinuous.String())
	assert.Equal(t, "default", LaneDefault.String())
	assert.Equal(t, "idle", LaneIdle.String())
}
