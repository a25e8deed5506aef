package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericGuards(t *testing.T) {
	assert.Equal(t, Epsilon, floorAbs(0))
	assert.Equal(t, Epsilon, floorAbs(-3))
	assert.Equal(t, 0.5, floorAbs(0.5))

	assert.Equal(t, math.Log(Epsilon), safeLog(0))
	assert.Equal(t, math.Log(Epsilon), safeLog(-1))
	assert.InDelta(t, 0.0, safeLog(1), 1e-15)

	assert.Equal(t, 1.0, clamp(1.0000001, -1, 1))
	assert.Equal(t, -1.0, clamp(-2, -1, 1))
	assert.Equal(t, 0.3, clamp(0.3, -1, 1))

	assert.True(t, allFinite(0, -1, 1e308))
	assert.False(t, allFinite(1, math.NaN()))
	assert.False(t, allFinite(math.Inf(-1)))
	assert.True(t, allFinite())
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 0.1235, roundTo(0.123456, 1e4), 1e-12)
	assert.InDelta(t, 0.0, roundTo(0.00004, 1e4), 1e-12)
	assert.InDelta(t, 0.0001, roundTo(0.00005, 1e4), 1e-12)
	assert.Equal(t, 0.123456, roundTo(0.123456, 0))
	assert.Equal(t, 0.123456, roundTo(0.123456, -1))
}
