package kpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioZeroBase(t *testing.T) {
	assert.Zero(t, Ratio(100, 0))
	assert.Zero(t, RatioF(1.5, 0))
	assert.InDelta(t, 28.5, Ratio(42750, 150000), 1e-9)
}

func TestChangePercent(t *testing.T) {
	assert.Zero(t, ChangePercent(100, 0), "no baseline means no comparison")
	assert.InDelta(t, 12.5, ChangePercent(4500000, 4000000), 1e-9)
	assert.InDelta(t, -10, ChangePercent(90, 100), 1e-9)
}

func TestFinite(t *testing.T) {
	assert.Zero(t, Finite(math.NaN()))
	assert.Zero(t, Finite(math.Inf(1)))
	assert.Zero(t, Finite(math.Inf(-1)))
	assert.Equal(t, 1.5, Finite(1.5))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 6.6, Round1(6.598))
	assert.Equal(t, -1.0, Round1(-0.95))
	assert.Equal(t, 0.0, Round1(0.04))
}
