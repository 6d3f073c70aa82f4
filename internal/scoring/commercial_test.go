package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedJitter struct {
	value float64
}

func (j fixedJitter) Factor(max float64) float64 { return j.value }

func TestDefaultReductionSchedule(t *testing.T) {
	schedule := DefaultReductionSchedule()

	assert.Equal(t, 0.02, schedule.BaseReduction(1))
	assert.Equal(t, 0.04, schedule.BaseReduction(2))
	assert.Equal(t, 0.055, schedule.BaseReduction(3))
	assert.Equal(t, 0.0, schedule.BaseReduction(0))
	assert.Equal(t, 0.0, schedule.BaseReduction(4))
}

func TestSimulateOffer(t *testing.T) {
	schedule := DefaultReductionSchedule()

	// 1,000,000 at round 3 with 5.5% base reduction and no jitter.
	got := SimulateOffer(1_000_000, 3, schedule, fixedJitter{0})
	assert.InDelta(t, 945_000, got, 0.001)

	got = SimulateOffer(1_000_000, 1, schedule, fixedJitter{0})
	assert.InDelta(t, 980_000, got, 0.001)

	// Jitter deepens the reduction.
	got = SimulateOffer(1_000_000, 1, schedule, fixedJitter{0.005})
	assert.InDelta(t, 975_000, got, 0.001)

	// Nil jitter source means base reduction only.
	got = SimulateOffer(1_000_000, 2, schedule, nil)
	assert.InDelta(t, 960_000, got, 0.001)
}

func TestRandomJitterBounded(t *testing.T) {
	jitter := NewRandomJitter()

	for i := 0; i < 1000; i++ {
		f := jitter.Factor(0.005)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 0.005)
	}

	assert.Equal(t, 0.0, jitter.Factor(0))
}

func TestNormalizeCommercial(t *testing.T) {
	assert.Equal(t, 20.0, NormalizeCommercial(100))
	assert.Equal(t, 17.0, NormalizeCommercial(85))
	assert.Equal(t, 0.0, NormalizeCommercial(0))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 82.0, RoundScore(82.04))
	assert.Equal(t, 82.1, RoundScore(82.06))
	assert.True(t, math.Abs(RoundScore(79.85)-79.9) < 1e-9)
}
