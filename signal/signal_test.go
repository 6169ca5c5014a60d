package signal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tswarp/signal"
)

// TestGenerators_InvalidSize verifies every generator returns nil for n < 1.
func TestGenerators_InvalidSize(t *testing.T) {
	assert.Nil(t, signal.Chirp(0, 1))
	assert.Nil(t, signal.Pulse(-3, 1))
	assert.Nil(t, signal.RandomWalk(0, 1))
	assert.Nil(t, signal.Resample(nil, 4))
	assert.Nil(t, signal.Resample([]float64{1, 2}, 0))
}

// TestGenerators_Deterministic checks identical seeds give identical output
// and different seeds diverge once noise is on.
func TestGenerators_Deterministic(t *testing.T) {
	gens := map[string]func(int, int64, ...signal.Option) []float64{
		"chirp": signal.Chirp,
		"pulse": signal.Pulse,
		"walk":  signal.RandomWalk,
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			a := gen(64, 42, signal.WithNoise(0.1))
			b := gen(64, 42, signal.WithNoise(0.1))
			c := gen(64, 43, signal.WithNoise(0.1))
			require.Len(t, a, 64)
			assert.Equal(t, a, b, "same seed must reproduce")
			assert.NotEqual(t, a, c, "different seed must diverge")
		})
	}
}

// TestChirp_Bounded checks a noiseless chirp stays within ±A.
func TestChirp_Bounded(t *testing.T) {
	xs := signal.Chirp(500, 1, signal.WithAmplitude(2))
	for i, x := range xs {
		assert.LessOrEqual(t, math.Abs(x), 2.0+1e-12, "sample %d", i)
	}
}

// TestPulse_Rectangular checks the default 8-sample period with 50% duty.
func TestPulse_Rectangular(t *testing.T) {
	xs := signal.Pulse(16, 0)
	want := []float64{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}
	assert.Equal(t, want, xs)
}

// TestPulse_TriangularTrend checks triangle shape plus a linear trend.
func TestPulse_TriangularTrend(t *testing.T) {
	xs := signal.Pulse(5, 0, signal.WithTriangular(), signal.WithFrequency(0.25, 0.25), signal.WithTrend(1))
	// frac = 0, .25, .5, .75, 0 → tri = 0, .5, 1, .5, 0; trend adds i.
	want := []float64{0, 1.5, 3, 3.5, 4}
	assert.InDeltaSlice(t, want, xs, 1e-12)
}

// TestRandomWalk_SharedRand checks WithRand overrides the seed argument.
func TestRandomWalk_SharedRand(t *testing.T) {
	a := signal.RandomWalk(10, 1, signal.WithRand(rand.New(rand.NewSource(9))))
	b := signal.RandomWalk(10, 2, signal.WithRand(rand.New(rand.NewSource(9))))
	assert.Equal(t, a, b)
	assert.Equal(t, 0.0, a[0], "walk starts at zero")
}

// TestResample_Endpoints verifies stretching keeps endpoints and interpolates.
func TestResample_Endpoints(t *testing.T) {
	xs := []float64{0, 2, 4}
	out := signal.Resample(xs, 5)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, out, 1e-12)

	out = signal.Resample(xs, 2)
	assert.Equal(t, []float64{0, 4}, out)

	out = signal.Resample([]float64{7}, 3)
	assert.Equal(t, []float64{7, 7, 7}, out)
}

// TestOptions_PanicOnNonsense ensures option constructors reject bad values.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { signal.WithAmplitude(0) })
	assert.Panics(t, func() { signal.WithNoise(-1) })
	assert.Panics(t, func() { signal.WithFrequency(0, 1) })
	assert.Panics(t, func() { signal.WithDuty(1.5) })
	assert.Panics(t, func() { signal.WithStep(0) })
	assert.Panics(t, func() { signal.WithRand(nil) })
}
