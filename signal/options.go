// SPDX-License-Identifier: MIT

package signal

import "math/rand"

// Defaults shared by all generators.
const (
	defAmplitude = 1.0   // peak amplitude A > 0
	defSigma     = 0.0   // Gaussian noise sigma; 0 disables noise
	defTrend     = 0.0   // linear trend per sample
	defChirpF0   = 0.02  // chirp start frequency (cycles/sample)
	defChirpF1   = 0.25  // chirp end frequency (cycles/sample)
	defPulseFreq = 0.125 // pulse frequency (cycles/sample), period 8
	defDuty      = 0.5   // rectangular duty cycle in [0,1]
	defStep      = 1.0   // random-walk step sigma
)

// Option customizes a generator call.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	rng        *rand.Rand
	amplitude  float64
	sigma      float64
	trend      float64
	f0, f1     float64
	pulseFreq  float64
	duty       float64
	triangular bool
	step       float64
}

func newConfig(opts ...Option) config {
	c := config{
		amplitude: defAmplitude,
		sigma:     defSigma,
		trend:     defTrend,
		f0:        defChirpF0,
		f1:        defChirpF1,
		pulseFreq: defPulseFreq,
		duty:      defDuty,
		step:      defStep,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// rngFor returns the shared stream if one was supplied, else a local
// source seeded by seed.
func (c config) rngFor(seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the peak amplitude. Panics if a <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("signal: WithAmplitude(a<=0)")
	}

	return func(c *config) { c.amplitude = a }
}

// WithNoise adds N(0, sigma²) noise to every sample. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("signal: WithNoise(sigma<0)")
	}

	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds k·i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithFrequency sets the chirp sweep endpoints and the pulse frequency
// (f0). Panics unless both are > 0.
func WithFrequency(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic("signal: WithFrequency(f<=0)")
	}

	return func(c *config) {
		c.f0, c.f1 = f0, f1
		c.pulseFreq = f0
	}
}

// WithDuty sets the rectangular pulse duty cycle. Panics outside [0,1].
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("signal: WithDuty(duty∉[0,1])")
	}

	return func(c *config) { c.duty = duty }
}

// WithTriangular switches Pulse to a triangular wave.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithStep sets the random-walk step sigma. Panics if s <= 0.
func WithStep(s float64) Option {
	if s <= 0 {
		panic("signal: WithStep(s<=0)")
	}

	return func(c *config) { c.step = s }
}

// WithRand shares one RNG stream across calls; it overrides the seed
// argument. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}
