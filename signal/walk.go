// SPDX-License-Identifier: MIT

package signal

// RandomWalk returns a length-n walk starting at 0 whose increments are
// N(trend, step²). Noise (WithNoise) is observation noise added after the
// walk, not part of the increments.
func RandomWalk(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	level := 0.0
	for i := 0; i < n; i++ {
		if i > 0 {
			level += cfg.trend + cfg.step*rng.NormFloat64()
		}
		out[i] = level
		if cfg.sigma > 0 {
			out[i] += cfg.sigma * rng.NormFloat64()
		}
	}

	return out
}

// Resample stretches or compresses xs to n samples by linear interpolation,
// keeping both endpoints. It returns nil if xs is empty or n < 1.
func Resample(xs []float64, n int) []float64 {
	if len(xs) == 0 || n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 || len(xs) == 1 {
		for i := range out {
			out[i] = xs[0]
		}

		return out
	}

	scale := float64(len(xs)-1) / float64(n-1)
	var pos, frac float64
	var k int
	for i := 0; i < n; i++ {
		pos = float64(i) * scale
		k = int(pos)
		if k >= len(xs)-1 {
			out[i] = xs[len(xs)-1]
			continue
		}
		frac = pos - float64(k)
		out[i] = xs[k] + frac*(xs[k+1]-xs[k])
	}

	return out
}
