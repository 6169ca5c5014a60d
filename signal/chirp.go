// SPDX-License-Identifier: MIT

package signal

import "math"

const tau = 2 * math.Pi

// Chirp returns a length-n linear chirp whose frequency sweeps from f0 to f1.
//
//	fᵢ   = f0 + (f1 − f0)·i/(n−1)
//	θᵢ₊₁ = θᵢ + 2π·fᵢ
//	yᵢ   = A·sin(θᵢ) + trend·i + noise
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	var theta, t, fi float64
	for i := 0; i < n; i++ {
		t = 0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.f0 + (cfg.f1-cfg.f0)*t
		theta += tau * fi
		out[i] = cfg.amplitude*math.Sin(theta) + cfg.trend*float64(i)
		if cfg.sigma > 0 {
			out[i] += cfg.sigma * rng.NormFloat64()
		}
	}

	return out
}
