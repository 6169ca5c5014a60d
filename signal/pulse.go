// SPDX-License-Identifier: MIT

package signal

import "math"

// Pulse returns a length-n periodic pulse.
//
// Shapes:
//   - rectangular (default): A while the phase fraction is below duty, else 0
//   - triangular: A·(1 − |2·frac − 1|)
//
// Trend and noise are added on top, as in Chirp.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		frac = math.Mod(float64(i)*cfg.pulseFreq, 1)
		switch {
		case cfg.triangular:
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			base = cfg.amplitude
		default:
			base = 0
		}
		base += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			base += cfg.sigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}
