// SPDX-License-Identifier: MIT

// Package signal generates deterministic synthetic time series for tests,
// benchmarks, examples and the tswarp CLI.
//
// Generators:
//   - Chirp       linear frequency sweep f0 → f1
//   - Pulse       rectangular or triangular periodic pulse
//   - RandomWalk  cumulative Gaussian steps
//   - Resample    linear time-stretch of an existing series (a known warp)
//
// Every generator takes (n, seed, opts...) and returns a slice of length n,
// or nil when n < 1. The same seed and options always produce the same
// output. Options validate eagerly and panic on meaningless values, which
// are programmer errors; generators themselves never panic.
//
//	a := signal.Chirp(200, 7, signal.WithNoise(0.05))
//	b := signal.Resample(a, 260) // same shape, stretched in time
package signal
