// SPDX-License-Identifier: MIT

// Package dtw aligns two time series with Dynamic Time Warping (DTW) and
// reports the optimal warping path, its accumulated cost and the full
// dynamic-programming table behind it.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone matching between the observations of
//	two sequences, letting one of them locally stretch or compress in time.
//	It is the workhorse distance behind:
//	  • nearest-neighbour time-series classification
//	  • gesture / motion matching
//	  • speech & audio alignment
//	  • clustering of sensor traces
//
// ✨ Key features:
//   - univariate and multivariate sequences (n observations × D channels)
//   - caller-supplied pointwise cost (SquaredEuclidean, Manhattan, Euclidean built in)
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - full alignment (Align) or distance-only with two rolling rows (Distance)
//   - deterministic tie-breaking: diagonal, then up, then left
//
// ⚙️ Usage:
//
//	a := dtw.Univariate([]float64{1, 2, 3})
//	b := dtw.Univariate([]float64{1, 2, 2, 3})
//
//	al, err := dtw.Align(a, b, dtw.SquaredEuclidean, dtw.WithWindow(2))
//	if err != nil {
//	  // errors.Is(err, dtw.ErrInvalidParameters), dtw.ErrInfeasibleAlignment
//	  // or dtw.ErrCostOverflow
//	}
//	fmt.Println(al.Cost, al.Path)
//
// Boundary policy:
//
//	The cost matrix has shape (n+1)×(m+1). Cell (0,0) is 0 and every other
//	cell of row 0 and column 0 is +Inf, so a non-empty prefix can never be
//	matched against an empty one.
//
// Performance:
//
//   - Time:   O(n·m), O(n·w) with a window
//   - Memory: O(n·m) (Align) or O(m) (Distance)
//
// All functions are pure: they never mutate their inputs and keep no shared
// state, so they may be called from any number of goroutines at once.
package dtw
