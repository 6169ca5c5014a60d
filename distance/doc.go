// SPDX-License-Identifier: MIT

// Package distance turns alignment engines into scalar distance functions
// and evaluates them over many sequence pairs.
//
// A Factory validates its parameters once and hands back a Distance: an
// immutable value whose Compute method runs one alignment and keeps only
// the cost. Distances hold no mutable state and are safe to share across
// goroutines.
//
//	d, err := distance.DTW{}.New(dtw.SquaredEuclidean, dtw.WithWindow(10))
//	cost, err := d.Compute(a, b)
//
// Pairwise fans a Distance out over every (x, y) pair with a bounded pool
// of workers and gathers the results into gonum matrices:
//
//	pw := distance.NewPairwise(d, distance.WithWorkers(8))
//	m, err := pw.Cross(ctx, train, test) // len(train) × len(test)
//
// Errors from the engine are returned unchanged apart from the pair
// indices, so errors.Is(err, dtw.ErrInfeasibleAlignment) keeps working.
package distance
