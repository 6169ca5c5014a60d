// SPDX-License-Identifier: MIT

// Package aligner maps human-readable algorithm names to an alignment
// engine and the distance factory that wraps it.
//
// Lifecycle:
//
//	populate once at start-up → read-only for the rest of the process.
//
// Default returns the process-wide registry of built-in aligners; it is
// populated exactly once, on first use, and never mutated afterwards, so
// Lookup, Names and Entries need no locking. Callers that want extra
// entries build their own registry (NewRegistry + Register before sharing
// it) or derive one with With, which copies instead of mutating.
//
//	e, err := aligner.Default().Lookup(aligner.DTWCostMatrix)
//	if err != nil {
//	  // errors.Is(err, aligner.ErrUnknownAlignerName)
//	}
//	d, _ := e.Factory.New(dtw.SquaredEuclidean, dtw.WithWindow(5))
//	cost, _ := d.Compute(a, b)
//	al, _ := e.Engine.Align(a, b, dtw.SquaredEuclidean) // full path + matrix
package aligner
