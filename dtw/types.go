// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// Sequence is an ordered series of observations. Each observation is a
// vector of D ≥ 1 channels and all observations share the same D.
// Sequences are read, never written, by this package.
type Sequence [][]float64

// Univariate wraps a plain series as a single-channel Sequence.
func Univariate(xs []float64) Sequence {
	seq := make(Sequence, len(xs))
	for i := range xs {
		seq[i] = []float64{xs[i]}
	}

	return seq
}

// Stack builds a multivariate Sequence from per-channel series of equal
// length: channels[d][t] becomes seq[t][d].
func Stack(channels ...[]float64) (Sequence, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, ErrEmptySequence
	}
	n := len(channels[0])
	for d := range channels {
		if len(channels[d]) != n {
			return nil, fmt.Errorf("stack: channel %d has %d samples, want %d: %w",
				d, len(channels[d]), n, ErrDimensionMismatch)
		}
	}

	seq := make(Sequence, n)
	for t := 0; t < n; t++ {
		obs := make([]float64, len(channels))
		for d := range channels {
			obs[d] = channels[d][t]
		}
		seq[t] = obs
	}

	return seq, nil
}

// Len returns the number of observations.
func (s Sequence) Len() int { return len(s) }

// Channels returns D, the length of the first observation (0 if empty).
func (s Sequence) Channels() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Coord is one matched pair of the warping path: A[I] is aligned to B[J].
type Coord struct {
	I int
	J int
}

// Path is the warping path in increasing index order, from (0,0) to
// (n-1, m-1).
type Path []Coord

// Valid reports whether p is a well-formed warping path for sequences of
// lengths n and m: it starts at (0,0), ends at (n-1,m-1), and every step
// advances I, J or both by exactly one.
func (p Path) Valid(n, m int) bool {
	if len(p) == 0 || n < 1 || m < 1 {
		return false
	}
	if p[0] != (Coord{0, 0}) || p[len(p)-1] != (Coord{n - 1, m - 1}) {
		return false
	}
	for k := 1; k < len(p); k++ {
		di, dj := p[k].I-p[k-1].I, p[k].J-p[k-1].J
		if di < 0 || dj < 0 || di > 1 || dj > 1 || di+dj == 0 {
			return false
		}
	}

	return true
}

// Alignment is the result of Align.
type Alignment struct {
	// Cost is the accumulated cost at cell (n,m); always finite.
	Cost float64

	// Path is the optimal warping path.
	Path Path

	// Matrix is the filled accumulated-cost table. It belongs to the caller.
	Matrix *CostMatrix
}
