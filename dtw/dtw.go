// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// Align computes the optimal DTW alignment of a and b under cost.
//
// Algorithm (full matrix):
//  1. Let n = len(a), m = len(b). Allocate the (n+1)×(m+1) table D with
//     D[0][0] = 0 and +Inf everywhere else.
//  2. For i = 1..n, for j in the window of row i (all of 1..m if none):
//     D[i][j] = cost(a[i-1], b[j-1]) + min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//  3. Cost = D[n][m]; +Inf means no path fits the window, or the sum of
//     finite costs overflowed.
//  4. Backtrack from (n,m) to (1,1) choosing the cheapest predecessor,
//     preferring diagonal, then up (i-1,j), then left (i,j-1) on ties.
//
// Errors:
//   - ErrInvalidParameters (or a refinement) for malformed input.
//   - ErrInfeasibleAlignment when the window admits no path.
//   - ErrCostOverflow when a path exists but its cost overflows to +Inf.
//
// Complexity: O(n·m) time and memory; O(n·w) time with a window.
func Align(a, b Sequence, cost CostFunc, opts ...Option) (*Alignment, error) {
	cfg, err := prepare(a, b, cost, opts)
	if err != nil {
		return nil, err
	}

	n, m := len(a), len(b)
	cm := newCostMatrix(n, m)

	var (
		prev, cur []float64
		lo, hi    int
		c         float64
	)
	for i := 1; i <= n; i++ {
		prev, cur = cm.row(i-1), cm.row(i)
		lo, hi = cfg.band(i, m)
		x := a[i-1]
		for j := lo; j <= hi; j++ {
			c = cost(x, b[j-1])
			if !finiteNonNegative(c) {
				return nil, fmt.Errorf("align: cost(a[%d], b[%d]) = %v: %w", i-1, j-1, c, ErrBadCost)
			}
			cur[j] = c + min3(prev[j-1], prev[j], cur[j-1])
		}
	}

	total := cm.At(n, m)
	if math.IsInf(total, 1) {
		return nil, cfg.unreachable("align", n, m)
	}

	return &Alignment{
		Cost:   total,
		Path:   backtrack(cm, n, m),
		Matrix: cm,
	}, nil
}

// Distance returns only the DTW cost of aligning a and b. It runs the same
// recurrence as Align over two rolling rows and yields the identical value,
// but never materialises the table or the path.
//
// Complexity: O(n·m) time (O(n·w) with a window), O(m) memory.
func Distance(a, b Sequence, cost CostFunc, opts ...Option) (float64, error) {
	cfg, err := prepare(a, b, cost, opts)
	if err != nil {
		return 0, err
	}

	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := range prev {
		prev[j] = inf
		cur[j] = inf
	}
	prev[0] = 0

	var (
		lo, hi int
		c      float64
	)
	for i := 1; i <= n; i++ {
		lo, hi = cfg.band(i, m)
		// cur still holds row i-2; only these cells can be read stale.
		cur[0] = inf
		if lo > 1 {
			cur[lo-1] = inf
		}
		x := a[i-1]
		for j := lo; j <= hi; j++ {
			c = cost(x, b[j-1])
			if !finiteNonNegative(c) {
				return 0, fmt.Errorf("distance: cost(a[%d], b[%d]) = %v: %w", i-1, j-1, c, ErrBadCost)
			}
			cur[j] = c + min3(prev[j-1], prev[j], cur[j-1])
		}
		prev, cur = cur, prev
	}

	if math.IsInf(prev[m], 1) {
		return 0, cfg.unreachable("distance", n, m)
	}

	return prev[m], nil
}

// Validate runs the eager precondition checks of Align and Distance without
// computing anything.
func Validate(a, b Sequence, cost CostFunc, opts ...Option) error {
	_, err := prepare(a, b, cost, opts)

	return err
}

// prepare validates everything that can be checked before allocation.
func prepare(a, b Sequence, cost CostFunc, opts []Option) (config, error) {
	if cost == nil {
		return config{}, ErrNilCost
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return config{}, err
	}
	if len(a) == 0 || len(b) == 0 {
		return config{}, ErrEmptySequence
	}
	d := len(a[0])
	if d == 0 {
		return config{}, ErrEmptySequence
	}
	if err = checkChannels("a", a, d); err != nil {
		return config{}, err
	}
	if err = checkChannels("b", b, d); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// checkChannels verifies every observation of s has exactly d channels.
func checkChannels(name string, s Sequence, d int) error {
	for t := range s {
		if len(s[t]) != d {
			return fmt.Errorf("%s[%d] has %d channels, want %d: %w", name, t, len(s[t]), d, ErrDimensionMismatch)
		}
	}

	return nil
}

// backtrack walks the filled table from (n,m) back to (1,1) and returns the
// path in increasing order. Predecessors on row 0 or column 0 are +Inf and
// therefore never chosen while a finite neighbour exists.
func backtrack(cm *CostMatrix, n, m int) Path {
	path := make(Path, 0, n+m-1)
	i, j := n, m
	var diag, up, left float64
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left = cm.At(i-1, j-1), cm.At(i-1, j), cm.At(i, j-1)
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// finiteNonNegative reports whether c is a usable pointwise cost.
func finiteNonNegative(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}

// min3 returns the minimum of the diagonal, up and left predecessors.
func min3(diag, up, left float64) float64 {
	if diag <= up && diag <= left {
		return diag
	}
	if up <= left {
		return up
	}

	return left
}
