package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tswarp/dtw"
	"github.com/katalvlaran/tswarp/signal"
)

// diagonal returns the path (0,0),(1,1),…,(n-1,n-1).
func diagonal(n int) dtw.Path {
	p := make(dtw.Path, n)
	for i := range p {
		p[i] = dtw.Coord{I: i, J: i}
	}

	return p
}

// TestAlign_Identical verifies identical sequences align at zero cost along
// the diagonal.
func TestAlign_Identical(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2, 3})
	b := dtw.Univariate([]float64{1, 2, 3})

	al, err := dtw.Align(a, b, dtw.SquaredEuclidean)
	require.NoError(t, err)
	assert.Equal(t, 0.0, al.Cost)
	assert.Equal(t, dtw.Path{{0, 0}, {1, 1}, {2, 2}}, al.Path)
}

// TestAlign_ConstantOffset checks A=[0,0,0], B=[1,1,1] costs 3 on the diagonal.
func TestAlign_ConstantOffset(t *testing.T) {
	a := dtw.Univariate([]float64{0, 0, 0})
	b := dtw.Univariate([]float64{1, 1, 1})

	al, err := dtw.Align(a, b, dtw.SquaredEuclidean)
	require.NoError(t, err)
	assert.Equal(t, 3.0, al.Cost)
	assert.Equal(t, diagonal(3), al.Path)
}

// TestAlign_Subsequence checks a repeated element is absorbed at zero cost.
func TestAlign_Subsequence(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2, 3})
	b := dtw.Univariate([]float64{1, 2, 2, 3})

	al, err := dtw.Align(a, b, dtw.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, 0.0, al.Cost)
	assert.Equal(t, dtw.Path{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, al.Path)
}

// TestAlign_TieBreakPrefersDiagonalThenUp pins the deterministic tie order.
// With all-zero costs every predecessor ties, so the path must be diagonal
// until one index runs out, then move "up" (advance I) before "left".
func TestAlign_TieBreakPrefersDiagonalThenUp(t *testing.T) {
	a := dtw.Univariate([]float64{5, 5, 5, 5})
	b := dtw.Univariate([]float64{5, 5})

	al, err := dtw.Align(a, b, dtw.SquaredEuclidean)
	require.NoError(t, err)
	// Backtrack from (4,2): diag (3,1) wins, then at (3,1) diag is on
	// column 0 (+Inf) so "up" to (2,1), then up to (1,1).
	assert.Equal(t, dtw.Path{{0, 0}, {1, 0}, {2, 0}, {3, 1}}, al.Path)

	al, err = dtw.Align(b, a, dtw.SquaredEuclidean)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{0, 0}, {0, 1}, {0, 2}, {1, 3}}, al.Path)
}

// TestAlign_MatrixBoundary checks the documented boundary policy and that
// the returned table is consistent with Cost.
func TestAlign_MatrixBoundary(t *testing.T) {
	a := dtw.Univariate([]float64{1, 3, 4})
	b := dtw.Univariate([]float64{1, 4})

	al, err := dtw.Align(a, b, dtw.SquaredEuclidean)
	require.NoError(t, err)

	cm := al.Matrix
	require.Equal(t, 4, cm.Rows())
	require.Equal(t, 3, cm.Cols())
	assert.Equal(t, 0.0, cm.At(0, 0))
	for i := 1; i < cm.Rows(); i++ {
		assert.True(t, math.IsInf(cm.At(i, 0), 1), "column 0 row %d", i)
	}
	for j := 1; j < cm.Cols(); j++ {
		assert.True(t, math.IsInf(cm.At(0, j), 1), "row 0 col %d", j)
	}
	assert.Equal(t, al.Cost, cm.At(3, 2))
	// (1-1)² + (3-4)² + (4-4)² via (0,0),(1,1),(2,1).
	assert.Equal(t, 1.0, al.Cost)

	// Dense is a copy; mutating it must not leak into the alignment.
	d := cm.Dense()
	d.Set(3, 2, 99)
	assert.Equal(t, 1.0, cm.At(3, 2))
}

// TestAlign_WindowZeroMismatchedLengths verifies window=0 with n≠m is infeasible.
func TestAlign_WindowZeroMismatchedLengths(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2, 3})
	b := dtw.Univariate([]float64{1, 2, 3, 4})

	_, err := dtw.Align(a, b, dtw.SquaredEuclidean, dtw.WithWindow(0))
	assert.ErrorIs(t, err, dtw.ErrInfeasibleAlignment)

	_, err = dtw.Distance(a, b, dtw.SquaredEuclidean, dtw.WithWindow(0))
	assert.ErrorIs(t, err, dtw.ErrInfeasibleAlignment)

	// Equal lengths stay feasible on the pure diagonal.
	al, err := dtw.Align(a, a, dtw.SquaredEuclidean, dtw.WithWindow(0))
	require.NoError(t, err)
	assert.Equal(t, diagonal(3), al.Path)
}

// TestAlign_WithoutWindowClears checks a later WithoutWindow lifts the band.
func TestAlign_WithoutWindowClears(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2, 3})
	b := dtw.Univariate([]float64{1, 2, 3, 4})

	_, err := dtw.Align(a, b, dtw.SquaredEuclidean, dtw.WithWindow(0), dtw.WithoutWindow())
	assert.NoError(t, err)
}

// TestAlign_InvalidParameters walks the eager validation table.
func TestAlign_InvalidParameters(t *testing.T) {
	uni := dtw.Univariate([]float64{1, 2})
	bi := dtw.Sequence{{1, 2}, {3, 4}}
	ragged := dtw.Sequence{{1, 2}, {3}}

	cases := []struct {
		name string
		a, b dtw.Sequence
		cost dtw.CostFunc
		opts []dtw.Option
		want error
	}{
		{"empty a", dtw.Sequence{}, uni, dtw.SquaredEuclidean, nil, dtw.ErrEmptySequence},
		{"empty b", uni, nil, dtw.SquaredEuclidean, nil, dtw.ErrEmptySequence},
		{"zero channels", dtw.Sequence{{}}, dtw.Sequence{{}}, dtw.SquaredEuclidean, nil, dtw.ErrEmptySequence},
		{"channel mismatch", uni, bi, dtw.SquaredEuclidean, nil, dtw.ErrDimensionMismatch},
		{"ragged", ragged, bi, dtw.SquaredEuclidean, nil, dtw.ErrDimensionMismatch},
		{"negative window", uni, uni, dtw.SquaredEuclidean, []dtw.Option{dtw.WithWindow(-1)}, dtw.ErrNegativeWindow},
		{"nil cost", uni, uni, nil, nil, dtw.ErrNilCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dtw.Align(tc.a, tc.b, tc.cost, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, dtw.ErrInvalidParameters, "must belong to the InvalidParameters class")

			_, err = dtw.Distance(tc.a, tc.b, tc.cost, tc.opts...)
			assert.ErrorIs(t, err, tc.want)

			assert.ErrorIs(t, dtw.Validate(tc.a, tc.b, tc.cost, tc.opts...), tc.want)
		})
	}
}

// TestAlign_BadCost rejects NaN and negative pointwise costs.
func TestAlign_BadCost(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2})
	nan := func(x, y []float64) float64 { return math.NaN() }
	neg := func(x, y []float64) float64 { return -1 }

	_, err := dtw.Align(a, a, nan)
	assert.ErrorIs(t, err, dtw.ErrBadCost)
	_, err = dtw.Distance(a, a, neg)
	assert.ErrorIs(t, err, dtw.ErrBadCost)
	assert.ErrorIs(t, err, dtw.ErrInvalidParameters)
}

// TestAlign_CostOverflow separates overflow from window infeasibility.
func TestAlign_CostOverflow(t *testing.T) {
	a := dtw.Univariate([]float64{1, 2})
	huge := func(x, y []float64) float64 { return 1e308 }

	_, err := dtw.Align(a, a, huge)
	assert.ErrorIs(t, err, dtw.ErrCostOverflow)
	assert.NotErrorIs(t, err, dtw.ErrInfeasibleAlignment)
	_, err = dtw.Distance(a, a, huge, dtw.WithWindow(0))
	assert.ErrorIs(t, err, dtw.ErrCostOverflow, "band admits the diagonal")

	b := dtw.Univariate([]float64{1, 2, 3})
	_, err = dtw.Align(a, b, huge, dtw.WithWindow(0))
	assert.ErrorIs(t, err, dtw.ErrInfeasibleAlignment, "band admits no path")
	_, err = dtw.Distance(a, b, huge, dtw.WithWindow(1))
	assert.ErrorIs(t, err, dtw.ErrCostOverflow)
}

// TestAlign_Multivariate aligns two-channel sequences.
func TestAlign_Multivariate(t *testing.T) {
	a, err := dtw.Stack([]float64{0, 1, 2}, []float64{0, 0, 0})
	require.NoError(t, err)
	b, err := dtw.Stack([]float64{0, 1, 1, 2}, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 2, a.Channels())

	al, err := dtw.Align(a, b, dtw.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, 0.0, al.Cost)
	assert.True(t, al.Path.Valid(a.Len(), b.Len()))

	_, err = dtw.Stack([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch)
	_, err = dtw.Stack()
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)
}

// TestDistance_MatchesAlign checks the rolling-row path yields the exact
// same cost as the full matrix, with and without windows.
func TestDistance_MatchesAlign(t *testing.T) {
	a := dtw.Univariate(signal.Chirp(60, 1, signal.WithNoise(0.1)))
	b := dtw.Univariate(signal.Resample(signal.Chirp(60, 2, signal.WithNoise(0.1)), 75))

	for _, opts := range [][]dtw.Option{nil, {dtw.WithWindow(15)}, {dtw.WithWindow(40)}} {
		al, err := dtw.Align(a, b, dtw.SquaredEuclidean, opts...)
		require.NoError(t, err)
		d, err := dtw.Distance(a, b, dtw.SquaredEuclidean, opts...)
		require.NoError(t, err)
		assert.Equal(t, al.Cost, d)
	}
}

// TestAlign_Properties checks symmetry, path validity and window
// monotonicity on deterministic random walks.
func TestAlign_Properties(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		n, m := 20+int(seed), 30-int(seed)
		a := dtw.Univariate(signal.RandomWalk(n, seed))
		b := dtw.Univariate(signal.RandomWalk(m, seed*31))

		ab, err := dtw.Align(a, b, dtw.SquaredEuclidean)
		require.NoError(t, err)
		ba, err := dtw.Align(b, a, dtw.SquaredEuclidean)
		require.NoError(t, err)

		assert.InDelta(t, ab.Cost, ba.Cost, 1e-9, "symmetry, seed %d", seed)
		assert.True(t, ab.Path.Valid(n, m), "path validity, seed %d", seed)
		assert.True(t, ba.Path.Valid(m, n), "path validity, seed %d", seed)

		// Path cost must reproduce the total.
		var sum float64
		for _, c := range ab.Path {
			sum += dtw.SquaredEuclidean(a[c.I], b[c.J])
		}
		assert.InDelta(t, ab.Cost, sum, 1e-9, "path cost, seed %d", seed)

		// Tighter windows never decrease the cost.
		diff := n - m
		if diff < 0 {
			diff = -diff
		}
		prev := math.Inf(1)
		for _, w := range []int{diff, diff + 2, diff + 5, diff + 12} {
			d, err := dtw.Distance(a, b, dtw.SquaredEuclidean, dtw.WithWindow(w))
			require.NoError(t, err, "window %d must be feasible", w)
			assert.LessOrEqual(t, d, prev, "w=%d seed=%d", w, seed)
			assert.GreaterOrEqual(t, d, ab.Cost-1e-9, "banded ≥ unbanded")
			prev = d
		}
	}
}

// TestPath_Valid exercises the path validator directly.
func TestPath_Valid(t *testing.T) {
	assert.True(t, dtw.Path{{0, 0}}.Valid(1, 1))
	assert.True(t, dtw.Path{{0, 0}, {1, 0}, {1, 1}}.Valid(2, 2))
	assert.False(t, dtw.Path{}.Valid(1, 1), "empty")
	assert.False(t, dtw.Path{{0, 1}, {1, 1}}.Valid(2, 2), "bad start")
	assert.False(t, dtw.Path{{0, 0}, {1, 1}}.Valid(3, 2), "bad end")
	assert.False(t, dtw.Path{{0, 0}, {0, 0}, {1, 1}}.Valid(2, 2), "stall")
	assert.False(t, dtw.Path{{0, 0}, {2, 1}, {2, 1}}.Valid(3, 2), "skip")
}

// TestCostByName resolves the built-in pointwise costs.
func TestCostByName(t *testing.T) {
	for _, name := range []string{"squared", "absolute", "euclidean", "manhattan", "sqeuclidean"} {
		fn, ok := dtw.CostByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}
	_, ok := dtw.CostByName("cosine")
	assert.False(t, ok)

	x, y := []float64{0, 3}, []float64{4, 0}
	assert.Equal(t, 25.0, dtw.SquaredEuclidean(x, y))
	assert.Equal(t, 7.0, dtw.Manhattan(x, y))
	assert.Equal(t, 5.0, dtw.Euclidean(x, y))
}
