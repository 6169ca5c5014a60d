package classifier_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/classifier"
	"github.com/katalvlaran/tswarp/dtw"
	"github.com/katalvlaran/tswarp/signal"
)

// noisy returns n random walks with labels cycling over three classes, so
// the classes overlap and ensemble votes are rarely unanimous.
func noisy(n int, seed int64) ([]dtw.Sequence, []string) {
	X := make([]dtw.Sequence, n)
	y := make([]string, n)
	for i := range X {
		X[i] = dtw.Univariate(signal.RandomWalk(30, seed+int64(i)))
		y[i] = fmt.Sprintf("c%d", i%3)
	}

	return X, y
}

func features(t *testing.T, X []dtw.Sequence, y []string) *mat.Dense {
	t.Helper()
	tr, err := classifier.NewSummaryTransformer(classifier.DefaultSummaryFunctions, classifier.DefaultQuantiles)
	require.NoError(t, err)
	F, err := tr.FitTransform(X, y)
	require.NoError(t, err)

	return F
}

func TestBaggedNeighbors_Capabilities(t *testing.T) {
	var est classifier.Estimator = classifier.NewBaggedNeighbors(0, 0)
	assert.Implements(t, (*classifier.Seedable)(nil), est)
	assert.Implements(t, (*classifier.Parallel)(nil), est)
	assert.Implements(t, (*classifier.Cloner)(nil), est)
	assert.Implements(t, (*classifier.ProbaPredictor)(nil), est)

	b := est.(*classifier.BaggedNeighbors)
	assert.Equal(t, 1, b.K())
	assert.Equal(t, 1, b.Size())
}

func TestBaggedNeighbors_SeedReproducibility(t *testing.T) {
	X, y := noisy(36, 3)
	F := features(t, X, y)
	QX, Qy := noisy(12, 500)
	Q := features(t, QX, Qy)

	fit := func(seed int64) *mat.Dense {
		b := classifier.NewBaggedNeighbors(3, 8)
		b.SetSeed(seed)
		require.NoError(t, b.Fit(F, y))
		p, err := b.PredictProba(Q)
		require.NoError(t, err)

		return p
	}

	a, again, other := fit(11), fit(11), fit(12)
	assert.True(t, mat.Equal(a, again), "same seed, same probabilities")
	assert.False(t, mat.Equal(a, other), "different seed, different probabilities")
}

func TestBaggedNeighbors_ParallelMatchesSerial(t *testing.T) {
	X, y := noisy(24, 9)
	F := features(t, X, y)

	serial := classifier.NewBaggedNeighbors(3, 6)
	serial.SetSeed(4)
	require.NoError(t, serial.Fit(F, y))
	par := serial.Clone().(*classifier.BaggedNeighbors)
	par.SetJobs(4)
	require.NoError(t, par.Fit(F, y))

	a, err := serial.PredictProba(F)
	require.NoError(t, err)
	b, err := par.PredictProba(F)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))
}

func TestBaggedNeighbors_ProbaRows(t *testing.T) {
	X, y := twoClass(5, 100)
	F := features(t, X, y)

	b := classifier.NewBaggedNeighbors(1, 5)
	require.NoError(t, b.Fit(F, y))
	assert.Equal(t, []string{"chirp", "pulse"}, b.Classes())

	p, err := b.PredictProba(F)
	require.NoError(t, err)
	r, c := p.Dims()
	require.Equal(t, len(y), r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, p.At(i, 0)+p.At(i, 1), 1e-12, "row %d", i)
	}

	pred, err := b.Predict(F)
	require.NoError(t, err)
	assert.Len(t, pred, len(y))
}

func TestBaggedNeighbors_Errors(t *testing.T) {
	b := classifier.NewBaggedNeighbors(3, 4)

	_, err := b.Predict(mat.NewDense(1, 2, nil))
	assert.ErrorIs(t, err, classifier.ErrNotFitted)

	assert.ErrorIs(t, b.Fit(mat.NewDense(2, 2, nil), []string{"a"}), classifier.ErrLengthMismatch)

	require.NoError(t, b.Fit(mat.NewDense(2, 2, []float64{0, 0, 1, 1}), []string{"a", "b"}))
	_, err = b.PredictProba(mat.NewDense(1, 3, nil))
	assert.ErrorIs(t, err, classifier.ErrFeatureMismatch)

	assert.Nil(t, b.Clone().(*classifier.BaggedNeighbors).Classes(), "clone is unfitted")
}

// TestSummaryClassifier_RandomState drives the seed through WithRandomState.
func TestSummaryClassifier_RandomState(t *testing.T) {
	train, labels := noisy(36, 3)
	test, _ := noisy(12, 500)

	proba := func(seed int64) *mat.Dense {
		clf := classifier.NewSummaryClassifier(
			classifier.WithEstimator(classifier.NewBaggedNeighbors(3, 8)),
			classifier.WithRandomState(seed),
		)
		require.NoError(t, clf.Fit(train, labels))
		p, err := clf.PredictProba(test)
		require.NoError(t, err)

		return p
	}

	assert.True(t, mat.Equal(proba(21), proba(21)))
	assert.False(t, mat.Equal(proba(21), proba(22)))
}
