// SPDX-License-Identifier: MIT

package classifier

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/dtw"
)

// Estimator is a supervised model over a feature table: one row per
// sample, one column per feature.
type Estimator interface {
	Fit(X mat.Matrix, y []string) error
	Predict(X mat.Matrix) ([]string, error)
}

// ProbaPredictor is the optional probability capability. Columns follow
// the sorted order of the labels passed to Fit.
type ProbaPredictor interface {
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

// Parallel estimators accept a worker count.
type Parallel interface {
	SetJobs(n int)
}

// Seedable estimators accept a random state.
type Seedable interface {
	SetSeed(seed int64)
}

// Cloner estimators return an unfitted copy with the same parameters.
type Cloner interface {
	Clone() Estimator
}

// Transformer turns raw sequences into a feature table.
type Transformer interface {
	FitTransform(X []dtw.Sequence, y []string) (*mat.Dense, error)
	Transform(X []dtw.Sequence) (*mat.Dense, error)
}

// cloneEstimator returns a private copy when e supports it, else e itself.
func cloneEstimator(e Estimator) Estimator {
	if c, ok := e.(Cloner); ok {
		return c.Clone()
	}

	return e
}
