// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"log/slog"
	"runtime"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/dtw"
)

// DefaultNeighbors is the k of the estimator used when none is configured.
const DefaultNeighbors = 1

// SummaryClassifier extracts summary features from each series and fits an
// Estimator on them. It is not safe for concurrent Fit; Predict and
// PredictProba may run concurrently once fitted if the estimator allows it.
type SummaryClassifier struct {
	functions []string
	quantiles []float64
	estimator Estimator
	jobs      int
	seed      int64
	seeded    bool
	logger    *slog.Logger

	transformer *SummaryTransformer
	fitted      Estimator
	labels      labelSet
}

// NewSummaryClassifier returns an unfitted classifier. Without options it
// uses DefaultSummaryFunctions, DefaultQuantiles and a 1-nearest-neighbour
// estimator on a single worker.
func NewSummaryClassifier(opts ...Option) *SummaryClassifier {
	c := &SummaryClassifier{
		functions: append([]string(nil), DefaultSummaryFunctions...),
		quantiles: append([]float64(nil), DefaultQuantiles...),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.estimator == nil {
		c.estimator = NewKNeighbors(DefaultNeighbors)
	}

	return c
}

// Jobs returns the resolved worker count.
func (c *SummaryClassifier) Jobs() int {
	switch {
	case c.jobs == 0:
		return 1
	case c.jobs < 0:
		return max(1, runtime.NumCPU()+1+c.jobs)
	default:
		return c.jobs
	}
}

// Fit transforms X and trains the estimator on the result. With a Cloner
// estimator a failed Fit leaves any previous fit in place; otherwise the
// estimator is trained in place, so a failed Fit also discards the
// previous fit and the classifier reports ErrNotFitted until refitted.
func (c *SummaryClassifier) Fit(X []dtw.Sequence, y []string) error {
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d samples, %d labels", ErrLengthMismatch, len(X), len(y))
	}
	if len(X) == 0 {
		return ErrEmptyInput
	}

	tr, err := NewSummaryTransformer(c.functions, c.quantiles)
	if err != nil {
		return err
	}
	features, err := tr.FitTransform(X, y)
	if err != nil {
		return err
	}

	est := cloneEstimator(c.estimator)
	jobs := c.Jobs()
	if p, ok := est.(Parallel); ok {
		p.SetJobs(jobs)
	}
	if s, ok := est.(Seedable); ok && c.seeded {
		s.SetSeed(c.seed)
	}
	if err = est.Fit(features, y); err != nil {
		if _, cloned := c.estimator.(Cloner); !cloned {
			c.transformer, c.fitted, c.labels = nil, nil, labelSet{}
		}

		return fmt.Errorf("fit estimator: %w", err)
	}

	c.transformer, c.fitted, c.labels = tr, est, newLabelSet(y)
	c.logger.Debug("summary classifier fitted",
		slog.Int("samples", len(X)),
		slog.Int("features", tr.NumFeatures()),
		slog.Int("classes", c.labels.len()),
		slog.Int("jobs", jobs),
	)

	return nil
}

// Predict returns one label per sequence.
func (c *SummaryClassifier) Predict(X []dtw.Sequence) ([]string, error) {
	features, err := c.transform(X)
	if err != nil {
		return nil, err
	}
	out, err := c.fitted.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	return out, nil
}

// PredictProba returns a len(X)×NumClasses table whose columns follow
// Classes. Estimators without ProbaPredictor yield one-hot rows built from
// Predict.
func (c *SummaryClassifier) PredictProba(X []dtw.Sequence) (*mat.Dense, error) {
	features, err := c.transform(X)
	if err != nil {
		return nil, err
	}

	if pp, ok := c.fitted.(ProbaPredictor); ok {
		proba, err := pp.PredictProba(features)
		if err != nil {
			return nil, fmt.Errorf("predict proba: %w", err)
		}
		if r, k := proba.Dims(); r != len(X) || k != c.labels.len() {
			return nil, fmt.Errorf("%w: %d×%d, want %d×%d", ErrProbaShape, r, k, len(X), c.labels.len())
		}

		return proba, nil
	}

	pred, err := c.fitted.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(pred) != len(X) {
		return nil, fmt.Errorf("%w: %d predictions for %d samples", ErrProbaShape, len(pred), len(X))
	}
	out := mat.NewDense(len(X), c.labels.len(), nil)
	for i, label := range pred {
		k, ok := c.labels.lookup(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
		out.Set(i, k, 1)
	}

	return out, nil
}

// Classes returns the sorted labels seen in Fit, or nil before Fit.
func (c *SummaryClassifier) Classes() []string {
	if c.fitted == nil {
		return nil
	}

	return append([]string(nil), c.labels.classes...)
}

// NumClasses returns len(Classes()).
func (c *SummaryClassifier) NumClasses() int {
	return c.labels.len()
}

// FeatureNames returns the fitted transformer's column labels.
func (c *SummaryClassifier) FeatureNames() []string {
	if c.transformer == nil {
		return nil
	}

	return c.transformer.FeatureNames()
}

func (c *SummaryClassifier) transform(X []dtw.Sequence) (*mat.Dense, error) {
	if c.fitted == nil {
		return nil, ErrNotFitted
	}

	return c.transformer.Transform(X)
}
