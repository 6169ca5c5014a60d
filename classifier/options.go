// SPDX-License-Identifier: MIT

package classifier

import "log/slog"

// Option customises a SummaryClassifier.
type Option func(*SummaryClassifier)

// WithEstimator sets the prototype estimator. Fit trains a clone when the
// estimator implements Cloner, and the estimator itself otherwise.
// A nil estimator panics.
func WithEstimator(e Estimator) Option {
	if e == nil {
		panic("classifier: WithEstimator(nil)")
	}

	return func(c *SummaryClassifier) { c.estimator = e }
}

// WithJobs sets the worker count forwarded to Parallel estimators.
// 0 means 1; a negative n means NumCPU+1+n (so −1 is every CPU), floored
// at 1.
func WithJobs(n int) Option {
	return func(c *SummaryClassifier) { c.jobs = n }
}

// WithRandomState sets the seed forwarded to Seedable estimators.
func WithRandomState(seed int64) Option {
	return func(c *SummaryClassifier) {
		c.seed = seed
		c.seeded = true
	}
}

// WithSummaryFunctions replaces the per-channel summary functions.
// Names are validated by Fit.
func WithSummaryFunctions(names ...string) Option {
	return func(c *SummaryClassifier) { c.functions = append([]string(nil), names...) }
}

// WithQuantiles replaces the per-channel quantiles. Values are validated
// by Fit; pass none to disable quantile features.
func WithQuantiles(qs ...float64) Option {
	return func(c *SummaryClassifier) { c.quantiles = append([]float64(nil), qs...) }
}

// WithLogger routes debug output; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *SummaryClassifier) {
		if l != nil {
			c.logger = l
		}
	}
}
