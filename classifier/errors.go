// SPDX-License-Identifier: MIT

package classifier

import "errors"

var (
	// ErrNotFitted indicates Predict, PredictProba or Transform before Fit.
	ErrNotFitted = errors.New("classifier: not fitted")

	// ErrEmptyInput indicates no samples, or a sample with no observations.
	ErrEmptyInput = errors.New("classifier: empty input")

	// ErrLengthMismatch indicates len(X) != len(y).
	ErrLengthMismatch = errors.New("classifier: samples and labels differ in length")

	// ErrChannelMismatch indicates sequences whose channel count differs from
	// the one seen in Fit (or from each other).
	ErrChannelMismatch = errors.New("classifier: channel count mismatch")

	// ErrFeatureMismatch indicates a feature table whose width differs from
	// the one seen in Fit.
	ErrFeatureMismatch = errors.New("classifier: feature count mismatch")

	// ErrUnknownSummary indicates an unsupported summary function name.
	ErrUnknownSummary = errors.New("classifier: unknown summary function")

	// ErrBadQuantile indicates a quantile outside [0,1].
	ErrBadQuantile = errors.New("classifier: quantile out of range")

	// ErrNoFeatures indicates neither summary functions nor quantiles.
	ErrNoFeatures = errors.New("classifier: no summary features requested")

	// ErrUnknownLabel indicates the estimator predicted a label never seen
	// in Fit.
	ErrUnknownLabel = errors.New("classifier: predicted label not among fitted classes")

	// ErrProbaShape indicates PredictProba returned a table of the wrong shape.
	ErrProbaShape = errors.New("classifier: probability table has wrong shape")
)
