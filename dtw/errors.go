// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
)

// Every message carries the "dtw:" prefix. Refinements of
// ErrInvalidParameters wrap it, so callers may branch on the broad class
// (fix the input) or on the precise cause.
var (
	// ErrInvalidParameters is the class of malformed inputs: empty or ragged
	// sequences, mismatched channel counts, a negative window or a missing
	// cost function. Always detected before the matrix is allocated, except
	// for ErrBadCost which can only be observed while filling.
	ErrInvalidParameters = errors.New("dtw: invalid parameters")

	// ErrInfeasibleAlignment means no warping path connects (0,0) to (n,m)
	// under the requested window. Widening the window is the caller's call.
	ErrInfeasibleAlignment = errors.New("dtw: infeasible alignment")

	// ErrCostOverflow means a path exists but its accumulated cost exceeds
	// the float64 range. Rescale the pointwise cost.
	ErrCostOverflow = errors.New("dtw: accumulated cost overflow")
)

var (
	// ErrEmptySequence indicates one or both inputs have no observations,
	// or an observation has no channels.
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidParameters)

	// ErrDimensionMismatch indicates observations with differing channel
	// counts, within one sequence or across the two.
	ErrDimensionMismatch = fmt.Errorf("%w: channel dimensionality mismatch", ErrInvalidParameters)

	// ErrNegativeWindow indicates WithWindow received w < 0.
	ErrNegativeWindow = fmt.Errorf("%w: negative window", ErrInvalidParameters)

	// ErrNilCost indicates the pointwise cost function is missing.
	ErrNilCost = fmt.Errorf("%w: nil cost function", ErrInvalidParameters)

	// ErrBadCost indicates the pointwise cost returned NaN, ±Inf or a
	// negative value for some pair of observations.
	ErrBadCost = fmt.Errorf("%w: cost must be finite and non-negative", ErrInvalidParameters)
)
