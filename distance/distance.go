// SPDX-License-Identifier: MIT

package distance

import (
	"errors"

	"github.com/katalvlaran/tswarp/dtw"
)

// ErrNilDistance is returned by NewPairwise when no Distance is given.
var ErrNilDistance = errors.New("distance: nil distance")

// Distance is a scalar dissimilarity between two sequences.
type Distance interface {
	Compute(a, b dtw.Sequence) (float64, error)
}

// Func adapts a plain function to Distance.
type Func func(a, b dtw.Sequence) (float64, error)

// Compute calls f(a, b).
func (f Func) Compute(a, b dtw.Sequence) (float64, error) { return f(a, b) }

// Factory builds a Distance from a pointwise cost and alignment options.
// Implementations validate eagerly and return dtw.ErrInvalidParameters (or
// a refinement) for a nil cost or malformed options.
type Factory interface {
	New(cost dtw.CostFunc, opts ...dtw.Option) (Distance, error)
}

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc func(cost dtw.CostFunc, opts ...dtw.Option) (Distance, error)

// New calls f(cost, opts...).
func (f FactoryFunc) New(cost dtw.CostFunc, opts ...dtw.Option) (Distance, error) {
	return f(cost, opts...)
}

// DTW is the Factory for Dynamic Time Warping distances.
type DTW struct{}

// New validates cost and opts and returns a DTW distance bound to them.
func (DTW) New(cost dtw.CostFunc, opts ...dtw.Option) (Distance, error) {
	if cost == nil {
		return nil, dtw.ErrNilCost
	}
	if err := dtw.ValidateOptions(opts...); err != nil {
		return nil, err
	}

	bound := make([]dtw.Option, len(opts))
	copy(bound, opts)

	return &dtwDistance{cost: cost, opts: bound}, nil
}

// dtwDistance is immutable after construction.
type dtwDistance struct {
	cost dtw.CostFunc
	opts []dtw.Option
}

// Compute returns the DTW cost of aligning a and b. It propagates
// dtw.ErrInfeasibleAlignment and dtw.ErrInvalidParameters unchanged.
func (d *dtwDistance) Compute(a, b dtw.Sequence) (float64, error) {
	return dtw.Distance(a, b, d.cost, d.opts...)
}
