// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CostFunc is the pointwise cost between two observations of equal
// dimensionality. It must return a finite, non-negative value; Align and
// Distance reject anything else with ErrBadCost.
type CostFunc func(x, y []float64) float64

// SquaredEuclidean sums squared channel differences. For univariate input
// this is (x−y)², the classic DTW cost.
func SquaredEuclidean(x, y []float64) float64 {
	var sum, d float64
	for k := range x {
		d = x[k] - y[k]
		sum += d * d
	}

	return sum
}

// Manhattan sums absolute channel differences (|x−y| for univariate input).
func Manhattan(x, y []float64) float64 {
	var sum float64
	for k := range x {
		sum += math.Abs(x[k] - y[k])
	}

	return sum
}

// Euclidean is the L2 norm of x−y.
func Euclidean(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}

// CostByName resolves the built-in pointwise costs by their short names:
// "squared", "absolute" and "euclidean".
func CostByName(name string) (CostFunc, bool) {
	switch name {
	case "squared", "sqeuclidean":
		return SquaredEuclidean, true
	case "absolute", "manhattan":
		return Manhattan, true
	case "euclidean":
		return Euclidean, true
	}

	return nil, false
}
