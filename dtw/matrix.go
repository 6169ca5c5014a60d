// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CostMatrix is the (n+1)×(m+1) accumulated-cost table of one alignment.
// Cell (i,j) holds the minimum cost of matching the first i observations of
// A against the first j observations of B.
//
// Invariants:
//   - At(0,0) == 0.
//   - At(i,0) == At(0,j) == +Inf for i,j ≥ 1.
//   - Cells outside the window are +Inf.
type CostMatrix struct {
	d *mat.Dense
}

// newCostMatrix allocates the table with the boundary policy applied: every
// cell starts at +Inf except the origin.
func newCostMatrix(n, m int) *CostMatrix {
	d := mat.NewDense(n+1, m+1, nil)
	raw := d.RawMatrix().Data
	inf := math.Inf(1)
	for k := range raw {
		raw[k] = inf
	}
	d.Set(0, 0, 0)

	return &CostMatrix{d: d}
}

// Rows returns n+1.
func (c *CostMatrix) Rows() int {
	r, _ := c.d.Dims()

	return r
}

// Cols returns m+1.
func (c *CostMatrix) Cols() int {
	_, cols := c.d.Dims()

	return cols
}

// At returns cell (i,j). It panics on out-of-range indices like mat.Dense.
func (c *CostMatrix) At(i, j int) float64 {
	return c.d.At(i, j)
}

// Dense returns a copy of the table as a gonum matrix.
func (c *CostMatrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(c.d)
}

// row exposes the backing storage of row i for the fill loop.
func (c *CostMatrix) row(i int) []float64 {
	return c.d.RawRowView(i)
}
