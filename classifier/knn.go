// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KNeighbors is a k-nearest-neighbour Estimator over feature rows using
// Euclidean distance. It implements ProbaPredictor, Parallel and Cloner.
//
// Neighbours at equal distance are taken in training order. Probabilities
// are vote fractions; Predict returns the arg-max, breaking vote ties
// toward the lexicographically smallest class.
type KNeighbors struct {
	k    int
	jobs int

	x      *mat.Dense
	y      []int
	labels labelSet
}

// NewKNeighbors returns an unfitted model; k < 1 is treated as 1.
func NewKNeighbors(k int) *KNeighbors {
	if k < 1 {
		k = 1
	}

	return &KNeighbors{k: k, jobs: 1}
}

// K returns the configured neighbour count.
func (kn *KNeighbors) K() int { return kn.k }

// SetJobs bounds the number of rows scored concurrently; n < 1 means 1.
func (kn *KNeighbors) SetJobs(n int) {
	if n < 1 {
		n = 1
	}
	kn.jobs = n
}

// Clone returns an unfitted copy with the same k and jobs.
func (kn *KNeighbors) Clone() Estimator {
	return &KNeighbors{k: kn.k, jobs: kn.jobs}
}

// Classes returns the sorted labels seen in Fit.
func (kn *KNeighbors) Classes() []string {
	return append([]string(nil), kn.labels.classes...)
}

// Fit memorises a copy of X and the class index of every label.
func (kn *KNeighbors) Fit(X mat.Matrix, y []string) error {
	r, _ := X.Dims()
	if r != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, r, len(y))
	}
	if r == 0 {
		return ErrEmptyInput
	}

	kn.labels = newLabelSet(y)
	kn.y = make([]int, r)
	for i, l := range y {
		kn.y[i], _ = kn.labels.lookup(l)
	}
	kn.x = mat.DenseCopyOf(X)

	return nil
}

// Predict returns the majority label of each row's neighbours.
func (kn *KNeighbors) Predict(X mat.Matrix) ([]string, error) {
	proba, err := kn.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := proba.Dims()
	out := make([]string, r)
	for i := range out {
		out[i] = kn.labels.classes[floats.MaxIdx(proba.RawRowView(i))]
	}

	return out, nil
}

// PredictProba returns neighbour vote fractions, one column per class.
func (kn *KNeighbors) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if kn.x == nil {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if _, tc := kn.x.Dims(); c != tc {
		return nil, fmt.Errorf("%w: got %d, fitted %d", ErrFeatureMismatch, c, tc)
	}
	if r == 0 {
		return nil, ErrEmptyInput
	}

	q := mat.DenseCopyOf(X)
	out := mat.NewDense(r, kn.labels.len(), nil)
	var g errgroup.Group
	g.SetLimit(kn.jobs)
	for i := 0; i < r; i++ {
		g.Go(func() error {
			kn.vote(q.RawRowView(i), out.RawRowView(i))

			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// vote fills dst with the class fractions among the k nearest rows to x.
func (kn *KNeighbors) vote(x, dst []float64) {
	n, _ := kn.x.Dims()
	dist := make([]float64, n)
	idx := make([]int, n)
	for t := 0; t < n; t++ {
		dist[t] = floats.Distance(x, kn.x.RawRowView(t), 2)
		idx[t] = t
	}
	sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })

	k := min(kn.k, n)
	w := 1 / float64(k)
	for _, t := range idx[:k] {
		dst[kn.y[t]] += w
	}
}
