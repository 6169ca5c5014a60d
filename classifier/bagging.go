// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultMembers is the ensemble size used by the CLI when none is given.
const DefaultMembers = 10

// BaggedNeighbors is a random-subspace ensemble of KNeighbors. Every member
// is trained on a bootstrap sample of the rows restricted to ⌈√F⌉ randomly
// chosen feature columns; PredictProba averages the members' vote
// fractions. It implements ProbaPredictor, Parallel, Seedable and Cloner.
//
// The seed fixes every draw. Without SetSeed the ensemble uses seed 0, so
// two fits on the same data always agree.
type BaggedNeighbors struct {
	k    int
	size int
	jobs int
	seed int64

	members  []bagMember
	labels   labelSet
	features int
}

// bagMember is one fitted sub-model and its view of the data.
type bagMember struct {
	cols    []int
	model   *KNeighbors
	classes []int // member class column → ensemble class column
}

// NewBaggedNeighbors returns an unfitted ensemble of size members, each a
// k-nearest-neighbour model. k and size below 1 are treated as 1.
func NewBaggedNeighbors(k, size int) *BaggedNeighbors {
	return &BaggedNeighbors{k: max(1, k), size: max(1, size), jobs: 1}
}

// K returns the neighbour count of each member.
func (b *BaggedNeighbors) K() int { return b.k }

// Size returns the number of members.
func (b *BaggedNeighbors) Size() int { return b.size }

// SetJobs bounds the members fitted or scored concurrently; n < 1 means 1.
func (b *BaggedNeighbors) SetJobs(n int) { b.jobs = max(1, n) }

// SetSeed fixes the bootstrap and feature draws of the next Fit.
func (b *BaggedNeighbors) SetSeed(seed int64) { b.seed = seed }

// Clone returns an unfitted copy with the same k, size, jobs and seed.
func (b *BaggedNeighbors) Clone() Estimator {
	return &BaggedNeighbors{k: b.k, size: b.size, jobs: b.jobs, seed: b.seed}
}

// Classes returns the sorted labels seen in Fit.
func (b *BaggedNeighbors) Classes() []string {
	return append([]string(nil), b.labels.classes...)
}

// Fit draws every member's rows and columns from one seeded source, then
// trains the members concurrently.
func (b *BaggedNeighbors) Fit(X mat.Matrix, y []string) error {
	r, c := X.Dims()
	if r != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, r, len(y))
	}
	if r == 0 || c == 0 {
		return ErrEmptyInput
	}

	labels := newLabelSet(y)
	rng := rand.New(rand.NewSource(b.seed))
	subspace := max(1, int(math.Ceil(math.Sqrt(float64(c)))))
	rows := make([][]int, b.size)
	cols := make([][]int, b.size)
	for m := range rows {
		rows[m] = make([]int, r)
		for i := range rows[m] {
			rows[m][i] = rng.Intn(r)
		}
		cols[m] = rng.Perm(c)[:subspace]
		sort.Ints(cols[m])
	}

	members := make([]bagMember, b.size)
	var g errgroup.Group
	g.SetLimit(b.jobs)
	for m := range members {
		g.Go(func() error {
			sub := make([]string, r)
			for i, row := range rows[m] {
				sub[i] = y[row]
			}
			model := NewKNeighbors(b.k)
			if err := model.Fit(project(X, rows[m], cols[m]), sub); err != nil {
				return fmt.Errorf("member %d: %w", m, err)
			}
			classes := make([]int, 0, model.labels.len())
			for _, l := range model.labels.classes {
				k, _ := labels.lookup(l)
				classes = append(classes, k)
			}
			members[m] = bagMember{cols: cols[m], model: model, classes: classes}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.members, b.labels, b.features = members, labels, c

	return nil
}

// Predict returns the class with the highest mean vote, ties toward the
// lexicographically smallest class.
func (b *BaggedNeighbors) Predict(X mat.Matrix) ([]string, error) {
	proba, err := b.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := proba.Dims()
	out := make([]string, r)
	for i := range out {
		out[i] = b.labels.classes[floats.MaxIdx(proba.RawRowView(i))]
	}

	return out, nil
}

// PredictProba returns the mean of the members' vote fractions, one column
// per class seen in Fit.
func (b *BaggedNeighbors) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if b.members == nil {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != b.features {
		return nil, fmt.Errorf("%w: got %d, fitted %d", ErrFeatureMismatch, c, b.features)
	}
	if r == 0 {
		return nil, ErrEmptyInput
	}

	votes := make([]*mat.Dense, len(b.members))
	var g errgroup.Group
	g.SetLimit(b.jobs)
	for m := range b.members {
		g.Go(func() error {
			p, err := b.members[m].model.PredictProba(project(X, nil, b.members[m].cols))
			votes[m] = p

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Summed in member order so the result does not depend on scheduling.
	out := mat.NewDense(r, b.labels.len(), nil)
	for m, p := range votes {
		for i := 0; i < r; i++ {
			src, dst := p.RawRowView(i), out.RawRowView(i)
			for k, col := range b.members[m].classes {
				dst[col] += src[k]
			}
		}
	}
	out.Scale(1/float64(len(b.members)), out)

	return out, nil
}

// project copies the given rows (all when nil) and columns of X.
func project(X mat.Matrix, rows, cols []int) *mat.Dense {
	if rows == nil {
		n, _ := X.Dims()
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
	}
	out := mat.NewDense(len(rows), len(cols), nil)
	for i, row := range rows {
		for j, col := range cols {
			out.Set(i, j, X.At(row, col))
		}
	}

	return out
}
