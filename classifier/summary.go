// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tswarp/dtw"
)

// Summary function names accepted by NewSummaryTransformer.
const (
	SummaryMean     = "mean"
	SummaryStd      = "std"
	SummaryVariance = "var"
	SummaryMin      = "min"
	SummaryMax      = "max"
	SummarySum      = "sum"
	SummaryMedian   = "median"
)

// DefaultSummaryFunctions and DefaultQuantiles are used by SummaryClassifier
// when no override is given.
var (
	DefaultSummaryFunctions = []string{SummaryMean, SummaryStd, SummaryMin, SummaryMax}
	DefaultQuantiles        = []float64{0.25, 0.5, 0.75}
)

// summaryFunc reduces one channel to a scalar. x is never empty.
type summaryFunc func(x []float64) float64

var summaries = map[string]summaryFunc{
	SummaryMean:     func(x []float64) float64 { return stat.Mean(x, nil) },
	SummaryStd:      func(x []float64) float64 { return spread(x, stat.StdDev) },
	SummaryVariance: func(x []float64) float64 { return spread(x, stat.Variance) },
	SummaryMin:      floats.Min,
	SummaryMax:      floats.Max,
	SummarySum:      floats.Sum,
	SummaryMedian:   median,
}

// spread applies a sample (n−1) dispersion statistic, defined as 0 for a
// single observation instead of NaN.
func spread(x []float64, f func(x, w []float64) float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return f(x, nil)
}

// median averages the two middle order statistics for even lengths.
func median(x []float64) float64 {
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	h := len(s) / 2
	if len(s)%2 == 1 {
		return s[h]
	}

	return (s[h-1] + s[h]) / 2
}

// SummaryTransformer maps each sequence to one feature row. For every
// channel, in channel order, it emits the configured summary functions and
// then the configured quantiles (gonum stat.LinInterp).
//
// Row width = channels × (len(functions) + len(quantiles)).
type SummaryTransformer struct {
	functions []string
	quantiles []float64
	channels  int // learned by FitTransform; 0 ⇒ not fitted
}

// NewSummaryTransformer validates and copies the feature configuration.
func NewSummaryTransformer(functions []string, quantiles []float64) (*SummaryTransformer, error) {
	if len(functions) == 0 && len(quantiles) == 0 {
		return nil, ErrNoFeatures
	}
	for _, name := range functions {
		if _, ok := summaries[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSummary, name)
		}
	}
	for _, q := range quantiles {
		if !(q >= 0 && q <= 1) {
			return nil, fmt.Errorf("%w: %v", ErrBadQuantile, q)
		}
	}

	return &SummaryTransformer{
		functions: append([]string(nil), functions...),
		quantiles: append([]float64(nil), quantiles...),
	}, nil
}

// FitTransform learns the channel count from X and returns its feature
// table. y is accepted for interface symmetry; only its length is checked.
func (s *SummaryTransformer) FitTransform(X []dtw.Sequence, y []string) (*mat.Dense, error) {
	if y != nil && len(y) != len(X) {
		return nil, fmt.Errorf("%w: %d samples, %d labels", ErrLengthMismatch, len(X), len(y))
	}
	if len(X) == 0 || X[0].Len() == 0 || X[0].Channels() == 0 {
		return nil, ErrEmptyInput
	}
	s.channels = X[0].Channels()

	return s.Transform(X)
}

// Transform returns the feature table of X using the fitted channel count.
func (s *SummaryTransformer) Transform(X []dtw.Sequence) (*mat.Dense, error) {
	if s.channels == 0 {
		return nil, ErrNotFitted
	}
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	out := mat.NewDense(len(X), s.NumFeatures(), nil)
	for r, seq := range X {
		if err := s.check(r, seq); err != nil {
			return nil, err
		}
		s.row(seq, out.RawRowView(r))
	}

	return out, nil
}

// NumFeatures returns the row width, or 0 before fitting.
func (s *SummaryTransformer) NumFeatures() int {
	return s.channels * (len(s.functions) + len(s.quantiles))
}

// FeatureNames labels the columns, e.g. "c0_mean" or "c1_q0.25".
func (s *SummaryTransformer) FeatureNames() []string {
	names := make([]string, 0, s.NumFeatures())
	for c := 0; c < s.channels; c++ {
		prefix := "c" + strconv.Itoa(c) + "_"
		for _, f := range s.functions {
			names = append(names, prefix+f)
		}
		for _, q := range s.quantiles {
			names = append(names, prefix+"q"+strconv.FormatFloat(q, 'g', -1, 64))
		}
	}

	return names
}

func (s *SummaryTransformer) check(r int, seq dtw.Sequence) error {
	if seq.Len() == 0 {
		return fmt.Errorf("sample %d: %w", r, ErrEmptyInput)
	}
	for t := range seq {
		if len(seq[t]) != s.channels {
			return fmt.Errorf("sample %d obs %d has %d channels, want %d: %w",
				r, t, len(seq[t]), s.channels, ErrChannelMismatch)
		}
	}

	return nil
}

// row writes the features of seq into dst.
func (s *SummaryTransformer) row(seq dtw.Sequence, dst []float64) {
	col := make([]float64, seq.Len())
	sorted := make([]float64, seq.Len())
	k := 0
	for c := 0; c < s.channels; c++ {
		for t := range seq {
			col[t] = seq[t][c]
		}
		for _, name := range s.functions {
			dst[k] = summaries[name](col)
			k++
		}
		if len(s.quantiles) == 0 {
			continue
		}
		copy(sorted, col)
		sort.Float64s(sorted)
		for _, q := range s.quantiles {
			dst[k] = stat.Quantile(q, stat.LinInterp, sorted, nil)
			k++
		}
	}
}
