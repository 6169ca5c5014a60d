// SPDX-License-Identifier: MIT

// Package dataset reads and writes the YAML series files consumed by the
// CLI:
//
//	series:
//	  - label: up
//	    values: [0, 1, 2, 3]          # univariate
//	  - label: loop
//	    values: [[0, 1], [1, 0]]      # one row per observation
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tswarp/dtw"
)

var (
	// ErrEmptyDataset indicates a file with no series.
	ErrEmptyDataset = errors.New("dataset: no series")
	// ErrEmptySeries indicates a series with no observations.
	ErrEmptySeries = errors.New("dataset: series has no values")
	// ErrRagged indicates observations of differing channel counts.
	ErrRagged = errors.New("dataset: ragged series")
	// ErrMissingLabel indicates an unlabelled series where labels are required.
	ErrMissingLabel = errors.New("dataset: series has no label")
	// ErrIndex indicates a series index outside the dataset.
	ErrIndex = errors.New("dataset: series index out of range")
)

// Series is one labelled time series.
type Series struct {
	Label  string `yaml:"label,omitempty"`
	Values Values `yaml:"values"`
}

// Values is a sequence of observations. It decodes from either a flat list
// (one channel) or a list of rows, and encodes flat when univariate.
type Values [][]float64

// Dataset is the file root.
type Dataset struct {
	Series []Series `yaml:"series"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: values must be a list", node.Line)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.ScalarNode {
		var flat []float64
		if err := node.Decode(&flat); err != nil {
			return err
		}
		*v = Values(dtw.Univariate(flat))

		return nil
	}

	var rows [][]float64
	if err := node.Decode(&rows); err != nil {
		return err
	}
	*v = rows

	return nil
}

// MarshalYAML implements yaml.Marshaler using flow style.
func (v Values) MarshalYAML() (interface{}, error) {
	var out interface{} = [][]float64(v)
	if dtw.Sequence(v).Channels() == 1 {
		flat := make([]float64, len(v))
		for i := range v {
			flat[i] = v[i][0]
		}
		out = flat
	}

	node := &yaml.Node{}
	if err := node.Encode(out); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return node, nil
}

// Decode reads and validates one dataset.
func Decode(r io.Reader) (*Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}

		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load decodes the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Encode writes d as YAML.
func (d *Dataset) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}

// Save writes d to path, replacing any existing file.
func (d *Dataset) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Add appends a series.
func (d *Dataset) Add(label string, seq dtw.Sequence) {
	d.Series = append(d.Series, Series{Label: label, Values: Values(seq)})
}

// Validate checks that every series is non-empty and rectangular. Channel
// counts may differ between series; the engine reports that per pair.
func (d *Dataset) Validate() error {
	if len(d.Series) == 0 {
		return ErrEmptyDataset
	}
	for i, s := range d.Series {
		if len(s.Values) == 0 || len(s.Values[0]) == 0 {
			return fmt.Errorf("series %d: %w", i, ErrEmptySeries)
		}
		for t, row := range s.Values {
			if len(row) != len(s.Values[0]) {
				return fmt.Errorf("series %d obs %d has %d channels, want %d: %w",
					i, t, len(row), len(s.Values[0]), ErrRagged)
			}
		}
	}

	return nil
}

// Len returns the number of series.
func (d *Dataset) Len() int { return len(d.Series) }

// Sequence returns series i as an engine sequence.
func (d *Dataset) Sequence(i int) (dtw.Sequence, error) {
	if i < 0 || i >= len(d.Series) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(d.Series))
	}

	return dtw.Sequence(d.Series[i].Values), nil
}

// Sequences returns every series in file order.
func (d *Dataset) Sequences() []dtw.Sequence {
	out := make([]dtw.Sequence, len(d.Series))
	for i, s := range d.Series {
		out[i] = dtw.Sequence(s.Values)
	}

	return out
}

// Labels returns every label in file order; unlabelled series give "".
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.Series))
	for i, s := range d.Series {
		out[i] = s.Label
	}

	return out
}

// HasLabels reports whether every series is labelled.
func (d *Dataset) HasLabels() bool {
	return d.RequireLabels() == nil
}

// RequireLabels returns ErrMissingLabel for the first unlabelled series.
func (d *Dataset) RequireLabels() error {
	for i, s := range d.Series {
		if s.Label == "" {
			return fmt.Errorf("series %d: %w", i, ErrMissingLabel)
		}
	}

	return nil
}
