// SPDX-License-Identifier: MIT

// Package config loads the tswarp.yaml settings file used by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tswarp/aligner"
	"github.com/katalvlaran/tswarp/classifier"
	"github.com/katalvlaran/tswarp/dtw"
)

// FileName is the config file looked up when --config is not given.
const FileName = "tswarp.yaml"

// Config is the resolved configuration: defaults merged with the file.
type Config struct {
	Aligner    string
	Cost       string
	Window     *int // nil ⇒ unconstrained
	Workers    int  // < 1 ⇒ GOMAXPROCS
	LogLevel   string
	Classifier ClassifierConfig
}

// Estimator names accepted by classifier.estimator.
const (
	EstimatorKNN     = "knn"
	EstimatorBagging = "bagging"
)

// ClassifierConfig holds the SummaryClassifier settings.
type ClassifierConfig struct {
	Estimator string
	Neighbors int
	Members   int // ensemble size, bagging only
	Jobs      int
	Seed      *int64
	Functions []string
	Quantiles []float64
}

// rawConfig mirrors the file; pointer fields distinguish missing keys from
// explicit zero values.
type rawConfig struct {
	Aligner    *string       `yaml:"aligner"`
	Cost       *string       `yaml:"cost"`
	Window     *int          `yaml:"window"`
	Workers    *int          `yaml:"workers"`
	LogLevel   *string       `yaml:"logLevel"`
	Classifier rawClassifier `yaml:"classifier"`
}

type rawClassifier struct {
	Estimator *string   `yaml:"estimator"`
	Neighbors *int      `yaml:"neighbors"`
	Members   *int      `yaml:"members"`
	Jobs      *int      `yaml:"jobs"`
	Seed      *int64    `yaml:"seed"`
	Functions []string  `yaml:"functions"`
	Quantiles []float64 `yaml:"quantiles"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Aligner:  aligner.DTWCostMatrix,
		Cost:     "squared",
		LogLevel: "info",
		Classifier: ClassifierConfig{
			Estimator: EstimatorKNN,
			Neighbors: classifier.DefaultNeighbors,
			Members:   classifier.DefaultMembers,
			Jobs:      1,
			Functions: append([]string(nil), classifier.DefaultSummaryFunctions...),
			Quantiles: append([]float64(nil), classifier.DefaultQuantiles...),
		},
	}
}

// Load reads path and merges it over Default. A missing file yields the
// defaults unless mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			cfg := Default()

			return &cfg, nil
		}

		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML, merges it over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := Default()
	if raw.Aligner != nil {
		cfg.Aligner = *raw.Aligner
	}
	if raw.Cost != nil {
		cfg.Cost = *raw.Cost
	}
	if raw.Window != nil {
		w := *raw.Window
		cfg.Window = &w
	}
	if raw.Workers != nil {
		cfg.Workers = *raw.Workers
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	rc := raw.Classifier
	if rc.Estimator != nil {
		cfg.Classifier.Estimator = *rc.Estimator
	}
	if rc.Neighbors != nil {
		cfg.Classifier.Neighbors = *rc.Neighbors
	}
	if rc.Members != nil {
		cfg.Classifier.Members = *rc.Members
	}
	if rc.Jobs != nil {
		cfg.Classifier.Jobs = *rc.Jobs
	}
	if rc.Seed != nil {
		s := *rc.Seed
		cfg.Classifier.Seed = &s
	}
	if len(rc.Functions) > 0 {
		cfg.Classifier.Functions = rc.Functions
	}
	if rc.Quantiles != nil {
		cfg.Classifier.Quantiles = rc.Quantiles
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field that can be checked without data.
func (c *Config) Validate() error {
	if _, err := aligner.Default().Lookup(c.Aligner); err != nil {
		return fmt.Errorf("aligner: %w", err)
	}
	if _, ok := dtw.CostByName(c.Cost); !ok {
		return fmt.Errorf("cost: unknown cost function %q", c.Cost)
	}
	if err := dtw.ValidateOptions(c.DTWOptions()...); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Classifier.Estimator {
	case EstimatorKNN, EstimatorBagging:
	default:
		return fmt.Errorf("classifier.estimator: unknown estimator %q", c.Classifier.Estimator)
	}
	if c.Classifier.Neighbors < 1 {
		return fmt.Errorf("classifier.neighbors must be greater than 0")
	}
	if c.Classifier.Members < 1 {
		return fmt.Errorf("classifier.members must be greater than 0")
	}
	if _, err := classifier.NewSummaryTransformer(c.Classifier.Functions, c.Classifier.Quantiles); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	return nil
}

// CostFunc resolves Cost.
func (c *Config) CostFunc() (dtw.CostFunc, error) {
	f, ok := dtw.CostByName(c.Cost)
	if !ok {
		return nil, fmt.Errorf("unknown cost function %q", c.Cost)
	}

	return f, nil
}

// DTWOptions returns the engine options implied by the config.
func (c *Config) DTWOptions() []dtw.Option {
	if c.Window == nil {
		return nil
	}

	return []dtw.Option{dtw.WithWindow(*c.Window)}
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("logLevel: %w", err)
	}

	return l, nil
}

// ClassifierOptions maps the classifier section to SummaryClassifier options.
func (c *Config) ClassifierOptions(logger *slog.Logger) []classifier.Option {
	cc := c.Classifier
	opts := []classifier.Option{
		classifier.WithEstimator(c.estimator()),
		classifier.WithJobs(cc.Jobs),
		classifier.WithSummaryFunctions(cc.Functions...),
		classifier.WithQuantiles(cc.Quantiles...),
		classifier.WithLogger(logger),
	}
	if cc.Seed != nil {
		opts = append(opts, classifier.WithRandomState(*cc.Seed))
	}

	return opts
}

func (c *Config) estimator() classifier.Estimator {
	cc := c.Classifier
	if cc.Estimator == EstimatorBagging {
		return classifier.NewBaggedNeighbors(cc.Neighbors, cc.Members)
	}

	return classifier.NewKNeighbors(cc.Neighbors)
}
