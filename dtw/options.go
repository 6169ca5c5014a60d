// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"strconv"
)

// Option configures a single Align or Distance call.
// Options are validated when the call starts, never when constructed, so a
// bad value surfaces as ErrInvalidParameters rather than a panic.
type Option func(*config)

// config is the resolved option set.
type config struct {
	window int  // Sakoe–Chiba radius, meaningful when banded
	banded bool // false ⇒ every cell is eligible
}

// WithWindow restricts the alignment to cells with |i−j| ≤ w.
// w must be ≥ 0; w = 0 admits only the diagonal, so sequences of different
// lengths become infeasible.
func WithWindow(w int) Option {
	return func(c *config) {
		c.window = w
		c.banded = true
	}
}

// WithoutWindow clears any window set by an earlier option.
func WithoutWindow() Option {
	return func(c *config) {
		c.window = 0
		c.banded = false
	}
}

// resolveOptions applies opts in order and validates the result.
func resolveOptions(opts []Option) (config, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.banded && cfg.window < 0 {
		return config{}, ErrNegativeWindow
	}

	return cfg, nil
}

// ValidateOptions reports whether opts resolve to a legal configuration.
// Factories use it to fail eagerly, before any sequence is seen.
func ValidateOptions(opts ...Option) error {
	_, err := resolveOptions(opts)

	return err
}

// band returns the inclusive column range [lo, hi] eligible in row i
// (1-based) of a table with m data columns.
func (c config) band(i, m int) (lo, hi int) {
	if !c.banded {
		return 1, m
	}
	lo, hi = i-c.window, i+c.window
	if lo < 1 {
		lo = 1
	}
	if hi > m {
		hi = m
	}

	return lo, hi
}

// admits reports whether the band contains at least one path from (1,1)
// to (n,m).
func (c config) admits(n, m int) bool {
	if !c.banded {
		return true
	}
	d := n - m
	if d < 0 {
		d = -d
	}

	return c.window >= d
}

// unreachable classifies an infinite total: overflow of finite costs when
// the band admits a path, infeasibility otherwise.
func (c config) unreachable(op string, n, m int) error {
	if c.admits(n, m) {
		return fmt.Errorf("%s %d×%d, window %s: %w", op, n, m, c.windowString(), ErrCostOverflow)
	}

	return fmt.Errorf("%s %d×%d, window %s: %w", op, n, m, c.windowString(), ErrInfeasibleAlignment)
}

// windowString renders the window for error messages.
func (c config) windowString() string {
	if !c.banded {
		return "none"
	}

	return strconv.Itoa(c.window)
}
