// SPDX-License-Identifier: MIT

package aligner

import (
	"sync"

	"github.com/katalvlaran/tswarp/distance"
	"github.com/katalvlaran/tswarp/dtw"
)

// DTWCostMatrix names the full cost-matrix DTW aligner.
const DTWCostMatrix = "dtw cost matrix alignment"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of built-in aligners.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = Builtin()
	})

	return defaultRegistry
}

// Builtin returns a fresh registry holding the built-in aligners, for
// callers that want to extend them with Register before sharing.
func Builtin() *Registry {
	r := NewRegistry()
	// Static, well-formed entries: Register cannot fail here.
	_ = r.Register(DTWCostMatrix, EngineFunc(dtw.Align), distance.DTW{})

	return r
}
