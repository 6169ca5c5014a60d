// SPDX-License-Identifier: MIT

package aligner

import (
	"fmt"

	"github.com/katalvlaran/tswarp/distance"
	"github.com/katalvlaran/tswarp/dtw"
)

// Engine computes a full alignment: cost, warping path and cost matrix.
type Engine interface {
	Align(a, b dtw.Sequence, cost dtw.CostFunc, opts ...dtw.Option) (*dtw.Alignment, error)
}

// EngineFunc adapts a plain function to Engine.
type EngineFunc func(a, b dtw.Sequence, cost dtw.CostFunc, opts ...dtw.Option) (*dtw.Alignment, error)

// Align calls f.
func (f EngineFunc) Align(a, b dtw.Sequence, cost dtw.CostFunc, opts ...dtw.Option) (*dtw.Alignment, error) {
	return f(a, b, cost, opts...)
}

// Entry pairs a name with its engine and distance factory.
type Entry struct {
	Name    string
	Engine  Engine
	Factory distance.Factory
}

// Registry is an ordered, name-unique table of entries (names are
// case-sensitive). Register mutates and must finish before the registry is
// shared; every other method only reads.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends an entry. It is meant for single-threaded
// initialization; the caller owns name uniqueness across extensions.
func (r *Registry) Register(name string, engine Engine, factory distance.Factory) error {
	if name == "" || isNilEngine(engine) || isNilFactory(factory) {
		return fmt.Errorf("register %q: %w", name, ErrInvalidEntry)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateName)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Engine: engine, Factory: factory})

	return nil
}

// With returns a new registry holding r's entries plus one more. r itself
// is left untouched, so it may already be shared between goroutines.
func (r *Registry) With(name string, engine Engine, factory distance.Factory) (*Registry, error) {
	next := &Registry{
		entries: make([]Entry, len(r.entries), len(r.entries)+1),
		index:   make(map[string]int, len(r.index)+1),
	}
	copy(next.entries, r.entries)
	for k, v := range r.index {
		next.index[k] = v
	}
	if err := next.Register(name, engine, factory); err != nil {
		return nil, err
	}

	return next, nil
}

// Lookup returns the entry registered under name, or an
// *UnknownNameError listing the valid names.
func (r *Registry) Lookup(name string) (Entry, error) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, &UnknownNameError{Name: name, Known: r.Names()}
	}

	return r.entries[i], nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i := range r.entries {
		names[i] = r.entries[i].Name
	}

	return names
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// isNilEngine also catches a nil EngineFunc stored in the interface.
func isNilEngine(e Engine) bool {
	if f, ok := e.(EngineFunc); ok {
		return f == nil
	}

	return e == nil
}

// isNilFactory also catches a nil distance.FactoryFunc.
func isNilFactory(f distance.Factory) bool {
	if fn, ok := f.(distance.FactoryFunc); ok {
		return fn == nil
	}

	return f == nil
}
