// SPDX-License-Identifier: MIT

package aligner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlignerName is the class of registry lookup misses.
	// Lookup returns it wrapped in *UnknownNameError.
	ErrUnknownAlignerName = errors.New("aligner: unknown aligner name")

	// ErrDuplicateName indicates Register was called twice with one name.
	ErrDuplicateName = errors.New("aligner: duplicate aligner name")

	// ErrInvalidEntry indicates an empty name or a nil engine/factory.
	ErrInvalidEntry = errors.New("aligner: invalid entry")
)

// UnknownNameError reports a lookup miss together with the valid names.
type UnknownNameError struct {
	Name  string
	Known []string
}

// Error implements error.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("%v %q (known: %s)", ErrUnknownAlignerName, e.Name, quoteAll(e.Known))
}

// Unwrap lets errors.Is match ErrUnknownAlignerName.
func (e *UnknownNameError) Unwrap() error { return ErrUnknownAlignerName }

func quoteAll(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(q, ", ")
}
