package pathparse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRequiresAbsoluteBase indicates a relative path was given where an
	// absolute base path is required.
	ErrRequiresAbsoluteBase = errors.New("path must be absolute")

	// ErrRejectsAbsoluteSuffix indicates an absolute path was given where a
	// relative suffix is required.
	ErrRejectsAbsoluteSuffix = errors.New("path must not be absolute")
)

// PathError records a failed path operation and the inputs that caused it.
type PathError struct {
	// Kind is one of [ErrRequiresAbsoluteBase] or [ErrRejectsAbsoluteSuffix].
	Kind  error
	Op    string
	Paths []string
}

func newPathError(kind error, op string, paths ...string) *PathError {
	return &PathError{Kind: kind, Op: op, Paths: paths}
}

func (e *PathError) Error() string {
	if e == nil {
		return "(*PathError)(nil)"
	}

	quoted := make([]string, 0, len(e.Paths))
	for _, p := range e.Paths {
		quoted = append(quoted, fmt.Sprintf("%q", p))
	}

	return fmt.Sprintf("%s %s: %v", e.Op, strings.Join(quoted, " "), e.Kind)
}

func (e *PathError) Unwrap() error {
	return e.Kind
}
