// Package plugins provides helpers shared by KCL plugin implementations.
package plugins

import (
	"errors"
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidType     = errors.New("invalid type")
)

// SafeMethodArgs wraps [plugin.MethodArgs] with accessors that return
// errors instead of panicking on missing or mistyped arguments.
type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

// Len returns the number of positional arguments.
func (sma *SafeMethodArgs) Len() int {
	return len(sma.Args.Args)
}

// Exists reports whether the keyword argument name was passed.
func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

func (sma *SafeMethodArgs) arg(i int) (any, error) {
	if i < 0 || i >= len(sma.Args.Args) {
		return nil, fmt.Errorf("%w: position %d", ErrMissingArgument, i)
	}

	return sma.Args.Args[i], nil
}

// StrArg returns the positional argument at i as a string.
func (sma *SafeMethodArgs) StrArg(i int) (string, error) {
	v, err := sma.arg(i)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: position %d: expected str, got %T", ErrInvalidType, i, v)
	}

	return s, nil
}

// ListStrArg returns the positional argument at i as a list of strings.
func (sma *SafeMethodArgs) ListStrArg(i int) ([]string, error) {
	v, err := sma.arg(i)
	if err != nil {
		return nil, err
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: position %d: expected [str], got %T", ErrInvalidType, i, v)
	}

	strs := make([]string, 0, len(list))
	for j, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: position %d[%d]: expected str, got %T", ErrInvalidType, i, j, item)
		}

		strs = append(strs, s)
	}

	return strs, nil
}

// StrKwArg returns the keyword argument name, or defaultValue if it was not
// passed.
func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) string {
	if sma.Exists(name) {
		return sma.Args.StrKwArg(name)
	}

	return defaultValue
}

// BoolKwArg returns the keyword argument name, or defaultValue if it was
// not passed.
func (sma *SafeMethodArgs) BoolKwArg(name string, defaultValue bool) bool {
	if sma.Exists(name) {
		return sma.Args.BoolKwArg(name)
	}

	return defaultValue
}
