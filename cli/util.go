package cli

import (
	"errors"
	"fmt"
)

// MustGet is used with a [pflag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
// The developer usually knows whether a get call will fail after [Parse] binds every flag.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs maps positional arguments, like [Result.Args], to targets, and requires at least minArgs of them.
// Too few arguments is the user's mistake, so that error is also a [UsageError].
// Too few targets, or a nil target, is returned as a plain error.
func MapArgs(args []string, minArgs int, targets ...*string) error {
	if len(targets) < minArgs {
		return fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	if len(args) < minArgs {
		return &UsageError{wrapped: fmt.Errorf("%w: expected at least %d argument(s), got %d", ErrArgMap, minArgs, len(args))}
	}
	for i := 0; i < len(args) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = args[i]
	}
	return nil
}
