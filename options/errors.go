package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnrecognizedOption = errors.New("unrecognized option")
	ErrMissingValue       = errors.New("key not given a value")
)

// MisuseError describes every misused option found in a pass.
// It unwraps to one error per misused option, each of which wraps [ErrUnrecognizedOption] or [ErrMissingValue].
type MisuseError struct {
	Unrecognized      []string
	KeysNotGivenValue []string
}

func (e *MisuseError) Error() string {
	errs := e.Unwrap()
	if len(errs) == 0 {
		return "misused options"
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e *MisuseError) Unwrap() []error {
	errs := make([]error, 0, len(e.Unrecognized)+len(e.KeysNotGivenValue))
	for _, opt := range e.Unrecognized {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnrecognizedOption, opt))
	}
	for _, key := range e.KeysNotGivenValue {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingValue, key))
	}
	return errs
}

// Err returns a [*MisuseError] if [Options.MisusedOptionsPresent] is true, and nil otherwise.
func (o *Options) Err() error {
	if !o.MisusedOptionsPresent() {
		return nil
	}
	return &MisuseError{
		Unrecognized:      append([]string(nil), o.unrecognized...),
		KeysNotGivenValue: append([]string(nil), o.keysNotGivenValue...),
	}
}
