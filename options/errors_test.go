package options

import (
	"errors"
	"github.com/saylorsolutions/optrec/rawargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOptions_Err(t *testing.T) {
	opts := New().OnKeys([]string{"-k"}, nil)
	opts.Recognize(rawargs.Parse("tester -k value"))
	assert.NoError(t, opts.Err())

	opts.Recognize(rawargs.Parse("tester -x -k"))
	err := opts.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedOption)
	assert.ErrorIs(t, err, ErrMissingValue)

	var misuse *MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, []string{"-x"}, misuse.Unrecognized)
	assert.Equal(t, []string{"-k"}, misuse.KeysNotGivenValue)
	assert.Equal(t, "unrecognized option: -x\nkey not given a value: -k", err.Error())
}

func TestMisuseError_Error(t *testing.T) {
	err := &MisuseError{}
	assert.Equal(t, "misused options", err.Error(), "Default error output should be returned when there are no misused options")
	assert.NotErrorIs(t, err, ErrUnrecognizedOption)
}
