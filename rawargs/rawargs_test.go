package rawargs

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line     string
		expected []string
	}{
		"Empty input": {
			line:     "",
			expected: []string{},
		},
		"Program name only": {
			line:     "tester",
			expected: []string{},
		},
		"Flags and arguments": {
			line:     "tester -a argument -b banana",
			expected: []string{"-a", "argument", "-b", "banana"},
		},
		"Extra whitespace": {
			line:     "  tester\t-a   \n apple  ",
			expected: []string{"-a", "apple"},
		},
		"Quotes are not special": {
			line:     `tester "two words"`,
			expected: []string{`"two`, `words"`},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			args := Parse(tc.line)
			assert.Equal(t, len(tc.expected), args.Len())
			assert.Equal(t, tc.expected, args.Values())
			for i, val := range tc.expected {
				tok, ok := args.At(i)
				require.True(t, ok)
				assert.Equal(t, i, tok.Index)
				assert.Equal(t, val, tok.Value)
			}
		})
	}
}

func TestNew(t *testing.T) {
	assert.Equal(t, 0, New(nil).Len())
	assert.Equal(t, 0, New([]string{"tester"}).Len())

	args := New([]string{"tester", "-a", "", "two words"})
	assert.Equal(t, []string{"-a", "", "two words"}, args.Values(), "Argument vectors should not be split again")
}

func TestRawArguments_At(t *testing.T) {
	args := Parse("tester -a")
	tok, ok := args.At(0)
	assert.True(t, ok)
	assert.Equal(t, Token{Value: "-a", Index: 0}, tok)
	assert.True(t, tok.IsOption())

	_, ok = args.At(1)
	assert.False(t, ok, "There should be no token past the end")
	_, ok = args.At(-1)
	assert.False(t, ok, "There should be no token before the start")
}

func TestRawArguments_Claim(t *testing.T) {
	args := Parse("tester -b banana argument")
	assert.Equal(t, []string{"-b", "banana", "argument"}, args.Unclaimed())

	args.Claim(0, Option)
	args.Claim(1, Value)
	assert.True(t, args.IsClaimed(0))
	assert.True(t, args.IsClaimed(1))
	assert.False(t, args.IsClaimed(2))
	assert.False(t, args.IsClaimed(3), "Out of range tokens are never claimed")
	assert.Equal(t, Option, args.RoleAt(0))
	assert.Equal(t, Value, args.RoleAt(1))
	assert.Equal(t, Unclaimed, args.RoleAt(2))
	assert.Equal(t, []string{"argument"}, args.Unclaimed())

	args.Claim(2, Value)
	assert.Nil(t, args.Unclaimed())
}

func TestRawArguments_All(t *testing.T) {
	args := Parse("tester -a -b -c")
	var seen []string
	for i, tok := range args.All() {
		assert.Equal(t, i, tok.Index)
		seen = append(seen, tok.Value)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []string{"-a", "-b"}, seen)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "unclaimed", Unclaimed.String())
	assert.Equal(t, "option", Option.String())
	assert.Equal(t, "value", Value.String())
	assert.Equal(t, "Role(7)", Role(7).String())
}
