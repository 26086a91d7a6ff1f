// Package rawargs splits the arguments a process was invoked with into indexed tokens.
// Each token carries a claim state that a classifier sets as it recognizes options, so that whatever is left unclaimed can be recovered as positional arguments.
package rawargs

import (
	"fmt"
	"github.com/saylorsolutions/optrec/assert"
	"iter"
	"strings"
)

// Role describes how a token was claimed.
type Role int

const (
	Unclaimed Role = iota // Unclaimed tokens are positional arguments.
	Option                // Option tokens were classified as a flag, a key, or an unrecognized option.
	Value                 // Value tokens were consumed as the value of a key.
)

func (r Role) String() string {
	switch r {
	case Unclaimed:
		return "unclaimed"
	case Option:
		return "option"
	case Value:
		return "value"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Token is a single argument, and its position in the argument sequence.
type Token struct {
	Value string
	Index int
}

// IsOption reports whether the token looks like an option, meaning it starts with a dash.
func (t Token) IsOption() bool {
	return strings.HasPrefix(t.Value, "-")
}

// RawArguments is an ordered sequence of tokens with per-token claim state.
// Token content never changes after construction, only claim state does.
//
// A RawArguments is meant to be used for a single invocation, and is not concurrency safe.
type RawArguments struct {
	tokens []Token
	roles  []Role
}

// Parse splits a command line on whitespace, and discards the first field as the program name.
// There is no support for quoting or escaping.
func Parse(line string) *RawArguments {
	return New(strings.Fields(line))
}

// New creates a [RawArguments] from an argument vector like [os.Args].
// The first element is the program name, and is not indexed.
func New(argv []string) *RawArguments {
	if len(argv) <= 1 {
		return &RawArguments{}
	}
	argv = argv[1:]
	args := &RawArguments{
		tokens: make([]Token, len(argv)),
		roles:  make([]Role, len(argv)),
	}
	for i, val := range argv {
		args.tokens[i] = Token{Value: val, Index: i}
	}
	return args
}

// Len returns the number of tokens, not counting the program name.
func (a *RawArguments) Len() int {
	return len(a.tokens)
}

// At returns the token at the given index.
// False is returned if there is no token at that index.
func (a *RawArguments) At(idx int) (Token, bool) {
	if idx < 0 || idx >= len(a.tokens) {
		return Token{}, false
	}
	return a.tokens[idx], true
}

// Claim marks the token at idx as claimed in the given role.
// Claiming a token twice, claiming an index that doesn't exist, or claiming as [Unclaimed] is a programming error, and will panic unless assertions are disabled.
func (a *RawArguments) Claim(idx int, role Role) {
	assert.InRange("claimed token exists", idx, len(a.tokens))
	assert.True("claim role is not Unclaimed", role != Unclaimed)
	assert.True("token is claimed once", a.roles[idx] == Unclaimed)
	a.roles[idx] = role
}

// IsClaimed reports whether the token at idx has been claimed.
// Indexes out of range are never claimed.
func (a *RawArguments) IsClaimed(idx int) bool {
	return a.RoleAt(idx) != Unclaimed
}

// RoleAt returns the [Role] of the token at idx.
func (a *RawArguments) RoleAt(idx int) Role {
	if idx < 0 || idx >= len(a.roles) {
		return Unclaimed
	}
	return a.roles[idx]
}

// All iterates over every token in order.
func (a *RawArguments) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, tok := range a.tokens {
			if !yield(i, tok) {
				return
			}
		}
	}
}

// Values returns the value of every token in order.
func (a *RawArguments) Values() []string {
	vals := make([]string, len(a.tokens))
	for i, tok := range a.tokens {
		vals[i] = tok.Value
	}
	return vals
}

// Unclaimed returns the values of tokens that were never claimed, in their original order.
// These are the positional arguments.
func (a *RawArguments) Unclaimed() []string {
	var vals []string
	for i, tok := range a.tokens {
		if a.roles[i] == Unclaimed {
			vals = append(vals, tok.Value)
		}
	}
	return vals
}
