package options

import (
	"github.com/saylorsolutions/optrec/rawargs"
	"github.com/saylorsolutions/optrec/structures/set"
	"strings"
)

// Recognize classifies every unclaimed option token in args, in index order.
// Recognized tokens are claimed in args, and their callbacks are called as they're found.
// Tokens that don't start with a dash are left unclaimed as positional arguments.
//
// Diagnostics from a previous pass are discarded, but [Options.ExitEarly] is left as it was.
func (o *Options) Recognize(args *rawargs.RawArguments) {
	o.unrecognized = nil
	o.keysNotGivenValue = nil
	if o.log != nil {
		o.debug("Recognizing options", "args", args.Values(), "exitEarly", set.Sorted(o.ExitEarlyOptions))
	}
	for i, tok := range args.All() {
		if args.IsClaimed(i) || !tok.IsOption() {
			continue
		}
		switch {
		case o.recognizeFlag(args, tok):
		case o.recognizeKey(args, tok):
		case o.recognizeCluster(args, tok):
		default:
			args.Claim(tok.Index, rawargs.Option)
			o.unrecognized = append(o.unrecognized, tok.Value)
			o.debug("Unrecognized option", "option", tok.Value, "index", tok.Index)
		}
	}
}

func (o *Options) recognizeFlag(args *rawargs.RawArguments, tok rawargs.Token) bool {
	fn, ok := o.flags[tok.Value]
	if !ok {
		return false
	}
	args.Claim(tok.Index, rawargs.Option)
	o.debug("Recognized flag", "flag", tok.Value, "index", tok.Index)
	o.dispatchFlag(tok.Value, fn)
	return true
}

func (o *Options) recognizeKey(args *rawargs.RawArguments, tok rawargs.Token) bool {
	fn, ok := o.keys[tok.Value]
	if !ok {
		return false
	}
	args.Claim(tok.Index, rawargs.Option)
	next, ok := args.At(tok.Index + 1)
	if !ok || args.IsClaimed(next.Index) {
		o.keysNotGivenValue = append(o.keysNotGivenValue, tok.Value)
		o.debug("Key not given a value", "key", tok.Value, "index", tok.Index)
		return true
	}
	args.Claim(next.Index, rawargs.Value)
	o.debug("Recognized key", "key", tok.Value, "value", next.Value, "index", tok.Index)
	if fn != nil {
		fn(tok.Value, next.Value)
	}
	o.checkExitEarly(tok.Value)
	return true
}

// recognizeCluster dispatches a token like '-ab' as '-a' then '-b'.
// Nothing is dispatched unless every character is a registered flag.
func (o *Options) recognizeCluster(args *rawargs.RawArguments, tok rawargs.Token) bool {
	chars, ok := strings.CutPrefix(tok.Value, "-")
	if !ok || strings.HasPrefix(chars, "-") {
		return false
	}
	runes := []rune(chars)
	if len(runes) < 2 {
		return false
	}
	flags := make([]string, len(runes))
	for i, r := range runes {
		flag := "-" + string(r)
		if !o.HasFlag(flag) {
			return false
		}
		flags[i] = flag
	}
	args.Claim(tok.Index, rawargs.Option)
	o.debug("Recognized flag cluster", "cluster", tok.Value, "flags", flags, "index", tok.Index)
	for _, flag := range flags {
		o.dispatchFlag(flag, o.flags[flag])
	}
	return true
}

func (o *Options) dispatchFlag(flag string, fn FlagFunc) {
	if fn != nil {
		fn(flag)
	}
	o.checkExitEarly(flag)
}

func (o *Options) checkExitEarly(name string) {
	if o.ExitEarlyOptions.Has(name) {
		o.ExitEarly = true
		o.debug("Exit early option matched", "option", name)
	}
}

func (o *Options) debug(msg string, args ...any) {
	if o.log == nil {
		return
	}
	o.log.Debug(msg, args...)
}
