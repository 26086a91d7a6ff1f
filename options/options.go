package options

import (
	"github.com/saylorsolutions/optrec/structures/set"
	"log/slog"
	"maps"
)

// FlagFunc is called with the matched option name when a flag is recognized.
type FlagFunc = func(flag string)

// KeyFunc is called with the matched option name and its value when a key is recognized.
type KeyFunc = func(key, value string)

// Options is a registry of recognized flags and keys, and the diagnostics of the last [Options.Recognize] pass.
//
// Registering a name without a callback is allowed, and just makes the name recognized.
// Options is not concurrency safe.
type Options struct {
	// ExitEarlyOptions are the option names that will set ExitEarly when matched.
	ExitEarlyOptions set.Set[string]
	// ExitEarly is set to true when an option in ExitEarlyOptions is matched.
	// It's never reset by Options, so the caller needs to reset it before reuse.
	ExitEarly bool

	flags             map[string]FlagFunc
	keys              map[string]KeyFunc
	unrecognized      []string
	keysNotGivenValue []string
	log               *slog.Logger
}

// New creates an empty set of [Options].
func New() *Options {
	return &Options{
		ExitEarlyOptions: set.New[string](),
		flags:            map[string]FlagFunc{},
		keys:             map[string]KeyFunc{},
	}
}

// OnFlags registers each name as a flag that calls fn when matched.
// Registering a name that already exists will replace its callback.
// The fn parameter may be nil.
func (o *Options) OnFlags(names []string, fn FlagFunc) *Options {
	if o.flags == nil {
		o.flags = map[string]FlagFunc{}
	}
	for _, name := range names {
		o.flags[name] = fn
	}
	return o
}

// OnKeys registers each name as a key that calls fn with its value when matched.
// Registering a name that already exists will replace its callback.
// The fn parameter may be nil.
func (o *Options) OnKeys(names []string, fn KeyFunc) *Options {
	if o.keys == nil {
		o.keys = map[string]KeyFunc{}
	}
	for _, name := range names {
		o.keys[name] = fn
	}
	return o
}

// SetExitEarlyOptions replaces [Options.ExitEarlyOptions] with the given names.
func (o *Options) SetExitEarlyOptions(names ...string) *Options {
	o.ExitEarlyOptions = set.New(names...)
	return o
}

// Logger sets a logger that will receive debug records for each classification decision.
// Passing nil turns logging off, which is the default.
func (o *Options) Logger(logger *slog.Logger) *Options {
	o.log = logger
	return o
}

// HasFlag reports whether name is registered as a flag.
func (o *Options) HasFlag(name string) bool {
	_, ok := o.flags[name]
	return ok
}

// HasKey reports whether name is registered as a key.
func (o *Options) HasKey(name string) bool {
	_, ok := o.keys[name]
	return ok
}

// AllFlagOptions returns a copy of the flag registry, keyed by every registered name.
func (o *Options) AllFlagOptions() map[string]FlagFunc {
	return maps.Clone(o.flags)
}

// AllKeyOptions returns a copy of the key registry, keyed by every registered name.
func (o *Options) AllKeyOptions() map[string]KeyFunc {
	return maps.Clone(o.keys)
}

// UnrecognizedOptions returns the option tokens that didn't match anything in the last pass, in the order they were found.
func (o *Options) UnrecognizedOptions() []string {
	return o.unrecognized
}

// KeysNotGivenValue returns the keys that had no value to consume in the last pass, in the order they were found.
func (o *Options) KeysNotGivenValue() []string {
	return o.keysNotGivenValue
}

// MisusedOptionsPresent reports whether the last pass found unrecognized options, or keys that were not given a value.
func (o *Options) MisusedOptionsPresent() bool {
	return len(o.unrecognized) > 0 || len(o.keysNotGivenValue) > 0
}
