package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/optrec/options"
	flag "github.com/spf13/pflag"
)

// Binding connects the flags of a [flag.FlagSet] to an [options.Options].
// Converting values is left to the FlagSet, and any conversion failure is collected for [Binding.Err].
type Binding struct {
	fs   *flag.FlagSet
	errs []error
}

// Bind registers every flag in fs with opts.
// Each flag is registered as '--name', and as '-s' if it has a shorthand.
// Flags that don't need a value, like booleans, are registered with [options.Options.OnFlags], and everything else with [options.Options.OnKeys].
func Bind(opts *options.Options, fs *flag.FlagSet) *Binding {
	b := &Binding{fs: fs}
	fs.VisitAll(func(f *flag.Flag) {
		names := []string{"--" + f.Name}
		if len(f.Shorthand) > 0 {
			names = append(names, "-"+f.Shorthand)
		}
		if len(f.NoOptDefVal) > 0 {
			opts.OnFlags(names, func(string) {
				b.set(f.Name, f.NoOptDefVal)
			})
			return
		}
		opts.OnKeys(names, func(_, value string) {
			b.set(f.Name, value)
		})
	})
	return b
}

func (b *Binding) set(name, value string) {
	if err := b.fs.Set(name, value); err != nil {
		b.errs = append(b.errs, fmt.Errorf("invalid value '%s' for flag '--%s': %w", value, name, err))
	}
}

// Err returns every value conversion failure joined together, or nil if there were none.
func (b *Binding) Err() error {
	return errors.Join(b.errs...)
}
