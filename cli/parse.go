package cli

import (
	"github.com/saylorsolutions/optrec/options"
	"github.com/saylorsolutions/optrec/rawargs"
	flag "github.com/spf13/pflag"
	"strings"
)

// HelpPatterns is a slice of flags that should trigger the output of usage information.
// A pattern is only used as an exit early option if it names the help flag, so '-h' is ignored when the FlagSet already uses it as another flag's shorthand.
var HelpPatterns = []string{"--help", "-h"}

// Result is the outcome of a successful [Parse].
type Result struct {
	// Args are the positional arguments, in the order they were given.
	Args []string
	// ExitEarly is true if an exit early option, like one of HelpPatterns, was given.
	// Usage information has already been printed, and the command should not run.
	ExitEarly bool
}

// NewOptions creates an empty [options.Options] to pass to [ParseWith].
// The help flag's exit early options are added by ParseWith, once the help flag is known.
func NewOptions() *options.Options {
	return options.New()
}

// Parse classifies argv against the flags in fs, and sets their values.
// The first element of argv is the program name, as in [os.Args].
// A '--help' flag will be added to fs if it isn't already defined, with '-h' as its shorthand if that's available.
//
// Misused options are reported with printer, along with flag usages, and a [UsageError] is returned.
func Parse(fs *flag.FlagSet, argv []string, printer *Printer) (Result, error) {
	return ParseWith(NewOptions(), fs, argv, printer)
}

// ParseWith works like [Parse], but registers the flags of fs with opts.
// This allows configuring opts, for example with [options.Options.Logger], or adding options that aren't in fs.
func ParseWith(opts *options.Options, fs *flag.FlagSet, argv []string, printer *Printer) (Result, error) {
	if printer == nil {
		printer = NewPrinter()
	}
	help := addHelpFlag(fs)
	for _, pattern := range HelpPatterns {
		if pattern == "--"+help.Name || (len(help.Shorthand) > 0 && pattern == "-"+help.Shorthand) {
			opts.ExitEarlyOptions = opts.ExitEarlyOptions.Add(pattern)
		}
	}
	binding := Bind(opts, fs)
	args := rawargs.New(argv)
	opts.Recognize(args)

	if ReportMisuse(opts, printer) {
		printUsage(fs, printer)
		return Result{}, &UsageError{wrapped: opts.Err()}
	}
	if err := binding.Err(); err != nil {
		printer.Errorf("%s", err)
		return Result{}, &UsageError{wrapped: err}
	}
	if opts.ExitEarly {
		printUsage(fs, printer)
		return Result{ExitEarly: true}, nil
	}
	return Result{Args: args.Unclaimed()}, nil
}

// ReportMisuse prints a line for each misused option found by the last [options.Options.Recognize] pass.
// Returns true if anything was printed.
func ReportMisuse(opts *options.Options, printer *Printer) bool {
	for _, opt := range opts.UnrecognizedOptions() {
		printer.Errorf("unrecognized option '%s'", opt)
	}
	for _, key := range opts.KeysNotGivenValue() {
		printer.Errorf("option '%s' requires a value", key)
	}
	return opts.MisusedOptionsPresent()
}

func addHelpFlag(fs *flag.FlagSet) *flag.Flag {
	if help := fs.Lookup("help"); help != nil {
		return help
	}
	if fs.ShorthandLookup("h") != nil {
		fs.Bool("help", false, "Prints this usage information")
	} else {
		fs.BoolP("help", "h", false, "Prints this usage information")
	}
	return fs.Lookup("help")
}

func printUsage(fs *flag.FlagSet, printer *Printer) {
	var buf strings.Builder
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(fs.FlagUsages())
	printer.Print(buf.String())
}
