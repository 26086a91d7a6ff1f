/*
Package cli connects the option classifier in [options] to a [pflag] FlagSet, and reports misuse to the user.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - This package uses [pflag] to define flags, convert their values, and format flag usages. Recognizing which tokens are flags is done by [options].
  - Flags may be interspersed with positional arguments, and short boolean flags may be clustered, as in '-vq'.
  - The token after a key flag is always its value, even if it starts with a dash.
  - Misused options should stop the command before it runs. [Parse] reports each one and returns a [UsageError].

# Usage by default

The '-h' and '--help' flags are set up by default, and are exit early options.
If one is given, [Parse] prints flag usages and returns a [Result] with ExitEarly set, so the caller can skip running the command.

[pflag]: https://github.com/spf13/pflag
[options]: https://pkg.go.dev/github.com/saylorsolutions/optrec/options
*/
package cli
