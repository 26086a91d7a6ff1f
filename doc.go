/*
Package optrec recognizes command line options.
Given the raw tokens a process was invoked with, it decides which are flags, which are keys with values, and which are left over as positional arguments.

The packages in this module build on each other:
  - [rawargs] turns a command line or argument vector into indexed tokens and tracks which were claimed.
  - [options] holds the flag and key vocabulary, and classifies tokens in a single pass.
  - [cli] connects the classifier to a [pflag] FlagSet, and reports misuse to the user.

Command routing and help text are left to the caller. The [cli] package leans on pflag for flag usage output.

[rawargs]: https://pkg.go.dev/github.com/saylorsolutions/optrec/rawargs
[options]: https://pkg.go.dev/github.com/saylorsolutions/optrec/options
[cli]: https://pkg.go.dev/github.com/saylorsolutions/optrec/cli
[pflag]: https://github.com/spf13/pflag
*/
package optrec
