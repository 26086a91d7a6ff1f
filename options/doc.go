/*
Package options holds a vocabulary of flag and key options, and classifies [rawargs.RawArguments] against it in one forward pass.

A flag takes no argument, and its presence alone triggers its callback.
A key consumes the token right after it as its value.
Single dash tokens like '-ab' are treated as a cluster of one character flags if every character is a registered flag.

Misuse is recorded rather than returned.
Options that match nothing are collected in [Options.UnrecognizedOptions], and keys with no value to consume are collected in [Options.KeysNotGivenValue].
The caller should check [Options.MisusedOptionsPresent] and [Options.ExitEarly] after [Options.Recognize] returns, and decide whether to continue.

Callbacks run synchronously in the order their tokens appear.
A callback that panics will stop the pass with the panic, and there is no rollback of tokens already claimed.
*/
package options
