//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but affects every goroutine that uses assertions.
func Disable() {
	disabled.Store(true)
}

// Enable re-enables assertion evaluation if Disable was called previously.
func Enable() {
	disabled.Store(false)
}

func callerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// True will panic with descriptive information if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(fmt.Sprintf("assertion '%s' failed at %s", label, callerDetails()))
	}
}

// InRange will panic if idx is not a valid index for a sequence of the given length.
func InRange(label string, idx, length int) {
	if disabled.Load() {
		return
	}
	if idx < 0 || idx >= length {
		panic(fmt.Sprintf("assertion '%s' failed at %s: index %d out of range [0,%d)", label, callerDetails(), idx, length))
	}
}
