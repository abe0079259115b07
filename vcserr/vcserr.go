// Package vcserr is a small helper for the error type, modeled on the
// pattern Gopher2600 uses for its own error chain: an error is
// created from a format pattern plus values, and the pattern itself can
// later be tested for anywhere in a wrapped chain without string-matching
// the fully-formatted message.
//
// Most anomalies inside the emulator core are not reported through this
// package at all — unknown opcodes and a zero reset vector are non-fatal
// and surface as counters/flags on the CPU, and unserviced bus accesses
// read as 0 or are dropped. In the core, vcserr carries the one fatal
// construction-time failure: an empty cartridge image (other image sizes
// degrade to a flat 4K cartridge rather than failing). The debug/wavdump
// tool also uses it for file errors.
package vcserr

import (
	"fmt"
	"strings"
)

// wrapped is the concrete error type returned by Errorf.
type wrapped struct {
	pattern string
	values  []interface{}
}

// Errorf creates an error from a pattern (as fmt.Sprintf) and values. The
// pattern itself is retained so Is and Has can later test for it without
// re-parsing the formatted string.
func Errorf(pattern string, values ...interface{}) error {
	return wrapped{pattern: pattern, values: values}
}

func (w wrapped) Error() string {
	s := fmt.Sprintf(w.pattern, w.values...)

	// normalise: if the wrapped error's message is a suffix of our own
	// formatted message (i.e. we wrapped it with "...: %v" or similar) then
	// there's nothing to deduplicate; if instead our pattern *is* the inner
	// error's pattern (accidental double-wrap), collapse it.
	for _, v := range w.values {
		if inner, ok := v.(wrapped); ok && inner.pattern == w.pattern {
			return inner.Error()
		}
	}

	return s
}

// Unwrap supports errors.Is / errors.As against any error value passed to
// Errorf.
func (w wrapped) Unwrap() error {
	for _, v := range w.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// Is reports whether err, or any error it wraps, was created with the given
// pattern.
func Is(err error, pattern string) bool {
	for err != nil {
		if w, ok := err.(wrapped); ok && w.pattern == pattern {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Has reports whether pattern occurs anywhere in err's formatted chain,
// treating ": " as the part separator (following the convention used
// throughout the Go standard library for wrapped error messages).
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}
	for _, part := range strings.Split(err.Error(), ": ") {
		if part == pattern {
			return true
		}
	}
	return Is(err, pattern)
}
