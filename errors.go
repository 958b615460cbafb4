package rematch

import (
	"errors"
	"fmt"
)

// ErrNamedGroupsUnsupported is returned by [Match.Named]. The underlying
// engines do not report capture group names, so name lookup always fails.
var ErrNamedGroupsUnsupported = errors.New("rematch: named capture groups are not supported")

// errUnknownFlags marks a compile call with flag bits outside the
// defined set.
var errUnknownFlags = errors.New("unknown flag bits")

// PatternError reports a pattern that failed to compile: invalid syntax
// or an invalid option combination. Compilation is deterministic, so the
// failure is permanent for that pattern and flag set.
type PatternError struct {
	Pattern string
	Offset  int // byte offset of the syntax error, or -1 if unknown
	Err     error
}

func (e *PatternError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("rematch: compile %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
	}
	return fmt.Sprintf("rematch: compile %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
