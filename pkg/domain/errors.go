package domain

import (
	"errors"
	"fmt"
)

// ErrNotApplicable is returned when a stroke does not belong to the dictionary.
// Malformed strokes and recognized-but-unsupported strokes are not distinguished.
var ErrNotApplicable = errors.New("stroke not applicable")

// ErrUnknownEngine is returned when an engine name has no registered profile.
var ErrUnknownEngine = errors.New("unknown engine")

// ErrUnknownSpellingMethod is returned when a spelling method has no table.
var ErrUnknownSpellingMethod = errors.New("unknown spelling method")

// NotApplicable wraps ErrNotApplicable with a reason for logs and debugging.
func NotApplicable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotApplicable, fmt.Sprintf(format, args...))
}

// IsNotApplicable reports whether err signals a stroke outside the dictionary.
func IsNotApplicable(err error) bool {
	return errors.Is(err, ErrNotApplicable)
}
