package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxStrokeSize bounds a single input line. Real entries are a
	// few dozen bytes.
	DefaultMaxStrokeSize = 1024
	// EnvMaxStrokeSize is the environment variable to override the default
	EnvMaxStrokeSize = "STENOMODS_MAX_STROKE_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeStroke cleans one input line by enforcing size limits,
// validating UTF-8, stripping control characters and surrounding space.
func SanitizeStroke(input string) (string, error) {
	limit := getMaxStrokeSize()
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range input {
		if unicode.IsControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return strings.TrimSpace(input), nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// SplitStrokes splits a sanitized entry on "/" into its strokes.
// Empty strokes are dropped.
func SplitStrokes(entry string) []string {
	parts := strings.Split(entry, "/")
	strokes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			strokes = append(strokes, p)
		}
	}
	return strokes
}

func getMaxStrokeSize() int {
	if val := os.Getenv(EnvMaxStrokeSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxStrokeSize
}
