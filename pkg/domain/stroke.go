package domain

import (
	"fmt"
	"strings"
)

// Mode is the resolution strategy a stroke is routed to.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeSymbol
	ModeNumeral
	ModeFingerspell
)

var modeNames = map[Mode]string{
	ModeUnknown:     "unknown",
	ModeSymbol:      "symbol",
	ModeNumeral:     "numeral",
	ModeFingerspell: "fingerspell",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid mode %q", string(text))
}

// Fields holds the named substrings of a decomposed stroke.
// The fields are disjoint and, concatenated in order, rebuild the stroke
// without its number marker.
type Fields struct {
	Leading   string `json:"leading"`
	Vowel1    string `json:"vowel1"`
	Separator string `json:"separator"`
	Vowel2    string `json:"vowel2"`
	Modifiers string `json:"modifiers"`
	Ender     string `json:"ender,omitempty"`
}

// Pattern is the combined key the resolvers work on.
func (f Fields) Pattern() string {
	return f.Leading + f.Vowel1 + f.Vowel2
}

// IsSymbol reports whether the separator selects symbol mode.
func (f Fields) IsSymbol() bool {
	return strings.Contains(f.Separator, SymbolMarker)
}

// Resolution captures every step of a successful lookup.
type Resolution struct {
	Stroke     string   `json:"stroke"`
	Normalized string   `json:"normalized"`
	Fields     Fields   `json:"fields"`
	Mode       Mode     `json:"mode"`
	Character  string   `json:"character"`
	Modifiers  []string `json:"modifiers"`
	Output     string   `json:"output"`
}
