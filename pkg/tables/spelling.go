package tables

import (
	"fmt"
	"sort"

	"github.com/aretw0/stenomods/pkg/domain"
)

// Spelling methods with a built-in alphabet.
const (
	MethodPlover   = "plover"
	MethodMagnum   = "magnum"
	MethodCombined = "combined"
)

// SpellingTable maps a combined key pattern to a lowercase letter.
type SpellingTable struct {
	method  string
	letters map[string]string
}

// NewSpellingTable copies letters into a read-only table.
func NewSpellingTable(method string, letters map[string]string) SpellingTable {
	t := SpellingTable{method: method, letters: make(map[string]string, len(letters))}
	for k, v := range letters {
		t.letters[k] = v
	}
	return t
}

// Method returns the name of the spelling method.
func (t SpellingTable) Method() string {
	return t.method
}

// Lookup returns the letter for the pattern. Empty letters count as missing.
func (t SpellingTable) Lookup(pattern string) (string, bool) {
	letter, ok := t.letters[pattern]
	return letter, ok && letter != ""
}

// Len returns the number of patterns in the table.
func (t SpellingTable) Len() int {
	return len(t.letters)
}

// Patterns returns all patterns sorted by the letter they produce.
func (t SpellingTable) Patterns() []string {
	keys := make([]string, 0, len(t.letters))
	for k := range t.letters {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := t.letters[keys[i]], t.letters[keys[j]]
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

var ploverLetters = map[string]string{
	"A":     "a",
	"PW":    "b",
	"KR":    "c",
	"TK":    "d",
	"E":     "e",
	"TP":    "f",
	"TKPW":  "g",
	"H":     "h",
	"EU":    "i",
	"SKWR":  "j",
	"K":     "k",
	"HR":    "l",
	"PH":    "m",
	"TPH":   "n",
	"O":     "o",
	"P":     "p",
	"KW":    "q",
	"R":     "r",
	"S":     "s",
	"T":     "t",
	"U":     "u",
	"SR":    "v",
	"W":     "w",
	"KP":    "x",
	"KWR":   "y",
	"STKPW": "z",
}

// magnum differs from plover only in i, j and z.
var magnumLetters = func() map[string]string {
	m := make(map[string]string, len(ploverLetters))
	for k, v := range ploverLetters {
		switch k {
		case "EU", "SKWR", "STKPW":
			continue
		}
		m[k] = v
	}
	m["AOEU"] = "i"
	m["SKWRAEU"] = "j"
	m["STKPWHR"] = "z"
	return m
}()

var spellings = map[string]SpellingTable{
	MethodPlover: NewSpellingTable(MethodPlover, ploverLetters),
	MethodMagnum: NewSpellingTable(MethodMagnum, magnumLetters),
	MethodCombined: func() SpellingTable {
		both := make(map[string]string, len(ploverLetters)+3)
		for k, v := range ploverLetters {
			both[k] = v
		}
		for k, v := range magnumLetters {
			both[k] = v
		}
		return NewSpellingTable(MethodCombined, both)
	}(),
}

// Spelling returns the table of a spelling method.
func Spelling(method string) (SpellingTable, error) {
	t, ok := spellings[method]
	if !ok {
		return SpellingTable{}, fmt.Errorf("%w: %q", domain.ErrUnknownSpellingMethod, method)
	}
	return t, nil
}

// SpellingMethods lists the built-in spelling methods.
func SpellingMethods() []string {
	methods := make([]string, 0, len(spellings))
	for m := range spellings {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
