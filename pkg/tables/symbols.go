package tables

import "sort"

// VariantSlots is the number of outputs a symbol pattern can select between.
const VariantSlots = 4

// SymbolEntry is either a fixed token or a list of VariantSlots tokens
// indexed by the variant code. Empty slots are not applicable.
type SymbolEntry struct {
	fixed    string
	variants []string
}

// Fixed returns an entry that ignores the variant code.
func Fixed(token string) SymbolEntry {
	return SymbolEntry{fixed: token}
}

// Variants returns an entry with one token per variant code.
func Variants(v0, v1, v2, v3 string) SymbolEntry {
	return SymbolEntry{variants: []string{v0, v1, v2, v3}}
}

// IsFixed reports whether the entry ignores the variant code.
func (e SymbolEntry) IsFixed() bool {
	return e.variants == nil
}

// Select returns the token for the variant code. It reports false for an
// empty slot or an out-of-range code.
func (e SymbolEntry) Select(variant int) (string, bool) {
	if e.IsFixed() {
		return e.fixed, e.fixed != ""
	}
	if variant < 0 || variant >= len(e.variants) {
		return "", false
	}
	token := e.variants[variant]
	return token, token != ""
}

// Slots returns a copy of the variant tokens, or the fixed token repeated.
func (e SymbolEntry) Slots() []string {
	if e.IsFixed() {
		return []string{e.fixed, e.fixed, e.fixed, e.fixed}
	}
	out := make([]string, len(e.variants))
	copy(out, e.variants)
	return out
}

// SymbolTable maps leading-key patterns to symbol entries.
type SymbolTable struct {
	entries map[string]SymbolEntry
}

// NewSymbolTable copies entries into a read-only table.
func NewSymbolTable(entries map[string]SymbolEntry) SymbolTable {
	t := SymbolTable{entries: make(map[string]SymbolEntry, len(entries))}
	for pattern, entry := range entries {
		t.entries[pattern] = entry
	}
	return t
}

// Lookup returns the entry registered for the leading-key pattern.
func (t SymbolTable) Lookup(pattern string) (SymbolEntry, bool) {
	entry, ok := t.entries[pattern]
	return entry, ok
}

// Len returns the number of patterns in the table.
func (t SymbolTable) Len() int {
	return len(t.entries)
}

// Patterns returns all patterns, shortest first, for stable rendering.
func (t SymbolTable) Patterns() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// NumberSymbols is the chart of the number-key engine. Variant code: A=1, O=2.
var NumberSymbols = NewSymbolTable(map[string]SymbolEntry{
	"TR":    Variants("tab", "delete", "backspace", "escape"),
	"KPWR":  Variants("up", "left", "right", "down"),
	"KPWHR": Variants("page_up", "home", "end", "page_down"),
	"":      Variants("", "tab", "return", "space"),

	"HR":     Variants("exclam", "", "notsign", "exclamdown"),
	"PH":     Variants("quotedbl", "", "", ""),
	"TKHR":   Variants("numbersign", "registered", "copyright", ""),
	"KPWH":   Variants("dollar", "euro", "yen", "sterling"),
	"PWHR":   Variants("percent", "", "", ""),
	"SKP":    Variants("ampersand", "", "", ""),
	"H":      Variants("apostrophe", "", "", ""),
	"TPH":    Variants("parenleft", "less", "bracketleft", "braceleft"),
	"KWR":    Variants("parenright", "greater", "bracketright", "braceright"),
	"T":      Variants("asterisk", "section", "", "multiply"),
	"K":      Variants("plus", "paragraph", "", "plusminus"),
	"W":      Variants("comma", "", "", ""),
	"TP":     Variants("minus", "", "", ""),
	"R":      Variants("period", "periodcentered", "", ""),
	"WH":     Variants("slash", "", "", "division"),
	"TK":     Variants("colon", "", "", ""),
	"WR":     Variants("semicolon", "", "", ""),
	"TKPW":   Variants("equal", "", "", ""),
	"TPW":    Variants("question", "", "questiondown", ""),
	"TKPWHR": Variants("at", "", "", ""),
	"PR":     Variants("backslash", "", "", ""),
	"KPR":    Variants("asciicircum", "guillemotleft", "guillemotright", "degree"),
	"KW":     Variants("underscore", "", "", "mu"),
	"P":      Variants("grave", "", "", ""),
	"PW":     Variants("bar", "", "", "brokenbar"),
	"TPWR":   Variants("asciitilde", "", "", ""),
})

// EnderSymbols is the chart of the ender engine. Variant code: O=1, A=2.
// WH resolves to backslash; the double quote has no pattern in this chart.
var EnderSymbols = NewSymbolTable(map[string]SymbolEntry{
	"KH":    Variants("tab", "backspace", "delete", "escape"),
	"KPWR":  Variants("up", "left", "right", "down"),
	"KPWHR": Variants("page_up", "home", "end", "page_down"),
	"":      Variants("", "return", "tab", "space"),

	"HR":     Variants("exclam", "notsign", "", "exclamdown"),
	"TKHR":   Variants("numbersign", "copyright", "registered", ""),
	"TPWR":   Variants("dollar", "yen", "euro", "sterling"),
	"PWHR":   Variants("percent", "", "", ""),
	"PWH":    Variants("ampersand", "", "", ""),
	"H":      Variants("apostrophe", "", "", ""),
	"TPH":    Variants("parenleft", "bracketleft", "less", "braceleft"),
	"KWR":    Variants("parenright", "bracketright", "greater", "braceright"),
	"T":      Variants("asterisk", "", "section", "multiply"),
	"K":      Variants("plus", "", "paragraph", "plusminus"),
	"W":      Variants("comma", "", "", ""),
	"TP":     Variants("minus", "", "", ""),
	"R":      Variants("period", "", "periodcentered", ""),
	"PR":     Variants("slash", "", "", "division"),
	"TK":     Variants("colon", "", "", ""),
	"WR":     Variants("semicolon", "", "", ""),
	"TKPW":   Variants("equal", "", "", ""),
	"PWL":    Variants("question", "questiondown", "", ""),
	"TKPWHR": Variants("at", "", "", ""),
	"WH":     Variants("backslash", "", "", ""),
	"KPR":    Variants("asciicircum", "guillemotright", "guillemotleft", "degree"),
	"KW":     Variants("underscore", "", "", "mu"),
	"P":      Variants("grave", "", "", ""),
	"PW":     Variants("bar", "", "", "brokenbar"),
	"KPWH":   Variants("asciitilde", "", "", ""),
})
