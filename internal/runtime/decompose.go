package runtime

import (
	"slices"
	"strings"

	"github.com/aretw0/stenomods/pkg/domain"
)

// scanner consumes runs of keys from fixed alphabets. Every field takes the
// longest run it can, which matches the fields a backtracking full-match
// would report because adjacent alphabets never need to give keys back.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) literal(prefix string) bool {
	if !strings.HasPrefix(sc.s[sc.pos:], prefix) {
		return false
	}
	sc.pos += len(prefix)
	return true
}

func (sc *scanner) span(alphabet string) string {
	start := sc.pos
	for sc.pos < len(sc.s) && strings.IndexByte(alphabet, sc.s[sc.pos]) >= 0 {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

func (sc *scanner) optional(alphabet string) string {
	if sc.pos < len(sc.s) && strings.IndexByte(alphabet, sc.s[sc.pos]) >= 0 {
		sc.pos++
		return sc.s[sc.pos-1 : sc.pos]
	}
	return ""
}

func (sc *scanner) done() bool {
	return sc.pos == len(sc.s)
}

// Decompose splits a stroke into its fields according to the grammar.
func Decompose(g Grammar, stroke string) (domain.Fields, error) {
	var f domain.Fields
	sc := &scanner{s: stroke}

	if g.Marker != "" && !sc.literal(g.Marker) {
		return f, domain.NotApplicable("stroke %q lacks the %q marker", stroke, g.Marker)
	}

	f.Leading = sc.span(g.Leading)
	f.Vowel1 = sc.span(domain.LeftVowels)
	f.Separator = sc.optional(domain.Separators)
	if g.SeparatorRequired && f.Separator == "" {
		return f, domain.NotApplicable("stroke %q has no separator", stroke)
	}
	f.Vowel2 = sc.span(domain.RightVowels)
	f.Modifiers = sc.span(g.Modifiers)
	if g.ModifierRequired && f.Modifiers == "" {
		return f, domain.NotApplicable("stroke %q has no modifier keys", stroke)
	}
	if g.EnderKeys != "" {
		f.Ender = sc.span(g.EnderKeys)
	}

	if !sc.done() {
		return f, domain.NotApplicable("stroke %q has unexpected key %q", stroke, sc.s[sc.pos:sc.pos+1])
	}
	if g.EnderKeys != "" && !slices.Contains(g.Enders, f.Ender) {
		return f, domain.NotApplicable("stroke %q ends with %q, not an accepted ender", stroke, f.Ender)
	}
	return f, nil
}

// splitPattern re-splits the combined pattern into consonants, left vowels
// and right vowels. It fails when the pattern holds anything else, such as a
// number key left in the leading field.
func splitPattern(pattern string) (shape, vowels, tail string, err error) {
	sc := &scanner{s: pattern}
	shape = sc.span(domain.LeftKeys)
	vowels = sc.span(domain.LeftVowels)
	tail = sc.span(domain.RightVowels)
	if !sc.done() {
		return "", "", "", domain.NotApplicable("pattern %q does not split into keys and vowels", pattern)
	}
	return shape, vowels, tail, nil
}
