package runtime

import (
	"strconv"
	"strings"

	"github.com/aretw0/stenomods/pkg/domain"
)

// plan is the decision taken once from the decomposed fields.
type plan struct {
	mode   domain.Mode
	shape  string
	vowels string
	tail   string
}

// classify picks the resolution strategy for the fields.
func classify(f domain.Fields) (plan, error) {
	shape, vowels, tail, err := splitPattern(f.Pattern())
	if err != nil {
		return plan{}, err
	}
	p := plan{shape: shape, vowels: vowels, tail: tail}
	switch {
	case f.IsSymbol():
		p.mode = domain.ModeSymbol
	case vowels == domain.NumeralIndicator && tail == "":
		p.mode = domain.ModeNumeral
	default:
		p.mode = domain.ModeFingerspell
	}
	return p, nil
}

// resolve turns the plan into the base character.
func (pr Profile) resolve(p plan) (string, error) {
	switch p.mode {
	case domain.ModeSymbol:
		return pr.resolveSymbol(p.shape, p.vowels)
	case domain.ModeNumeral:
		return pr.resolveNumeral(p.shape)
	case domain.ModeFingerspell:
		return pr.resolveFingerspell(p.shape + p.vowels + p.tail)
	default:
		return "", domain.NotApplicable("no strategy for mode %s", p.mode)
	}
}

func (pr Profile) resolveSymbol(shape, vowels string) (string, error) {
	entry, ok := pr.Symbols.Lookup(shape)
	if !ok {
		return "", domain.NotApplicable("no symbol for %q", shape)
	}
	variant := weigh(vowels, pr.VariantBits)
	token, ok := entry.Select(variant)
	if !ok {
		return "", domain.NotApplicable("symbol %q has no variant %d", shape, variant)
	}
	return token, nil
}

func (pr Profile) resolveNumeral(shape string) (string, error) {
	value := weigh(shape, pr.NumeralWeights)
	if pr.isFunction(shape) {
		if value > pr.MaxFunction {
			return "", domain.NotApplicable("function key F%d out of range", value)
		}
		return "F" + strconv.Itoa(value), nil
	}
	if value > pr.MaxDigit {
		return "", domain.NotApplicable("numeral %d out of range", value)
	}
	return strconv.Itoa(value), nil
}

func (pr Profile) isFunction(shape string) bool {
	if pr.FunctionKeys == "" {
		return false
	}
	for i := 0; i < len(pr.FunctionKeys); i++ {
		if strings.IndexByte(shape, pr.FunctionKeys[i]) < 0 {
			return false
		}
	}
	return true
}

func (pr Profile) resolveFingerspell(pattern string) (string, error) {
	letter, ok := pr.Spelling.Lookup(pattern)
	if !ok {
		return "", domain.NotApplicable("no %s letter for %q", pr.Spelling.Method(), pattern)
	}
	return letter, nil
}

// weigh sums the weights of the keys present in keys.
func weigh(keys string, weights []KeyWeight) int {
	total := 0
	for _, w := range weights {
		if strings.IndexByte(keys, w.Key) >= 0 {
			total += w.Weight
		}
	}
	return total
}
