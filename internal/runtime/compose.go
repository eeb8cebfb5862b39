package runtime

import (
	"strings"

	"github.com/aretw0/stenomods/pkg/domain"
)

// ModifierNames returns the modifiers held in keys, in precedence order.
func (pr Profile) ModifierNames(keys string) []string {
	names := make([]string, 0, len(pr.Precedence))
	for _, m := range pr.Precedence {
		if strings.IndexByte(keys, m.Key) >= 0 {
			names = append(names, m.Name)
		}
	}
	return names
}

// Compose wraps the character in each modifier in turn, so the first name
// ends up innermost: ["alt", "shift"] gives "shift(alt(c))".
func Compose(character string, modifiers []string) string {
	expr := character
	for _, name := range modifiers {
		expr = name + "(" + expr + ")"
	}
	return expr
}

// Format wraps a composed expression in the host's literal-command syntax.
func Format(expr string) string {
	return domain.CommandPrefix + expr + domain.CommandSuffix
}
