package chart

import (
	"fmt"
	"strings"

	"github.com/aretw0/stenomods/pkg/tables"
)

// Modifier is one row of the modifier legend.
type Modifier struct {
	Key  string
	Name string
}

// Chart is everything shown by the table command for one engine.
type Chart struct {
	Engine    string
	Variants  []string
	Modifiers []Modifier
	Enders    []string
	Symbols   tables.SymbolTable
	Spelling  tables.SpellingTable
}

// Section selects which parts of the chart are generated.
type Section int

const (
	SectionModifiers Section = 1 << iota
	SectionSymbols
	SectionSpelling

	SectionAll = SectionModifiers | SectionSymbols | SectionSpelling
)

// GenerateMarkdown renders the chart as GitHub-flavoured markdown tables.
func GenerateMarkdown(c Chart, sections Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s engine\n\n", c.Engine)

	if len(c.Enders) > 0 {
		fmt.Fprintf(&sb, "Enders: %s\n\n", codeList(c.Enders))
	}

	if sections&SectionModifiers != 0 {
		sb.WriteString("## Modifiers\n\n")
		sb.WriteString("Listed innermost first.\n\n")
		sb.WriteString("| Key | Modifier |\n|---|---|\n")
		for _, m := range c.Modifiers {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", m.Key, m.Name)
		}
		sb.WriteString("\n")
	}

	if sections&SectionSymbols != 0 {
		sb.WriteString("## Symbols\n\n")
		sb.WriteString("| Pattern |")
		for _, v := range c.Variants {
			fmt.Fprintf(&sb, " %s |", variantLabel(v))
		}
		sb.WriteString("\n|---|")
		sb.WriteString(strings.Repeat("---|", len(c.Variants)))
		sb.WriteString("\n")

		for _, pattern := range c.Symbols.Patterns() {
			entry, _ := c.Symbols.Lookup(pattern)
			fmt.Fprintf(&sb, "| %s |", patternLabel(pattern))
			for i := range c.Variants {
				token, ok := entry.Select(i)
				if !ok {
					token = ""
				}
				fmt.Fprintf(&sb, " %s |", escape(token))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if sections&SectionSpelling != 0 {
		fmt.Fprintf(&sb, "## Fingerspelling (%s)\n\n", c.Spelling.Method())
		sb.WriteString("| Chord | Letter |\n|---|---|\n")
		for _, pattern := range c.Spelling.Patterns() {
			letter, _ := c.Spelling.Lookup(pattern)
			fmt.Fprintf(&sb, "| `%s` | %s |\n", pattern, letter)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func variantLabel(v string) string {
	if v == "" {
		return "(none)"
	}
	return "`" + v + "`"
}

func patternLabel(p string) string {
	if p == "" {
		return "(none)"
	}
	return "`" + p + "`"
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	return strings.Join(quoted, ", ")
}

// escape keeps table cells intact.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
