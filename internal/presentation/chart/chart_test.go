package chart_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/stenomods/internal/presentation/chart"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/tables"
)

func numberChart(t *testing.T) chart.Chart {
	t.Helper()
	spelling, err := tables.Spelling(tables.MethodPlover)
	if err != nil {
		t.Fatal(err)
	}
	return chart.Chart{
		Engine:    "number",
		Variants:  []string{"", "A", "O", "AO"},
		Modifiers: []chart.Modifier{{Key: "R", Name: "alt"}, {Key: "G", Name: "control"}},
		Symbols:   tables.NumberSymbols,
		Spelling:  spelling,
	}
}

func TestGenerateMarkdown(t *testing.T) {
	tests := []struct {
		name        string
		sections    chart.Section
		contains    []string
		notContains []string
	}{
		{
			name:     "All Sections",
			sections: chart.SectionAll,
			contains: []string{
				"# number engine",
				"| `R` | alt |",
				"| Pattern | (none) | `A` | `O` | `AO` |",
				"| `TR` | tab | delete | backspace | escape |",
				"| (none) |  | tab | return | space |",
				"| `H` | apostrophe |  |  |  |",
				"## Fingerspelling (plover)",
				"| `A` | a |",
			},
		},
		{
			name:        "Symbols Only",
			sections:    chart.SectionSymbols,
			contains:    []string{"## Symbols"},
			notContains: []string{"## Modifiers", "## Fingerspelling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := chart.GenerateMarkdown(numberChart(t), tt.sections)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGenerateMarkdown_Enders(t *testing.T) {
	c := numberChart(t)
	c.Engine = "ender"
	c.Enders = []string{"LTZ", "LGTS"}

	out := chart.GenerateMarkdown(c, chart.SectionModifiers)
	assert.Contains(t, out, "Enders: `LTZ`, `LGTS`")
}

func TestGenerateMermaid(t *testing.T) {
	res := &domain.Resolution{
		Stroke:     "2R*G",
		Normalized: "#TR*G",
		Fields:     domain.Fields{Leading: "TR", Separator: "*", Modifiers: "G"},
		Mode:       domain.ModeSymbol,
		Character:  "tab",
		Modifiers:  []string{"control"},
		Output:     "{#control(tab)}",
	}

	out := chart.GenerateMermaid(res, nil)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `stroke["2R*G"]`)
	assert.Contains(t, out, `normalized["#TR*G"]`)
	assert.Contains(t, out, `mode["symbol"]`)
	assert.Contains(t, out, `character -- "control" --> output`)
	assert.NotContains(t, out, "rejected")
}

func TestGenerateMermaid_Rejected(t *testing.T) {
	res := &domain.Resolution{Stroke: "12W-6", Normalized: "#STW-F"}
	out := chart.GenerateMermaid(res, domain.NotApplicable("bad \"modifier\""))

	assert.Contains(t, out, "normalized -.-> rejected")
	assert.Contains(t, out, "'modifier'")
	assert.Contains(t, out, "classDef failed")

	out = chart.GenerateMermaid(nil, errors.New("boom"))
	assert.Contains(t, out, `rejected{{"boom"}}`)
}
