package chart

import (
	"fmt"
	"strings"

	"github.com/aretw0/stenomods/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of one lookup.
// Completed steps are chained left to right; when err is set the chain ends
// in a rejected node styled as failed.
func GenerateMermaid(res *domain.Resolution, err error) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	if res == nil {
		sb.WriteString("    rejected{{\"" + label(errText(err)) + "\"}}\n")
		sb.WriteString("    class rejected failed\n")
		sb.WriteString("    classDef failed stroke:#f87171,stroke-width:2px\n")
		return sb.String()
	}

	type step struct{ id, text string }
	steps := []step{{"stroke", res.Stroke}}
	if res.Normalized != "" && res.Normalized != res.Stroke {
		steps = append(steps, step{"normalized", res.Normalized})
	}
	if res.Fields != (domain.Fields{}) {
		steps = append(steps, step{"fields", fieldsText(res.Fields)})
	}
	if res.Mode != domain.ModeUnknown {
		steps = append(steps, step{"mode", res.Mode.String()})
	}
	if res.Character != "" {
		steps = append(steps, step{"character", res.Character})
	}
	if res.Output != "" {
		steps = append(steps, step{"output", res.Output})
	}

	for _, s := range steps {
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", s.id, label(s.text))
	}
	for i := 1; i < len(steps); i++ {
		arrow := "-->"
		if steps[i].id == "output" && len(res.Modifiers) > 0 {
			arrow = fmt.Sprintf("-- \"%s\" -->", label(strings.Join(res.Modifiers, ", ")))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", steps[i-1].id, arrow, steps[i].id)
	}

	if err != nil {
		fmt.Fprintf(&sb, "    rejected{{\"%s\"}}\n", label(errText(err)))
		fmt.Fprintf(&sb, "    %s -.-> rejected\n", steps[len(steps)-1].id)
		sb.WriteString("    class rejected failed\n")
		sb.WriteString("    classDef failed stroke:#f87171,stroke-width:2px\n")
	}
	return sb.String()
}

func fieldsText(f domain.Fields) string {
	parts := []string{
		"leading=" + f.Leading,
		"vowel1=" + f.Vowel1,
		"sep=" + f.Separator,
		"vowel2=" + f.Vowel2,
		"mods=" + f.Modifiers,
	}
	if f.Ender != "" {
		parts = append(parts, "ender="+f.Ender)
	}
	return strings.Join(parts, " ")
}

func errText(err error) string {
	if err == nil {
		return "rejected"
	}
	return err.Error()
}

// label escapes double quotes for Mermaid labels.
func label(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
