package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/cli"
	"github.com/aretw0/stenomods/internal/presentation/chart"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/runner"
)

var explainCmd = &cobra.Command{
	Use:   "explain STROKE",
	Short: "Show how an engine resolves a stroke",
	Long: `Runs one engine on the stroke and prints every intermediate value:
the normalized stroke, its fields, the chosen mode, the base character and
the modifiers. Output formats: text, json, mermaid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _ := cmd.Flags().GetString("engine")
		format, _ := cmd.Flags().GetString("format")

		tr, err := cli.NewTranslator(engine, cli.Options{Config: cfg, Logger: logger, Debug: debug})
		if err != nil {
			return err
		}

		entry, err := runner.SanitizeStroke(args[0])
		if err != nil {
			return err
		}

		res, lookupErr := tr.Explain(cmd.Context(), runner.SplitStrokes(entry))
		if lookupErr != nil && !domain.IsNotApplicable(lookupErr) {
			return lookupErr
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			payload := map[string]any{
				"engine":     engine,
				"applicable": lookupErr == nil,
				"resolution": res,
			}
			if lookupErr != nil {
				payload["error"] = lookupErr.Error()
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "mermaid":
			fmt.Fprint(out, chart.GenerateMermaid(res, lookupErr))
			return nil
		case "text":
			fmt.Fprint(out, explainText(engine, res, lookupErr))
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text, json or mermaid)", format)
		}
	},
}

func explainText(engine string, res *domain.Resolution, err error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "engine:     %s\n", engine)
	if res != nil {
		fmt.Fprintf(&sb, "stroke:     %s\n", res.Stroke)
		fmt.Fprintf(&sb, "normalized: %s\n", res.Normalized)
		f := res.Fields
		fmt.Fprintf(&sb, "fields:     leading=%q vowel1=%q separator=%q vowel2=%q modifiers=%q", f.Leading, f.Vowel1, f.Separator, f.Vowel2, f.Modifiers)
		if f.Ender != "" {
			fmt.Fprintf(&sb, " ender=%q", f.Ender)
		}
		sb.WriteString("\n")
		if res.Mode != domain.ModeUnknown {
			fmt.Fprintf(&sb, "mode:       %s\n", res.Mode)
		}
		if res.Character != "" {
			fmt.Fprintf(&sb, "character:  %s\n", res.Character)
			fmt.Fprintf(&sb, "modifiers:  %s\n", strings.Join(res.Modifiers, ", "))
		}
		if res.Output != "" {
			fmt.Fprintf(&sb, "output:     %s\n", res.Output)
		}
	}
	if err != nil {
		fmt.Fprintf(&sb, "result:     %v\n", err)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringP("engine", "e", "number", "Engine to explain (number, ender)")
	explainCmd.Flags().StringP("format", "f", "text", "Output format (text, json, mermaid)")
}
