package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/cli"
	"github.com/aretw0/stenomods/internal/presentation/chart"
	"github.com/aretw0/stenomods/internal/presentation/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table [ENGINE...]",
	Short: "Print the symbol, spelling and modifier charts",
	Long: `Prints the tables an engine resolves strokes with, as markdown. On a
terminal the markdown is rendered; use --raw to keep it plain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		sectionNames, _ := cmd.Flags().GetStringSlice("section")

		sections, err := parseSections(sectionNames)
		if err != nil {
			return err
		}

		engines := args
		if len(engines) == 0 {
			engines = cfg.Engines
		}

		var sb strings.Builder
		for _, name := range engines {
			tr, err := cli.NewTranslator(name, cli.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}
			sb.WriteString(chart.GenerateMarkdown(cli.ChartFor(tr), sections))
		}

		out := cmd.OutOrStdout()
		markdown := sb.String()
		if !raw && out == os.Stdout && tui.IsTerminal(os.Stdout) {
			rendered, err := tui.NewRenderer()(markdown)
			if err == nil {
				markdown = rendered
			}
		}
		fmt.Fprint(out, markdown)
		return nil
	},
}

func parseSections(names []string) (chart.Section, error) {
	if len(names) == 0 {
		return chart.SectionAll, nil
	}
	var s chart.Section
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "modifiers":
			s |= chart.SectionModifiers
		case "symbols":
			s |= chart.SectionSymbols
		case "spelling":
			s |= chart.SectionSpelling
		default:
			return 0, fmt.Errorf("unknown section %q (want modifiers, symbols or spelling)", n)
		}
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("raw", false, "Print plain markdown")
	tableCmd.Flags().StringSlice("section", nil, "Sections to print (modifiers, symbols, spelling)")
}
