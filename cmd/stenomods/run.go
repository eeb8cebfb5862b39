package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/presentation/tui"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Translate a stream of strokes, one entry per line",
	Long: `Reads entries line by line (stdin by default) and prints one translation
per line. Entries no dictionary accepts print the fallback marker, so a steno
log can be piped through unchanged in length.`,
	Example: `  printf '2R*G\nAOEURLTZ\n' | stenomods run
  stenomods run --input strokes.txt --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		jsonMode, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var input io.Reader = cmd.InOrStdin()
		if inputPath != "" && inputPath != "-" {
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()
			input = f
		}

		reg, err := buildRegistry(cmd.Context(), domain.LookupHooks{}, false)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var handler runner.OutputHandler
		if jsonMode {
			handler = runner.NewJSONHandler(out)
		} else {
			opts := []runner.TextHandlerOption{
				runner.WithTextHandlerFallback(cfg.Fallback),
				runner.WithTextHandlerVerbose(verbose),
			}
			if out == os.Stdout {
				opts = append(opts, runner.WithTextHandlerRenderer(tui.NewOutputStyler()))
			}
			handler = runner.NewTextHandler(out, opts...)
		}

		r := runner.NewRunner(reg,
			runner.WithInput(input),
			runner.WithHandler(handler),
			runner.WithLogger(logger),
			runner.WithSignals(true),
		)

		stats, err := r.Run(cmd.Context())
		logger.Debug("Run finished",
			"lines", stats.Lines,
			"translated", stats.Translated,
			"declined", stats.Declined,
			"rejected", stats.Rejected,
		)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("input", "i", "", "Read entries from this file instead of stdin")
	runCmd.Flags().Bool("json", false, "Emit JSON Lines results")
	runCmd.Flags().BoolP("verbose", "v", false, "Print each entry next to its translation")
}
