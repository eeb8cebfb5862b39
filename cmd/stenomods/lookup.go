package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/runner"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup STROKE...",
	Short: "Translate strokes given as arguments",
	Long: `Looks up each argument as one entry and prints its translation, or the
fallback marker when no dictionary accepts it. Strokes of a multi-stroke entry
are joined with "/".`,
	Example: `  stenomods lookup 2R*G WR50-R
  stenomods lookup --dictionary ender AOEURLTZ`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		only, _ := cmd.Flags().GetString("dictionary")
		verbose, _ := cmd.Flags().GetBool("verbose")
		strict, _ := cmd.Flags().GetBool("strict")

		reg, err := buildRegistry(cmd.Context(), domain.LookupHooks{}, false)
		if err != nil {
			return err
		}

		var dict ports.Dictionary = reg
		if only != "" {
			if dict, err = reg.Get(only); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		missed := 0
		for _, arg := range args {
			entry, err := runner.SanitizeStroke(arg)
			if err != nil {
				return err
			}

			result, err := dict.Lookup(cmd.Context(), runner.SplitStrokes(entry))
			if err != nil {
				if !domain.IsNotApplicable(err) {
					return err
				}
				logger.Debug("Entry not applicable", "entry", entry, "err", err)
				result = cfg.Fallback
				missed++
			}

			if verbose {
				fmt.Fprintf(out, "%s\t%s\n", entry, result)
			} else {
				fmt.Fprintln(out, result)
			}
		}

		if strict && missed > 0 {
			return fmt.Errorf("%d of %d entries not applicable", missed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("dictionary", "", "Only consult this dictionary")
	lookupCmd.Flags().BoolP("verbose", "v", false, "Print each entry next to its translation")
	lookupCmd.Flags().Bool("strict", false, "Fail when any entry is not applicable")
}
