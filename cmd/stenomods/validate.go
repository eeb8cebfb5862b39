package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/validator"
	"github.com/aretw0/stenomods/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured dictionaries for unreachable entries",
	Long: `Loads every configured dictionary and reports entries that use keys
outside the steno layout or that an earlier dictionary in the chain (an engine
included) already translates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry(cmd.Context(), domain.LookupHooks{}, false)
		if err != nil {
			return err
		}

		issues, err := validator.ValidateRegistry(cmd.Context(), reg)
		if err != nil {
			return err
		}
		if err := validator.Error(issues); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d dictionaries are valid.\n", reg.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
