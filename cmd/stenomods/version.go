package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stenomods",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stenomods version %s\n", strings.TrimSpace(stenomods.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
