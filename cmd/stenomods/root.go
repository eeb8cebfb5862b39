package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/cli"
	"github.com/aretw0/stenomods/internal/config"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/registry"
)

var (
	// cfg and logger are resolved once per invocation by the root pre-run.
	cfg    config.Config
	logger *slog.Logger
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:   "stenomods",
	Short: "stenomods translates steno strokes into modifier-key commands",
	Long: `stenomods looks up chorded steno strokes such as 2R*G or AOEURLTZ and prints
the modifier-key command they stand for ({#control(tab)}, {#shift(i)}).

Two engines are built in: "number" (number key plus R/B/G/S modifiers) and
"ender" (an LTZ ender chord plus R/F/B/P modifiers). Literal JSON or YAML
dictionaries can be chained after them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("engine") {
			loaded.Engines, _ = flags.GetStringSlice("engine")
		}
		if flags.Changed("spelling") {
			loaded.SpellingMethod, _ = flags.GetString("spelling")
		}
		if flags.Changed("dictionary-file") {
			files, _ := flags.GetStringSlice("dictionary-file")
			loaded.Dictionaries = append(loaded.Dictionaries, files...)
		}
		if flags.Changed("vault") {
			vaults, _ := flags.GetStringSlice("vault")
			loaded.Vaults = append(loaded.Vaults, vaults...)
		}
		if flags.Changed("redis-addr") {
			loaded.Redis.Addr, _ = flags.GetString("redis-addr")
		}
		if flags.Changed("redis-dictionary") {
			names, _ := flags.GetStringSlice("redis-dictionary")
			loaded.Redis.Dictionaries = append(loaded.Redis.Dictionaries, names...)
		}
		if flags.Changed("log-level") {
			loaded.LogLevel, _ = flags.GetString("log-level")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		debug, _ = flags.GetBool("debug")
		l, err := cli.CreateLogger(loaded.LogLevel, debug)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringSlice("engine", nil, "Engines to enable, in lookup order (number, ender)")
	rootCmd.PersistentFlags().String("spelling", "", "Fingerspelling alphabet (plover, magnum, combined)")
	rootCmd.PersistentFlags().StringSlice("dictionary-file", nil, "Literal dictionary files consulted after the engines")
	rootCmd.PersistentFlags().StringSlice("vault", nil, "Loam document directories served as dictionaries")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for --redis-dictionary")
	rootCmd.PersistentFlags().StringSlice("redis-dictionary", nil, "Dictionaries stored as Redis hashes")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of every lookup")
}

// buildRegistry creates the dictionary chain for the current invocation.
// Long-running commands pass watch to follow vault edits until ctx is done.
func buildRegistry(ctx context.Context, hooks domain.LookupHooks, watch bool) (*registry.Registry, error) {
	return cli.BuildRegistry(ctx, cli.Options{
		Config: cfg,
		Logger: logger,
		Debug:  debug,
		Hooks:  hooks,
		Watch:  watch,
	})
}
