package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/stenomods/pkg/adapters/redis"
)

var pushCmd = &cobra.Command{
	Use:   "push FILE",
	Short: "Copy a dictionary file into Redis",
	Long: `Writes the entries of a JSON or YAML dictionary file into a Redis hash, so
that every stenomods process configured with --redis-dictionary serves them.
The dictionary is named after the file unless --name is given.`,
	Example: `  stenomods push commands.yaml --redis-addr localhost:6379
  stenomods push commands.yaml --name shared --replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis address required (--redis-addr or redis.addr)")
		}
		name, _ := cmd.Flags().GetString("name")
		replace, _ := cmd.Flags().GetBool("replace")

		src, err := memory.LoadFile(args[0])
		if err != nil {
			return err
		}
		if name == "" {
			name = src.Name()
		}

		var opts []redisAdapter.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
		}
		dict := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, name, opts...)
		defer dict.Close()

		if err := dict.Import(cmd.Context(), src, replace); err != nil {
			return err
		}
		logger.Info("Dictionary pushed", "name", name, "key", dict.Key(), "entries", src.Len())
		fmt.Fprintf(cmd.OutOrStdout(), "%d entries written to %s\n", src.Len(), dict.Key())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().String("name", "", "Dictionary name (default: file name)")
	pushCmd.Flags().Bool("replace", false, "Drop existing entries first")
}
