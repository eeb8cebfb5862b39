package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/cli"
	"github.com/aretw0/stenomods/pkg/adapters/mcp"
	"github.com/aretw0/stenomods/pkg/domain"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the dictionary chain to MCP clients through the lookup_stroke and
explain_stroke tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport := cfg.MCP.Transport
		if cmd.Flags().Changed("transport") {
			transport, _ = cmd.Flags().GetString("transport")
		}
		port := cfg.MCP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		if transport != "stdio" && transport != "sse" {
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		reg, err := buildRegistry(ctx, domain.LookupHooks{}, true)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(reg, logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			return srv.ServeSSE(ctx, port)
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport type (stdio, sse)")
	mcpCmd.Flags().IntP("port", "p", 0, "Port for SSE transport (default from config, 8081)")
}
