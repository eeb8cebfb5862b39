package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aretw0/stenomods/internal/cli"
	"github.com/aretw0/stenomods/internal/presentation/tui"
	httpAdapter "github.com/aretw0/stenomods/pkg/adapters/http"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP lookup server",
	Long:  `Exposes the dictionary chain as a JSON API over HTTP, with Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		withMetrics := cfg.HTTP.Metrics
		if cmd.Flags().Changed("metrics") {
			withMetrics, _ = cmd.Flags().GetBool("metrics")
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		var (
			hooks    domain.LookupHooks
			handlers []httpAdapter.Option
		)
		handlers = append(handlers, httpAdapter.WithLogger(logger))

		if withMetrics {
			promReg := prometheus.NewRegistry()
			promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics, err := observability.NewMetrics(promReg)
			if err != nil {
				return err
			}
			hooks = metrics.Hooks()
			handlers = append(handlers, httpAdapter.WithMetrics(promReg))
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		reg, err := buildRegistry(ctx, hooks, true)
		if err != nil {
			return err
		}

		if !quiet && tui.IsTerminal(os.Stderr) {
			tui.PrintBanner(os.Stderr)
		}

		addr := fmt.Sprintf(":%d", port)
		logger.Info("Serving dictionaries", "dictionaries", reg.Names(), "metrics", withMetrics)
		if err := httpAdapter.ListenAndServe(ctx, addr, httpAdapter.NewHandler(reg, handlers...), logger); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Info("Server stopped gracefully", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics at /metrics")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
