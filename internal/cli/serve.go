package cli

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/api"
	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/logging"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API on a local address",
		Long: `Starts a local HTTP server exposing the inventory, targets, benchmark,
credits, strategies and report operations as JSON under /api/v1. The server
shares the saved session with the CLI. It stops on SIGINT or SIGTERM.`,
		Example: `  # Listen on the configured address (server.addr)
  carbonfocus serve

  # Listen on another port
  carbonfocus serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = config.GetGlobalConfig().Server.Addr
			}

			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.New(eng, api.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "api")))
			return srv.ListenAndServe(ctx, addr, func(a net.Addr) {
				cmd.Printf("Serving carbonfocus API on http://%s/api/v1\n", a)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config server.addr)")

	return cmd
}
