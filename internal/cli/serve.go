package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/seatsort/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the seating pipeline over HTTP",
		Long: `Serve the seating pipeline over HTTP.

Endpoints:
  GET  /healthz      liveness and build information
  POST /v1/seatmap   classify, sort and seat a dataset
  POST /v1/bench     time every classifier/sorter pair

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			return server.New(loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return cmd
}
