package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Endpoints:
  POST /v1/measure   measure a scene
  POST /v1/arrange   arrange a scene
  GET  /healthz      liveness
  GET  /version      build information

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := server.New(server.Config{
				Addr:   addr,
				Runner: c.newRunner(),
				Logger: logger,
			})
			printInfo("Serving on %s", StyleValue.Render(addr))
			printDetail("POST /v1/measure  POST /v1/arrange  GET /healthz  GET /version")
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}
