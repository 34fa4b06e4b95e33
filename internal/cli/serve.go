package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/crosslayout/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := c.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

POST a JSON layout document to /v1/layout to get the laid-out document back,
or add ?format=svg (png, dot, json, txt) for a rendering. GET /healthz
reports liveness. The server stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Listening on %s", StyleLink.Render("http://"+cfg.Addr))
			return server.New(cfg, loggerFromContext(cmd.Context(), c.Logger)).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().Int64Var(&cfg.MaxBodyBytes, "max-body", cfg.MaxBodyBytes, "maximum request body size in bytes")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "request read timeout")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "response write timeout")

	return cmd
}
