package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphbridge/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion server",
		Long: `Run the HTTP conversion server.

Routes:
  GET  /healthz
  GET  /formats
  POST /convert?from=gexf&to=graphml
  POST /inspect?from=json

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.Config{
				Addr:         c.Config.Server.Addr,
				MaxBodyBytes: c.Config.Server.MaxBodyBytes,
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("max-body") {
				cfg.MaxBodyBytes = maxBody
			}
			srv := server.New(cfg, c.newRunner(), c.Logger)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
