package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphport/graphport/internal/server"
	"github.com/graphport/graphport/pkg/config"
)

// serveCommand creates the serve command running the HTTP render server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, configPath string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion and rendering server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			store := c.newCache(cmd.Context(), cfg.Cache, noCache)
			defer store.Close()

			srv := server.New(cfg, store, c.Logger)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/graphport/config.toml)")

	return cmd
}
