package main

import (
	"fmt"
	"os"

	"go-concentration/internal/config"
	"go-concentration/internal/theme"
	"go-concentration/internal/tui"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server. Every connection plays its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.config/go-concentration/host_key

Examples:
  concentration serve
  concentration serve --ssh :2222

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().Duration("idle-timeout", 0, "Disconnect idle players after this long (default 30m)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}
	catalog, err := theme.Load(cfg.ThemesFile)
	if err != nil {
		return err
	}

	opts := sessionOptions(cfg, logger)
	// Each connection gets its own random source.
	opts.Game.Rand = nil

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Catalog:     catalog,
		Sessions:    opts,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Serving on %s, press Ctrl+C to stop\n", server.Addr())
	return server.ListenAndServe()
}
