package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxpush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the boxpush SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a level picker. Remote
sessions are silent. Completions are stored per-server, so all users
share the same records.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.boxpush/host_key

Examples:
  boxpush serve                           # Listen on :23235 with auto-generated key
  boxpush serve --ssh :2222               # Listen on port 2222
  boxpush serve --host-key ./my_host_key  # Use specific host key
  boxpush serve --db ./records.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	a := setup(false)
	defer a.close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Catalog = a.catalog
	cfg.Glyphs = a.glyphs
	cfg.Theme = a.theme
	cfg.Logger = a.logger

	if a.cfg.SSH.Address != "" {
		cfg.Address = a.cfg.SSH.Address
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	cfg.HostKeyPath = a.cfg.SSH.HostKeyPath
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	idle := a.cfg.SSH.IdleTimeoutMin
	if flagIdleTimeout > 0 {
		idle = flagIdleTimeout
	}
	if idle > 0 {
		cfg.IdleTimeout = time.Duration(idle) * time.Minute
	}

	// Shared records for all connections
	store := a.openStore()
	if store != nil {
		defer store.Close()
		cfg.Store = store
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting boxpush SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
