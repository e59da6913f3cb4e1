package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/party-pascal/internal/platform/tui"
	"github.com/vovakirdan/party-pascal/internal/scenes"
	"github.com/vovakirdan/party-pascal/internal/session"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Party Pascal SSH server",
	Long: `Start an SSH server so players can connect and play.

Each connection gets its own menu, score and preferences, starting from the
server's settings file. Runs go into the server's shared history. Audio is
off for remote players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.party/ssh_host_ed25519

Examples:
  party serve                     # Listen on the configured address (:2323)
  party serve --ssh :2222         # Listen on port 2222
  party serve --max-sessions 8    # At most eight players at once

Players connect with:
  ssh -t localhost -p 2323`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle players after this long (default from config)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Concurrent player limit (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := openApp(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Config.SSH
	if flagSSHAddr != "" {
		cfg.Addr = flagSSHAddr
	}
	if flagHostKey != "" {
		a.Config.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flagMaxSessions > 0 {
		cfg.MaxSessions = flagMaxSessions
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Addr,
		HostKeyPath: a.Config.HostKeyPath(),
		IdleTimeout: cfg.IdleTimeout,
		MaxSessions: cfg.MaxSessions,
		TickRate:    a.Config.TickRate,
		Seed:        a.Seed,
		Defaults:    a.Settings.Values(),
		Content:     a.Content,
		Story:       a.Story,
		Runs:        a.Recorder(),
		Logger:      a.Log,
		NewRoot:     func() session.Session { return scenes.NewMenu() },
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting Party Pascal SSH server on %s\n", cfg.Addr)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
