package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session with a layout picker menu.
Flags override the server section of the config file.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.sweeper/host_key

Examples:
  sweeper serve                           # Listen on :23234 with auto-generated key
  sweeper serve --ssh :2222               # Listen on port 2222
  sweeper serve --host-key ./my_host_key  # Use specific host key
  sweeper serve --max-sessions 10

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 30m)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent players (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) {
	server := appConfig.Server
	if cmd.Flags().Changed("ssh") {
		server.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		server.IdleTimeout = flagIdleTimeout
	}
	if cmd.Flags().Changed("max-sessions") {
		server.MaxSessions = flagMaxSessions
	}

	effective := appConfig
	effective.Server = server
	if err := effective.Validate(); err != nil {
		fail("%v", err)
	}
	hostKey, err := effective.HostKeyPath()
	if err != nil {
		fail("%v", err)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     server.Address,
		HostKeyPath: hostKey,
		IdleTimeout: server.IdleTimeout,
		MaxSessions: server.MaxSessions,
		Seed:        appConfig.Seed,
	}

	srv, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting sweeper SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// port extracts the port from a host:port address.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
