package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the candy-dash SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with the level menu.
All users share the highest score mark and the run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.candydash/host_key

Examples:
  candydash serve                           # Listen on :23234 with auto-generated key
  candydash serve --ssh :2222               # Listen on port 2222
  candydash serve --host-key ./my_host_key  # Use specific host key
  candydash serve --db ./candydash.db       # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagChangeDifficulty, "change-difficulty", false, "Offer a difficulty change between levels")
}

func runServe(cmd *cobra.Command, _ []string) {
	settings := loadSettings()

	allowChange := settings.Difficulty.AllowChange
	if cmd.Flags().Changed("change-difficulty") {
		allowChange = flagChangeDifficulty
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ScorePath = flagScoreFile
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Settings = settings
	cfg.AllowChange = allowChange
	cfg.Seed = flagSeed

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting candy-dash SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
