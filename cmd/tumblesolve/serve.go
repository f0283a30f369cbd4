package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLevels string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve puzzle walkthroughs over SSH",
	Long: `Start an SSH server. Each connection gets a puzzle picker; the chosen
puzzle is solved server-side and the solution is presented as an
interactive walkthrough.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tumblesolve/host_key

Examples:
  tumblesolve serve                       # Listen on :23235
  tumblesolve serve --ssh :2222
  tumblesolve serve --levels ./puzzles

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLevels, "levels", "", "Levels directory (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := appConfig()
	levelsDir := cfg.LevelsDir
	if flagServeLevels != "" {
		levelsDir = flagServeLevels
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		LevelsDir:   levelsDir,
		DBPath:      cfg.DBPath,
		Display:     cfg.DisplayRunes(),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		os.Exit(1)
	}
}
