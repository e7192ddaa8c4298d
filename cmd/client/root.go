package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultAddress = "http://localhost:8001"

var (
	address string
	timeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Command line client for the notes REST API",
	Long: `notesctl talks to a running notes API over HTTP and prints its JSON responses.
A non-2xx response makes the command exit with status 1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addr := os.Getenv("NOTES_API_ADDR")
	if addr == "" {
		addr = defaultAddress
	}

	rootCmd.PersistentFlags().StringVar(&address, "addr", addr, "Notes API base URL (env NOTES_API_ADDR)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
}
