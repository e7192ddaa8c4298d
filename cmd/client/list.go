package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, http.MethodGet, "/api/v1/notes", nil)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
