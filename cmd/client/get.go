package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, http.MethodGet, notePath(args[0]), nil)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
