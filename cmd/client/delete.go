package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, http.MethodDelete, notePath(args[0]), nil)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
