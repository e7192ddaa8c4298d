package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var (
	createTitle string
	createText  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{"title": createTitle, "text": createText}
		return run(cmd, http.MethodPost, "/api/v1/notes/add", payload)
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title (at least 3 characters)")
	createCmd.Flags().StringVar(&createText, "text", "", "Note text")
	createCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(createCmd)
}
