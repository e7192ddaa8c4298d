package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var (
	updateTitle string
	updateText  string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a note",
	Long:  `Update sends only the flags that were given; omitted fields keep their current values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{}
		if cmd.Flags().Changed("title") {
			payload["title"] = updateTitle
		}
		if cmd.Flags().Changed("text") {
			payload["text"] = updateText
		}
		return run(cmd, http.MethodPut, notePath(args[0]), payload)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateText, "text", "", "New text")

	rootCmd.AddCommand(updateCmd)
}
