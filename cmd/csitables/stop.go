package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/viktor-platform/etabs-sap-wrapper/connection"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Ask a running instance to exit without saving",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveApp()
		if err != nil {
			return err
		}

		if err := connection.Close(app); err != nil {
			return err
		}
		pterm.Success.Println(app.Name + " closed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
