package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/viktor-platform/etabs-sap-wrapper/connection"
)

var startOpenPath string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch a new application instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveApp()
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Starting " + app.Name + "...")

		h, err := connection.Start(app)
		if err != nil {
			spinner.Fail("Could not start " + app.Name)
			return err
		}
		defer h.Release()

		spinner.Success(app.Name + " started")

		if startOpenPath != "" {
			client, err := wrap(h, app)
			if err != nil {
				return err
			}
			if err := client.Model().OpenFile(startOpenPath, 0); err != nil {
				return err
			}
			pterm.Success.Println("Opened " + startOpenPath)
		}
		return nil
	},
}

func init() {
	startCmd.Flags().StringVar(&startOpenPath, "open", "", "model file to open after starting")
	rootCmd.AddCommand(startCmd)
}
