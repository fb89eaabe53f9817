package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the connection to a running instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveApp()
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Connecting to " + app.Name + "...")

		client, err := connect(app)
		if err != nil {
			spinner.Fail("Connection failed")
			pterm.Println()
			pterm.Println("Please ensure:")
			pterm.Println("  1. " + app.Name + " is running")
			pterm.Println("  2. A model is open")
			return err
		}
		defer client.Release()

		spinner.Success("Connected to " + app.Name)

		name, err := client.Model().Filename()
		if err != nil {
			return err
		}
		if name == "" {
			pterm.Info.Println("Connected, but the model has not been saved yet")
			return nil
		}
		pterm.Info.Println("Current model: " + name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
