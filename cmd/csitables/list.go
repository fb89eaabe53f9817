package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the table keys the open model exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveApp()
		if err != nil {
			return err
		}

		client, err := connect(app)
		if err != nil {
			return err
		}
		defer client.Release()

		count, keys, err := client.Tables().Available()
		if err != nil {
			return err
		}

		pterm.Info.Printfln("%d tables available in the open model", count)
		for _, key := range keys {
			pterm.Println("  " + key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
