package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viktor-platform/etabs-sap-wrapper/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the csitables version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("csitables %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
