// Package main implements csitables, a command-line tool for pulling
// analysis result tables out of a running ETABS or SAP2000 instance. It uses
// the Cobra CLI framework for command parsing and pterm for terminal output.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	csi "github.com/viktor-platform/etabs-sap-wrapper"
	"github.com/viktor-platform/etabs-sap-wrapper/connection"
)

var (
	appName string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csitables",
	Short: "Retrieve result tables from ETABS or SAP2000",
	Long: `csitables talks to a running CSI application (ETABS or SAP2000) over its
automation interface and retrieves analysis result tables.

The application must be running with an analyzed model open. Tables can be
rendered to the terminal or exported as delimited text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appName, "app", "etabs", "target application: etabs or sap2000")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// resolveApp maps the --app flag onto a vendor application.
func resolveApp() (csi.Application, error) {
	switch strings.ToLower(appName) {
	case "etabs":
		return csi.ETABS, nil
	case "sap2000", "sap":
		return csi.SAP2000, nil
	default:
		return csi.Application{}, fmt.Errorf("unknown application %q (expected etabs or sap2000)", appName)
	}
}

// newLogger builds the logrus logger shared by all commands.
func newLogger() *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// connect attaches to a running instance and wraps it in a client with the
// CLI's logger.
func connect(app csi.Application) (*csi.Client, error) {
	h, err := connection.Connect(app)
	if err != nil {
		return nil, err
	}
	return wrap(h, app)
}

// wrap builds the facade client around an existing handle.
func wrap(h *connection.Handle, app csi.Application) (*csi.Client, error) {
	return csi.New(csi.Config{Dispatcher: h, Application: app, Logger: newLogger()})
}
