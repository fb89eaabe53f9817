package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/viktor-platform/etabs-sap-wrapper/tables"
)

var (
	getGroup     string
	getCases     []string
	getCombos    []string
	getCSVPath   string
	getDelimiter string
	getMaxRows   int
)

var getCmd = &cobra.Command{
	Use:   "get <table-key>",
	Short: "Retrieve a result table by its vendor key",
	Long: `Retrieve a result table by its vendor key, for example:

  csitables get "Element Forces - Frames" --cases DEAD,LIVE
  csitables get "Base Reactions" --combos COMB1 --csv reactions.csv
  csitables get "Joint Displacements" --group Floor1 --csv -

Omitting --cases and --combos keeps whatever is currently selected for
output in the application.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveApp()
		if err != nil {
			return err
		}
		sep, err := delimiterRune(getDelimiter)
		if err != nil {
			return err
		}

		client, err := connect(app)
		if err != nil {
			return err
		}
		defer client.Release()

		var opts []tables.Option
		if getGroup != "" {
			opts = append(opts, tables.WithGroup(getGroup))
		}
		if len(getCases) > 0 {
			opts = append(opts, tables.WithLoadCases(getCases...))
		}
		if len(getCombos) > 0 {
			opts = append(opts, tables.WithLoadCombinations(getCombos...))
		}

		table, err := client.Tables().Get(args[0], opts...)
		if err != nil {
			return err
		}

		if table.IsEmpty() {
			pterm.Warning.Println("Table has no records for the current selection")
			return nil
		}

		if getCSVPath != "" {
			return writeDelimited(table, getCSVPath, sep)
		}
		return render(table)
	},
}

func init() {
	getCmd.Flags().StringVar(&getGroup, "group", "", "filter results to a vendor group")
	getCmd.Flags().StringSliceVar(&getCases, "cases", nil, "load cases to select for output")
	getCmd.Flags().StringSliceVar(&getCombos, "combos", nil, "load combinations to select for output")
	getCmd.Flags().StringVar(&getCSVPath, "csv", "", "write the table as delimited text to this file ('-' for stdout)")
	getCmd.Flags().StringVar(&getDelimiter, "delimiter", ",", "field delimiter for --csv output")
	getCmd.Flags().IntVar(&getMaxRows, "max-rows", 40, "maximum rows to render in the terminal (0 for all)")
	rootCmd.AddCommand(getCmd)
}

func delimiterRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

// writeDelimited exports the table to a file or stdout.
func writeDelimited(table tables.Table, path string, sep rune) error {
	if path == "-" {
		return table.WriteDelimited(os.Stdout, sep)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := table.WriteDelimited(f, sep); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	pterm.Success.Printfln("Wrote %d rows to %s", table.NumRows(), path)
	return nil
}

// render prints the table to the terminal, truncated to --max-rows.
func render(table tables.Table) error {
	rows := table.Rows
	truncated := false
	if getMaxRows > 0 && len(rows) > getMaxRows {
		rows = rows[:getMaxRows]
		truncated = true
	}

	data := pterm.TableData{table.Columns}
	for _, row := range rows {
		data = append(data, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if truncated {
		pterm.Info.Printfln("Showing %d of %d rows (use --max-rows 0 for all, or --csv for a full export)",
			getMaxRows, table.NumRows())
	}
	return nil
}
