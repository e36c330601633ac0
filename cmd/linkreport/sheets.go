package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/sheets"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List the tabs of the configured spreadsheet",
		Args:  cobra.NoArgs,
		RunE:  runSheets,
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.SheetsSource != config.SourceAPI {
		return fmt.Errorf("%w: listing tabs requires SHEETS_SOURCE=api", config.ErrConfiguration)
	}

	fetcher := sheets.NewAPIFetcher(cfg)

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " Loading spreadsheet metadata..."
	s.Start()
	ss, err := fetcher.ListSheets(cmd.Context())
	s.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Spreadsheet Title: %s\n", ss.Title)
	fmt.Fprintf(out, "Spreadsheet ID: %s\n", ss.ID)
	fmt.Fprintf(out, "Public URL: https://docs.google.com/spreadsheets/d/%s\n\n", ss.ID)

	fmt.Fprintln(out, "Sheets in this spreadsheet:")
	fmt.Fprintln(out, "----------------------------")
	for i, sh := range ss.Sheets {
		fmt.Fprintf(out, "%d. Name: %s\n", i+1, sh.Title)
		fmt.Fprintf(out, "   GID: %d\n", sh.GID)
		fmt.Fprintf(out, "   Rows: %d, Columns: %d\n", sh.Rows, sh.Columns)
		if sh.Hidden {
			fmt.Fprintln(out, "   (Hidden)")
		}
		fmt.Fprintln(out)
	}
	return nil
}
