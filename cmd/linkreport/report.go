package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/export"
	"github.com/pmurley/link-tracker/internal/sheets"
	"github.com/pmurley/link-tracker/internal/tracker"
	"github.com/pmurley/link-tracker/pkg/logger"
)

var (
	reportPage int
	csvPath    string
	linksPath  string
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch the sheet and print one page plus the duplicate report",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
	cmd.Flags().IntVarP(&reportPage, "page", "p", 1, "Page to print")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write duplicate occurrences to this CSV file")
	cmd.Flags().StringVar(&linksPath, "links-csv", "", "Write every numbered link to this CSV file")
	return cmd
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	// Keep stdout clean for the report itself.
	return cfg, logger.NewWithWriter(os.Stderr, cfg.LogLevel), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	fetcher, err := sheets.New(cfg)
	if err != nil {
		return err
	}
	service := tracker.NewService(fetcher, cfg.PageSize, log)

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Fetching links from %s source...", fetcher.Source())
	s.Start()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
	defer cancel()
	report, err := service.Report(ctx)
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to fetch data from Google Sheets: %w", err)
	}

	out := cmd.OutOrStdout()
	printReport(out, report, report.ClampPage(reportPage))

	if csvPath != "" {
		if err := writeCSV(csvPath, report, export.WriteDuplicates); err != nil {
			return err
		}
		log.Info("Wrote duplicate CSV", "path", csvPath, "records", report.DuplicateCount())
	}
	if linksPath != "" {
		if err := writeCSV(linksPath, report, export.WriteLinks); err != nil {
			return err
		}
		log.Info("Wrote links CSV", "path", linksPath, "links", report.Total())
	}
	return nil
}

func writeCSV(path string, report analysis.Report, write func(io.Writer, analysis.Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, report); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// printReport renders the summary, the requested page and every duplicate record.
func printReport(w io.Writer, report analysis.Report, page int) {
	fmt.Fprintf(w, "Total Links: %d | Page %d/%d", report.Total(), page, report.DisplayPages())
	if n := report.DuplicateCount(); n > 0 {
		fmt.Fprintf(w, " | Duplicates: %d", n)
	}
	fmt.Fprintln(w)

	if report.Total() == 0 {
		fmt.Fprintln(w, "No links found.")
		return
	}

	fmt.Fprintln(w)
	start := report.PageStart(page)
	for i, l := range report.Page(page) {
		line := fmt.Sprintf("%4d. %s", start+i+1, l.Title)
		if l.IsDuplicate && l.DuplicateInfo != nil {
			line += fmt.Sprintf("  [duplicate of #%d, page %d position %d]",
				l.DuplicateInfo.OriginalID, l.DuplicateInfo.Page, l.DuplicateInfo.Position)
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "      %s\n", l.URL)
		if l.Description != nil {
			fmt.Fprintf(w, "      %s\n", *l.Description)
		}
	}

	if len(report.Duplicates) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Duplicate Links")
	fmt.Fprintln(w, strings.Repeat("-", 15))
	for _, rec := range report.Duplicates {
		o := rec.Original
		fmt.Fprintf(w, "ORIGINAL %s (Page %d, Position %d, Link #%d)\n", o.Title, o.Page, o.Position, o.ID)
		fmt.Fprintf(w, "  %s\n", o.URL)
		for _, d := range rec.Duplicates {
			fmt.Fprintf(w, "  - Page %d, Position %d (Link #%d)\n", d.Page, d.Position, d.ID)
		}
	}
}
