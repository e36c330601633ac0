// Package tracker runs the fetch, normalize and analyze pipeline shared by
// every surface of the application.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/metrics"
	"github.com/pmurley/link-tracker/internal/models"
	"github.com/pmurley/link-tracker/internal/sheets"
	"github.com/pmurley/link-tracker/pkg/logger"
)

type Service struct {
	fetcher  sheets.Fetcher
	pageSize int
	logger   *logger.Logger
}

func NewService(fetcher sheets.Fetcher, pageSize int, log *logger.Logger) *Service {
	if pageSize <= 0 {
		pageSize = analysis.DefaultPageSize
	}
	return &Service{
		fetcher:  fetcher,
		pageSize: pageSize,
		logger:   log,
	}
}

func (s *Service) PageSize() int {
	return s.pageSize
}

// Links fetches the sheet and returns the ordered link sequence. Every call
// reads the sheet again; nothing is cached.
func (s *Service) Links(ctx context.Context) ([]models.Link, error) {
	source := s.fetcher.Source()
	start := time.Now()

	rows, err := s.fetcher.FetchRows(ctx)
	metrics.SheetFetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if err != nil {
		status := "fetch_error"
		if errors.Is(err, config.ErrConfiguration) {
			status = "config_error"
		}
		metrics.SheetFetchesTotal.WithLabelValues(source, status).Inc()
		return nil, err
	}
	metrics.SheetFetchesTotal.WithLabelValues(source, "success").Inc()
	s.logger.Info("Fetched rows from sheet", "source", source, "rows", len(rows))

	links := models.NormalizeRows(rows)
	metrics.LinksFetched.Set(float64(len(links)))
	s.logger.Info("Processed links", "links", len(links))

	return links, nil
}

// Report fetches the sheet and runs duplicate detection over the result.
func (s *Service) Report(ctx context.Context) (analysis.Report, error) {
	links, err := s.Links(ctx)
	if err != nil {
		return analysis.Report{}, err
	}

	report := analysis.Analyze(links, s.pageSize)
	metrics.DuplicateLinks.Set(float64(report.DuplicateCount()))
	if len(report.Duplicates) > 0 {
		s.logger.Debug("Duplicate links found", "urls", len(report.Duplicates), "links", report.DuplicateCount())
	}

	return report, nil
}
