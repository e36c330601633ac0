package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
)

// Fetcher reads the raw rows of the links sheet.
type Fetcher interface {
	FetchRows(ctx context.Context) ([]models.Row, error)
	Source() string
}

// New builds the fetcher selected by cfg.SheetsSource. Missing credentials
// are not checked here: the API fetcher reports them on every fetch, before
// any network call, so a misconfigured server still answers requests.
func New(cfg *config.Config) (Fetcher, error) {
	switch cfg.SheetsSource {
	case config.SourceAPI:
		return NewAPIFetcher(cfg), nil
	case config.SourceCSV:
		return NewCSVFetcher(cfg.GoogleSheetsID, cfg.SheetGID, cfg.FetchTimeout), nil
	case config.SourceXLSX:
		return NewXLSXFetcher(cfg.XLSXPath, cfg.SheetName), nil
	default:
		return nil, fmt.Errorf("%w: unknown SHEETS_SOURCE %q", config.ErrConfiguration, cfg.SheetsSource)
	}
}

// decodeValue maps an untyped value from the Sheets API onto a cell.
func decodeValue(v interface{}) models.Cell {
	switch val := v.(type) {
	case nil:
		return models.EmptyCell()
	case string:
		if val == "" {
			return models.EmptyCell()
		}
		return models.StringCell(val)
	case float64:
		return models.NumberCell(val)
	case int:
		return models.NumberCell(float64(val))
	case int64:
		return models.NumberCell(float64(val))
	case bool:
		return models.StringCell(strconv.FormatBool(val))
	default:
		return models.StringCell(fmt.Sprint(val))
	}
}

// plainNumber matches numbers that survive a float round trip unchanged.
var plainNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]{0,14})(\.[0-9]{0,5}[1-9])?$`)

// decodeText maps an exported text value onto a cell. Plain numeric text
// becomes a number cell so that every source yields the same variants.
func decodeText(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if plainNumber.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return models.NumberCell(n)
		}
	}
	return models.StringCell(s)
}

func decodeTextRows(records [][]string) []models.Row {
	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		row := make(models.Row, len(record))
		for i, value := range record {
			row[i] = decodeText(value)
		}
		rows = append(rows, row)
	}
	return rows
}
