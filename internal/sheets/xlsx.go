package sheets

import (
	"context"
	"fmt"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
	"github.com/xuri/excelize/v2"
)

// XLSXFetcher reads rows from a local workbook, e.g. a downloaded copy of
// the links sheet. The workbook is reopened on every fetch.
type XLSXFetcher struct {
	path      string
	sheetName string
}

func NewXLSXFetcher(path, sheetName string) *XLSXFetcher {
	return &XLSXFetcher{
		path:      path,
		sheetName: sheetName,
	}
}

func (x *XLSXFetcher) Source() string {
	return config.SourceXLSX
}

func (x *XLSXFetcher) FetchRows(ctx context.Context) ([]models.Row, error) {
	if x.path == "" {
		return nil, fmt.Errorf("%w: XLSX_PATH not set", config.ErrConfiguration)
	}
	if err := ctx.Err(); err != nil {
		return nil, newFetchError(x.Source(), x.sheetName, err)
	}

	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, newFetchError(x.Source(), x.sheetName, fmt.Errorf("opening workbook: %w", err))
	}
	defer f.Close()

	sheetName := x.sheetName
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, newFetchError(x.Source(), sheetName, fmt.Errorf("reading rows: %w", err))
	}

	return decodeTextRows(records), nil
}
