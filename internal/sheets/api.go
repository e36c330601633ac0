package sheets

import (
	"context"
	"fmt"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const unformattedValue = "UNFORMATTED_VALUE"

// APIFetcher reads the sheet through the Google Sheets v4 API.
type APIFetcher struct {
	spreadsheetID   string
	readRange       string
	credentialsJSON string
	credentialsFile string
	apiKey          string
	extraOpts       []option.ClientOption
}

func NewAPIFetcher(cfg *config.Config, opts ...option.ClientOption) *APIFetcher {
	return &APIFetcher{
		spreadsheetID:   cfg.GoogleSheetsID,
		readRange:       cfg.A1Range(),
		credentialsJSON: cfg.CredentialsJSON,
		credentialsFile: cfg.CredentialsFile,
		apiKey:          cfg.GoogleAPIKey,
		extraOpts:       opts,
	}
}

func (f *APIFetcher) Source() string {
	return config.SourceAPI
}

// credentialOption picks the credential source: JSON blob, then file, then API key.
func (f *APIFetcher) credentialOption() (option.ClientOption, error) {
	switch {
	case f.credentialsJSON != "":
		return option.WithCredentialsJSON([]byte(f.credentialsJSON)), nil
	case f.credentialsFile != "":
		return option.WithCredentialsFile(f.credentialsFile), nil
	case f.apiKey != "":
		return option.WithAPIKey(f.apiKey), nil
	default:
		return nil, fmt.Errorf("%w: no Google credentials configured (GOOGLE_CREDENTIALS_JSON, GOOGLE_CREDENTIALS_FILE or GOOGLE_API_KEY)", config.ErrConfiguration)
	}
}

// service builds a fresh read-only client. Nothing is reused between fetches.
func (f *APIFetcher) service(ctx context.Context) (*sheets.Service, error) {
	if f.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: GOOGLE_SHEETS_ID not set", config.ErrConfiguration)
	}

	cred, err := f.credentialOption()
	if err != nil {
		return nil, err
	}

	opts := append([]option.ClientOption{cred, option.WithScopes(sheets.SpreadsheetsReadonlyScope)}, f.extraOpts...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, newFetchError(f.Source(), f.readRange, fmt.Errorf("unable to create sheets service: %w", err))
	}
	return srv, nil
}

// FetchRows reads every row of the configured range as unformatted values.
func (f *APIFetcher) FetchRows(ctx context.Context) ([]models.Row, error) {
	srv, err := f.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.Get(f.spreadsheetID, f.readRange).
		ValueRenderOption(unformattedValue).
		Context(ctx).
		Do()
	if err != nil {
		return nil, newFetchError(f.Source(), f.readRange, err)
	}

	rows := make([]models.Row, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make(models.Row, len(values))
		for i, v := range values {
			row[i] = decodeValue(v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// SheetInfo describes one tab of the spreadsheet.
type SheetInfo struct {
	Title   string
	GID     int64
	Rows    int64
	Columns int64
	Hidden  bool
}

// Spreadsheet is the metadata returned by ListSheets.
type Spreadsheet struct {
	Title  string
	ID     string
	Sheets []SheetInfo
}

// ListSheets returns the spreadsheet title and its tabs.
func (f *APIFetcher) ListSheets(ctx context.Context) (*Spreadsheet, error) {
	srv, err := f.service(ctx)
	if err != nil {
		return nil, err
	}

	spreadsheet, err := srv.Spreadsheets.Get(f.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, newFetchError(f.Source(), "metadata", err)
	}

	result := &Spreadsheet{ID: f.spreadsheetID}
	if spreadsheet.Properties != nil {
		result.Title = spreadsheet.Properties.Title
	}
	for _, sheet := range spreadsheet.Sheets {
		props := sheet.Properties
		if props == nil {
			continue
		}
		info := SheetInfo{
			Title:  props.Title,
			GID:    props.SheetId,
			Hidden: props.Hidden,
		}
		if props.GridProperties != nil {
			info.Rows = props.GridProperties.RowCount
			info.Columns = props.GridProperties.ColumnCount
		}
		result.Sheets = append(result.Sheets, info)
	}

	return result, nil
}
