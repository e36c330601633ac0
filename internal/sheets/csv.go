package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
)

const defaultExportURL = "https://docs.google.com/spreadsheets/d"

// CSVFetcher reads a public sheet tab through the CSV export endpoint.
// No credentials are needed, but the sheet must be shared publicly.
type CSVFetcher struct {
	spreadsheetID string
	gid           string
	baseURL       string
	httpClient    *http.Client
}

func NewCSVFetcher(spreadsheetID, gid string, timeout time.Duration) *CSVFetcher {
	return &CSVFetcher{
		spreadsheetID: spreadsheetID,
		gid:           gid,
		baseURL:       defaultExportURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *CSVFetcher) Source() string {
	return config.SourceCSV
}

func (c *CSVFetcher) exportURL() string {
	return fmt.Sprintf("%s/%s/export?format=csv&gid=%s", c.baseURL, c.spreadsheetID, c.gid)
}

// FetchRows downloads the tab as CSV and decodes every record.
func (c *CSVFetcher) FetchRows(ctx context.Context) ([]models.Row, error) {
	if c.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: GOOGLE_SHEETS_ID not set", config.ErrConfiguration)
	}

	rng := "gid=" + c.gid
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exportURL(), nil)
	if err != nil {
		return nil, newFetchError(c.Source(), rng, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(c.Source(), rng, fmt.Errorf("failed to fetch sheet data: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newFetchError(c.Source(), rng, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	var records [][]string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newFetchError(c.Source(), rng, fmt.Errorf("failed to read CSV: %w", err))
		}
		records = append(records, record)
	}

	return decodeTextRows(records), nil
}
