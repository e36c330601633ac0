package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_SHEETS_ID", "SHEET_NAME", "SHEET_RANGE", "SHEETS_SOURCE", "PAGE_SIZE",
		"SESSION_TTL_MINUTES", "FETCH_TIMEOUT_SECONDS", "SERVER_PORT", "LOG_LEVEL",
		"GOOGLE_CREDENTIALS_JSON", "GOOGLE_CREDENTIALS_FILE", "GOOGLE_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Links", cfg.SheetName)
	assert.Equal(t, "Links!A:Z", cfg.A1Range())
	assert.Equal(t, SourceAPI, cfg.SheetsSource)
	assert.Equal(t, 30, cfg.PageSize)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HasCredentials())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHEETS_SOURCE", "CSV")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("SHEET_NAME", "Other")
	t.Setenv("SHEET_RANGE", "A1:C100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceCSV, cfg.SheetsSource)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "Other!A1:C100", cfg.A1Range())
}

func TestLoad_InvalidNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "zero")
	_, err := Load()
	assert.ErrorIs(t, err, ErrConfiguration)

	t.Setenv("PAGE_SIZE", "")
	t.Setenv("SESSION_TTL_MINUTES", "-1")
	_, err = Load()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"api without credentials", Config{SheetsSource: SourceAPI, GoogleSheetsID: "id"}, true},
		{"api without id", Config{SheetsSource: SourceAPI, GoogleAPIKey: "k"}, true},
		{"api with json", Config{SheetsSource: SourceAPI, GoogleSheetsID: "id", CredentialsJSON: "{}"}, false},
		{"api with file", Config{SheetsSource: SourceAPI, GoogleSheetsID: "id", CredentialsFile: "creds.json"}, false},
		{"csv", Config{SheetsSource: SourceCSV, GoogleSheetsID: "id"}, false},
		{"xlsx without path", Config{SheetsSource: SourceXLSX}, true},
		{"xlsx", Config{SheetsSource: SourceXLSX, XLSXPath: "links.xlsx"}, false},
		{"unknown source", Config{SheetsSource: "ftp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
