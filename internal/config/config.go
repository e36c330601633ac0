package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrConfiguration marks a missing or invalid setting. It is reported
// before any call to the sheet source is made.
var ErrConfiguration = errors.New("configuration error")

const (
	SourceAPI  = "api"
	SourceCSV  = "csv"
	SourceXLSX = "xlsx"
)

type Config struct {
	GoogleSheetsID  string
	SheetName       string
	SheetRange      string
	SheetGID        string
	SheetsSource    string
	XLSXPath        string
	CredentialsJSON string
	CredentialsFile string
	GoogleAPIKey    string
	PageSize        int
	ServerPort      string
	SessionTTL      time.Duration
	FetchTimeout    time.Duration
	DiscordToken    string
	CommandPrefix   string
	LogLevel        string
}

func Load() (*Config, error) {
	sessionTTL := 30 * time.Minute
	if d := os.Getenv("SESSION_TTL_MINUTES"); d != "" {
		minutes, err := strconv.Atoi(d)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("%w: SESSION_TTL_MINUTES must be a positive integer, got %q", ErrConfiguration, d)
		}
		sessionTTL = time.Duration(minutes) * time.Minute
	}

	fetchTimeout := 30 * time.Second
	if d := os.Getenv("FETCH_TIMEOUT_SECONDS"); d != "" {
		seconds, err := strconv.Atoi(d)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("%w: FETCH_TIMEOUT_SECONDS must be a positive integer, got %q", ErrConfiguration, d)
		}
		fetchTimeout = time.Duration(seconds) * time.Second
	}

	pageSize := 30
	if p := os.Getenv("PAGE_SIZE"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: PAGE_SIZE must be a positive integer, got %q", ErrConfiguration, p)
		}
		pageSize = n
	}

	return &Config{
		GoogleSheetsID:  os.Getenv("GOOGLE_SHEETS_ID"),
		SheetName:       getEnvOrDefault("SHEET_NAME", "Links"),
		SheetRange:      getEnvOrDefault("SHEET_RANGE", "A:Z"),
		SheetGID:        getEnvOrDefault("SHEET_GID", "0"),
		SheetsSource:    strings.ToLower(getEnvOrDefault("SHEETS_SOURCE", SourceAPI)),
		XLSXPath:        os.Getenv("XLSX_PATH"),
		CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		PageSize:        pageSize,
		ServerPort:      getEnvOrDefault("SERVER_PORT", "8080"),
		SessionTTL:      sessionTTL,
		FetchTimeout:    fetchTimeout,
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		CommandPrefix:   getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// A1Range is the range read from the sheet, e.g. "Links!A:Z".
func (c *Config) A1Range() string {
	if c.SheetName == "" {
		return c.SheetRange
	}
	return c.SheetName + "!" + c.SheetRange
}

// HasCredentials reports whether any Sheets API credential source is set.
func (c *Config) HasCredentials() bool {
	return c.CredentialsJSON != "" || c.CredentialsFile != "" || c.GoogleAPIKey != ""
}

// Validate checks that the selected sheet source has everything it needs.
func (c *Config) Validate() error {
	switch c.SheetsSource {
	case SourceAPI:
		if c.GoogleSheetsID == "" {
			return fmt.Errorf("%w: GOOGLE_SHEETS_ID not set", ErrConfiguration)
		}
		if !c.HasCredentials() {
			return fmt.Errorf("%w: set GOOGLE_CREDENTIALS_JSON, GOOGLE_CREDENTIALS_FILE or GOOGLE_API_KEY", ErrConfiguration)
		}
	case SourceCSV:
		if c.GoogleSheetsID == "" {
			return fmt.Errorf("%w: GOOGLE_SHEETS_ID not set", ErrConfiguration)
		}
	case SourceXLSX:
		if c.XLSXPath == "" {
			return fmt.Errorf("%w: XLSX_PATH not set", ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown SHEETS_SOURCE %q", ErrConfiguration, c.SheetsSource)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
