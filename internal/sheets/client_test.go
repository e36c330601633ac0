package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		input interface{}
		kind  models.CellKind
		text  string
	}{
		{nil, models.CellEmpty, ""},
		{"", models.CellEmpty, ""},
		{"http://a.test", models.CellString, "http://a.test"},
		{float64(42), models.CellNumber, "42"},
		{1.25, models.CellNumber, "1.25"},
		{true, models.CellString, "true"},
		{int64(7), models.CellNumber, "7"},
	}

	for _, tt := range tests {
		cell := decodeValue(tt.input)
		assert.Equal(t, tt.kind, cell.Kind(), "decodeValue(%#v)", tt.input)
		assert.Equal(t, tt.text, cell.String(), "decodeValue(%#v)", tt.input)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		input string
		kind  models.CellKind
	}{
		{"", models.CellEmpty},
		{"42", models.CellNumber},
		{"-3.5", models.CellNumber},
		{"007", models.CellString},
		{"1e5", models.CellString},
		{"Infinity", models.CellString},
		{"2.50", models.CellString},
		{"https://a.test", models.CellString},
	}

	for _, tt := range tests {
		cell := decodeText(tt.input)
		assert.Equal(t, tt.kind, cell.Kind(), "decodeText(%q)", tt.input)
		assert.Equal(t, tt.input, cell.String(), "decodeText(%q) must round trip", tt.input)
	}
}

func TestNew(t *testing.T) {
	f, err := New(&config.Config{SheetsSource: config.SourceAPI})
	require.NoError(t, err)
	assert.Equal(t, config.SourceAPI, f.Source())

	f, err = New(&config.Config{SheetsSource: config.SourceCSV, GoogleSheetsID: "id"})
	require.NoError(t, err)
	assert.Equal(t, config.SourceCSV, f.Source())

	f, err = New(&config.Config{SheetsSource: config.SourceXLSX, XLSXPath: "links.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, config.SourceXLSX, f.Source())

	_, err = New(&config.Config{SheetsSource: "ftp"})
	assert.ErrorIs(t, err, config.ErrConfiguration)
}
