package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/models"
)

func TestCSVFetcher_FetchRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheet-id/export", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		assert.Equal(t, "7", r.URL.Query().Get("gid"))
		w.Write([]byte("URL,Title,Notes\nhttp://a.test,A,\nhttp://b.test,\"B, quoted\",note\n,orphan\n"))
	}))
	defer srv.Close()

	f := NewCSVFetcher("sheet-id", "7", 5*time.Second)
	f.baseURL = srv.URL

	rows, err := f.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	links := models.NormalizeRows(rows)
	require.Len(t, links, 2)
	assert.Equal(t, "B, quoted", links[1].Title)
	assert.Nil(t, links[0].Description)
	require.NotNil(t, links[1].Description)
	assert.Equal(t, "note", *links[1].Description)
}

func TestCSVFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewCSVFetcher("sheet-id", "0", 5*time.Second)
	f.baseURL = srv.URL

	_, err := f.FetchRows(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, config.SourceCSV, fetchErr.Source)
	assert.Contains(t, err.Error(), "403")
}

func TestCSVFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewCSVFetcher("sheet-id", "0", 50*time.Millisecond)
	f.baseURL = srv.URL

	_, err := f.FetchRows(context.Background())
	assert.Error(t, err)
}

func TestCSVFetcher_MissingID(t *testing.T) {
	_, err := NewCSVFetcher("", "0", time.Second).FetchRows(context.Background())
	assert.ErrorIs(t, err, config.ErrConfiguration)
}
