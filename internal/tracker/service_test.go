package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/metrics"
	"github.com/pmurley/link-tracker/internal/models"
	"github.com/pmurley/link-tracker/pkg/logger"
)

type stubFetcher struct {
	rows  []models.Row
	err   error
	calls int
}

func (f *stubFetcher) FetchRows(ctx context.Context) ([]models.Row, error) {
	f.calls++
	return f.rows, f.err
}

func (f *stubFetcher) Source() string {
	return "stub"
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestService_Report(t *testing.T) {
	fetcher := &stubFetcher{rows: []models.Row{
		models.StringRow("Link", "Title"),
		models.StringRow("http://x.test", "X"),
		models.StringRow("http://y.test", "Y"),
		models.StringRow(" http://X.test", "X again"),
	}}
	svc := NewService(fetcher, 30, quietLogger())

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 1, report.DuplicateCount())
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.LinksFetched))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DuplicateLinks))
}

func TestService_RefetchesEveryCall(t *testing.T) {
	fetcher := &stubFetcher{rows: []models.Row{models.StringRow("http://a.test")}}
	svc := NewService(fetcher, 30, quietLogger())

	for i := 0; i < 3; i++ {
		_, err := svc.Links(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, fetcher.calls)
}

func TestService_Errors(t *testing.T) {
	before := testutil.ToFloat64(metrics.SheetFetchesTotal.WithLabelValues("stub", "config_error"))

	cfgErr := fmt.Errorf("%w: no credentials", config.ErrConfiguration)
	svc := NewService(&stubFetcher{err: cfgErr}, 30, quietLogger())

	_, err := svc.Report(context.Background())
	assert.ErrorIs(t, err, config.ErrConfiguration)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SheetFetchesTotal.WithLabelValues("stub", "config_error")))

	boom := errors.New("quota exceeded")
	_, err = NewService(&stubFetcher{err: boom}, 30, quietLogger()).Links(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewService_DefaultPageSize(t *testing.T) {
	assert.Equal(t, 30, NewService(&stubFetcher{}, 0, quietLogger()).PageSize())
}
