package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://%d.test", i)
	}
	return urls
}

func TestPage_Boundary(t *testing.T) {
	report := Analyze(makeLinks(sequence(31)...), 30)

	assert.Equal(t, 2, report.TotalPages())
	assert.Equal(t, Location{Page: 2, Position: 1}, Locate(30, 30))

	second := report.Page(2)
	require.Len(t, second, 1)
	assert.Equal(t, 31, second[0].ID)
	assert.Equal(t, 30, report.PageStart(2))
}

func TestPage_Partition(t *testing.T) {
	for _, n := range []int{1, 7, 29, 30, 31, 60, 95} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			report := Analyze(makeLinks(sequence(n)...), 30)
			total := report.TotalPages()

			var rebuilt []DecoratedLink
			for p := 1; p <= total; p++ {
				page := report.Page(p)
				if p < total {
					assert.Len(t, page, 30)
				} else {
					assert.Len(t, page, n-(total-1)*30)
				}
				rebuilt = append(rebuilt, page...)
			}
			assert.Equal(t, report.Links, rebuilt)
		})
	}
}

func TestPage_OutOfRange(t *testing.T) {
	report := Analyze(makeLinks(sequence(5)...), 2)

	assert.Empty(t, report.Page(0))
	assert.Empty(t, report.Page(-1))
	assert.Empty(t, report.Page(4))
	assert.Len(t, report.Page(3), 1)
}

func TestClampPage(t *testing.T) {
	report := Analyze(makeLinks(sequence(61)...), 30)

	assert.Equal(t, 1, report.ClampPage(0))
	assert.Equal(t, 2, report.ClampPage(2))
	assert.Equal(t, 3, report.ClampPage(99))
	assert.Equal(t, 1, Analyze(nil, 30).ClampPage(5))
}

func TestAbsolute(t *testing.T) {
	report := Report{PageSize: 30}
	assert.Equal(t, 1, report.Absolute(1, 1))
	assert.Equal(t, 31, report.Absolute(2, 1))
	assert.Equal(t, 65, report.Absolute(3, 5))
}
