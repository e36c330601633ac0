package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/models"
)

func TestPrintReport(t *testing.T) {
	desc := "notes"
	report := analysis.Analyze([]models.Link{
		{ID: 1, URL: "https://a.test", Title: "A", Description: &desc},
		{ID: 2, URL: "https://b.test", Title: "B"},
		{ID: 3, URL: " HTTPS://A.TEST", Title: "A again"},
	}, 2)

	var buf bytes.Buffer
	printReport(&buf, report, 2)
	out := buf.String()

	assert.Contains(t, out, "Total Links: 3 | Page 2/2 | Duplicates: 1")
	assert.Contains(t, out, "   3. A again  [duplicate of #1, page 1 position 1]")
	assert.NotContains(t, out, "   1. A\n")
	assert.Contains(t, out, "ORIGINAL A (Page 1, Position 1, Link #1)")
	assert.Contains(t, out, "  - Page 2, Position 1 (Link #3)")
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	report := analysis.Analyze(nil, 0)
	printReport(&buf, report, report.ClampPage(5))

	assert.Equal(t, "Total Links: 0 | Page 1/1\nNo links found.\n", buf.String())
}
