// Package export writes link reports as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pmurley/link-tracker/internal/analysis"
)

var duplicateHeaders = []string{
	"OriginalURL", "OriginalTitle", "OriginalID", "OriginalPage", "OriginalPosition",
	"DuplicateID", "DuplicatePage", "DuplicatePosition", "LinkNumber",
}

var linkHeaders = []string{
	"Number", "ID", "URL", "Title", "Description", "IsDuplicate", "OriginalID",
}

// WriteDuplicates writes one record per duplicate occurrence.
func WriteDuplicates(w io.Writer, report analysis.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(duplicateHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, rec := range report.Duplicates {
		o := rec.Original
		for _, d := range rec.Duplicates {
			record := []string{
				o.URL,
				o.Title,
				strconv.Itoa(o.ID),
				strconv.Itoa(o.Page),
				strconv.Itoa(o.Position),
				strconv.Itoa(d.ID),
				strconv.Itoa(d.Page),
				strconv.Itoa(d.Position),
				strconv.Itoa(report.Absolute(d.Page, d.Position)),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write duplicate record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteLinks writes every decorated link in sequence order.
func WriteLinks(w io.Writer, report analysis.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(linkHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, l := range report.Links {
		desc := ""
		if l.Description != nil {
			desc = *l.Description
		}
		originalID := ""
		if l.DuplicateInfo != nil {
			originalID = strconv.Itoa(l.DuplicateInfo.OriginalID)
		}
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(l.ID),
			l.URL,
			l.Title,
			desc,
			strconv.FormatBool(l.IsDuplicate),
			originalID,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write link record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
