package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Link is one normalized row of the links sheet
type Link struct {
	ID          int     `json:"id"`                    // 1-based position after filtering
	URL         string  `json:"url"`                   // Column A
	Title       string  `json:"title"`                 // Column B, falls back to the URL
	Description *string `json:"description,omitempty"` // Column C, omitted when absent
}

var urlPattern = regexp.MustCompile(`^https?://`)

// HasHeader reports whether the first row should be skipped as a header.
// A sheet whose first cell does not start with http:// or https:// is
// assumed to carry column names in row 1.
func HasHeader(rows []Row) bool {
	if len(rows) == 0 {
		return false
	}
	return !urlPattern.MatchString(rows[0].At(0).String())
}

// LinkTitle picks the display title for the row at the given offset:
// column B, else column A, else "Link <offset+1>".
func LinkTitle(row Row, offset int) string {
	if title := row.At(1); !title.IsBlank() {
		return title.String()
	}
	if url := row.At(0); !url.IsBlank() {
		return url.String()
	}
	return fmt.Sprintf("Link %d", offset+1)
}

// LinkDescription returns column C, or nil when the cell is missing or blank.
func LinkDescription(row Row) *string {
	desc := row.At(2)
	if desc.IsBlank() {
		return nil
	}
	s := desc.String()
	return &s
}

// NormalizeRows converts raw sheet rows into the ordered link sequence.
// The header row is skipped when present and rows without a usable URL are
// dropped. IDs are assigned after filtering so that a link's ID always equals
// its 1-based position in the returned slice.
func NormalizeRows(rows []Row) []Link {
	start := 0
	if HasHeader(rows) {
		start = 1
	}

	links := make([]Link, 0, len(rows)-start)
	for i, row := range rows[start:] {
		url := row.At(0).String()
		if strings.TrimSpace(url) == "" {
			continue
		}

		links = append(links, Link{
			ID:          len(links) + 1,
			URL:         url,
			Title:       LinkTitle(row, i),
			Description: LinkDescription(row),
		})
	}

	return links
}
