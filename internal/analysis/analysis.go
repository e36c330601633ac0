// Package analysis pages the ordered link sequence and flags repeated URLs.
package analysis

import (
	"strings"

	"github.com/pmurley/link-tracker/internal/models"
)

// DefaultPageSize is the number of links shown per page.
const DefaultPageSize = 30

// Location is a link's place in the paginated view.
type Location struct {
	Page     int `json:"page"`
	Position int `json:"position"`
}

// DuplicateInfo points a repeated link back at its first occurrence.
type DuplicateInfo struct {
	Page       int `json:"page"`
	Position   int `json:"position"`
	OriginalID int `json:"originalId"`
}

// DecoratedLink is a link annotated with its duplicate status.
type DecoratedLink struct {
	models.Link
	IsDuplicate   bool           `json:"isDuplicate"`
	DuplicateInfo *DuplicateInfo `json:"duplicateInfo,omitempty"`
}

// Original describes the first occurrence of a repeated URL.
type Original struct {
	Page     int    `json:"page"`
	Position int    `json:"position"`
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// Occurrence is a later appearance of a repeated URL.
type Occurrence struct {
	Page     int `json:"page"`
	Position int `json:"position"`
	ID       int `json:"id"`
}

// DuplicateRecord lists every place a repeated URL appears.
type DuplicateRecord struct {
	Original   Original     `json:"original"`
	Duplicates []Occurrence `json:"duplicates"`
}

// Report is the result of Analyze.
type Report struct {
	Links      []DecoratedLink   `json:"links"`
	Duplicates []DuplicateRecord `json:"duplicates"`
	PageSize   int               `json:"pageSize"`
}

// NormalizeURL is the duplicate detection key: lowercased and trimmed, nothing more.
func NormalizeURL(url string) string {
	return strings.ToLower(strings.TrimSpace(url))
}

// Locate converts a zero-based sequence index into a page and position.
func Locate(index, pageSize int) Location {
	return Location{
		Page:     index/pageSize + 1,
		Position: index%pageSize + 1,
	}
}

type firstSeen struct {
	index int
	link  models.Link
}

// Analyze classifies every link as a first occurrence or a duplicate of an
// earlier link with the same normalized URL. Duplicate records are returned
// in the order their second occurrence was found.
func Analyze(links []models.Link, pageSize int) Report {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	seen := make(map[string]firstSeen, len(links))
	recordIdx := make(map[string]int)
	report := Report{
		Links:      make([]DecoratedLink, 0, len(links)),
		Duplicates: []DuplicateRecord{},
		PageSize:   pageSize,
	}

	for i, link := range links {
		key := NormalizeURL(link.URL)

		first, exists := seen[key]
		if !exists {
			seen[key] = firstSeen{index: i, link: link}
			report.Links = append(report.Links, DecoratedLink{Link: link})
			continue
		}

		orig := Locate(first.index, pageSize)
		dup := Locate(i, pageSize)

		report.Links = append(report.Links, DecoratedLink{
			Link:        link,
			IsDuplicate: true,
			DuplicateInfo: &DuplicateInfo{
				Page:       orig.Page,
				Position:   orig.Position,
				OriginalID: first.link.ID,
			},
		})

		idx, ok := recordIdx[key]
		if !ok {
			idx = len(report.Duplicates)
			recordIdx[key] = idx
			report.Duplicates = append(report.Duplicates, DuplicateRecord{
				Original: Original{
					Page:     orig.Page,
					Position: orig.Position,
					ID:       first.link.ID,
					Title:    first.link.Title,
					URL:      first.link.URL,
				},
			})
		}
		report.Duplicates[idx].Duplicates = append(report.Duplicates[idx].Duplicates, Occurrence{
			Page:     dup.Page,
			Position: dup.Position,
			ID:       link.ID,
		})
	}

	return report
}
