package discord

import (
	"fmt"
	"strings"

	"github.com/pmurley/link-tracker/internal/analysis"
)

// Discord rejects messages longer than 2000 characters.
const maxMessageLength = 2000

func formatSummary(report analysis.Report, page int) string {
	summary := fmt.Sprintf("Total: %d | Page: %d/%d | This page: %d",
		report.Total(), page, report.DisplayPages(), len(report.Page(page)))
	if n := report.DuplicateCount(); n > 0 {
		summary += fmt.Sprintf(" | Duplicates: %d", n)
	}
	return summary
}

func formatPage(report analysis.Report, page int) string {
	page = report.ClampPage(page)
	start := report.PageStart(page)

	var sb strings.Builder
	sb.WriteString("**" + formatSummary(report, page) + "**\n")

	links := report.Page(page)
	if len(links) == 0 {
		sb.WriteString("No links found.")
		return sb.String()
	}

	for i, l := range links {
		// angle brackets suppress Discord's link previews
		fmt.Fprintf(&sb, "`%3d` <%s>", start+i+1, l.URL)
		if info := l.DuplicateInfo; info != nil {
			fmt.Fprintf(&sb, " (duplicate of Page %d, Position %d)", info.Page, info.Position)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatDuplicates(report analysis.Report) string {
	if len(report.Duplicates) == 0 {
		return "No duplicate links found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Duplicate Links Found (%d)**\n", len(report.Duplicates))
	for _, rec := range report.Duplicates {
		o := rec.Original
		fmt.Fprintf(&sb, "\n**%s** <%s>\nOriginal: Page %d, Position %d\n", o.Title, o.URL, o.Page, o.Position)
		for _, d := range rec.Duplicates {
			fmt.Fprintf(&sb, "• Page %d, Position %d (Link #%d)\n", d.Page, d.Position, report.Absolute(d.Page, d.Position))
		}
	}

	return sb.String()
}

// splitMessage breaks text into chunks of at most limit bytes, cutting at
// line boundaries where possible.
func splitMessage(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
