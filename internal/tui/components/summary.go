package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for the results summary.
type SummaryData struct {
	Shown     int
	Total     int
	Remaining int
	// Filters are human-readable descriptions of the active criteria.
	Filters []string
}

// Summary renders a textual results summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string

	switch {
	case s.data.Total == 0:
		lines = append(lines, "No matching books")
	case s.data.Total == 1:
		lines = append(lines, "Showing 1 of 1 book")
	default:
		lines = append(lines, fmt.Sprintf("Showing %d of %d books", s.data.Shown, s.data.Total))
	}

	if s.data.Remaining > 0 {
		lines = append(lines, fmt.Sprintf("%d more available", s.data.Remaining))
	} else if s.data.Total > 0 {
		lines = append(lines, "All results shown")
	}

	if len(s.data.Filters) > 0 {
		lines = append(lines, "Filters: "+strings.Join(s.data.Filters, ", "))
	}

	return strings.Join(lines, "\n")
}
