// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/OnnIInnO/Recruiting2.0/internal/insights"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs the overall and per-category scores of a match,
// followed by the dimension breakdown and the generated insights.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %3.0f%% (%s)\n", result.OverallMatch*100, insights.Tier(result.OverallMatch)))
	for _, c := range types.Categories {
		score, ok := result.CategoryMatch(c)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-10s %3.0f%%\n", c, score*100))
	}

	for _, c := range types.Categories {
		details := result.Details[c]
		if len(details) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s dimensions:\n", c))
		count := min(len(details), maxItemsToShow)
		for _, d := range details[:count] {
			name := d.Title
			if name == "" {
				name = string(d.Dimension)
			}
			sb.WriteString(fmt.Sprintf("  %-28s %.2f\n", name, d.Match))
		}
		if len(details) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(details)-maxItemsToShow))
		}
	}

	if len(result.Insights) > 0 {
		sb.WriteString("\nInsights:\n")
		for _, note := range result.Insights {
			sb.WriteString(fmt.Sprintf("  • %s\n", note))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUserDimensions outputs the strongest dimensions and the improvement
// areas of a user across all completed assessments.
func (p *Printer) PrintUserDimensions(u types.UserProfiles) {
	if !u.Any() {
		return
	}

	var sb strings.Builder
	writeList := func(header string, dims []insights.DimensionScore) {
		sb.WriteString(header + ":\n")
		if len(dims) == 0 {
			sb.WriteString("  (none)\n")
			return
		}
		for _, d := range dims {
			sb.WriteString(fmt.Sprintf("  %-28s %4.1f  %s\n", d.Title, d.Score, d.ProfileType))
		}
	}
	writeList("Strongest", insights.StrongestDimensions(u))
	sb.WriteString("\n")
	writeList("Improvement areas", insights.ImprovementAreas(u))

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
