// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeContent outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeContent(content *types.ResumeContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	if content.ContactInfo != nil {
		if content.ContactInfo.Name != "" {
			sb.WriteString(fmt.Sprintf("Name:     %s\n", content.ContactInfo.Name))
		}
		if content.ContactInfo.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:    %s\n", content.ContactInfo.Email))
		}
		if content.ContactInfo.Phone != "" {
			sb.WriteString(fmt.Sprintf("Phone:    %s\n", content.ContactInfo.Phone))
		}
	}

	if content.Summary != "" {
		summary := content.Summary
		if len(summary) > 100 {
			summary = summary[:97] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSummary:  %s\n", summary))
	}

	sb.WriteString(fmt.Sprintf("\nExperience entries: %d\n", len(content.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(content.Education)))
	sb.WriteString(fmt.Sprintf("Skills:             %d\n", content.TotalSkills()))

	found := []string{}
	for name, info := range content.Sections {
		if info.Found {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		sb.WriteString(fmt.Sprintf("\nSections found: %s", strings.Join(found, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the score report with its rating.
func (p *Printer) PrintScores(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Grammar:  %5.1f\n", analysis.Scores.Grammar))
	sb.WriteString(fmt.Sprintf("Content:  %5.1f\n", analysis.Scores.Content))
	sb.WriteString(fmt.Sprintf("ATS:      %5.1f\n", analysis.Scores.ATS))
	sb.WriteString(fmt.Sprintf("Overall:  %5.1f (%s)", analysis.Scores.Overall, analysis.Rating))

	p.printBox("SCORES", sb.String())
}

// PrintGrammarIssues outputs the top grammar issues found.
func (p *Printer) PrintGrammarIssues(issues []types.GrammarIssue) {
	if len(issues) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := issues[i]
		msg := issue.Message
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", msg))
		if len(issue.Suggestions) > 0 {
			sb.WriteString(fmt.Sprintf("  → %s\n", issue.Suggestions[0]))
		}
	}

	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(issues)-maxItemsToShow))
	}

	p.printBox("GRAMMAR ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSSuggestions outputs ATS suggestions with importance markers.
func (p *Printer) PrintATSSuggestions(suggestions []types.ATSSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		msg := s.Message
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(s.Importance), msg))
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("ATS SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
