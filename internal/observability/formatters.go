// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/studymatch/internal/matching"
	"github.com/jordan/studymatch/internal/types"
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

// PrintProfile outputs a human-readable summary of a study profile.
func (p *Printer) PrintProfile(title string, profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.ID != "" {
		sb.WriteString(fmt.Sprintf("ID:          %s\n", profile.ID))
	}
	sb.WriteString(fmt.Sprintf("Timezone:    %s\n", valueOrDash(profile.Timezone)))
	sb.WriteString(fmt.Sprintf("Skill:       %s\n", valueOrDash(profile.SkillLevel)))
	sb.WriteString(fmt.Sprintf("Style:       %s\n", valueOrDash(profile.StudyStyle)))

	writeList(&sb, "Subjects", profile.Subjects)
	writeList(&sb, "Days", profile.AvailableDays)
	writeList(&sb, "Hours", profile.AvailableHours)

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs a compatibility score with its factor breakdown.
func (p *Printer) PrintMatchScore(score types.MatchScore) {
	var sb strings.Builder

	label := matching.ScoreLabel(score.TotalScore)
	sb.WriteString(fmt.Sprintf("Total:        %d  (%s)\n\n", score.TotalScore, label))
	sb.WriteString(fmt.Sprintf("Subjects:     %d\n", score.Breakdown.Subjects))
	sb.WriteString(fmt.Sprintf("Timezone:     %d\n", score.Breakdown.Timezone))
	sb.WriteString(fmt.Sprintf("Skill level:  %d\n", score.Breakdown.SkillLevel))
	sb.WriteString(fmt.Sprintf("Availability: %d\n", score.Breakdown.Availability))
	sb.WriteString(fmt.Sprintf("Study style:  %d\n", score.Breakdown.StudyStyle))

	if len(score.Details.SharedSubjects) > 0 {
		sb.WriteString("\n")
		shared := strings.Join(score.Details.SharedSubjects, ", ")
		if len(shared) > 40 {
			shared = shared[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Shared subjects: %s\n", shared))
	}

	p.printBox("COMPATIBILITY SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top ranked candidates with scores.
func (p *Printer) PrintRankedCandidates(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		p.printBox("RANKED CANDIDATES", "No candidates above threshold")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rc.Profile.ID))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", rc.Score.TotalScore, matching.ScoreLabel(rc.Score.TotalScore)))
		if len(rc.Score.Details.SharedSubjects) > 0 {
			shared := strings.Join(rc.Score.Details.SharedSubjects, ", ")
			if len(shared) > 40 {
				shared = shared[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Shared: %s\n", shared))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", sb.String())
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%-12s %s\n", label+":", joined))
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
