package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/primer/internal/primitive"
	"github.com/abhisek/primer/internal/router"
	"github.com/abhisek/primer/internal/screen"
	"github.com/abhisek/primer/internal/ui/components"
	"github.com/abhisek/primer/internal/ui/layout"
	"github.com/abhisek/primer/internal/ui/theme"
)

// WidgetResult is one widget's outcome for display.
type WidgetResult struct {
	Title         string
	PrimitiveType string
	Score         int
	Success       bool

	// Restored marks results carried over from an earlier run; those
	// have no fresh attempt records.
	Restored bool

	Records []primitive.AttemptRecord
}

// SummaryScreen displays the lesson summary.
type SummaryScreen struct {
	lessonTitle string
	results     []WidgetResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(lessonTitle string, results []WidgetResult) *SummaryScreen {
	return &SummaryScreen{lessonTitle: lessonTitle, results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Lesson complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.lessonTitle))
	b.WriteString("\n\n")

	overall := s.OverallScore()
	bar := components.NewProgressBar(
		fmt.Sprintf("Overall score %3d", overall),
		float64(overall)/100,
		false,
		min(width-8, 48),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Activities")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range s.results {
		verdict := "passed"
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if !r.Success {
			verdict = "needs practice"
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}

		line := fmt.Sprintf("  %s (%s)    score %d    %s%s",
			r.Title, r.PrimitiveType, r.Score, verdict, detailString(r))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// OverallScore is the mean widget score, rounded down.
func (s *SummaryScreen) OverallScore() int {
	if len(s.results) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.results {
		total += r.Score
	}
	return total / len(s.results)
}

// detailString summarizes attempt records for one widget.
func detailString(r WidgetResult) string {
	if r.Restored {
		return "    (from earlier run)"
	}
	if len(r.Records) == 0 {
		return ""
	}
	firstTry := 0
	for _, rec := range r.Records {
		if rec.FirstTry {
			firstTry++
		}
	}
	return fmt.Sprintf("    %d/%d first try", firstTry, len(r.Records))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
