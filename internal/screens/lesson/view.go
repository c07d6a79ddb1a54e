package lesson

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/primitive"
	"github.com/abhisek/primer/internal/ui/theme"
)

// tutorPanelHeight reserves feed-bottom lines for tutor commentary.
const tutorPanelHeight = 2

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s", s.errMsg))
	}

	if width != s.width || height != s.height {
		s.width = width
		s.height = height
		s.relayout()
	}

	feed := s.renderFeed(width)
	lines := strings.Split(feed, "\n")

	visible := s.contentHeight()
	start := s.scroll
	if start > len(lines)-1 {
		start = max(0, len(lines)-1)
	}
	end := min(len(lines), start+visible)
	window := strings.Join(lines[start:end], "\n")

	return window + "\n" + s.renderTutorPanel(width)
}

// contentHeight is the feed viewport height in lines.
func (s *LessonScreen) contentHeight() int {
	h := s.height - tutorPanelHeight - 1
	if h < 1 {
		return 1
	}
	return h
}

// relayout rerenders the feed to measure widget extents and reports
// the geometry to the focus tracker.
func (s *LessonScreen) relayout() {
	if s.width == 0 {
		return
	}

	top := 0
	for _, v := range s.views {
		block := s.renderWidget(v, s.width)
		v.top = top
		v.height = lipgloss.Height(block)
		top += v.height + 1 // blank separator line
	}

	s.tracker.SetViewport(s.scroll, s.contentHeight())
	for _, v := range s.views {
		id := v.def.ID
		s.tracker.Observe(id, v.def.Type, v.top, v.height)
	}
}

func (s *LessonScreen) scrollTo(line int) {
	if line < 0 {
		line = 0
	}
	s.scroll = line
	s.tracker.SetViewport(s.scroll, s.contentHeight())
}

// scrollIntoView scrolls just enough to show the widget's block.
func (s *LessonScreen) scrollIntoView(v *widgetView) {
	visible := s.contentHeight()
	switch {
	case v.top < s.scroll:
		s.scrollTo(v.top)
	case v.top+v.height > s.scroll+visible:
		s.scrollTo(v.top + v.height - visible)
	}
}

func (s *LessonScreen) renderFeed(width int) string {
	blocks := make([]string, 0, len(s.views))
	for _, v := range s.views {
		blocks = append(blocks, s.renderWidget(v, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (s *LessonScreen) renderWidget(v *widgetView, width int) string {
	var b strings.Builder

	// Title line with selection marker.
	marker := "  "
	titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	if s.views[s.selected] == v {
		marker = "▸ "
		titleStyle = titleStyle.Foreground(theme.Secondary)
	}
	b.WriteString(titleStyle.Render(marker + v.def.Title))
	b.WriteString("\n")

	if v.restored != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("  Completed earlier — score %d", v.restored.Score)))
		return b.String()
	}

	st := v.machine.State()
	if st.Complete {
		score := 0
		if res := v.machine.Result(); res != nil {
			score = res.Score
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("  Complete — score %d", score)))
		return b.String()
	}

	ch := v.machine.Challenge()
	if ch == nil {
		return b.String()
	}

	// Challenge position and instruction.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Challenge %d of %d", st.Index+1, len(v.machine.Challenges()))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("  " + ch.Instruction))
	b.WriteString("\n\n")

	switch v.def.Type {
	case manifest.TypeBalancer:
		b.WriteString(s.renderBalancer(v, st))
	case manifest.TypePlaceValue:
		b.WriteString(s.renderPlaceValue(v))
	default:
		b.WriteString("  Answer: " + v.input.View())
	}

	// Feedback line.
	if st.Feedback != nil {
		b.WriteString("\n")
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch st.Feedback.Type {
		case primitive.FeedbackSuccess:
			style = style.Foreground(theme.Success).Bold(true)
		case primitive.FeedbackError:
			style = style.Foreground(theme.Error)
		case primitive.FeedbackHint:
			style = style.Foreground(theme.Accent)
		}
		b.WriteString(style.Render("  " + st.Feedback.Text))
	}

	// Reveal on exhausted attempts.
	if st.Status == primitive.StatusMaxAttempts {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Answer: %s", formatExpected(ch.Expected))))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Press Enter to continue."))
	}

	return b.String()
}

func (s *LessonScreen) renderBalancer(v *widgetView, st primitive.PhaseState) string {
	if v.balancer == nil {
		return ""
	}

	var b strings.Builder
	elements := v.balancer.Elements()
	for i, el := range elements {
		cell := fmt.Sprintf(" %s: %d ", el, v.balancer.Counts[el])

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case st.GuidedDimension == el:
			style = style.Foreground(theme.Accent).Bold(true)
		case i == v.cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		case st.GuidedDimension != "":
			// Guided mode dims everything but the focused element.
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString("  " + style.Render(cell))
	}

	if st.GuidedDimension != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  Focus on %s for now.", st.GuidedDimension)))
	}
	return b.String()
}

func (s *LessonScreen) renderPlaceValue(v *widgetView) string {
	if v.place == nil {
		return ""
	}

	var b strings.Builder
	for i, val := range v.place.Columns {
		cell := fmt.Sprintf(" %d ", val)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == v.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  [" + style.Render(cell) + "]")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   sum %d", v.place.Sum())))
	return b.String()
}

func (s *LessonScreen) renderTutorPanel(width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(0, width-2)))

	line := "Tutor is watching quietly."
	if s.session == nil {
		line = "Tutor offline — play continues without commentary."
	}
	if s.tutorLine != "" {
		line = s.tutorLine
	}

	return divider + "\n" + lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Width(width).
		MaxHeight(1).
		Render("  "+line)
}

// formatExpected renders a challenge's expected answer for the reveal.
func formatExpected(expected any) string {
	switch v := expected.(type) {
	case string:
		return v
	case map[string]any:
		els := make([]string, 0, len(v))
		for el := range v {
			els = append(els, el)
		}
		sort.Strings(els)
		parts := make([]string, 0, len(els))
		for _, el := range els {
			parts = append(parts, fmt.Sprintf("%s=%v", el, v[el]))
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, n := range v {
			parts = append(parts, fmt.Sprintf("%v", n))
		}
		return strings.Join(parts, " + ")
	}
	return fmt.Sprintf("%v", expected)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
