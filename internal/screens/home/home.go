package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/router"
	"github.com/abhisek/primer/internal/screen"
	lessonscreen "github.com/abhisek/primer/internal/screens/lesson"
	"github.com/abhisek/primer/internal/store"
	"github.com/abhisek/primer/internal/tutor"
	"github.com/abhisek/primer/internal/ui/components"
	"github.com/abhisek/primer/internal/ui/theme"
)

// HomeScreen is the lesson picker and entry point.
type HomeScreen struct {
	menu    components.Menu
	lessons []*manifest.Lesson

	evaluations int
	tutorReady  bool
	errMsg      string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Lessons must be non-empty; the tutoring
// session may be nil when no LLM provider is configured.
func New(lessons []*manifest.Lesson, events store.EventRepo, snaps store.SnapshotRepo, session *tutor.Session) *HomeScreen {
	h := &HomeScreen{
		lessons:    lessons,
		tutorReady: session != nil,
	}

	if events != nil {
		if n, err := events.EvaluationCount(context.Background()); err == nil {
			h.evaluations = n
		}
	}

	items := make([]components.MenuItem, 0, len(lessons)+1)
	for _, l := range lessons {
		l := l
		items = append(items, components.MenuItem{
			Label: "PLAY  " + strings.ToUpper(l.Title),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					ls, err := lessonscreen.New(l, events, snaps, session)
					if err != nil {
						return lessonOpenFailedMsg{err: err}
					}
					return router.PushScreenMsg{Screen: ls}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

// lessonOpenFailedMsg reports a lesson that could not be constructed.
type lessonOpenFailedMsg struct {
	err error
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if failed, ok := msg.(lessonOpenFailedMsg); ok {
		h.errMsg = failed.err.Error()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("P R I M E R"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Interactive lessons with a tutor watching over your shoulder"))
	b.WriteString("\n\n")

	tutorStr := "tutor offline"
	if h.tutorReady {
		tutorStr = "tutor ready"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d activities completed   ·   %s", h.evaluations, tutorStr)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not open lesson: " + h.errMsg))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
