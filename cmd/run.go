package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/primer/internal/app"
	"github.com/abhisek/primer/internal/llm"
	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/store"
	"github.com/abhisek/primer/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lessons, err := loadLessons(cmd)
	if err != nil {
		return err
	}

	eventRepo := st.EventRepo()
	deps := app.Deps{
		Lessons: lessons,
		Events:  eventRepo,
		Snaps:   st.SnapshotRepo(),
	}

	// The tutor is optional; the player runs without commentary when no
	// provider is configured.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor commentary will be unavailable.")
	} else {
		session := tutor.NewSession(provider, eventRepo, tutor.DefaultSessionConfig())
		defer session.Close()
		deps.Tutor = session
	}

	return app.Run(deps)
}

// loadLessons returns the built-in lessons plus any manifests named with
// the --lesson flag.
func loadLessons(cmd *cobra.Command) ([]*manifest.Lesson, error) {
	lessons := []*manifest.Lesson{manifest.Builtin()}

	paths, _ := cmd.Flags().GetStringSlice("lesson")
	for _, p := range paths {
		l, err := manifest.Load(p)
		if err != nil {
			return nil, fmt.Errorf("load lesson %s: %w", p, err)
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}
