package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/primer/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		evals, err := s.EventRepo().EvaluationCount(ctx)
		if err != nil {
			return fmt.Errorf("count evaluations: %w", err)
		}
		fmt.Printf("Activities completed: %d\n", evals)

		rows, err := s.EventRepo().AttemptStats(ctx)
		if err != nil {
			return fmt.Errorf("query attempt stats: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Println()
		fmt.Printf("%-24s  %-12s  %8s  %8s  %9s\n",
			"Widget", "Type", "Attempts", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 70))
		for _, r := range rows {
			accuracy := float64(r.Correct) / float64(r.Attempts) * 100
			fmt.Printf("%-24s  %-12s  %8d  %8d  %8.0f%%\n",
				truncate(r.InstanceID, 24), r.PrimitiveType, r.Attempts, r.Correct, accuracy)
		}
		return nil
	},
}
