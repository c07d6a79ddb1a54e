package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/primer/internal/llm"
	"github.com/abhisek/primer/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect what the tutor sent to and got back from the model",
}

// withEventStore opens the event store for a read-only subcommand and
// closes it when fn returns.
func withEventStore(cmd *cobra.Command, fn func(ctx context.Context, repo store.EventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(context.Background(), s.EventRepo())
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			shown := 0
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
			for _, e := range events {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				shown++
				ok := "yes"
				if !e.Success {
					ok = "no"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					truncate(e.Model, 32),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					ok,
				)
			}
			if shown == 0 {
				fmt.Println("No LLM requests recorded.")
				return nil
			}
			return w.Flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply for one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			fmt.Printf("ID:       %d\n", e.ID)
			fmt.Printf("Time:     %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Model:    %s (%s)\n", e.Model, e.Provider)
			fmt.Printf("Purpose:  %s\n", e.Purpose)
			fmt.Printf("Tokens:   %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Printf("Latency:  %dms\n", e.LatencyMs)
			if e.ErrorMessage != "" {
				fmt.Printf("Error:    %s\n", e.ErrorMessage)
			}

			printSection("REQUEST", e.RequestBody)
			printSection("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

func printSection(title, body string) {
	rule := strings.Repeat("─", 60)
	fmt.Printf("\n%s\n%s\n%s\n", rule, title, rule)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			byPurpose, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			fmt.Println("Usage by purpose")
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PURPOSE\tCALLS\tIN\tOUT\tAVG MS")
			var calls, in, out int
			for _, u := range byPurpose {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
				calls += u.Calls
				in += u.InputTokens
				out += u.OutputTokens
			}
			fmt.Fprintf(w, "total\t%d\t%d\t%d\t\n", calls, in, out)
			if err := w.Flush(); err != nil {
				return err
			}

			byModel, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(byModel) == 0 {
				return nil
			}

			fmt.Println("\nEstimated cost")
			w = tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tCALLS\tIN\tOUT\tUSD")
			var total float64
			var unknown []string
			for _, u := range byModel {
				pricing := llm.LookupCost(u.Model)
				if pricing == nil {
					unknown = append(unknown, u.Model)
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
						truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens)
					continue
				}
				cost := pricing.Cost(u.InputTokens, u.OutputTokens)
				total += cost
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, formatCost(cost))
			}
			label := "total"
			if len(unknown) > 0 {
				label = "total (partial)"
			}
			fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, formatCost(total))
			if err := w.Flush(); err != nil {
				return err
			}

			if len(unknown) > 0 {
				fmt.Printf("\nNo pricing data for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (e.g. tutor-comment)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
