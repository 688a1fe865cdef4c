package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clulus/clulus/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice and hint statistics",
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
		answers, err := s.EventRepo().AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		hints, err := s.EventRepo().HintStats(ctx)
		if err != nil {
			return fmt.Errorf("query hints: %w", err)
		}

		if answers.Total == 0 && hints.Total == 0 {
			fmt.Println("Nothing recorded yet.")
			return nil
		}

		sep := strings.Repeat("─", 48)

		fmt.Println("Answers")
		fmt.Println(sep)
		var accuracy float64
		if answers.Total > 0 {
			accuracy = float64(answers.Correct) / float64(answers.Total) * 100
		}
		fmt.Printf("  Answered:      %d\n", answers.Total)
		fmt.Printf("  Correct:       %d (%.0f%%)\n", answers.Correct, accuracy)
		fmt.Printf("  With a hint:   %d\n", answers.HintUsed)

		fmt.Println()
		fmt.Println("Hints")
		fmt.Println(sep)
		fmt.Printf("  Requested:     %d\n", hints.Total)
		fmt.Printf("  Delivered:     %d\n", hints.Ready)
		fmt.Printf("  Failed:        %d\n", hints.Failed)
		fmt.Printf("  Dismissed:     %d\n", hints.Dismissed)

		if len(hints.ByReason) > 0 {
			reasons := make([]string, 0, len(hints.ByReason))
			for r := range hints.ByReason {
				reasons = append(reasons, r)
			}
			sort.Strings(reasons)
			fmt.Println()
			fmt.Println("By trigger")
			fmt.Println(sep)
			for _, r := range reasons {
				fmt.Printf("  %-12s %d\n", r+":", hints.ByReason[r])
			}
		}

		return nil
	},
}
