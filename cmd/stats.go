package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show generation history and fetch telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		ctx := cmd.Context()
		repo := s.EventRepo()

		paths, err := repo.RecentPaths(ctx, limit)
		if err != nil {
			return fmt.Errorf("query paths: %w", err)
		}

		if len(paths) == 0 {
			fmt.Println("No paths generated yet.")
		} else {
			fmt.Printf("%-19s  %-28s  %-12s  %4s  %6s  %9s  %5s  %s\n",
				"Generated", "Goal", "Target", "Mods", "Hours", "Cost", "Conf", "Mode")
			fmt.Println(strings.Repeat("─", 100))
			for _, p := range paths {
				mode := "full"
				if p.Fallback {
					mode = "fallback"
				}
				fmt.Printf("%-19s  %-28s  %-12s  %4d  %6d  %9s  %4.0f%%  %s\n",
					p.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(p.GoalSkill, 28),
					p.TargetLevel,
					p.Modules,
					p.TotalHours,
					formatCost(p.TotalCostUSD),
					p.Confidence*100,
					mode,
				)
			}
		}

		fetch, err := repo.FetchStats(ctx)
		if err != nil {
			return fmt.Errorf("query fetch stats: %w", err)
		}
		if fetch.Total > 0 {
			fmt.Println()
			fmt.Printf("Resource fetches: %d total, %d cache hits, %d fallbacks\n",
				fetch.Total, fetch.CacheHits, fetch.Fallbacks)
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd == 0 {
		return "free"
	}
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of paths to show")
}
