package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/ui/theme"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources <topic>",
	Short: "Fetch learning resources for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		resourceType, _ := cmd.Flags().GetString("type")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		ctx := cmd.Context()
		fetcher := newFetcher(ctx, s.EventRepo())
		found := fetcher.Fetch(ctx, topic, difficulty, resourceType)

		fmt.Println(theme.Title.Render(fmt.Sprintf("Resources for %s", topic)))
		for i, d := range found {
			r := d.ToResource(fmt.Sprintf("res_%d", i+1))
			cost := "free"
			if r.CostUSD > 0 {
				cost = fmt.Sprintf("$%.2f", r.CostUSD)
			}
			fmt.Printf("%d. %s\n", i+1, theme.Body.Render(r.Title))
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
				"   %s · %s · %dh · %s · rating %.1f · %s",
				r.Type, r.Difficulty, r.EstimatedHours, cost, r.Rating, r.Provider)))
			if r.URL != "" {
				fmt.Println(theme.Hint.Render("   " + r.URL))
			}
		}
		return nil
	},
}

func init() {
	resourcesCmd.Flags().StringP("difficulty", "d", "mixed", "Difficulty: beginner, intermediate, advanced, expert or mixed")
	resourcesCmd.Flags().StringP("type", "t", "", "Resource type filter (course, book, tutorial, ...)")
}
