package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/render"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate learning paths for a profile",
	Long:  "Generates one learning path per goal, ordered by goal priority, and prints each path with its resources and analytics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfileArg(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		ctx := cmd.Context()
		engine := pathgen.NewEngine(newFetcher(ctx, s.EventRepo()), s.EventRepo())
		paths := engine.GenerateMultiplePaths(ctx, p)
		if len(paths) == 0 {
			return fmt.Errorf("profile has no learning goals")
		}

		fmt.Print(render.Profile(p))
		fmt.Println()
		fmt.Print(render.PathSummaries(paths))

		for _, path := range paths {
			fmt.Print(render.Path(path))
			if showAnalytics, _ := cmd.Flags().GetBool("analytics"); showAnalytics {
				fmt.Print(render.Analytics(pathgen.PathAnalytics(path)))
				fmt.Println()
			}
		}
		return nil
	},
}

// loadProfileArg resolves the profile for a command from --sample or
// --profile <file>.
func loadProfileArg(cmd *cobra.Command) (*profile.UserProfile, error) {
	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		return profile.SampleProfile(), nil
	}
	path, _ := cmd.Flags().GetString("profile")
	if path == "" {
		return nil, fmt.Errorf("pass --profile <file> or --sample (run \"skillpath setup\" to create a profile)")
	}
	return profile.LoadFile(path)
}

func init() {
	planCmd.Flags().StringP("profile", "p", "", "Path to a profile JSON file")
	planCmd.Flags().Bool("sample", false, "Use the built-in sample profile")
	planCmd.Flags().Bool("analytics", true, "Print analytics for each path")

	gapsCmd.Flags().StringP("profile", "p", "", "Path to a profile JSON file")
	gapsCmd.Flags().Bool("sample", false, "Use the built-in sample profile")
}
