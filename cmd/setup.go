package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/render"
	"github.com/abhisek/skillpath/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a profile interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setup.Run()
		if errors.Is(err, setup.ErrAborted) {
			fmt.Println("Setup aborted.")
			return nil
		}
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if err := p.SaveFile(out); err != nil {
			return err
		}

		fmt.Print(render.Profile(p))
		fmt.Printf("Profile saved to %s\n", out)
		fmt.Printf("Next: skillpath plan --profile %s\n", out)
		return nil
	},
}

func init() {
	setupCmd.Flags().StringP("out", "o", "profile.json", "Where to write the profile")
}
