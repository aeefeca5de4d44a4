package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/render"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show which goal skills are missing, by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfileArg(cmd)
		if err != nil {
			return err
		}
		fmt.Print(render.Gaps(p))
		return nil
	},
}
