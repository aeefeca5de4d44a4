package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/render"
	"github.com/abhisek/skillpath/internal/skilltree"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Browse the skill tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(render.Tree())
		return nil
	},
}

var treeRouteCmd = &cobra.Command{
	Use:   "route <goal skill>",
	Short: "Show the module sequence leading to a goal skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := strings.Join(args, " ")
		known, _ := cmd.Flags().GetStringSlice("have")

		route := skilltree.PathForGoal(goal, known)
		fmt.Print(render.Route(goal, route))
		if len(route) == 1 && skilltree.IsCustomPath(route[0]) {
			fmt.Println("Goal not in the skill tree; a custom path will be generated.")
		}
		return nil
	},
}

func init() {
	treeRouteCmd.Flags().StringSlice("have", nil, "Skills you already have (repeatable)")
	treeCmd.AddCommand(treeRouteCmd)
}
