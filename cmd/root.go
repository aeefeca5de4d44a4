package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/resources"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/abhisek/skillpath/internal/suggest"
)

var rootCmd = &cobra.Command{
	Use:   "skillpath",
	Short: "Personalized learning path generator",
	Long:  "Skillpath builds personalized learning paths from your current skills, goals, time and budget.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLPATH_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store for the invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newFetcher builds the resource fetcher, wiring in an LLM-backed suggester
// when provider credentials are configured. Without credentials the fetcher
// still works from the curated catalog.
func newFetcher(ctx context.Context, events store.EventRepo) *resources.Fetcher {
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "note: no LLM provider configured, using curated resources only")
		return resources.NewFetcher(nil, events)
	}
	svc := suggest.NewService(provider, suggest.DefaultConfig())
	return resources.NewFetcher(svc, events)
}
