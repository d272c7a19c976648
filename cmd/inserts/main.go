// Package main is the entry point for the inserts CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmtoolbox/inserts-api/internal/normalize"
	insertorch "github.com/dmtoolbox/inserts-api/internal/orchestrators/insert"
	"github.com/dmtoolbox/inserts-api/internal/redis"
	insertsrepo "github.com/dmtoolbox/inserts-api/internal/repositories/inserts"
	preferencesrepo "github.com/dmtoolbox/inserts-api/internal/repositories/preferences"
)

var (
	redisAddress string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "inserts",
	Short: "Initiative insert card manager",
	Long:  `inserts manages D&D 5e initiative insert cards: building them from stat blocks or JSON files, computing derived values, and printing the card list.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddress, "redis-address", "localhost:6379", "redis address for card storage")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
}

// buildOrchestrator wires the redis-backed card service for commands that
// touch stored state. Commands that only transform files build their own
// in-memory pipeline instead.
func buildOrchestrator() (*insertorch.Orchestrator, error) {
	client, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cardRepo, err := insertsrepo.NewRedis(&insertsrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create card repository: %w", err)
	}

	prefsRepo, err := preferencesrepo.NewRedis(&preferencesrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create preferences repository: %w", err)
	}

	return insertorch.New(&insertorch.Config{
		CardRepo:        cardRepo,
		PreferencesRepo: prefsRepo,
		Normalizer:      normalize.New(nil),
	})
}
