package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmtoolbox/inserts-api/internal/normalize"
	insertorch "github.com/dmtoolbox/inserts-api/internal/orchestrators/insert"
	"github.com/dmtoolbox/inserts-api/internal/statblock"
)

var parseDryRun bool

var parseCmd = &cobra.Command{
	Use:   "parse <statblock.txt>",
	Short: "Parse a pasted monster stat block into a card",
	Long:  `Parse reads a plain-text monster stat block (the format used by published books) and builds a monster card from it. By default the card is added to the stored list; with --dry-run the normalized card is printed instead.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseDryRun, "dry-run", false, "print the card instead of storing it")
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if parseDryRun {
		card := normalize.New(nil).Normalize(statblock.Parse(string(data)))
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(card)
	}

	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	out, err := orch.ParseStatBlock(cmd.Context(), &insertorch.ParseStatBlockInput{
		Text: string(data),
	})
	if err != nil {
		return err
	}

	fmt.Printf("created card %s (%s)\n", out.Card.ID, out.Card.Name)
	return nil
}
