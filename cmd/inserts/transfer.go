package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	insertorch "github.com/dmtoolbox/inserts-api/internal/orchestrators/insert"
)

var exportSelectedOnly bool

var importCmd = &cobra.Command{
	Use:   "import <cards.json>",
	Short: "Import cards from a JSON file into the stored list",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <cards.json>",
	Short: "Export the stored card list to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored card",
	RunE:  runClear,
}

func init() {
	exportCmd.Flags().BoolVar(&exportSelectedOnly, "selected", false, "only export cards selected for printing")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	out, err := orch.ImportCards(cmd.Context(), &insertorch.ImportCardsInput{Reader: f})
	if err != nil {
		return err
	}

	fmt.Printf("imported %d cards\n", len(out.Cards))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	out, err := orch.ExportCards(cmd.Context(), &insertorch.ExportCardsInput{
		Writer:       f,
		SelectedOnly: exportSelectedOnly,
	})
	if err != nil {
		return err
	}

	fmt.Printf("exported %d cards to %s\n", out.Count, args[0])
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	out, err := orch.ClearCards(cmd.Context(), &insertorch.ClearCardsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("removed %d cards\n", out.Removed)
	return nil
}
