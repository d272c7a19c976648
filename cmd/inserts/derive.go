package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmtoolbox/inserts-api/internal/cardio"
	"github.com/dmtoolbox/inserts-api/internal/engine"
	"github.com/dmtoolbox/inserts-api/internal/normalize"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

var deriveCmd = &cobra.Command{
	Use:   "derive <cards.json>",
	Short: "Compute derived values for a cards file without storing anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runDerive,
}

func runDerive(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	cards, err := cardio.Import(f, normalize.New(nil))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, card := range cards {
		derived := engine.Derive(card)

		skills := map[string]string{}
		for name, value := range derived.SkillValues {
			skills[string(name)] = rules.FormatModifier(value)
		}

		if err := enc.Encode(map[string]any{
			"id":               derived.ID,
			"name":             derived.Name,
			"cardType":         derived.CardType,
			"ac":               derived.AC,
			"hp":               derived.HP,
			"proficiencyBonus": rules.FormatModifier(derived.ProficiencyBonus),
			"skills":           skills,
		}); err != nil {
			return err
		}
	}
	return nil
}
