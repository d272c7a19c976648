package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	insertorch "github.com/dmtoolbox/inserts-api/internal/orchestrators/insert"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

var listSelectedOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored cards with their derived values",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSelectedOnly, "selected", false, "only list cards selected for printing")
}

func runList(cmd *cobra.Command, args []string) error {
	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	out, err := orch.ListCards(cmd.Context(), &insertorch.ListCardsInput{
		SelectedOnly: listSelectedOnly,
	})
	if err != nil {
		return err
	}

	if len(out.Cards) == 0 {
		fmt.Println("no cards")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tAC\tHP\tPROF\tSKILLS")
	for _, card := range out.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			card.ID,
			card.Name,
			card.CardType,
			card.AC,
			card.HP,
			rules.FormatModifier(card.ProficiencyBonus),
			formatSkills(card),
		)
	}
	return w.Flush()
}

// formatSkills renders the nonzero skill bonuses in a stable order.
func formatSkills(card *dnd5e.Insert) string {
	names := make([]string, 0, len(card.SkillValues))
	for name, value := range card.SkillValues {
		if value == 0 {
			continue
		}
		names = append(names, string(name))
	}
	sort.Strings(names)

	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s %s", name, rules.FormatModifier(card.SkillValues[dnd5e.SkillName(name)]))
	}
	return s
}
