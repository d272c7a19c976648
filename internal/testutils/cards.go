package testutils

import (
	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

// TestCardName is the default card name for test fixtures.
const TestCardName = "Thorin Oakenshield"

// CreateTestPlayerCard creates a player card with sensible defaults.
func CreateTestPlayerCard(id string) *dnd5e.InsertInputs {
	card := &dnd5e.InsertInputs{
		ID:               id,
		CardType:         dnd5e.CardTypePlayer,
		Size:             dnd5e.SizeSmall,
		Name:             TestCardName,
		Race:             "Dwarf",
		Class:            "Fighter",
		Level:            5,
		ProficiencyBonus: 3,
		AC:               18,
		HP:               44,
		Darkvision:       60,
		Selected:         true,
		Skills:           rules.DefaultSkills(),
		Senses:           map[string]string{"darkvision": "60 ft."},
		Languages:        []string{"Common", "Dwarvish"},
	}
	card.SetAbilityScore(dnd5e.AbilityStrength, 16)
	card.SetAbilityScore(dnd5e.AbilityDexterity, 12)
	card.SetAbilityScore(dnd5e.AbilityConstitution, 15)
	card.SetAbilityScore(dnd5e.AbilityIntelligence, 10)
	card.SetAbilityScore(dnd5e.AbilityWisdom, 13)
	card.SetAbilityScore(dnd5e.AbilityCharisma, 8)
	return card
}

// CreateTestMonsterCard creates a monster card with pre-calculated skill
// modifiers, the shape a parsed stat block produces.
func CreateTestMonsterCard(id string) *dnd5e.InsertInputs {
	card := &dnd5e.InsertInputs{
		ID:               id,
		CardType:         dnd5e.CardTypeMonster,
		Size:             dnd5e.SizeLarge,
		Name:             "Owlbear",
		MonsterSize:      dnd5e.MonsterSizeLarge,
		MonsterType:      "monstrosity",
		CR:               "3",
		ProficiencyBonus: 2,
		AC:               13,
		HP:               59,
		HPFormula:        "7d10 + 21",
		Speed:            "40 ft.",
		Selected:         true,
		Skills:           rules.DefaultSkills(),
		Senses:           map[string]string{"darkvision": "60 ft."},
	}
	card.SetAbilityScore(dnd5e.AbilityStrength, 20)
	card.SetAbilityScore(dnd5e.AbilityDexterity, 12)
	card.SetAbilityScore(dnd5e.AbilityConstitution, 17)
	card.SetAbilityScore(dnd5e.AbilityIntelligence, 3)
	card.SetAbilityScore(dnd5e.AbilityWisdom, 12)
	card.SetAbilityScore(dnd5e.AbilityCharisma, 7)
	card.Skills[dnd5e.SkillPerception] = dnd5e.Skill{Proficiency: dnd5e.ProficiencyProficient, Modifier: 3}
	return card
}
