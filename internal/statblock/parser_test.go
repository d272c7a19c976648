package statblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/normalize"
	"github.com/dmtoolbox/inserts-api/internal/pkg/idgen"
	"github.com/dmtoolbox/inserts-api/internal/statblock"
)

const owlbearBlock = `Owlbear
Large Monstrosity, Unaligned
Armor Class 13 (natural armor)
Hit Points 59 (7d10 + 21)
Speed 40 ft.
STR
20 (+5)
DEX
12 (+1)
CON
17 (+3)
INT
3 (−4)
WIS
12 (+1)
CHA
7 (−2)
Skills Perception +3
Senses darkvision 60 ft., passive Perception 13
Languages —
CR 3
Proficiency Bonus +2
Keen Sight and Smell. The owlbear has advantage on Wisdom (Perception) checks that rely on sight or smell.
Actions
Multiattack. The owlbear makes two attacks: one with its beak and one with its claws.
Beak. Melee Weapon Attack: +7 to hit, reach 5 ft., one creature. Hit: 10 (1d10 + 5) piercing damage.
`

func TestParseOwlbear(t *testing.T) {
	result := statblock.Parse(owlbearBlock)

	assert.Equal(t, "Owlbear", result["name"])
	assert.Equal(t, "monster", result["cardType"])
	assert.Equal(t, "Large", result["monsterSize"])
	assert.Equal(t, "Monstrosity", result["monsterType"])
	assert.Equal(t, 13, result["ac"])
	assert.Equal(t, "natural armor", result["acType"])
	assert.Equal(t, 59, result["hp"])
	assert.Equal(t, "7d10 + 21", result["hpFormula"])
	assert.Equal(t, "40 ft.", result["speed"])
	assert.Equal(t, "3", result["cr"])
	assert.Equal(t, 2, result["proficiencyBonus"])

	assert.Equal(t, 20, result["str"])
	assert.Equal(t, 12, result["dex"])
	assert.Equal(t, 17, result["con"])
	assert.Equal(t, 3, result["int"])
	assert.Equal(t, 12, result["wis"])
	assert.Equal(t, 7, result["cha"])

	assert.Equal(t, "darkvision 60 ft., passive Perception 13", result["senses"])
	assert.Equal(t, "—", result["languages"])

	skills, ok := result["skills"].(map[string]any)
	require.True(t, ok)
	perception, ok := skills["perception"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, perception["modifier"])

	traits, _ := result["traits"].(string)
	assert.Contains(t, traits, "Keen Sight and Smell")

	actions, _ := result["actions"].(string)
	assert.Contains(t, actions, "Multiattack")
	assert.Contains(t, actions, "Beak")
	assert.NotContains(t, traits, "Multiattack")
}

func TestParseTypeLineWithTag(t *testing.T) {
	result := statblock.Parse("Balor\nHuge Fiend (demon), Chaotic Evil\nArmor Class 19")

	assert.Equal(t, "Huge", result["monsterSize"])
	assert.Equal(t, "Fiend", result["monsterType"])
	assert.Equal(t, "demon", result["monsterTypeTag"])
}

func TestParseSavingThrows(t *testing.T) {
	result := statblock.Parse("Lich\nMedium Undead, Neutral Evil\nSaving Throws Con +10, Int +12, Wis +9")

	assert.Equal(t, 10, result["savingThrowCon"])
	assert.Equal(t, 12, result["savingThrowInt"])
	assert.Equal(t, 9, result["savingThrowWis"])
	assert.NotContains(t, result, "savingThrowStr")
}

func TestParseSkillsLongestLabelWins(t *testing.T) {
	result := statblock.Parse("Spy\nMedium Humanoid, Any\nSkills Sleight of Hand +4, Perception +6, Stealth +4")

	skills, ok := result["skills"].(map[string]any)
	require.True(t, ok)

	sleight, ok := skills["sleightOfHand"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4, sleight["modifier"])
	assert.Contains(t, skills, "perception")
	assert.Contains(t, skills, "stealth")
}

func TestParseNegativeBonus(t *testing.T) {
	result := statblock.Parse("Zombie\nMedium Undead, Neutral Evil\nSaving Throws Wis −2")

	assert.Equal(t, -2, result["savingThrowWis"])
}

func TestParseDamageLists(t *testing.T) {
	result := statblock.Parse(`Balor
Huge Fiend (demon), Chaotic Evil
Damage Resistances cold, lightning; bludgeoning, piercing, and slashing from nonmagical attacks
Damage Immunities fire, poison
Condition Immunities poisoned`)

	assert.Equal(t, []any{"cold", "lightning", "bludgeoning", "piercing", "and slashing from nonmagical attacks"},
		result["damageResistances"])
	assert.Equal(t, []any{"fire", "poison"}, result["damageImmunities"])
	assert.Equal(t, []any{"poisoned"}, result["conditionImmunities"])
}

func TestParseSkipsRoleAndStatLines(t *testing.T) {
	result := statblock.Parse(`Goblin
Small Humanoid (goblinoid), Neutral Evil
CR 1/4
Skirmisher
XP 50
STR
8 (−1)
Sneaky trait text here for flavor purposes only right now`)

	assert.Equal(t, "1/4", result["cr"])
	assert.Equal(t, 8, result["str"])
	traits, _ := result["traits"].(string)
	assert.NotContains(t, traits, "Skirmisher")
	assert.NotContains(t, traits, "XP")
}

func TestParsedBlockNormalizes(t *testing.T) {
	n := normalize.New(&normalize.Config{IDGen: idgen.NewSequential("card")})
	card := n.Normalize(statblock.Parse(owlbearBlock))

	assert.Equal(t, dnd5e.CardTypeMonster, card.CardType)
	assert.Equal(t, "Owlbear", card.Name)
	assert.Equal(t, dnd5e.MonsterSizeLarge, card.MonsterSize)
	assert.Equal(t, 59, card.HP)
	assert.Equal(t, "60 ft.", card.Senses["darkvision"])
	assert.Empty(t, card.Languages)
	assert.Equal(t, 3, card.Skills[dnd5e.SkillPerception].Modifier)
}
