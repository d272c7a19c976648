package dnd5e

// CardType distinguishes the two insert shapes.
type CardType string

// Card types
const (
	CardTypePlayer  CardType = "player"
	CardTypeMonster CardType = "monster"
)

// Size selects the printed card dimensions.
type Size string

// Card sizes
const (
	SizeSmall Size = "small"
	SizeLarge Size = "large"
)

// Ability identifies one of the six core ability scores.
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// ProficiencyTier classifies how a skill scales the base proficiency bonus.
type ProficiencyTier string

// Proficiency tiers
const (
	ProficiencyNone       ProficiencyTier = "none"
	ProficiencyHalf       ProficiencyTier = "half"
	ProficiencyProficient ProficiencyTier = "proficient"
	ProficiencyExpert     ProficiencyTier = "expert"
)

// SkillName identifies one of the 18 fixed skills.
type SkillName string

// Skill names
const (
	SkillAcrobatics     SkillName = "acrobatics"
	SkillAnimalHandling SkillName = "animalHandling"
	SkillArcana         SkillName = "arcana"
	SkillAthletics      SkillName = "athletics"
	SkillDeception      SkillName = "deception"
	SkillHistory        SkillName = "history"
	SkillInsight        SkillName = "insight"
	SkillIntimidation   SkillName = "intimidation"
	SkillInvestigation  SkillName = "investigation"
	SkillMedicine       SkillName = "medicine"
	SkillNature         SkillName = "nature"
	SkillPerception     SkillName = "perception"
	SkillPerformance    SkillName = "performance"
	SkillPersuasion     SkillName = "persuasion"
	SkillReligion       SkillName = "religion"
	SkillSleightOfHand  SkillName = "sleightOfHand"
	SkillStealth        SkillName = "stealth"
	SkillSurvival       SkillName = "survival"
)

// SkillNames lists every skill in stat-block order.
var SkillNames = []SkillName{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillArcana,
	SkillAthletics,
	SkillDeception,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillReligion,
	SkillSleightOfHand,
	SkillStealth,
	SkillSurvival,
}

// SkillMode selects how a monster's skill values are produced.
// Empty means the mode is inferred from the stored data: all-zero
// modifiers with a positive proficiency bonus selects calculated mode.
type SkillMode string

// Skill modes
const (
	SkillModeUnset      SkillMode = ""
	SkillModeManual     SkillMode = "manual"
	SkillModeCalculated SkillMode = "calculated"
)

// MonsterSize is the creature size category on a stat block.
type MonsterSize string

// Monster sizes
const (
	MonsterSizeTiny       MonsterSize = "Tiny"
	MonsterSizeSmall      MonsterSize = "Small"
	MonsterSizeMedium     MonsterSize = "Medium"
	MonsterSizeLarge      MonsterSize = "Large"
	MonsterSizeHuge       MonsterSize = "Huge"
	MonsterSizeGargantuan MonsterSize = "Gargantuan"
)

// MonsterSizes lists the valid size categories smallest first.
var MonsterSizes = []MonsterSize{
	MonsterSizeTiny,
	MonsterSizeSmall,
	MonsterSizeMedium,
	MonsterSizeLarge,
	MonsterSizeHuge,
	MonsterSizeGargantuan,
}

// MonsterTypes lists the valid creature types.
var MonsterTypes = []string{
	"Aberration",
	"Beast",
	"Celestial",
	"Construct",
	"Dragon",
	"Elemental",
	"Fey",
	"Fiend",
	"Giant",
	"Humanoid",
	"Monstrosity",
	"Ooze",
	"Plant",
	"Undead",
}

// Classes lists the player classes with leveling tables.
var Classes = []string{
	"Barbarian",
	"Bard",
	"Cleric",
	"Druid",
	"Fighter",
	"Monk",
	"Paladin",
	"Ranger",
	"Rogue",
	"Sorcerer",
	"Warlock",
	"Wizard",
}

// Races lists the player races with darkvision tables.
var Races = []string{
	"Dragonborn",
	"Dwarf",
	"Elf",
	"Gnome",
	"Goliath",
	"Half-Elf",
	"Half-Orc",
	"Halfling",
	"Human",
	"Tabaxi",
	"Tiefling",
}
