package rules

// hitDieByClass maps each class to its hit die size.
var hitDieByClass = map[string]int{
	"Barbarian": 12,
	"Fighter":   10,
	"Paladin":   10,
	"Ranger":    10,
	"Bard":      8,
	"Cleric":    8,
	"Druid":     8,
	"Monk":      8,
	"Rogue":     8,
	"Warlock":   8,
	"Sorcerer":  6,
	"Wizard":    6,
}

// darkvisionByRace maps each race to its darkvision range in feet.
var darkvisionByRace = map[string]int{
	"Dragonborn": 0,
	"Dwarf":      60,
	"Elf":        60,
	"Gnome":      60,
	"Goliath":    0,
	"Half-Elf":   60,
	"Half-Orc":   60,
	"Halfling":   0,
	"Human":      0,
	"Tabaxi":     60,
	"Tiefling":   60,
}

// ProficiencyBonusForLevel returns the proficiency bonus for a character
// level. Levels below 1 return the level-1 bonus of 2.
func ProficiencyBonusForLevel(level int) int {
	switch {
	case level <= 4:
		return 2
	case level <= 8:
		return 3
	case level <= 12:
		return 4
	case level <= 16:
		return 5
	default:
		return 6
	}
}

// HitDieForClass returns the hit die size for a class name. Unknown classes
// get a d8.
func HitDieForClass(className string) int {
	if die, ok := hitDieByClass[className]; ok {
		return die
	}
	return 8
}

// MaxHP computes maximum hit points using the fixed (average, rounded up)
// per-level increase instead of rolled dice: a full die plus CON modifier at
// level 1, then fixedIncrease + CON modifier per additional level. Invalid
// levels return 0; very negative CON is clamped so the result is never
// below 1.
func MaxHP(level int, className string, conScore int) int {
	if level < 1 {
		return 0
	}

	hitDie := HitDieForClass(className)
	conMod := AbilityModifier(conScore)

	// Average die roll rounded up, i.e. ceil((hitDie+1)/2).
	fixedIncrease := (hitDie + 2) / 2

	level1HP := hitDie + conMod
	total := level1HP + (level-1)*(fixedIncrease+conMod)
	if total < 1 {
		return 1
	}
	return total
}

// DarkvisionForRace returns the darkvision range in feet for a race name.
// Unknown races see nothing in the dark.
func DarkvisionForRace(race string) int {
	return darkvisionByRace[race]
}
