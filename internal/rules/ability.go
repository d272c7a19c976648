// Package rules holds the pure calculation primitives for insert cards:
// ability arithmetic, leveling tables, skill bonuses, and monster hit point
// estimation. Every function is total — malformed input produces a
// documented default, never an error.
package rules

import (
	"fmt"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// AbilityModifier converts an ability score to its modifier:
// floor((score - 10) / 2). Defined for any integer score.
func AbilityModifier(score int) int {
	return floorDiv(score-10, 2)
}

// ProficiencyContribution scales the base proficiency bonus by the tier
// multiplier (none 0, half 0.5, proficient 1, expert 2), flooring the half
// tier. Unknown tiers contribute nothing.
func ProficiencyContribution(tier dnd5e.ProficiencyTier, baseBonus int) int {
	switch tier {
	case dnd5e.ProficiencyHalf:
		return floorDiv(baseBonus, 2)
	case dnd5e.ProficiencyProficient:
		return baseBonus
	case dnd5e.ProficiencyExpert:
		return baseBonus * 2
	default:
		return 0
	}
}

// SkillBonus is the final skill number: ability modifier plus the scaled
// proficiency bonus plus any manual modifier.
func SkillBonus(abilityScore int, tier dnd5e.ProficiencyTier, baseBonus, manualMod int) int {
	return AbilityModifier(abilityScore) + ProficiencyContribution(tier, baseBonus) + manualMod
}

// Passive converts a skill bonus to its passive value. The +10 transform is
// applied only here, at the display boundary — stored and derived skill
// values are always raw bonuses.
func Passive(skillBonus int) int {
	return 10 + skillBonus
}

// FormatModifier renders a bonus with an explicit sign, e.g. "+3" or "-1".
func FormatModifier(modifier int) string {
	if modifier >= 0 {
		return fmt.Sprintf("+%d", modifier)
	}
	return fmt.Sprintf("%d", modifier)
}

// floorDiv divides rounding toward negative infinity. Go's integer division
// truncates toward zero, which is wrong for negative modifiers.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
