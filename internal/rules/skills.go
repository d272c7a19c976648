package rules

import (
	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// abilityBySkill fixes the ability each of the 18 skills keys off.
var abilityBySkill = map[dnd5e.SkillName]dnd5e.Ability{
	dnd5e.SkillAcrobatics:     dnd5e.AbilityDexterity,
	dnd5e.SkillAnimalHandling: dnd5e.AbilityWisdom,
	dnd5e.SkillArcana:         dnd5e.AbilityIntelligence,
	dnd5e.SkillAthletics:      dnd5e.AbilityStrength,
	dnd5e.SkillDeception:      dnd5e.AbilityCharisma,
	dnd5e.SkillHistory:        dnd5e.AbilityIntelligence,
	dnd5e.SkillInsight:        dnd5e.AbilityWisdom,
	dnd5e.SkillIntimidation:   dnd5e.AbilityCharisma,
	dnd5e.SkillInvestigation:  dnd5e.AbilityIntelligence,
	dnd5e.SkillMedicine:       dnd5e.AbilityWisdom,
	dnd5e.SkillNature:         dnd5e.AbilityIntelligence,
	dnd5e.SkillPerception:     dnd5e.AbilityWisdom,
	dnd5e.SkillPerformance:    dnd5e.AbilityCharisma,
	dnd5e.SkillPersuasion:     dnd5e.AbilityCharisma,
	dnd5e.SkillReligion:       dnd5e.AbilityIntelligence,
	dnd5e.SkillSleightOfHand:  dnd5e.AbilityDexterity,
	dnd5e.SkillStealth:        dnd5e.AbilityDexterity,
	dnd5e.SkillSurvival:       dnd5e.AbilityWisdom,
}

// AbilityForSkill returns the ability a skill keys off. Unknown skills fall
// back to Wisdom, though callers should stick to the fixed skill name set.
func AbilityForSkill(skill dnd5e.SkillName) dnd5e.Ability {
	if ability, ok := abilityBySkill[skill]; ok {
		return ability
	}
	return dnd5e.AbilityWisdom
}

// DefaultSkills builds a complete skills map with every one of the 18
// skills present, unproficient, and unmodified. Cards must never carry a
// partial skills map.
func DefaultSkills() map[dnd5e.SkillName]dnd5e.Skill {
	skills := make(map[dnd5e.SkillName]dnd5e.Skill, len(dnd5e.SkillNames))
	for _, name := range dnd5e.SkillNames {
		skills[name] = dnd5e.Skill{Proficiency: dnd5e.ProficiencyNone}
	}
	return skills
}

// SkillBonusFor computes a named skill's bonus from a card's ability scores.
func SkillBonusFor(in *dnd5e.InsertInputs, skill dnd5e.SkillName, baseBonus int) int {
	entry := in.Skills[skill]
	score := in.AbilityScore(AbilityForSkill(skill))
	return SkillBonus(score, entry.Proficiency, baseBonus, entry.Modifier)
}
