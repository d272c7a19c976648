package normalize

import (
	"strings"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// applyLegacySkillFields migrates the flat pre-skills-map format, where
// each skill was stored as a prof<Skill>/mod<Skill> field pair
// (e.g. "profPerception", "modStealth"), into the skills map. The
// structured skills object, applied afterwards, wins over these.
func applyLegacySkillFields(obj map[string]any, skills map[dnd5e.SkillName]dnd5e.Skill) {
	for _, name := range dnd5e.SkillNames {
		suffix := legacyFieldSuffix(name)

		entry := skills[name]
		migrated := false

		if tier, ok := obj["prof"+suffix]; ok {
			entry.Proficiency = tierValue(tier)
			migrated = true
		}
		if mod, ok := obj["mod"+suffix]; ok {
			entry.Modifier = intValue(mod, 0)
			migrated = true
		}

		if migrated {
			skills[name] = entry
		}
	}
}

// legacyFieldSuffix upper-cases the first letter of the camelCase skill
// name: perception -> Perception, sleightOfHand -> SleightOfHand.
func legacyFieldSuffix(name dnd5e.SkillName) string {
	s := string(name)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
