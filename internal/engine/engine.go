// Package engine derives the displayed card from its stored inputs. Derive
// is deterministic, side-effect free, and total: fields it cannot safely
// compute keep their stored values so a half-filled card still renders.
package engine

import (
	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

// Derive computes every derived value for a card. The result is built fresh
// from the inputs on every call — derived values are never read back in, so
// repeated derivation cannot drift.
func Derive(in *dnd5e.InsertInputs) *dnd5e.Insert {
	out := &dnd5e.Insert{
		InsertInputs: *in.Clone(),
		SkillValues:  make(map[dnd5e.SkillName]int, len(dnd5e.SkillNames)),
	}

	if in.CardType == dnd5e.CardTypePlayer {
		derivePlayer(out)
	} else {
		deriveMonster(out)
	}

	return out
}

// derivePlayer recomputes proficiency bonus, max HP, and darkvision unless
// the matching override flag keeps the manual value, then fills every skill
// with its raw bonus. Passive display adds 10 at the presentation boundary.
func derivePlayer(out *dnd5e.Insert) {
	if !out.ProficiencyBonusOverride && out.Level > 0 {
		out.ProficiencyBonus = rules.ProficiencyBonusForLevel(out.Level)
	}

	if !out.MaxHPOverride && out.Level > 0 && out.Class != "" && out.Con != 0 {
		out.HP = rules.MaxHP(out.Level, out.Class, out.Con)
	}

	if !out.DarkvisionOverride && out.Race != "" {
		out.Darkvision = rules.DarkvisionForRace(out.Race)
	}

	for _, name := range dnd5e.SkillNames {
		if out.AbilityScore(rules.AbilityForSkill(name)) == 0 {
			continue
		}
		out.SkillValues[name] = rules.SkillBonusFor(&out.InsertInputs, name, out.ProficiencyBonus)
	}
}

// deriveMonster fills skill values in one of two modes. Calculated mode
// computes bonuses from ability scores and the stat block's proficiency
// bonus; manual mode copies the stored per-skill modifiers verbatim, which
// is how parsed stat blocks arrive. An unset skillMode falls back to
// inference: all-zero modifiers with a positive proficiency bonus means the
// card was built in the form and wants calculation.
func deriveMonster(out *dnd5e.Insert) {
	if monsterSkillMode(&out.InsertInputs) == dnd5e.SkillModeCalculated {
		for _, name := range dnd5e.SkillNames {
			if out.AbilityScore(rules.AbilityForSkill(name)) == 0 {
				continue
			}
			entry := out.Skills[name]
			score := out.AbilityScore(rules.AbilityForSkill(name))
			out.SkillValues[name] = rules.SkillBonus(score, entry.Proficiency, out.ProficiencyBonus, 0)
		}
		return
	}

	for _, name := range dnd5e.SkillNames {
		out.SkillValues[name] = out.Skills[name].Modifier
	}
}

func monsterSkillMode(in *dnd5e.InsertInputs) dnd5e.SkillMode {
	if in.SkillMode != "" {
		return in.SkillMode
	}

	for _, name := range dnd5e.SkillNames {
		if in.Skills[name].Modifier != 0 {
			return dnd5e.SkillModeManual
		}
	}
	if in.ProficiencyBonus > 0 {
		return dnd5e.SkillModeCalculated
	}
	return dnd5e.SkillModeManual
}

// ApplyHitDice fills a monster's HP and dice formula from a hit-dice count,
// using the size's hit die and the monster's CON modifier. Independent of
// the skill mode decision; non-positive counts clear both fields.
func ApplyHitDice(in *dnd5e.InsertInputs, numDice int) {
	die := rules.HitDieForMonsterSize(in.MonsterSize)
	conMod := rules.AbilityModifier(in.Con)
	in.HP = rules.EstimateMonsterHP(numDice, die, conMod)
	in.HPFormula = rules.HPFormula(numDice, die, conMod)
}
