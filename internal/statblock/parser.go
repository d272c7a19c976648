// Package statblock scrapes free-text monster stat blocks into partial raw
// card data. The output is line-by-line best effort and always flows
// through the normalizer before becoming a card, so anything the scraper
// misses just falls back to defaults.
package statblock

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

var (
	sizePattern    = regexp.MustCompile(`(?i)^(Tiny|Small|Medium|Large|Huge|Gargantuan)\s+`)
	alignPattern   = regexp.MustCompile(`(?i), (Any|Lawful|Neutral|Chaotic|Good|Evil|Unaligned).*$`)
	tagPattern     = regexp.MustCompile(`\(([^)]+)\)`)
	crPattern      = regexp.MustCompile(`CR\s+([\d/]+)`)
	leadingNumber  = regexp.MustCompile(`^(\d+)`)
	bonusPattern   = regexp.MustCompile(`[+−-]\d+`)
	statLinePat    = regexp.MustCompile(`^\d+\s*\([−+\-\d]+\)$`)
	roleKeywords   = []string{"XP", "Controller", "Brute", "Skirmisher", "Defender", "Lurker"}
	abilityHeaders = map[string]string{
		"STR": "str", "DEX": "dex", "CON": "con",
		"INT": "int", "WIS": "wis", "CHA": "cha",
	}
	savingThrowKeys = map[string]string{
		"Str": "savingThrowStr", "Dex": "savingThrowDex", "Con": "savingThrowCon",
		"Int": "savingThrowInt", "Wis": "savingThrowWis", "Cha": "savingThrowCha",
	}
	skillLabels = map[string]dnd5e.SkillName{
		"Acrobatics":      dnd5e.SkillAcrobatics,
		"Animal Handling": dnd5e.SkillAnimalHandling,
		"Arcana":          dnd5e.SkillArcana,
		"Athletics":       dnd5e.SkillAthletics,
		"Deception":       dnd5e.SkillDeception,
		"History":         dnd5e.SkillHistory,
		"Insight":         dnd5e.SkillInsight,
		"Intimidation":    dnd5e.SkillIntimidation,
		"Investigation":   dnd5e.SkillInvestigation,
		"Medicine":        dnd5e.SkillMedicine,
		"Nature":          dnd5e.SkillNature,
		"Perception":      dnd5e.SkillPerception,
		"Performance":     dnd5e.SkillPerformance,
		"Persuasion":      dnd5e.SkillPersuasion,
		"Religion":        dnd5e.SkillReligion,
		"Sleight of Hand": dnd5e.SkillSleightOfHand,
		"Stealth":         dnd5e.SkillStealth,
		"Survival":        dnd5e.SkillSurvival,
	}
)

// Parse scrapes a stat block into raw card data keyed like the stored JSON
// format. The result is partial; feed it to the normalizer to obtain a
// complete record.
func Parse(text string) map[string]any {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	result := map[string]any{
		"cardType": string(dnd5e.CardTypeMonster),
		"size":     string(dnd5e.SizeSmall),
	}
	skills := map[string]any{}

	section := ""
	var traits, actions, bonusActions []string

	for i, line := range lines {
		switch line {
		case "Actions":
			section = "actions"
			continue
		case "Bonus Actions":
			section = "bonusActions"
			continue
		case "Reactions":
			section = "reactions"
			continue
		}

		if i == 0 {
			result["name"] = line
			continue
		}

		if i == 1 && containsMonsterType(line) {
			parseTypeLine(line, result)
			continue
		}

		if ok := parsePrefixedLine(line, result, skills); ok {
			continue
		}

		if target, ok := abilityHeaders[line]; ok && i+1 < len(lines) {
			if match := leadingNumber.FindString(lines[i+1]); match != "" {
				if n, err := strconv.Atoi(match); err == nil {
					result[target] = n
				}
			}
			continue
		}

		if skipLine(line) {
			continue
		}

		switch section {
		case "actions":
			actions = append(actions, line)
		case "bonusActions":
			bonusActions = append(bonusActions, line)
		case "":
			// After the stat table, before Actions, everything is a trait.
			if i > 5 {
				traits = append(traits, line)
			}
		}
	}

	if len(skills) > 0 {
		result["skills"] = skills
	}
	if len(traits) > 0 {
		result["traits"] = strings.Join(traits, "\n")
	}
	if len(actions) > 0 {
		result["actions"] = strings.Join(actions, "\n")
	}
	if len(bonusActions) > 0 {
		result["bonusActions"] = strings.Join(bonusActions, "\n")
	}

	return result
}

// parsePrefixedLine handles the "Label rest-of-line" stat rows. Reports
// whether the line was consumed.
func parsePrefixedLine(line string, result map[string]any, skills map[string]any) bool {
	switch {
	case strings.HasPrefix(line, "CR "):
		if match := crPattern.FindStringSubmatch(line); match != nil {
			result["cr"] = match[1]
		}

	case strings.HasPrefix(line, "Armor Class "):
		rest := strings.TrimPrefix(line, "Armor Class ")
		if match := leadingNumber.FindString(rest); match != "" {
			if n, err := strconv.Atoi(match); err == nil {
				result["ac"] = n
			}
		}
		if match := tagPattern.FindStringSubmatch(rest); match != nil {
			result["acType"] = match[1]
		}

	case strings.HasPrefix(line, "Hit Points "):
		rest := strings.TrimPrefix(line, "Hit Points ")
		if match := leadingNumber.FindString(rest); match != "" {
			if n, err := strconv.Atoi(match); err == nil {
				result["hp"] = n
			}
		}
		if match := tagPattern.FindStringSubmatch(rest); match != nil {
			result["hpFormula"] = match[1]
		}

	case strings.HasPrefix(line, "Speed "):
		result["speed"] = strings.TrimPrefix(line, "Speed ")

	case strings.HasPrefix(line, "Saving Throws "):
		parseSavingThrows(strings.TrimPrefix(line, "Saving Throws "), result)

	case strings.HasPrefix(line, "Skills "):
		parseSkills(strings.TrimPrefix(line, "Skills "), skills)

	case strings.HasPrefix(line, "Damage Immunities "):
		result["damageImmunities"] = splitClauses(strings.TrimPrefix(line, "Damage Immunities "))

	case strings.HasPrefix(line, "Damage Resistances "):
		result["damageResistances"] = splitClauses(strings.TrimPrefix(line, "Damage Resistances "))

	case strings.HasPrefix(line, "Damage Vulnerabilities "):
		result["damageVulnerabilities"] = splitClauses(strings.TrimPrefix(line, "Damage Vulnerabilities "))

	case strings.HasPrefix(line, "Condition Immunities "):
		result["conditionImmunities"] = splitClauses(strings.TrimPrefix(line, "Condition Immunities "))

	case strings.HasPrefix(line, "Senses "):
		// Free text; the normalizer parses ranges and passive Perception.
		result["senses"] = strings.TrimPrefix(line, "Senses ")

	case strings.HasPrefix(line, "Languages "):
		result["languages"] = strings.TrimPrefix(line, "Languages ")

	case strings.HasPrefix(line, "Proficiency Bonus "):
		rest := strings.TrimPrefix(line, "Proficiency Bonus ")
		if n, err := strconv.Atoi(strings.TrimPrefix(rest, "+")); err == nil {
			result["proficiencyBonus"] = n
		}

	default:
		return false
	}
	return true
}

// parseTypeLine splits "Large Fiend (demon), Chaotic Evil" into size, base
// type, and tag.
func parseTypeLine(line string, result map[string]any) {
	fullType := alignPattern.ReplaceAllString(line, "")

	sizeMatch := sizePattern.FindStringSubmatch(fullType)
	if sizeMatch == nil {
		return
	}

	size := strings.ToUpper(sizeMatch[1][:1]) + strings.ToLower(sizeMatch[1][1:])
	for _, valid := range dnd5e.MonsterSizes {
		if dnd5e.MonsterSize(size) == valid {
			result["monsterSize"] = size
			break
		}
	}

	typeText := strings.TrimSpace(fullType[len(sizeMatch[0]):])
	baseType := strings.TrimSpace(strings.SplitN(typeText, "(", 2)[0])
	for _, valid := range dnd5e.MonsterTypes {
		if strings.EqualFold(baseType, valid) {
			result["monsterType"] = valid
			break
		}
	}

	if match := tagPattern.FindStringSubmatch(typeText); match != nil {
		result["monsterTypeTag"] = strings.TrimSpace(match[1])
	}
}

func parseSavingThrows(text string, result map[string]any) {
	for _, clause := range strings.Split(text, ",") {
		clause = strings.TrimSpace(clause)
		for label, key := range savingThrowKeys {
			if strings.HasPrefix(clause, label) {
				if bonus, ok := parseBonus(clause); ok {
					result[key] = bonus
				}
				break
			}
		}
	}
}

// parseSkills records each "Perception +13" clause as a pre-calculated
// skill modifier. Longer labels are matched first so "Sleight of Hand"
// does not lose to a prefix.
func parseSkills(text string, skills map[string]any) {
	for _, clause := range strings.Split(text, ",") {
		clause = strings.TrimSpace(clause)

		var matched dnd5e.SkillName
		matchedLen := 0
		for label, name := range skillLabels {
			if strings.HasPrefix(clause, label) && len(label) > matchedLen {
				matched = name
				matchedLen = len(label)
			}
		}
		if matchedLen == 0 {
			continue
		}

		if bonus, ok := parseBonus(clause); ok {
			skills[string(matched)] = map[string]any{
				"proficiency": string(dnd5e.ProficiencyNone),
				"modifier":    bonus,
			}
		}
	}
}

// parseBonus extracts a signed bonus like "+13" or "−2" (handling the
// typographic minus stat blocks often use).
func parseBonus(text string) (int, bool) {
	match := bonusPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, "−", "-"))
	if err != nil {
		return 0, false
	}
	return n, true
}

func splitClauses(text string) []any {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsMonsterType(line string) bool {
	for _, t := range dnd5e.MonsterTypes {
		if strings.Contains(line, t) {
			return true
		}
	}
	return false
}

func skipLine(line string) bool {
	for _, keyword := range roleKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return statLinePat.MatchString(line)
}
