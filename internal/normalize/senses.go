package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	passivePerceptionPattern = regexp.MustCompile(`(?i)passive\s+perception\s+(\d+)`)
	senseRangePattern        = regexp.MustCompile(`(?i)^([a-z\s]+?)\s+(\d+\s*ft\.?)$`)
)

// normalizeSenses accepts either an already-structured sense map or the
// legacy free-text form ("darkvision 60 ft., passive Perception 14"). A
// passive Perception clause is extracted rather than stored as a sense;
// the caller folds it into the perception skill modifier.
func normalizeSenses(raw any) (map[string]string, *int) {
	switch v := raw.(type) {
	case map[string]any:
		senses := make(map[string]string, len(v))
		for name, rng := range v {
			if s, ok := rng.(string); ok {
				senses[name] = s
			}
		}
		return senses, nil
	case string:
		return parseSensesText(v)
	default:
		return map[string]string{}, nil
	}
}

// parseSensesText splits free text into comma-separated clauses. A clause
// naming a sense with a range becomes a map entry; anything unrecognized is
// kept verbatim with an empty range rather than dropped.
func parseSensesText(text string) (map[string]string, *int) {
	senses := map[string]string{}
	var passivePerception *int

	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if match := passivePerceptionPattern.FindStringSubmatch(part); match != nil {
			if n, err := strconv.Atoi(match[1]); err == nil {
				passivePerception = &n
			}
			continue
		}

		if match := senseRangePattern.FindStringSubmatch(part); match != nil {
			name := strings.ToLower(strings.TrimSpace(match[1]))
			senses[name] = strings.TrimSpace(match[2])
			continue
		}

		senses[part] = ""
	}

	return senses, passivePerception
}
