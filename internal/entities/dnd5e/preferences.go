package dnd5e

// SkillVisibility records which skill rows the user wants printed on the
// card. Keys are the fixed 18 skill names.
type SkillVisibility map[SkillName]bool

// UserPreferences is the stored preferences blob, kept separately from the
// card list.
type UserPreferences struct {
	SkillVisibility SkillVisibility `json:"skillVisibility"`
}

// DefaultSkillVisibility returns the out-of-the-box visibility set: the
// skills most tables track at a glance.
func DefaultSkillVisibility() SkillVisibility {
	visible := map[SkillName]bool{
		SkillArcana:        true,
		SkillInsight:       true,
		SkillInvestigation: true,
		SkillNature:        true,
		SkillPerception:    true,
		SkillStealth:       true,
		SkillSurvival:      true,
	}

	sv := make(SkillVisibility, len(SkillNames))
	for _, name := range SkillNames {
		sv[name] = visible[name]
	}
	return sv
}

// DefaultPreferences returns a fresh preferences record.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{SkillVisibility: DefaultSkillVisibility()}
}

// Normalize fills any missing skill keys from the defaults so the stored
// blob can lag behind the skill list without breaking callers.
func (p *UserPreferences) Normalize() {
	defaults := DefaultSkillVisibility()
	if p.SkillVisibility == nil {
		p.SkillVisibility = defaults
		return
	}
	for _, name := range SkillNames {
		if _, ok := p.SkillVisibility[name]; !ok {
			p.SkillVisibility[name] = defaults[name]
		}
	}
}
