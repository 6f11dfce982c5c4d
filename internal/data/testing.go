package data

// TestSkill builds a SkillDefinition with n numbered levels.
// Intended for tests from other packages that need catalog setup.
func TestSkill(id string, levels int) SkillDefinition {
	s := SkillDefinition{
		ID:     id,
		Name:   id,
		Levels: make([]SkillLevel, levels),
	}
	for i := range s.Levels {
		s.Levels[i] = SkillLevel{Level: i + 1}
	}
	return s
}

// MustCatalog is NewCatalog that panics on duplicate IDs. Test setup only.
func MustCatalog(defs Definitions) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}
