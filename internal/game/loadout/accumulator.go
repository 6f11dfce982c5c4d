package loadout

import (
	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

// levelCap picks the initial TotalLevelCount for a newly created entry.
type levelCap func(def *data.SkillDefinition) int

// capFromDefinition honours the catalog MaxLevel. Used by item and decoration sources.
func capFromDefinition(def *data.SkillDefinition) int { return def.LevelCap() }

// capFromLevels uses the full level list. Used by set, nature and augmentation sources.
func capFromLevels(def *data.SkillDefinition) int { return len(def.Levels) }

// merge combines an accumulated count with one source's contribution.
type merge func(current, contribution int) int

// sumLevels stacks contributions (items, decorations).
func sumLevels(current, contribution int) int { return current + contribution }

// maxLevels keeps the stronger value (nature bonuses).
func maxLevels(current, contribution int) int { return max(current, contribution) }

// overrideLevels replaces the current value only when the contribution is strictly greater (augmentations).
func overrideLevels(current, contribution int) int {
	if contribution > current {
		return contribution
	}
	return current
}

// accumulator is the keyed skill table shared by all passes of one aggregation.
// Entries keep insertion order so results are stable across identical calls.
type accumulator struct {
	catalog Catalog
	byID    map[string]*model.EquippedSkill
	order   []*model.EquippedSkill
}

func newAccumulator(catalog Catalog) *accumulator {
	return &accumulator{
		catalog: catalog,
		byID:    make(map[string]*model.EquippedSkill, 32),
		order:   make([]*model.EquippedSkill, 0, 32),
	}
}

func (a *accumulator) find(id string) *model.EquippedSkill {
	return a.byID[id]
}

// lookupOrCreate returns the entry for id, creating it from the catalog on first use.
func (a *accumulator) lookupOrCreate(id string, capRule levelCap) (*model.EquippedSkill, bool, error) {
	if s, ok := a.byID[id]; ok {
		return s, false, nil
	}

	def, err := a.catalog.GetSkill(id)
	if err != nil {
		return nil, false, err
	}

	s := &model.EquippedSkill{
		ID:              def.ID,
		Name:            def.Name,
		Description:     def.Description,
		Skill:           def,
		TotalLevelCount: capRule(def),
	}
	a.byID[id] = s
	a.order = append(a.order, s)
	return s, true, nil
}

// raise lifts the cap of the skill named by def.RaiseSkillID to its full level list,
// if that skill is already present. The cap never decreases.
func (a *accumulator) raise(def *data.SkillDefinition) {
	if def.RaiseSkillID == "" {
		return
	}
	target := a.find(def.RaiseSkillID)
	if target == nil || target.Skill == nil {
		return
	}
	full := len(target.Skill.Levels)
	if full <= target.TotalLevelCount {
		return
	}
	target.SecretLevelCount = full - target.TotalLevelCount
	target.TotalLevelCount = full
}

// skills returns the accumulated entries in insertion order.
func (a *accumulator) skills() []*model.EquippedSkill {
	return a.order
}
