// Package loadout computes the active skills of an equipment build.
//
// An aggregation runs a linking pre-pass and four sequential passes over one
// shared skill table: items, decorations, set bonuses (with nature bonuses)
// and augmentations. Each source category merges differently: items and
// decorations stack, nature bonuses take the maximum, augmentations override
// only upward, set bonuses escalate by tier.
package loadout

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

// Catalog is the reference data the engine reads. Lookups of unknown IDs must fail.
type Catalog interface {
	GetSkill(id string) (*data.SkillDefinition, error)
	GetSetBonus(id string) (*data.SetBonusDefinition, error)
	NatureBonus(setSkillID string) []data.SkillGrant
}

// Input is everything one aggregation depends on.
type Input struct {
	Items         []*model.Item
	Decorations   []*model.Decoration
	Augmentations []*model.Augmentation

	// ToolActive enables nature bonuses.
	ToolActive bool
}

// Result is an immutable snapshot of one aggregation.
type Result struct {
	Skills     []*model.EquippedSkill
	SetBonuses []*model.EquippedSetBonus
}

// Skill returns the entry for id, or nil.
func (r *Result) Skill(id string) *model.EquippedSkill {
	for _, s := range r.Skills {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SetBonus returns the set bonus for id, or nil.
func (r *Result) SetBonus(id string) *model.EquippedSetBonus {
	for _, b := range r.SetBonuses {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Engine aggregates builds against a catalog. It holds no per-call state.
type Engine struct {
	catalog Catalog
}

// NewEngine creates an engine reading from catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Aggregate computes the equipped skills and set bonuses of in.
// Decoration Active flags are overwritten from their parent items.
// Any catalog miss aborts the whole call; no partial result is returned.
func (e *Engine) Aggregate(in Input) (*Result, error) {
	linkDecorations(in.Items, in.Decorations)

	acc := newAccumulator(e.catalog)

	if err := addItemSkills(acc, in.Items); err != nil {
		return nil, fmt.Errorf("adding item skills: %w", err)
	}
	if err := addDecorationSkills(acc, in.Decorations); err != nil {
		return nil, fmt.Errorf("adding decoration skills: %w", err)
	}
	setBonuses, err := e.addSetSkills(acc, in.Items, in.ToolActive)
	if err != nil {
		return nil, fmt.Errorf("adding set skills: %w", err)
	}
	if err := addAugmentationSkills(acc, in.Augmentations); err != nil {
		return nil, fmt.Errorf("adding augmentation skills: %w", err)
	}

	res := &Result{
		Skills:     acc.skills(),
		SetBonuses: setBonuses,
	}
	slog.Debug("aggregated loadout",
		"items", len(in.Items),
		"decorations", len(in.Decorations),
		"augmentations", len(in.Augmentations),
		"tool_active", in.ToolActive,
		"skills", len(res.Skills),
		"set_bonuses", len(res.SetBonuses))
	return res, nil
}

// linkDecorations copies each item's Active flag onto decorations socketed into its slot.
func linkDecorations(items []*model.Item, decorations []*model.Decoration) {
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, d := range decorations {
			if d != nil && d.ItemType == item.ItemType {
				d.Active = item.Active
			}
		}
	}
}
