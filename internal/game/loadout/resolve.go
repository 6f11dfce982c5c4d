package loadout

import (
	"fmt"

	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

// EquipmentCatalog resolves stored builds into equipment.
type EquipmentCatalog interface {
	GetItem(id int) (*data.ItemDefinition, error)
	GetDecoration(id int) (*data.DecorationDefinition, error)
	GetAugmentation(id int) (*data.AugmentationDefinition, error)
}

// Resolve turns a build of catalog IDs into aggregation input.
// The slot from the build wins over the catalog item type, so tools can be placed in either tool slot.
func Resolve(cat EquipmentCatalog, b model.Build) (Input, error) {
	in := Input{
		Items:      make([]*model.Item, 0, len(b.Items)),
		ToolActive: b.ToolActive,
	}

	for _, bi := range b.Items {
		def, err := cat.GetItem(bi.ItemID)
		if err != nil {
			return Input{}, fmt.Errorf("resolving build %q: %w", b.Name, err)
		}

		itemType := bi.ItemType
		if itemType == "" {
			itemType = model.ItemType(def.Type)
		}

		in.Items = append(in.Items, &model.Item{
			ID:            def.ID,
			Name:          def.Name,
			ItemType:      itemType,
			Active:        bi.Active,
			EquippedLevel: bi.EquippedLevel,
			Skills:        skillRefs(def.Skills),
		})

		for _, decoID := range bi.Decorations {
			deco, err := cat.GetDecoration(decoID)
			if err != nil {
				return Input{}, fmt.Errorf("resolving build %q: %w", b.Name, err)
			}
			in.Decorations = append(in.Decorations, &model.Decoration{
				ID:       deco.ID,
				Name:     deco.Name,
				ItemType: itemType,
				Skills:   skillRefs(deco.Skills),
			})
		}
	}

	for _, augID := range b.Augmentations {
		def, err := cat.GetAugmentation(augID)
		if err != nil {
			return Input{}, fmt.Errorf("resolving build %q: %w", b.Name, err)
		}
		aug := &model.Augmentation{
			ID:     def.ID,
			Name:   def.Name,
			Levels: make([]model.AugmentationLevel, len(def.Levels)),
		}
		for i, tier := range def.Levels {
			aug.Levels[i] = model.AugmentationLevel{Level: tier.Level, Skills: skillRefs(tier.Skills)}
		}
		in.Augmentations = append(in.Augmentations, aug)
	}

	return in, nil
}

func skillRefs(grants []data.SkillGrant) []model.SkillRef {
	if len(grants) == 0 {
		return nil
	}
	refs := make([]model.SkillRef, len(grants))
	for i, g := range grants {
		refs[i] = model.SkillRef{ID: g.ID, Level: g.Level}
	}
	return refs
}
