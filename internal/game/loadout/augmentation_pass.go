package loadout

import (
	"log/slog"

	"github.com/udisondev/mhwbuild/internal/model"
)

// addAugmentationSkills applies the selected tier of every augmentation.
// Equipping the same augmentation N times selects tier N. Augmentation levels never
// stack with other sources: they only raise EquippedCount when strictly greater.
func addAugmentationSkills(acc *accumulator, augmentations []*model.Augmentation) error {
	var order []int
	groups := make(map[int][]*model.Augmentation)
	for _, aug := range augmentations {
		if aug == nil {
			continue
		}
		if _, ok := groups[aug.ID]; !ok {
			order = append(order, aug.ID)
		}
		groups[aug.ID] = append(groups[aug.ID], aug)
	}

	for _, id := range order {
		group := groups[id]
		levels := group[0].Levels
		selected := len(group) - 1
		if selected >= len(levels) {
			slog.Debug("augmentation tier out of range", "augmentation_id", id, "selected", selected+1, "tiers", len(levels))
			continue
		}

		for _, ref := range levels[selected].Skills {
			s, created, err := acc.lookupOrCreate(ref.ID, capFromLevels)
			if err != nil {
				return err
			}
			if created {
				s.EquippedCount = ref.Level
				continue
			}
			s.EquippedCount = overrideLevels(s.EquippedCount, ref.Level)
		}
	}
	return nil
}
