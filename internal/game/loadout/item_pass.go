package loadout

import "github.com/udisondev/mhwbuild/internal/model"

// addItemSkills stacks every positive skill level of every item, multiplied by its equipped level.
func addItemSkills(acc *accumulator, items []*model.Item) error {
	for _, item := range items {
		if item == nil {
			continue
		}
		mult := item.Multiplier()

		for _, ref := range item.Skills {
			if ref.Level <= 0 {
				continue
			}

			s, _, err := acc.lookupOrCreate(ref.ID, capFromDefinition)
			if err != nil {
				return err
			}

			count := ref.Level * mult
			s.EquippedArmorCount = sumLevels(s.EquippedArmorCount, count)
			s.RecountEquipped()
			s.AddSlotCount(item.ItemType, count)
		}
	}
	return nil
}
