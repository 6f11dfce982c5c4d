package loadout

import "github.com/udisondev/mhwbuild/internal/model"

// addDecorationSkills stacks decoration levels.
// Tool decorations count towards the total only while their tool is active;
// inactive ones are kept per tool so the UI can show what activation would add.
func addDecorationSkills(acc *accumulator, decorations []*model.Decoration) error {
	for _, d := range decorations {
		if d == nil {
			continue
		}

		for _, ref := range d.Skills {
			if ref.Level <= 0 {
				continue
			}

			s, _, err := acc.lookupOrCreate(ref.ID, capFromDefinition)
			if err != nil {
				return err
			}

			count := ref.Level
			switch {
			case d.ItemType.IsTool() && d.Active:
				s.EquippedToolActiveCount = sumLevels(s.EquippedToolActiveCount, count)
			case d.ItemType == model.ItemTypeTool1:
				s.EquippedTool1Count = sumLevels(s.EquippedTool1Count, count)
			case d.ItemType == model.ItemTypeTool2:
				s.EquippedTool2Count = sumLevels(s.EquippedTool2Count, count)
			default:
				s.EquippedArmorCount = sumLevels(s.EquippedArmorCount, count)
			}
			s.RecountEquipped()
			s.AddSlotCount(d.ItemType, count)
		}
	}
	return nil
}
