package loadout

import (
	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

// setPart records that an item in slot itemType carries marker id.
type setPart struct {
	id       string
	itemType model.ItemType
}

// slotPresence holds 0/1 flags per armor slot.
type slotPresence struct {
	head, chest, hands, legs, feet int
}

func presenceOf(parts []setPart, id string) slotPresence {
	var p slotPresence
	for _, part := range parts {
		if part.id != id || !part.itemType.IsArmor() {
			continue
		}
		switch part.itemType {
		case model.ItemTypeHead:
			p.head = 1
		case model.ItemTypeChest:
			p.chest = 1
		case model.ItemTypeHands:
			p.hands = 1
		case model.ItemTypeLegs:
			p.legs = 1
		case model.ItemTypeFeet:
			p.feet = 1
		}
	}
	return p
}

// addSetSkills grants set-bonus tier skills reached by the number of marked pieces,
// then nature bonuses for reached tiers while a tool is active.
// Returns one EquippedSetBonus per marker in first-seen order.
func (e *Engine) addSetSkills(acc *accumulator, items []*model.Item, toolActive bool) ([]*model.EquippedSetBonus, error) {
	var (
		parts  []setPart
		order  []string
		counts = make(map[string]int)
	)
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, ref := range item.Skills {
			if !ref.IsSetMarker() {
				continue
			}
			parts = append(parts, setPart{id: ref.ID, itemType: item.ItemType})
			if counts[ref.ID] == 0 {
				order = append(order, ref.ID)
			}
			counts[ref.ID]++
		}
	}

	bonuses := make([]*model.EquippedSetBonus, 0, len(order))
	for _, setID := range order {
		def, err := e.catalog.GetSetBonus(setID)
		if err != nil {
			return nil, err
		}

		pieces := counts[setID]
		presence := presenceOf(parts, setID)

		for _, lvl := range def.SetLevels {
			if lvl.Pieces > pieces {
				continue
			}

			s, created, err := acc.lookupOrCreate(lvl.ID, capFromLevels)
			if err != nil {
				return nil, err
			}
			if created {
				s.HeadCount = presence.head
				s.ChestCount = presence.chest
				s.HandsCount = presence.hands
				s.LegsCount = presence.legs
				s.FeetCount = presence.feet
				s.IsSetBonus = true
				s.EquippedCount = 1
				s.EquippedArmorCount = 1
				acc.raise(s.Skill)
			} else {
				// Higher tier of an already granted skill: fixed escalation.
				s.EquippedCount = 2
				s.EquippedArmorCount = 2
			}

			if toolActive {
				if err := addNatureSkills(acc, e.catalog.NatureBonus(lvl.ID)); err != nil {
					return nil, err
				}
			}
		}

		bonus, err := e.equippedSetBonus(def, pieces, presence)
		if err != nil {
			return nil, err
		}
		bonuses = append(bonuses, bonus)
	}

	return bonuses, nil
}

func (e *Engine) equippedSetBonus(def *data.SetBonusDefinition, pieces int, p slotPresence) (*model.EquippedSetBonus, error) {
	bonus := &model.EquippedSetBonus{
		ID:            def.ID,
		Name:          def.Name,
		EquippedCount: pieces,
		HeadCount:     p.head,
		ChestCount:    p.chest,
		HandsCount:    p.hands,
		LegsCount:     p.legs,
		FeetCount:     p.feet,
		Details:       make([]model.EquippedSetBonusDetail, 0, len(def.SetLevels)),
	}
	for _, lvl := range def.SetLevels {
		skill, err := e.catalog.GetSkill(lvl.ID)
		if err != nil {
			return nil, err
		}
		bonus.Details = append(bonus.Details, model.EquippedSetBonusDetail{
			RequiredCount: lvl.Pieces,
			Skill:         skill,
		})
	}
	return bonus, nil
}

// addNatureSkills applies conditional grants. An existing stronger source suppresses the
// nature flag, and the resulting count is the maximum, never the sum.
func addNatureSkills(acc *accumulator, grants []data.SkillGrant) error {
	for _, g := range grants {
		s, created, err := acc.lookupOrCreate(g.ID, capFromLevels)
		if err != nil {
			return err
		}
		if created {
			s.IsNatureBonus = true
			s.EquippedCount = g.Level
			s.EquippedArmorCount = g.Level
			acc.raise(s.Skill)
			continue
		}

		if !s.IsNatureBonus {
			s.IsNatureBonus = s.EquippedCount <= g.Level
		}
		s.EquippedCount = maxLevels(s.EquippedCount, g.Level)
		s.EquippedArmorCount = maxLevels(s.EquippedArmorCount, g.Level)
	}
	return nil
}
