package model

import "github.com/udisondev/mhwbuild/internal/data"

// EquippedSetBonusDetail is one tier of a set bonus as shown to the player.
type EquippedSetBonusDetail struct {
	RequiredCount int
	Skill         *data.SkillDefinition
}

// EquippedSetBonus describes a set bonus with at least one marked piece equipped.
type EquippedSetBonus struct {
	ID            string
	Name          string
	EquippedCount int

	// Presence flags: 1 if at least one piece of the slot carries the marker.
	HeadCount  int
	ChestCount int
	HandsCount int
	LegsCount  int
	FeetCount  int

	Details []EquippedSetBonusDetail
}

// Active reports whether the detail's tier is reached.
func (b *EquippedSetBonus) Active(d EquippedSetBonusDetail) bool {
	return b.EquippedCount >= d.RequiredCount
}

// ActiveTiers returns the number of reached tiers.
func (b *EquippedSetBonus) ActiveTiers() int {
	n := 0
	for _, d := range b.Details {
		if b.Active(d) {
			n++
		}
	}
	return n
}
