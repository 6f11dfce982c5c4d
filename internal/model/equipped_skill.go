package model

import "github.com/udisondev/mhwbuild/internal/data"

// EquippedSkill хранит итоговое состояние одного скилла в сборке.
// Exactly one entry exists per skill ID in a result; contributions accumulate into it.
type EquippedSkill struct {
	ID          string
	Name        string
	Description string
	Skill       *data.SkillDefinition

	// TotalLevelCount is the level cap. Raised (never lowered) by skills with RaiseSkillID.
	TotalLevelCount int
	// SecretLevelCount is how many levels the cap was raised by.
	SecretLevelCount int

	// Per-slot breakdown
	WeaponCount int
	HeadCount   int
	ChestCount  int
	HandsCount  int
	LegsCount   int
	FeetCount   int
	CharmCount  int
	ToolCount   int

	// Tool decorations: inactive ones are tracked per tool but excluded from EquippedCount.
	EquippedTool1Count      int
	EquippedTool2Count      int
	EquippedToolActiveCount int

	EquippedArmorCount int
	EquippedCount      int

	IsSetBonus    bool
	IsNatureBonus bool
}

// ActiveLevel returns the level that actually applies, clamped to the cap.
func (s *EquippedSkill) ActiveLevel() int {
	return min(s.EquippedCount, s.TotalLevelCount)
}

// IsMaxed returns true when the equipped count reaches the cap.
func (s *EquippedSkill) IsMaxed() bool {
	return s.TotalLevelCount > 0 && s.EquippedCount >= s.TotalLevelCount
}

// RecountEquipped recomputes EquippedCount from armor and active-tool counts.
func (s *EquippedSkill) RecountEquipped() {
	s.EquippedCount = s.EquippedArmorCount + s.EquippedToolActiveCount
}

// AddSlotCount attributes a contribution to the slot counter for itemType.
// Unknown item types are ignored.
func (s *EquippedSkill) AddSlotCount(itemType ItemType, count int) {
	switch itemType {
	case ItemTypeWeapon:
		s.WeaponCount += count
	case ItemTypeHead:
		s.HeadCount += count
	case ItemTypeChest:
		s.ChestCount += count
	case ItemTypeHands:
		s.HandsCount += count
	case ItemTypeLegs:
		s.LegsCount += count
	case ItemTypeFeet:
		s.FeetCount += count
	case ItemTypeCharm:
		s.CharmCount += count
	case ItemTypeTool1, ItemTypeTool2:
		s.ToolCount += count
	}
}
