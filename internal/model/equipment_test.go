package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillRef_IsSetMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  SkillRef
		want bool
	}{
		{"set marker", SkillRef{ID: "rathalosMastery"}, true},
		{"skill with level", SkillRef{ID: "attackBoost", Level: 1}, false},
		{"single character id", SkillRef{ID: "x"}, false},
		{"empty", SkillRef{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.ref.IsSetMarker())
		})
	}
}

func TestItem_Multiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, (&Item{}).Multiplier())
	assert.Equal(t, 1, (&Item{EquippedLevel: -2}).Multiplier())
	assert.Equal(t, 3, (&Item{EquippedLevel: 3}).Multiplier())
}

func TestAnyToolActive(t *testing.T) {
	t.Parallel()

	assert.False(t, AnyToolActive(nil))
	assert.False(t, AnyToolActive([]*Item{
		{ItemType: ItemTypeHead, Active: true},
		{ItemType: ItemTypeTool1, Active: false},
		nil,
	}))
	assert.True(t, AnyToolActive([]*Item{{ItemType: ItemTypeTool2, Active: true}}))
}

func TestItemType_Classification(t *testing.T) {
	t.Parallel()

	assert.True(t, ItemTypeTool1.IsTool())
	assert.True(t, ItemTypeTool2.IsTool())
	assert.False(t, ItemTypeCharm.IsTool())

	for _, it := range []ItemType{ItemTypeHead, ItemTypeChest, ItemTypeHands, ItemTypeLegs, ItemTypeFeet} {
		assert.True(t, it.IsArmor(), it)
	}
	assert.False(t, ItemTypeWeapon.IsArmor())
	assert.False(t, ItemType("Back").IsArmor())
}

func TestEquippedSkill_AddSlotCount(t *testing.T) {
	t.Parallel()

	var s EquippedSkill
	for _, it := range []ItemType{
		ItemTypeWeapon, ItemTypeHead, ItemTypeChest, ItemTypeHands,
		ItemTypeLegs, ItemTypeFeet, ItemTypeCharm, ItemTypeTool1, ItemTypeTool2,
		ItemType("Back"),
	} {
		s.AddSlotCount(it, 1)
	}

	assert.Equal(t, 1, s.WeaponCount)
	assert.Equal(t, 1, s.HeadCount)
	assert.Equal(t, 1, s.ChestCount)
	assert.Equal(t, 1, s.HandsCount)
	assert.Equal(t, 1, s.LegsCount)
	assert.Equal(t, 1, s.FeetCount)
	assert.Equal(t, 1, s.CharmCount)
	assert.Equal(t, 2, s.ToolCount)
}

func TestEquippedSkill_Levels(t *testing.T) {
	t.Parallel()

	s := EquippedSkill{EquippedArmorCount: 4, EquippedToolActiveCount: 2, EquippedTool1Count: 5, TotalLevelCount: 5}
	s.RecountEquipped()

	assert.Equal(t, 6, s.EquippedCount)
	assert.Equal(t, 5, s.ActiveLevel())
	assert.True(t, s.IsMaxed())

	s.TotalLevelCount = 0
	assert.False(t, s.IsMaxed())
}

func TestEquippedSetBonus_ActiveTiers(t *testing.T) {
	t.Parallel()

	b := EquippedSetBonus{
		EquippedCount: 3,
		Details:       []EquippedSetBonusDetail{{RequiredCount: 2}, {RequiredCount: 3}, {RequiredCount: 5}},
	}
	assert.True(t, b.Active(b.Details[1]))
	assert.False(t, b.Active(b.Details[2]))
	assert.Equal(t, 2, b.ActiveTiers())
}
