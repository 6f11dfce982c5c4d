package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/mhwbuild/internal/model"
)

func TestPresenceOf(t *testing.T) {
	t.Parallel()

	parts := []setPart{
		{id: "testSet", itemType: model.ItemTypeHead},
		{id: "testSet", itemType: model.ItemTypeHead},
		{id: "testSet", itemType: model.ItemTypeFeet},
		{id: "testSet", itemType: model.ItemTypeWeapon},
		{id: "testSet", itemType: model.ItemTypeCharm},
		{id: "testSet", itemType: model.ItemTypeTool1},
		{id: "otherSet", itemType: model.ItemTypeChest},
	}

	tests := []struct {
		name string
		id   string
		want slotPresence
	}{
		{"armor slots only", "testSet", slotPresence{head: 1, feet: 1}},
		{"other set", "otherSet", slotPresence{chest: 1}},
		{"absent set", "gaiaEssence", slotPresence{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, presenceOf(parts, tt.id))
		})
	}

	nonArmor := []setPart{
		{id: "testSet", itemType: model.ItemTypeWeapon},
		{id: "testSet", itemType: model.ItemTypeCharm},
		{id: "testSet", itemType: model.ItemTypeTool2},
		{id: "testSet", itemType: model.ItemType("Back")},
	}
	assert.Equal(t, slotPresence{}, presenceOf(nonArmor, "testSet"))
}
