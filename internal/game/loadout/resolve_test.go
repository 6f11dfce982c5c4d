package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

func newResolveCatalog() *data.Catalog {
	return data.MustCatalog(data.Definitions{
		Items: []data.ItemDefinition{
			{ID: 10, Name: "Kaiser Crown", Type: "Head", Skills: []data.SkillGrant{{ID: "criticalEye", Level: 2}, {ID: "testSet", Level: 0}}},
			{ID: 20, Name: "Ghillie Mantle", Type: "Tool1"},
			{ID: 30, Name: "Attack Charm", Type: "Charm", Skills: []data.SkillGrant{{ID: "attackBoost", Level: 1}}},
		},
		Decorations: []data.DecorationDefinition{
			{ID: 1, Name: "Attack Jewel", Skills: []data.SkillGrant{{ID: "attackBoost", Level: 1}}},
		},
		Augmentations: []data.AugmentationDefinition{
			{ID: 5, Name: "Health Augment", Levels: []data.AugmentationTier{
				{Level: 1, Skills: []data.SkillGrant{{ID: "healthBoost", Level: 1}}},
				{Level: 2, Skills: []data.SkillGrant{{ID: "healthBoost", Level: 2}}},
			}},
		},
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	b := model.Build{
		Name:       "crit",
		ToolActive: true,
		Items: []model.BuildItem{
			{ItemID: 10, Active: true, Decorations: []int{1, 1}},
			{ItemID: 20, ItemType: model.ItemTypeTool2, Decorations: []int{1}},
			{ItemID: 30, Active: true, EquippedLevel: 4},
		},
		Augmentations: []int{5, 5},
	}

	in, err := Resolve(newResolveCatalog(), b)
	require.NoError(t, err)

	assert.True(t, in.ToolActive)
	require.Len(t, in.Items, 3)
	assert.Equal(t, model.ItemTypeHead, in.Items[0].ItemType)
	assert.Equal(t, "Kaiser Crown", in.Items[0].Name)
	assert.Equal(t, []model.SkillRef{{ID: "criticalEye", Level: 2}, {ID: "testSet", Level: 0}}, in.Items[0].Skills)
	// build slot overrides the catalog type
	assert.Equal(t, model.ItemTypeTool2, in.Items[1].ItemType)
	assert.Nil(t, in.Items[1].Skills)
	assert.Equal(t, 4, in.Items[2].EquippedLevel)

	require.Len(t, in.Decorations, 3)
	assert.Equal(t, model.ItemTypeHead, in.Decorations[0].ItemType)
	assert.Equal(t, model.ItemTypeTool2, in.Decorations[2].ItemType)

	require.Len(t, in.Augmentations, 2)
	assert.Len(t, in.Augmentations[0].Levels, 2)
	assert.Equal(t, 2, in.Augmentations[0].Levels[1].Skills[0].Level)
}

func TestResolve_UnknownIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build model.Build
		want  error
	}{
		{"item", model.Build{Items: []model.BuildItem{{ItemID: 99}}}, data.ErrItemNotFound},
		{"decoration", model.Build{Items: []model.BuildItem{{ItemID: 10, Decorations: []int{99}}}}, data.ErrDecorationNotFound},
		{"augmentation", model.Build{Augmentations: []int{99}}, data.ErrAugmentationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(newResolveCatalog(), tt.build)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolve_ShippedCatalogAggregates(t *testing.T) {
	cat, err := data.Load("../../../data")
	require.NoError(t, err)

	b := model.Build{
		Name:       "rathalos gaia",
		ToolActive: true,
		Items: []model.BuildItem{
			{ItemID: 1001, Active: true, Decorations: []int{2}},
			{ItemID: 1002, Active: true},
			{ItemID: 1003, Active: true},
			{ItemID: 1101, ItemType: model.ItemTypeLegs, Active: true},
			{ItemID: 1102, ItemType: model.ItemTypeFeet, Active: true},
			{ItemID: 4001, Active: true, Decorations: []int{3}},
		},
		Augmentations: []int{1, 1},
	}

	in, err := Resolve(cat, b)
	require.NoError(t, err)

	res, err := NewEngine(cat).Aggregate(in)
	require.NoError(t, err)

	ag := res.Skill("agitator")
	require.NotNil(t, ag)
	assert.Equal(t, 7, ag.TotalLevelCount)
	assert.Equal(t, 2, ag.SecretLevelCount)

	ep := res.Skill("earplugs")
	require.NotNil(t, ep)
	// Gaia helm 2 on legs + active mantle jewel 1, then nature bonus 3 takes the max
	assert.Equal(t, 3, ep.EquippedCount)
	assert.True(t, ep.IsNatureBonus)

	hb := res.Skill("healthBoost")
	require.NotNil(t, hb)
	assert.Equal(t, 2, hb.EquippedCount)

	assert.Len(t, res.SetBonuses, 2)
}
