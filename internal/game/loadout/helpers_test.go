package loadout

import (
	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/model"
)

// newTestCatalog builds the catalog used by engine tests.
func newTestCatalog() *data.Catalog {
	agitator := data.TestSkill("agitator", 7)
	agitator.MaxLevel = 5
	secret := data.TestSkill("agitatorSecret", 1)
	secret.RaiseSkillID = "agitator"
	veilRaiser := data.TestSkill("veilRaiser", 1)
	veilRaiser.RaiseSkillID = "agitator"

	return data.MustCatalog(data.Definitions{
		Skills: []data.SkillDefinition{
			data.TestSkill("attackBoost", 7),
			data.TestSkill("criticalEye", 7),
			data.TestSkill("healthBoost", 3),
			agitator,
			secret,
			data.TestSkill("masterTouch", 1),
			data.TestSkill("fourPiece", 1),
			data.TestSkill("fivePiece", 1),
			data.TestSkill("frostcraft", 2),
			data.TestSkill("windproof", 5),
			data.TestSkill("earplugs", 5),
			data.TestSkill("tremorResistance", 3),
			data.TestSkill("flinchFree", 3),
			data.TestSkill("gaiasVeil", 1),
			data.TestSkill("trueGaiasVeil", 1),
			data.TestSkill("raisingVeil", 1),
			veilRaiser,
		},
		SetBonuses: []data.SetBonusDefinition{
			{ID: "rathalosMastery", Name: "Rathalos Mastery", SetLevels: []data.SetLevel{
				{Pieces: 3, ID: "agitatorSecret"},
				{Pieces: 5, ID: "masterTouch"},
			}},
			{ID: "testSet", Name: "Test Set", SetLevels: []data.SetLevel{
				{Pieces: 4, ID: "fourPiece"},
				{Pieces: 5, ID: "fivePiece"},
			}},
			{ID: "velkhanaDivinity", Name: "Velkhana Divinity", SetLevels: []data.SetLevel{
				{Pieces: 2, ID: "frostcraft"},
				{Pieces: 4, ID: "frostcraft"},
			}},
			{ID: "gaiaEssence", Name: "Gaia Essence", SetLevels: []data.SetLevel{
				{Pieces: 2, ID: "gaiasVeil"},
				{Pieces: 4, ID: "trueGaiasVeil"},
			}},
			{ID: "raisingSet", Name: "Raising Set", SetLevels: []data.SetLevel{
				{Pieces: 2, ID: "raisingVeil"},
			}},
		},
		NatureBonuses: []data.NatureBonusDefinition{
			{SetSkillID: "gaiasVeil", Skills: []data.SkillGrant{
				{ID: "windproof", Level: 3}, {ID: "earplugs", Level: 3},
				{ID: "tremorResistance", Level: 3}, {ID: "flinchFree", Level: 3},
			}},
			{SetSkillID: "trueGaiasVeil", Skills: []data.SkillGrant{
				{ID: "windproof", Level: 5}, {ID: "earplugs", Level: 5},
				{ID: "tremorResistance", Level: 3}, {ID: "flinchFree", Level: 3},
			}},
			{SetSkillID: "raisingVeil", Skills: []data.SkillGrant{
				{ID: "veilRaiser", Level: 1},
			}},
		},
	})
}

func ref(id string, level int) model.SkillRef {
	return model.SkillRef{ID: id, Level: level}
}

func marker(setID string) model.SkillRef {
	return model.SkillRef{ID: setID}
}

func equip(itemType model.ItemType, skills ...model.SkillRef) *model.Item {
	return &model.Item{ItemType: itemType, Active: true, Skills: skills}
}

func jewel(itemType model.ItemType, skills ...model.SkillRef) *model.Decoration {
	return &model.Decoration{ItemType: itemType, Skills: skills}
}

func augment(id int, tiers ...[]model.SkillRef) *model.Augmentation {
	a := &model.Augmentation{ID: id}
	for i, skills := range tiers {
		a.Levels = append(a.Levels, model.AugmentationLevel{Level: i + 1, Skills: skills})
	}
	return a
}

// setPieces returns n armor pieces carrying setID, cycling through the armor slots.
func setPieces(setID string, n int) []*model.Item {
	slots := []model.ItemType{model.ItemTypeHead, model.ItemTypeChest, model.ItemTypeHands, model.ItemTypeLegs, model.ItemTypeFeet}
	items := make([]*model.Item, n)
	for i := range n {
		items[i] = equip(slots[i%len(slots)], marker(setID))
	}
	return items
}
