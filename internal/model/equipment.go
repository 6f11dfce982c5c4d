package model

// ItemType определяет слот, в который экипирован предмет.
// Decorations carry the ItemType of the item they are socketed into.
type ItemType string

const (
	ItemTypeWeapon ItemType = "Weapon"
	ItemTypeHead   ItemType = "Head"
	ItemTypeChest  ItemType = "Chest"
	ItemTypeHands  ItemType = "Hands"
	ItemTypeLegs   ItemType = "Legs"
	ItemTypeFeet   ItemType = "Feet"
	ItemTypeCharm  ItemType = "Charm"
	ItemTypeTool1  ItemType = "Tool1"
	ItemTypeTool2  ItemType = "Tool2"
)

// IsTool returns true for both specialized tool slots.
func (it ItemType) IsTool() bool {
	return it == ItemTypeTool1 || it == ItemTypeTool2
}

// IsArmor returns true for the five armor slots that can carry set markers.
func (it ItemType) IsArmor() bool {
	switch it {
	case ItemTypeHead, ItemTypeChest, ItemTypeHands, ItemTypeLegs, ItemTypeFeet:
		return true
	default:
		return false
	}
}

// SkillRef is a (skill id, level) pair carried by items, decorations and augmentation tiers.
type SkillRef struct {
	ID    string `yaml:"id"`
	Level int    `yaml:"level"`
}

// IsSetMarker reports whether the ref marks membership in a set bonus rather than granting a skill.
// Markers have level 0 and a multi-character id.
func (r SkillRef) IsSetMarker() bool {
	return r.Level == 0 && len(r.ID) > 1
}

// Item is a piece of equipment placed into a slot of the build.
type Item struct {
	ID       int
	Name     string
	ItemType ItemType
	Active   bool

	// EquippedLevel multiplies skill levels (stackable charms). Zero means 1.
	EquippedLevel int

	Skills []SkillRef
}

// Multiplier returns the effective equipped level.
func (i *Item) Multiplier() int {
	if i.EquippedLevel > 0 {
		return i.EquippedLevel
	}
	return 1
}

// Decoration is a jewel socketed into an item.
// Active is overwritten from the parent item on every aggregation.
type Decoration struct {
	ID       int
	Name     string
	ItemType ItemType
	Active   bool
	Skills   []SkillRef
}

// AugmentationLevel is one tier of an augmentation.
type AugmentationLevel struct {
	Level  int        `yaml:"level"`
	Skills []SkillRef `yaml:"skills"`
}

// Augmentation is a weapon augmentation. Tiers are mutually exclusive.
type Augmentation struct {
	ID     int
	Name   string
	Levels []AugmentationLevel
}

// AnyToolActive reports whether at least one equipped tool is toggled on.
func AnyToolActive(items []*Item) bool {
	for _, it := range items {
		if it != nil && it.ItemType.IsTool() && it.Active {
			return true
		}
	}
	return false
}
