package model

// Build is a saved loadout referencing catalog entries by ID.
// It is the form stored in the database and encoded into share codes.
type Build struct {
	Name          string      `yaml:"name"`
	ToolActive    bool        `yaml:"tool_active,omitempty"`
	Items         []BuildItem `yaml:"items"`
	Augmentations []int       `yaml:"augmentations,omitempty"`
}

// BuildItem is one occupied slot of a build.
type BuildItem struct {
	ItemID        int      `yaml:"item_id"`
	ItemType      ItemType `yaml:"item_type"`
	Active        bool     `yaml:"active"`
	EquippedLevel int      `yaml:"equipped_level,omitempty"`
	Decorations   []int    `yaml:"decorations,omitempty"`
}
