package data

import (
	"errors"
	"fmt"
)

var (
	ErrSkillNotFound        = errors.New("skill not found")
	ErrSetBonusNotFound     = errors.New("set bonus not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrDecorationNotFound   = errors.New("decoration not found")
	ErrAugmentationNotFound = errors.New("augmentation not found")
)

// SkillLevel describes the effect of a single skill level.
type SkillLevel struct {
	Level       int    `yaml:"level"`
	Description string `yaml:"description"`
}

// SkillDefinition содержит статическое описание скилла из каталога.
type SkillDefinition struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	MaxLevel    int          `yaml:"max_level,omitempty"`
	Levels      []SkillLevel `yaml:"levels"`

	// RaiseSkillID names a skill whose cap is lifted to its full level list
	// while this skill is granted by a set bonus.
	RaiseSkillID string `yaml:"raise_skill_id,omitempty"`
}

// LevelCap returns MaxLevel if set, otherwise the length of the level list.
func (s *SkillDefinition) LevelCap() int {
	if s.MaxLevel > 0 {
		return s.MaxLevel
	}
	return len(s.Levels)
}

// SetLevel is one tier of a set bonus: Pieces marked items grant skill ID.
type SetLevel struct {
	Pieces int    `yaml:"pieces"`
	ID     string `yaml:"id"`
}

// SetBonusDefinition describes a set bonus and its tiers in ascending piece order.
type SetBonusDefinition struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	SetLevels []SetLevel `yaml:"set_levels"`
}

// SkillGrant is a (skill id, level) pair in catalog data.
type SkillGrant struct {
	ID    string `yaml:"id"`
	Level int    `yaml:"level"`
}

// NatureBonusDefinition lists the skills granted while a tool is active
// and the set-level skill SetSkillID is reached.
type NatureBonusDefinition struct {
	SetSkillID string       `yaml:"set_skill_id"`
	Skills     []SkillGrant `yaml:"skills"`
}

// ItemDefinition is an armor piece, weapon, charm or tool.
type ItemDefinition struct {
	ID     int          `yaml:"id"`
	Name   string       `yaml:"name"`
	Type   string       `yaml:"type"`
	Rarity int          `yaml:"rarity,omitempty"`
	Slots  []int        `yaml:"slots,omitempty"`
	Skills []SkillGrant `yaml:"skills"`
	Tags   []string     `yaml:"tags,omitempty"`
}

// DecorationDefinition is a socketable jewel.
type DecorationDefinition struct {
	ID     int          `yaml:"id"`
	Name   string       `yaml:"name"`
	Level  int          `yaml:"level"`
	Skills []SkillGrant `yaml:"skills"`
}

// AugmentationTier is one tier of an augmentation definition.
type AugmentationTier struct {
	Level  int          `yaml:"level"`
	Skills []SkillGrant `yaml:"skills,omitempty"`
}

// AugmentationDefinition is a weapon augmentation with ordered tiers.
type AugmentationDefinition struct {
	ID     int                `yaml:"id"`
	Name   string             `yaml:"name"`
	Levels []AugmentationTier `yaml:"levels"`
}

// Catalog is the read-only reference data. Safe for concurrent reads after construction.
type Catalog struct {
	skills        map[string]*SkillDefinition
	setBonuses    map[string]*SetBonusDefinition
	natureBonuses map[string][]SkillGrant
	items         map[int]*ItemDefinition
	decorations   map[int]*DecorationDefinition
	augmentations map[int]*AugmentationDefinition
}

// Definitions groups raw catalog entries for NewCatalog.
type Definitions struct {
	Skills        []SkillDefinition
	SetBonuses    []SetBonusDefinition
	NatureBonuses []NatureBonusDefinition
	Items         []ItemDefinition
	Decorations   []DecorationDefinition
	Augmentations []AugmentationDefinition
}

// NewCatalog indexes definitions by ID. Duplicate IDs are rejected.
func NewCatalog(defs Definitions) (*Catalog, error) {
	c := &Catalog{
		skills:        make(map[string]*SkillDefinition, len(defs.Skills)),
		setBonuses:    make(map[string]*SetBonusDefinition, len(defs.SetBonuses)),
		natureBonuses: make(map[string][]SkillGrant, len(defs.NatureBonuses)),
		items:         make(map[int]*ItemDefinition, len(defs.Items)),
		decorations:   make(map[int]*DecorationDefinition, len(defs.Decorations)),
		augmentations: make(map[int]*AugmentationDefinition, len(defs.Augmentations)),
	}

	for i := range defs.Skills {
		s := &defs.Skills[i]
		if _, ok := c.skills[s.ID]; ok {
			return nil, fmt.Errorf("duplicate skill %q", s.ID)
		}
		c.skills[s.ID] = s
	}
	for i := range defs.SetBonuses {
		b := &defs.SetBonuses[i]
		if _, ok := c.setBonuses[b.ID]; ok {
			return nil, fmt.Errorf("duplicate set bonus %q", b.ID)
		}
		c.setBonuses[b.ID] = b
	}
	for _, n := range defs.NatureBonuses {
		if _, ok := c.natureBonuses[n.SetSkillID]; ok {
			return nil, fmt.Errorf("duplicate nature bonus for %q", n.SetSkillID)
		}
		c.natureBonuses[n.SetSkillID] = n.Skills
	}
	for i := range defs.Items {
		it := &defs.Items[i]
		if _, ok := c.items[it.ID]; ok {
			return nil, fmt.Errorf("duplicate item %d", it.ID)
		}
		c.items[it.ID] = it
	}
	for i := range defs.Decorations {
		d := &defs.Decorations[i]
		if _, ok := c.decorations[d.ID]; ok {
			return nil, fmt.Errorf("duplicate decoration %d", d.ID)
		}
		c.decorations[d.ID] = d
	}
	for i := range defs.Augmentations {
		a := &defs.Augmentations[i]
		if _, ok := c.augmentations[a.ID]; ok {
			return nil, fmt.Errorf("duplicate augmentation %d", a.ID)
		}
		c.augmentations[a.ID] = a
	}

	return c, nil
}

// GetSkill returns the skill definition by ID.
func (c *Catalog) GetSkill(id string) (*SkillDefinition, error) {
	s, ok := c.skills[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSkillNotFound, id)
	}
	return s, nil
}

// GetSetBonus returns the set bonus definition by ID.
func (c *Catalog) GetSetBonus(id string) (*SetBonusDefinition, error) {
	b, ok := c.setBonuses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetBonusNotFound, id)
	}
	return b, nil
}

// NatureBonus returns the skills granted by setSkillID while a tool is active.
// Returns nil if the set-level skill has no nature bonus.
func (c *Catalog) NatureBonus(setSkillID string) []SkillGrant {
	return c.natureBonuses[setSkillID]
}

// GetItem returns the item definition by ID.
func (c *Catalog) GetItem(id int) (*ItemDefinition, error) {
	it, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return it, nil
}

// GetDecoration returns the decoration definition by ID.
func (c *Catalog) GetDecoration(id int) (*DecorationDefinition, error) {
	d, ok := c.decorations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrDecorationNotFound, id)
	}
	return d, nil
}

// GetAugmentation returns the augmentation definition by ID.
func (c *Catalog) GetAugmentation(id int) (*AugmentationDefinition, error) {
	a, ok := c.augmentations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAugmentationNotFound, id)
	}
	return a, nil
}

// Counts returns entry counts for logging.
func (c *Catalog) Counts() (skills, setBonuses, items, decorations, augmentations int) {
	return len(c.skills), len(c.setBonuses), len(c.items), len(c.decorations), len(c.augmentations)
}
