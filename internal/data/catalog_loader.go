package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Catalog file names inside the data directory.
const (
	SkillsFile        = "skills.yaml"
	SetBonusesFile    = "set_bonuses.yaml"
	NatureBonusesFile = "nature_bonuses.yaml"
	ItemsFile         = "items.yaml"
	DecorationsFile   = "decorations.yaml"
	AugmentationsFile = "augmentations.yaml"
)

// Load reads all catalog files from dir and builds a Catalog.
// skills.yaml and set_bonuses.yaml are required, the rest may be absent.
func Load(dir string) (*Catalog, error) {
	start := time.Now()
	var defs Definitions

	var g errgroup.Group
	g.Go(func() error { return readYAML(filepath.Join(dir, SkillsFile), &defs.Skills, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, SetBonusesFile), &defs.SetBonuses, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, NatureBonusesFile), &defs.NatureBonuses, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, ItemsFile), &defs.Items, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, DecorationsFile), &defs.Decorations, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, AugmentationsFile), &defs.Augmentations, false) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat, err := NewCatalog(defs)
	if err != nil {
		return nil, fmt.Errorf("indexing catalog %s: %w", dir, err)
	}

	skills, setBonuses, items, decorations, augmentations := cat.Counts()
	slog.Info("loaded catalog",
		"dir", dir,
		"skills", skills,
		"set_bonuses", setBonuses,
		"nature_bonuses", len(defs.NatureBonuses),
		"items", items,
		"decorations", decorations,
		"augmentations", augmentations,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return cat, nil
}

func readYAML[T any](path string, out *[]T, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			slog.Debug("optional catalog file missing", "path", path)
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
