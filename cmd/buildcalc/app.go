package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/mhwbuild/internal/config"
	"github.com/udisondev/mhwbuild/internal/data"
	"github.com/udisondev/mhwbuild/internal/db"
	"github.com/udisondev/mhwbuild/internal/game/loadout"
	"github.com/udisondev/mhwbuild/internal/model"
)

// app lazily opens the catalog and the database so that commands only pay for what they use.
type app struct {
	cfg config.BuildCalc
	out io.Writer

	cat     *data.Catalog
	service *loadout.Service
	db      *db.DB
}

func newApp(cfg config.BuildCalc, out io.Writer) *app {
	return &app{cfg: cfg, out: out}
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func (a *app) catalog() (*data.Catalog, error) {
	if a.cat != nil {
		return a.cat, nil
	}
	cat, err := data.Load(a.cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	a.cat = cat
	a.service = loadout.NewService(cat)
	return cat, nil
}

func (a *app) database(ctx context.Context) (*db.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	dsn := a.cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Debug("database connected", "host", a.cfg.Database.Host, "dbname", a.cfg.Database.DBName)
	a.db = database
	return database, nil
}

// aggregate resolves b against the catalog and recomputes it through the service.
// Nature bonuses apply when the build says so or any equipped tool is active.
func (a *app) aggregate(b model.Build) (*loadout.Result, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}
	in, err := loadout.Resolve(cat, b)
	if err != nil {
		return nil, err
	}
	in.ToolActive = in.ToolActive || model.AnyToolActive(in.Items)

	return a.service.Update(in)
}

func readBuildFile(path string) (model.Build, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Build{}, fmt.Errorf("reading build %s: %w", path, err)
	}
	var b model.Build
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return model.Build{}, fmt.Errorf("parsing build %s: %w", path, err)
	}
	return b, nil
}
