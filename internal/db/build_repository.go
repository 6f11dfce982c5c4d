package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/mhwbuild/internal/model"
)

// BuildRepository stores named builds.
type BuildRepository struct {
	db *pgxpool.Pool
}

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(db *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{db: db}
}

// Save stores the build under its name, replacing any previous version.
// Everything is written in one transaction.
func (r *BuildRepository) Save(ctx context.Context, b model.Build) error {
	if b.Name == "" {
		return fmt.Errorf("saving build: empty name")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	var buildID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO builds (name, tool_active)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET tool_active = $2, updated_at = NOW()
		RETURNING id
	`, b.Name, b.ToolActive).Scan(&buildID)
	if err != nil {
		return fmt.Errorf("upserting build %q: %w", b.Name, err)
	}

	// Cascades to build_decorations
	if _, err := tx.Exec(ctx, `DELETE FROM build_items WHERE build_id = $1`, buildID); err != nil {
		return fmt.Errorf("deleting items of build %q: %w", b.Name, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM build_augmentations WHERE build_id = $1`, buildID); err != nil {
		return fmt.Errorf("deleting augmentations of build %q: %w", b.Name, err)
	}

	batch := &pgx.Batch{}
	for i, it := range b.Items {
		batch.Queue(`
			INSERT INTO build_items (build_id, position, item_id, item_type, active, equipped_level)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, buildID, i, it.ItemID, string(it.ItemType), it.Active, it.EquippedLevel)
		for j, decoID := range it.Decorations {
			batch.Queue(`
				INSERT INTO build_decorations (build_id, item_position, position, decoration_id)
				VALUES ($1, $2, $3, $4)
			`, buildID, i, j, decoID)
		}
	}
	for i, augID := range b.Augmentations {
		batch.Queue(`
			INSERT INTO build_augmentations (build_id, position, augmentation_id)
			VALUES ($1, $2, $3)
		`, buildID, i, augID)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting parts of build %q: %w", b.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing build %q: %w", b.Name, err)
	}

	slog.Debug("saved build", "name", b.Name, "items", len(b.Items), "augmentations", len(b.Augmentations))
	return nil
}

// Load returns the build stored under name.
// Returns ErrBuildNotFound if there is none.
func (r *BuildRepository) Load(ctx context.Context, name string) (model.Build, error) {
	b := model.Build{Name: name}

	var buildID int64
	err := r.db.QueryRow(ctx,
		`SELECT id, tool_active FROM builds WHERE name = $1`, name,
	).Scan(&buildID, &b.ToolActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Build{}, fmt.Errorf("%w: %q", ErrBuildNotFound, name)
		}
		return model.Build{}, fmt.Errorf("querying build %q: %w", name, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, item_type, active, equipped_level
		FROM build_items
		WHERE build_id = $1
		ORDER BY position
	`, buildID)
	if err != nil {
		return model.Build{}, fmt.Errorf("querying items of build %q: %w", name, err)
	}
	b.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BuildItem, error) {
		var it model.BuildItem
		var itemType string
		err := row.Scan(&it.ItemID, &itemType, &it.Active, &it.EquippedLevel)
		it.ItemType = model.ItemType(itemType)
		return it, err
	})
	if err != nil {
		return model.Build{}, fmt.Errorf("scanning items of build %q: %w", name, err)
	}
	if len(b.Items) == 0 {
		b.Items = nil
	}

	rows, err = r.db.Query(ctx, `
		SELECT item_position, decoration_id
		FROM build_decorations
		WHERE build_id = $1
		ORDER BY item_position, position
	`, buildID)
	if err != nil {
		return model.Build{}, fmt.Errorf("querying decorations of build %q: %w", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemPos, decoID int
		if err := rows.Scan(&itemPos, &decoID); err != nil {
			return model.Build{}, fmt.Errorf("scanning decoration row: %w", err)
		}
		if itemPos < 0 || itemPos >= len(b.Items) {
			return model.Build{}, fmt.Errorf("build %q: decoration references item position %d", name, itemPos)
		}
		b.Items[itemPos].Decorations = append(b.Items[itemPos].Decorations, decoID)
	}
	if err := rows.Err(); err != nil {
		return model.Build{}, fmt.Errorf("iterating decoration rows: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT augmentation_id
		FROM build_augmentations
		WHERE build_id = $1
		ORDER BY position
	`, buildID)
	if err != nil {
		return model.Build{}, fmt.Errorf("querying augmentations of build %q: %w", name, err)
	}
	b.Augmentations, err = pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return model.Build{}, fmt.Errorf("scanning augmentations of build %q: %w", name, err)
	}
	if len(b.Augmentations) == 0 {
		b.Augmentations = nil
	}

	return b, nil
}

// List returns the names of all stored builds in alphabetical order.
func (r *BuildRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM builds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning build names: %w", err)
	}
	return names, nil
}

// Delete removes the build stored under name.
// Returns ErrBuildNotFound if there is none.
func (r *BuildRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM builds WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting build %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", ErrBuildNotFound, name)
	}
	return nil
}
