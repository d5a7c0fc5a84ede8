package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/logicton/siteapi/pkg/models"
)

// Migrate applies any SQL files in the embedded migrations directory that
// have not yet been recorded in the schema_migrations table. The filename
// (without extension) is the migration version key.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS) error {
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	return nil
}

// SeedPortfolio inserts the starter portfolio rows from the embedded seed
// file. Existing rows with the same id are left untouched, so seeding is
// idempotent and never overwrites edits.
func SeedPortfolio(ctx context.Context, d *DB, seedFS embed.FS) error {
	b, err := fs.ReadFile(seedFS, path.Join("seed", "portfolio.json"))
	if err != nil {
		// no seed file shipped, nothing to do
		return nil
	}

	var items []models.PortfolioItem
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("parse portfolio seed: %w", err)
	}

	now := time.Now().UTC().UnixMilli()
	for _, it := range items {
		tech, err := json.Marshal(it.Technologies)
		if err != nil {
			return fmt.Errorf("encode technologies for %s: %w", it.ID, err)
		}
		images, err := json.Marshal(it.Images)
		if err != nil {
			return fmt.Errorf("encode images for %s: %w", it.ID, err)
		}
		_, err = d.Exec(ctx, `INSERT OR IGNORE INTO portfolio_items
			(id, title_th, title_en, description_th, description_en, client_name, client_industry,
			 technologies, images, demo_url, github_url, category, completed_date, featured, is_active, created, updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.Title.Th, it.Title.En, it.Description.Th, it.Description.En,
			it.Client.Name, it.Client.Industry, string(tech), string(images),
			it.DemoURL, it.GithubURL, string(it.Category), it.CompletedDate,
			boolToInt(it.Featured), boolToInt(it.IsActive), now, now)
		if err != nil {
			return fmt.Errorf("seed portfolio item %s: %w", it.ID, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
