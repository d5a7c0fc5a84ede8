package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

const portfolioColumns = `id, title_th, title_en, description_th, description_en,
	client_name, client_industry, technologies, images, demo_url, github_url,
	category, completed_date, featured, is_active`

func (r *SQLiteRepo) ListItems(ctx context.Context) ([]models.PortfolioItem, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+portfolioColumns+` FROM portfolio_items ORDER BY completed_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PortfolioItem{}
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetItem(ctx context.Context, id string) (*models.PortfolioItem, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+portfolioColumns+` FROM portfolio_items WHERE id = ?`, id)
	it, err := scanItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *SQLiteRepo) CreateItem(ctx context.Context, it *models.PortfolioItem) (string, error) {
	if it == nil {
		return "", fmt.Errorf("portfolio item is nil")
	}
	if it.ID == "" {
		it.ID = fmt.Sprintf("portfolio_%d", time.Now().UTC().UnixMilli())
	}

	tech, images, err := encodeLists(it)
	if err != nil {
		return "", err
	}

	ts := now()
	_, err = r.conn.Exec(ctx, `INSERT INTO portfolio_items
		(id, title_th, title_en, description_th, description_en, client_name, client_industry,
		 technologies, images, demo_url, github_url, category, completed_date, featured, is_active, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Title.Th, it.Title.En, it.Description.Th, it.Description.En,
		it.Client.Name, it.Client.Industry, tech, images, it.DemoURL, it.GithubURL,
		string(it.Category), it.CompletedDate, boolToInt(it.Featured), boolToInt(it.IsActive), ts, ts)
	if err != nil {
		return "", err
	}

	return it.ID, nil
}

func (r *SQLiteRepo) UpdateItem(ctx context.Context, it *models.PortfolioItem) error {
	if it == nil || it.ID == "" {
		return fmt.Errorf("portfolio item id is required")
	}

	tech, images, err := encodeLists(it)
	if err != nil {
		return err
	}

	res, err := r.conn.Exec(ctx, `UPDATE portfolio_items
		SET title_th = ?, title_en = ?, description_th = ?, description_en = ?,
		    client_name = ?, client_industry = ?, technologies = ?, images = ?,
		    demo_url = ?, github_url = ?, category = ?, completed_date = ?,
		    featured = ?, is_active = ?, updated = ?
		WHERE id = ?`,
		it.Title.Th, it.Title.En, it.Description.Th, it.Description.En,
		it.Client.Name, it.Client.Industry, tech, images, it.DemoURL, it.GithubURL,
		string(it.Category), it.CompletedDate, boolToInt(it.Featured), boolToInt(it.IsActive),
		now(), it.ID)
	if err != nil {
		return err
	}

	return requireAffected(res)
}

func (r *SQLiteRepo) SetItemFlags(ctx context.Context, id string, featured, isActive *bool) error {
	if featured == nil && isActive == nil {
		return fmt.Errorf("no flags to update")
	}

	query := `UPDATE portfolio_items SET updated = ?`
	args := []any{now()}
	if featured != nil {
		query += `, featured = ?`
		args = append(args, boolToInt(*featured))
	}
	if isActive != nil {
		query += `, is_active = ?`
		args = append(args, boolToInt(*isActive))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	return requireAffected(res)
}

func (r *SQLiteRepo) DeleteItem(ctx context.Context, id string) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM portfolio_items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return requireAffected(res)
}

// requireAffected maps a zero-row UPDATE/DELETE to ErrNotFound. Using the
// affected-row count keeps the existence check and the mutation in one
// statement, so there is no check-then-act window.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func encodeLists(it *models.PortfolioItem) (tech string, images string, err error) {
	tb, err := json.Marshal(nonNil(it.Technologies))
	if err != nil {
		return "", "", fmt.Errorf("encode technologies: %w", err)
	}
	ib, err := json.Marshal(nonNil(it.Images))
	if err != nil {
		return "", "", fmt.Errorf("encode images: %w", err)
	}

	return string(tb), string(ib), nil
}

func scanItem(scan func(dest ...any) error) (*models.PortfolioItem, error) {
	var it models.PortfolioItem
	var tech, images, category string
	var featured, isActive int
	err := scan(&it.ID, &it.Title.Th, &it.Title.En, &it.Description.Th, &it.Description.En,
		&it.Client.Name, &it.Client.Industry, &tech, &images, &it.DemoURL, &it.GithubURL,
		&category, &it.CompletedDate, &featured, &isActive)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tech), &it.Technologies); err != nil {
		return nil, fmt.Errorf("decode technologies for %s: %w", it.ID, err)
	}
	if err := json.Unmarshal([]byte(images), &it.Images); err != nil {
		return nil, fmt.Errorf("decode images for %s: %w", it.ID, err)
	}
	it.Category = models.Category(category)
	it.Featured = featured == 1
	it.IsActive = isActive == 1

	return &it, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
