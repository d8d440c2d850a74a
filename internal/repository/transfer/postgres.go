// Package transfer is the persistence side of bulk import: it runs one
// whole import inside a single database transaction so readers never
// observe the half-applied state between an overwrite's delete phase and
// its insert phase.
package transfer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"navhub/internal/domain"
	"navhub/internal/importer"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// InTx begins a transaction, hands fn a Store bound to it, and commits only
// if fn succeeds.
func (p *Postgres) InTx(ctx context.Context, fn func(importer.Store) error) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&txStore{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type txStore struct {
	tx pgx.Tx
}

func (s *txStore) DeleteAllVisits(ctx context.Context) error {
	_, err := s.tx.Exec(ctx, `DELETE FROM visits`)
	return err
}

func (s *txStore) DeleteAllSites(ctx context.Context) error {
	_, err := s.tx.Exec(ctx, `DELETE FROM sites`)
	return err
}

func (s *txStore) DeleteAllCategories(ctx context.Context) error {
	_, err := s.tx.Exec(ctx, `DELETE FROM categories`)
	return err
}

func (s *txStore) MaxCategoryOrder(ctx context.Context) (int, error) {
	var max int
	err := s.tx.QueryRow(ctx, `SELECT COALESCE(MAX(ord), 0) FROM categories`).Scan(&max)
	return max, err
}

func (s *txStore) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, slug, ord, created_at
FROM categories
WHERE slug = $1
`
	var c domain.Category
	if err := s.tx.QueryRow(ctx, q, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *txStore) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, slug, ord)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`
	out := c
	if err := s.tx.QueryRow(ctx, q, c.Name, c.Slug, c.Order).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *txStore) MaxSiteOrder(ctx context.Context, categoryID string) (int, error) {
	var max int
	err := s.tx.QueryRow(ctx, `SELECT COALESCE(MAX(ord), 0) FROM sites WHERE category_id = $1`, categoryID).Scan(&max)
	return max, err
}

func (s *txStore) CreateSite(ctx context.Context, site domain.Site) (*domain.Site, error) {
	const q = `
INSERT INTO sites (name, url, description, icon_url, ord, is_published, category_id)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
RETURNING id::text, created_at
`
	out := site
	if err := s.tx.QueryRow(ctx, q, site.Name, site.URL, site.Description, site.IconURL, site.Order, site.IsPublished, site.CategoryID).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
