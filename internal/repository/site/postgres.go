package site

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"navhub/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const siteColumns = `s.id::text, s.name, s.url, s.description, COALESCE(s.icon_url, ''), s.ord, s.is_published, s.category_id::text, s.created_at,
c.id::text, c.name, c.slug, c.ord, c.created_at`

func scanSite(row pgx.Row) (*domain.Site, error) {
	var s domain.Site
	var c domain.Category
	if err := row.Scan(
		&s.ID, &s.Name, &s.URL, &s.Description, &s.IconURL, &s.Order, &s.IsPublished, &s.CategoryID, &s.CreatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.Category = &c
	return &s, nil
}

func (r *postgresRepo) ListPage(ctx context.Context, f ListFilter) ([]domain.Site, int, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	pattern := "%" + f.Search + "%"

	const q = `
SELECT ` + siteColumns + `
FROM sites s
JOIN categories c ON c.id = s.category_id
WHERE ($1 = '' OR s.category_id::text = $1)
  AND ($2 = '%%' OR s.name ILIKE $2 OR s.description ILIKE $2 OR s.url ILIKE $2)
ORDER BY s.ord ASC, s.created_at ASC
LIMIT $3 OFFSET $4
`
	rows, err := r.pool.Query(ctx, q, f.CategoryID, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	const countQ = `
SELECT COUNT(*)
FROM sites s
WHERE ($1 = '' OR s.category_id::text = $1)
  AND ($2 = '%%' OR s.name ILIKE $2 OR s.description ILIKE $2 OR s.url ILIKE $2)
`
	if err := r.pool.QueryRow(ctx, countQ, f.CategoryID, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	const q = `
SELECT ` + siteColumns + `
FROM sites s
JOIN categories c ON c.id = s.category_id
WHERE s.id = $1
`
	s, err := scanSite(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Site) (*domain.Site, error) {
	const q = `
INSERT INTO sites (name, url, description, icon_url, ord, is_published, category_id)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
RETURNING id::text, created_at
`
	out := s
	if err := r.pool.QueryRow(ctx, q, s.Name, s.URL, s.Description, s.IconURL, s.Order, s.IsPublished, s.CategoryID).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, s domain.Site) (*domain.Site, error) {
	const q = `
UPDATE sites
SET name = $1, url = $2, description = $3, icon_url = NULLIF($4, ''), ord = $5, is_published = $6, category_id = $7
WHERE id = $8
RETURNING created_at
`
	out := s
	if err := r.pool.QueryRow(ctx, q, s.Name, s.URL, s.Description, s.IconURL, s.Order, s.IsPublished, s.CategoryID, s.ID).Scan(&out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetPublished(ctx context.Context, id string, published bool) (*domain.Site, error) {
	const q = `
UPDATE sites
SET is_published = $1
WHERE id = $2
RETURNING id::text
`
	var siteID string
	if err := r.pool.QueryRow(ctx, q, published, id).Scan(&siteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, siteID)
}

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.Site, error) {
	const q = `
SELECT ` + siteColumns + `
FROM sites s
JOIN categories c ON c.id = s.category_id
WHERE s.is_published
  AND (s.name ILIKE $1 OR s.description ILIKE $1 OR s.url ILIKE $1)
ORDER BY s.ord ASC, s.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}
