package category

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

func (r *postgresRepo) ListWithSites(ctx context.Context, publishedOnly bool) ([]domain.Category, error) {
	const q = `
SELECT id::text, name, slug, ord, created_at
FROM categories
ORDER BY ord ASC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	byID := make(map[string]int)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt); err != nil {
			return nil, err
		}
		byID[c.ID] = len(result)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sites, err := r.listSites(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}
	for _, s := range sites {
		if i, ok := byID[s.CategoryID]; ok {
			result[i].Sites = append(result[i].Sites, s)
			result[i].SiteCount++
		}
	}
	return result, nil
}

func (r *postgresRepo) listSites(ctx context.Context, publishedOnly bool) ([]domain.Site, error) {
	q := `
SELECT id::text, name, url, description, COALESCE(icon_url, ''), ord, is_published, category_id::text, created_at
FROM sites
`
	if publishedOnly {
		q += "WHERE is_published\n"
	}
	q += "ORDER BY ord ASC, created_at ASC"

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []domain.Site
	for rows.Next() {
		var s domain.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.URL, &s.Description, &s.IconURL, &s.Order, &s.IsPublished, &s.CategoryID, &s.CreatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Category, error) {
	const q = `
SELECT id::text, name, slug, ord, created_at
FROM categories
WHERE slug = $1
`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	sq := `
SELECT id::text, name, url, description, COALESCE(icon_url, ''), ord, is_published, category_id::text, created_at
FROM sites
WHERE category_id = $1
`
	if publishedOnly {
		sq += "AND is_published\n"
	}
	sq += "ORDER BY ord ASC, created_at ASC"

	rows, err := r.pool.Query(ctx, sq, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.URL, &s.Description, &s.IconURL, &s.Order, &s.IsPublished, &s.CategoryID, &s.CreatedAt); err != nil {
			return nil, err
		}
		c.Sites = append(c.Sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	c.SiteCount = len(c.Sites)
	return &c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, slug, ord, created_at
FROM categories
WHERE id = $1
`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ListPage(ctx context.Context, page, pageSize int, search string) ([]domain.Category, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	pattern := "%" + search + "%"

	const q = `
SELECT c.id::text, c.name, c.slug, c.ord, c.created_at,
       (SELECT COUNT(*) FROM sites s WHERE s.category_id = c.id)
FROM categories c
WHERE $1 = '%%' OR c.name ILIKE $1 OR c.slug ILIKE $1
ORDER BY c.ord ASC, c.created_at ASC
LIMIT $2 OFFSET $3
`
	rows, err := r.pool.Query(ctx, q, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt, &c.SiteCount); err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	const countQ = `
SELECT COUNT(*)
FROM categories
WHERE $1 = '%%' OR name ILIKE $1 OR slug ILIKE $1
`
	if err := r.pool.QueryRow(ctx, countQ, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, slug, ord)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`
	out := c
	if err := r.pool.QueryRow(ctx, q, c.Name, c.Slug, c.Order).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $1, slug = $2, ord = $3
WHERE id = $4
RETURNING created_at
`
	out := c
	if err := r.pool.QueryRow(ctx, q, c.Name, c.Slug, c.Order, c.ID).Scan(&out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}
