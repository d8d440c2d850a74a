package visit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"navhub/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Record(ctx context.Context, v domain.Visit) (*domain.Visit, error) {
	const q = `
INSERT INTO visits (site_id, ip_address, user_agent, referer)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
RETURNING id::text, visited_at
`
	out := v
	if err := r.pool.QueryRow(ctx, q, v.SiteID, v.IPAddress, v.UserAgent, v.Referer).Scan(&out.ID, &out.VisitedAt); err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}
	return &out, nil
}

func (r *postgresRepo) Stats(ctx context.Context, days, limit int) (*domain.VisitStats, error) {
	if limit < 1 {
		limit = 10
	}

	const topQ = `
SELECT s.id::text, s.name, s.url, s.description, COALESCE(s.icon_url, ''), s.ord, s.is_published, s.category_id::text, s.created_at,
       c.id::text, c.name, c.slug, c.ord, c.created_at,
       COUNT(v.id) AS visit_count
FROM visits v
JOIN sites s ON s.id = v.site_id
JOIN categories c ON c.id = s.category_id
WHERE $1 <= 0 OR v.visited_at >= now() - make_interval(days => $1)
GROUP BY s.id, c.id
ORDER BY visit_count DESC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, topQ, days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &domain.VisitStats{TopSites: []domain.TopSite{}}
	for rows.Next() {
		var t domain.TopSite
		var c domain.Category
		if err := rows.Scan(
			&t.ID, &t.Name, &t.URL, &t.Description, &t.IconURL, &t.Order, &t.IsPublished, &t.CategoryID, &t.CreatedAt,
			&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt,
			&t.VisitCount,
		); err != nil {
			return nil, err
		}
		t.Category = &c
		stats.TopSites = append(stats.TopSites, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const totalQ = `
SELECT COUNT(*)
FROM visits
WHERE $1 <= 0 OR visited_at >= now() - make_interval(days => $1)
`
	if err := r.pool.QueryRow(ctx, totalQ, days).Scan(&stats.TotalVisits); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *postgresRepo) Frequency(ctx context.Context, days int) ([]domain.DailyVisits, error) {
	const q = `
SELECT to_char(visited_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
FROM visits
WHERE $1 <= 0 OR visited_at >= now() - make_interval(days => $1)
GROUP BY day
ORDER BY day ASC
`
	rows, err := r.pool.Query(ctx, q, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.DailyVisits{}
	for rows.Next() {
		var d domain.DailyVisits
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
