package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"navhub/internal/domain"
)

const defaultID = "default"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const settingsColumns = `id, site_name, site_description, COALESCE(site_logo, ''), COALESCE(favicon, ''), page_size, show_footer, footer_copyright, footer_links, show_admin_link, enable_visit_tracking, COALESCE(github_url, ''), updated_at`

func (r *postgresRepo) Get(ctx context.Context) (*domain.Settings, error) {
	const q = `
INSERT INTO settings (id, footer_copyright)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET id = settings.id
RETURNING ` + settingsColumns
	copyright := fmt.Sprintf("© %d NavHub. All rights reserved.", time.Now().Year())
	return r.scan(r.pool.QueryRow(ctx, q, defaultID, copyright))
}

func (r *postgresRepo) Update(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	links, err := json.Marshal(s.FooterLinks)
	if err != nil {
		return nil, fmt.Errorf("marshal footer links: %w", err)
	}
	if s.FooterLinks == nil {
		links = []byte("[]")
	}

	const q = `
UPDATE settings
SET site_name = $1,
    site_description = $2,
    site_logo = NULLIF($3, ''),
    favicon = NULLIF($4, ''),
    page_size = $5,
    show_footer = $6,
    footer_copyright = $7,
    footer_links = $8,
    show_admin_link = $9,
    enable_visit_tracking = $10,
    github_url = NULLIF($11, ''),
    updated_at = now()
WHERE id = $12
RETURNING ` + settingsColumns
	return r.scan(r.pool.QueryRow(ctx, q,
		s.SiteName, s.SiteDescription, s.SiteLogo, s.Favicon, s.PageSize,
		s.ShowFooter, s.FooterCopyright, links, s.ShowAdminLink,
		s.EnableVisitTracking, s.GithubURL, defaultID,
	))
}

type row interface {
	Scan(dest ...any) error
}

func (r *postgresRepo) scan(src row) (*domain.Settings, error) {
	var s domain.Settings
	var links []byte
	if err := src.Scan(
		&s.ID, &s.SiteName, &s.SiteDescription, &s.SiteLogo, &s.Favicon,
		&s.PageSize, &s.ShowFooter, &s.FooterCopyright, &links,
		&s.ShowAdminLink, &s.EnableVisitTracking, &s.GithubURL, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(links, &s.FooterLinks); err != nil {
		return nil, fmt.Errorf("unmarshal footer links: %w", err)
	}
	return &s, nil
}
