// Package seed loads demo data for local development: a handful of
// categories and sites plus a default admin account.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"navhub/internal/domain"
	categoryrepo "navhub/internal/repository/category"
	siterepo "navhub/internal/repository/site"
	userrepo "navhub/internal/repository/user"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

type seedCategory struct {
	name  string
	slug  string
	sites []seedSite
}

type seedSite struct {
	name string
	url  string
	desc string
}

var categories = []seedCategory{
	{name: "Tools", slug: "tools", sites: []seedSite{
		{name: "Google", url: "https://www.google.com", desc: "Web search"},
		{name: "DeepL", url: "https://www.deepl.com", desc: "Translator"},
	}},
	{name: "Development", slug: "dev", sites: []seedSite{
		{name: "GitHub", url: "https://github.com", desc: "Code hosting"},
		{name: "Stack Overflow", url: "https://stackoverflow.com", desc: "Developer Q&A"},
		{name: "Go Packages", url: "https://pkg.go.dev", desc: "Go module index"},
	}},
	{name: "Design", slug: "design", sites: []seedSite{
		{name: "Figma", url: "https://www.figma.com", desc: "Collaborative design"},
		{name: "Dribbble", url: "https://dribbble.com", desc: "Design inspiration"},
	}},
	{name: "Community", slug: "community", sites: []seedSite{
		{name: "Hacker News", url: "https://news.ycombinator.com", desc: "Tech news"},
	}},
}

// Run inserts the demo catalog and the default admin. It is not
// idempotent; run it against an empty database.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	catRepo := categoryrepo.NewPostgres(pool)
	stRepo := siterepo.NewPostgres(pool)

	for i, sc := range categories {
		created, err := catRepo.Create(ctx, domain.Category{Name: sc.name, Slug: sc.slug, Order: i + 1})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", sc.name, err)
		}
		for j, ss := range sc.sites {
			if _, err := stRepo.Create(ctx, domain.Site{
				Name:        ss.name,
				URL:         ss.url,
				Description: ss.desc,
				Order:       j + 1,
				IsPublished: true,
				CategoryID:  created.ID,
			}); err != nil {
				return fmt.Errorf("seed site %q: %w", ss.name, err)
			}
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := userrepo.NewPostgres(pool).Create(ctx, domain.User{
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Name:         "Administrator",
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Printf("seeded %d categories and admin %s", len(categories), adminEmail)
	return nil
}
