// Package importer applies a parsed set of categories and sites against the
// persistence layer, with append or overwrite merge semantics.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"navhub/internal/domain"
	"navhub/internal/slug"
)

// Mode selects how incoming data merges with existing data.
type Mode string

const (
	// ModeAppend keeps existing data and merges incoming categories into
	// same-slug categories.
	ModeAppend Mode = "append"
	// ModeOverwrite deletes all visits, sites and categories before
	// inserting the incoming data.
	ModeOverwrite Mode = "overwrite"
)

// ParseMode maps a request parameter to a Mode. Anything other than the
// literal "overwrite" means append, so a typo can never wipe the catalog.
func ParseMode(s string) Mode {
	if s == string(ModeOverwrite) {
		return ModeOverwrite
	}
	return ModeAppend
}

// SiteEntry is one incoming site. Nil Order and IsPublished mean the field
// was absent from the source (bookmark files have neither).
type SiteEntry struct {
	Name        string
	URL         string
	Description string
	IconURL     string
	Order       *int
	IsPublished *bool
}

// Entry is one incoming category. An empty Slug is generated from the name.
type Entry struct {
	Name  string
	Slug  string
	Order *int
	Sites []SiteEntry
}

// Store is the persistence surface one import runs against. Every call
// belongs to the same logical transaction.
type Store interface {
	DeleteAllVisits(ctx context.Context) error
	DeleteAllSites(ctx context.Context) error
	DeleteAllCategories(ctx context.Context) error
	MaxCategoryOrder(ctx context.Context) (int, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	MaxSiteOrder(ctx context.Context, categoryID string) (int, error)
	CreateSite(ctx context.Context, s domain.Site) (*domain.Site, error)
}

// TxRunner executes fn inside a single database transaction. Running the
// whole import in one transaction is what keeps a public page render from
// observing the transiently empty catalog between the overwrite delete
// phase and the insert phase.
type TxRunner interface {
	InTx(ctx context.Context, fn func(Store) error) error
}

// Importer orchestrates imports. It serializes concurrent attempts with an
// explicit in-progress guard: two admins triggering overwrite imports at
// once would otherwise race on delete-then-insert.
type Importer struct {
	runner TxRunner
	logger *log.Logger

	mu sync.Mutex
}

func New(runner TxRunner, logger *log.Logger) *Importer {
	return &Importer{runner: runner, logger: logger}
}

// Run imports entries with the given mode and returns the number of
// categories processed. A category counts as processed whether it was
// created or merely matched by slug in append mode. Any row failure
// abandons the whole attempt and rolls the transaction back.
func (i *Importer) Run(ctx context.Context, entries []Entry, mode Mode) (int, error) {
	if !i.mu.TryLock() {
		return 0, domain.ErrImportInProgress
	}
	defer i.mu.Unlock()

	var count int
	err := i.runner.InTx(ctx, func(store Store) error {
		n, err := i.apply(ctx, store, entries, mode)
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}
	i.logger.Printf("imported %d categories (mode=%s)", count, mode)
	return count, nil
}

func (i *Importer) apply(ctx context.Context, store Store, entries []Entry, mode Mode) (int, error) {
	if mode == ModeOverwrite {
		// Dependency order: visits reference sites, sites reference
		// categories. The delete phase must fully complete before any
		// insert.
		if err := store.DeleteAllVisits(ctx); err != nil {
			return 0, fmt.Errorf("delete visits: %w", err)
		}
		if err := store.DeleteAllSites(ctx); err != nil {
			return 0, fmt.Errorf("delete sites: %w", err)
		}
		if err := store.DeleteAllCategories(ctx); err != nil {
			return 0, fmt.Errorf("delete categories: %w", err)
		}
	}

	categoryOrder := 0
	if mode == ModeAppend {
		max, err := store.MaxCategoryOrder(ctx)
		if err != nil {
			return 0, fmt.Errorf("max category order: %w", err)
		}
		categoryOrder = max
	}

	count := 0
	for _, entry := range entries {
		catSlug := entry.Slug
		if catSlug == "" {
			catSlug = slug.Generate(entry.Name)
		}

		var category *domain.Category
		if mode == ModeAppend {
			existing, err := store.CategoryBySlug(ctx, catSlug)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return 0, fmt.Errorf("find category %q: %w", catSlug, err)
			}
			category = existing
		}

		if category == nil {
			categoryOrder++
			order := categoryOrder
			if entry.Order != nil {
				order = *entry.Order
			}
			created, err := store.CreateCategory(ctx, domain.Category{
				Name:  entry.Name,
				Slug:  catSlug,
				Order: order,
			})
			if err != nil {
				return 0, fmt.Errorf("create category %q: %w", entry.Name, err)
			}
			category = created
		}

		siteOrder := 0
		if mode == ModeAppend {
			max, err := store.MaxSiteOrder(ctx, category.ID)
			if err != nil {
				return 0, fmt.Errorf("max site order in %q: %w", category.Slug, err)
			}
			siteOrder = max
		}

		for _, site := range entry.Sites {
			siteOrder++
			order := siteOrder
			if site.Order != nil {
				order = *site.Order
			}
			published := true
			if site.IsPublished != nil {
				published = *site.IsPublished
			}
			if _, err := store.CreateSite(ctx, domain.Site{
				Name:        site.Name,
				URL:         site.URL,
				Description: site.Description,
				IconURL:     site.IconURL,
				Order:       order,
				IsPublished: published,
				CategoryID:  category.ID,
			}); err != nil {
				return 0, fmt.Errorf("create site %q: %w", site.Name, err)
			}
		}

		count++
	}
	return count, nil
}
