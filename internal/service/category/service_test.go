package category

import (
	"context"
	"errors"
	"testing"

	"navhub/internal/domain"
)

type stubRepo struct {
	categories map[string]*domain.Category
	slugs      map[string]bool
	created    []domain.Category
	updated    []domain.Category
	deleted    []string
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		categories: make(map[string]*domain.Category),
		slugs:      make(map[string]bool),
	}
}

func (r *stubRepo) ListWithSites(context.Context, bool) ([]domain.Category, error) { return nil, nil }

func (r *stubRepo) GetBySlug(context.Context, string, bool) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) ListPage(context.Context, int, int, string) ([]domain.Category, int, error) {
	return nil, 0, nil
}

func (r *stubRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	c.ID = "new-id"
	r.created = append(r.created, c)
	r.slugs[c.Slug] = true
	return &c, nil
}

func (r *stubRepo) Update(_ context.Context, c domain.Category) (*domain.Category, error) {
	r.updated = append(r.updated, c)
	return &c, nil
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	return r.slugs[slug], nil
}

func TestCreate_GeneratesUniqueSlug(t *testing.T) {
	repo := newStubRepo()
	repo.slugs["dev-tools"] = true
	svc := New(repo)

	order := 1
	created, err := svc.Create(context.Background(), Input{Name: "Dev Tools", Order: &order})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "dev-tools-2" {
		t.Fatalf("expected suffixed slug, got %q", created.Slug)
	}
}

func TestCreate_KeepsExplicitSlug(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)

	created, err := svc.Create(context.Background(), Input{Name: "Dev Tools", Slug: "custom"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "custom" {
		t.Fatalf("expected explicit slug kept, got %q", created.Slug)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	svc := New(newStubRepo())
	if _, err := svc.Create(context.Background(), Input{Name: "   "}); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestUpdate_MergesPartialInput(t *testing.T) {
	repo := newStubRepo()
	repo.categories["c1"] = &domain.Category{ID: "c1", Name: "Old", Slug: "old", Order: 3}
	svc := New(repo)

	updated, err := svc.Update(context.Background(), "c1", Input{Name: "New"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New" || updated.Slug != "old" || updated.Order != 3 {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}
}

func TestUpdate_MovesToOrderZero(t *testing.T) {
	repo := newStubRepo()
	repo.categories["c1"] = &domain.Category{ID: "c1", Name: "Pinned", Slug: "pinned", Order: 5}
	svc := New(repo)

	zero := 0
	updated, err := svc.Update(context.Background(), "c1", Input{Order: &zero})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Order != 0 {
		t.Fatalf("expected order 0, got %d", updated.Order)
	}

	// An absent order leaves the position alone.
	repo.categories["c1"].Order = 5
	updated, err = svc.Update(context.Background(), "c1", Input{Name: "Still Pinned"})
	if err != nil {
		t.Fatalf("update without order: %v", err)
	}
	if updated.Order != 5 {
		t.Fatalf("expected order preserved, got %d", updated.Order)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := New(newStubRepo())
	if _, err := svc.Update(context.Background(), "missing", Input{Name: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
