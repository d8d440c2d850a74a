package category

import (
	"context"
	"errors"
	"strings"

	"navhub/internal/domain"
	categoryrepo "navhub/internal/repository/category"
	"navhub/internal/slug"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListPublic returns categories with their published sites, for the
// public navigation page.
func (s *Service) ListPublic(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListWithSites(ctx, true)
}

// GetBySlug returns one category with its published sites.
func (s *Service) GetBySlug(ctx context.Context, categorySlug string) (*domain.Category, error) {
	return s.repo.GetBySlug(ctx, categorySlug, true)
}

func (s *Service) ListPage(ctx context.Context, page, pageSize int, search string) ([]domain.Category, int, error) {
	return s.repo.ListPage(ctx, page, pageSize, search)
}

// Input carries a category create or partial update. A nil Order means
// "leave unchanged" on update, so position 0 stays reachable.
type Input struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order *int   `json:"order"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	catSlug := strings.TrimSpace(in.Slug)
	if catSlug == "" {
		catSlug = slug.Unique(name, func(candidate string) bool {
			exists, err := s.repo.SlugExists(ctx, candidate)
			return err == nil && exists
		})
	}
	order := 0
	if in.Order != nil {
		order = *in.Order
	}
	return s.repo.Create(ctx, domain.Category{Name: name, Slug: catSlug, Order: order})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Category, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		current.Name = name
	}
	if catSlug := strings.TrimSpace(in.Slug); catSlug != "" {
		current.Slug = catSlug
	}
	if in.Order != nil {
		current.Order = *in.Order
	}
	return s.repo.Update(ctx, *current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
