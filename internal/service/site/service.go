package site

import (
	"context"
	"errors"
	"strings"

	"navhub/internal/domain"
	siterepo "navhub/internal/repository/site"
)

type Service struct {
	repo siterepo.Repository
}

func New(repo siterepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPage(ctx context.Context, f siterepo.ListFilter) ([]domain.Site, int, error) {
	return s.repo.ListPage(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	return s.repo.GetByID(ctx, id)
}

// Input carries a site create or partial update. Nil IsPublished and Order
// mean "leave unchanged" on update, so position 0 stays reachable.
type Input struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	CategoryID  string `json:"categoryId"`
	IsPublished *bool  `json:"isPublished"`
	Order       *int   `json:"order"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Site, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	if in.URL == "" {
		return nil, errors.New("url required")
	}
	if in.CategoryID == "" {
		return nil, errors.New("categoryId required")
	}
	published := false
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	order := 0
	if in.Order != nil {
		order = *in.Order
	}
	return s.repo.Create(ctx, domain.Site{
		Name:        name,
		URL:         in.URL,
		Description: in.Description,
		IconURL:     in.IconURL,
		Order:       order,
		IsPublished: published,
		CategoryID:  in.CategoryID,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Site, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		current.Name = name
	}
	if in.URL != "" {
		current.URL = in.URL
	}
	if in.Description != "" {
		current.Description = in.Description
	}
	if in.IconURL != "" {
		current.IconURL = in.IconURL
	}
	if in.CategoryID != "" {
		current.CategoryID = in.CategoryID
	}
	if in.IsPublished != nil {
		current.IsPublished = *in.IsPublished
	}
	if in.Order != nil {
		current.Order = *in.Order
	}
	return s.repo.Update(ctx, *current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// TogglePublish flips the publish flag and returns the updated site.
func (s *Service) TogglePublish(ctx context.Context, id string) (*domain.Site, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.SetPublished(ctx, id, !current.IsPublished)
}

// Search matches published sites by name, description or URL. An empty
// query returns no results rather than the whole catalog.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Site, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Site{}, nil
	}
	return s.repo.Search(ctx, query)
}
