package site

import (
	"context"

	"navhub/internal/domain"
)

type ListFilter struct {
	Page       int
	PageSize   int
	CategoryID string
	Search     string
}

type Repository interface {
	ListPage(ctx context.Context, f ListFilter) ([]domain.Site, int, error)
	GetByID(ctx context.Context, id string) (*domain.Site, error)
	Create(ctx context.Context, s domain.Site) (*domain.Site, error)
	Update(ctx context.Context, s domain.Site) (*domain.Site, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) (*domain.Site, error)
	// Search matches published sites by name, description or URL,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Site, error)
}
