package category

import (
	"context"

	"navhub/internal/domain"
)

type Repository interface {
	// ListWithSites returns all categories ordered by position, each with
	// its sites. When publishedOnly is set, unpublished sites are omitted.
	ListWithSites(ctx context.Context, publishedOnly bool) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListPage(ctx context.Context, page, pageSize int, search string) ([]domain.Category, int, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}
