package user

import (
	"context"

	"navhub/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, u domain.User) (*domain.User, error)
	ListPage(ctx context.Context, page, pageSize int, search string) ([]domain.User, int, error)
}
