package settings

import (
	"context"

	"navhub/internal/domain"
)

type Repository interface {
	// Get returns the single settings row, creating it with defaults on
	// first access.
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}
