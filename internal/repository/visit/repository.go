package visit

import (
	"context"

	"navhub/internal/domain"
)

type Repository interface {
	Record(ctx context.Context, v domain.Visit) (*domain.Visit, error)
	// Stats returns the top sites by visit count plus the total, over the
	// last `days` days. days <= 0 means all time.
	Stats(ctx context.Context, days, limit int) (*domain.VisitStats, error)
	// Frequency returns per-day visit counts over the last `days` days.
	Frequency(ctx context.Context, days int) ([]domain.DailyVisits, error)
}
