package visit

import (
	"context"

	"navhub/internal/domain"
	visitrepo "navhub/internal/repository/visit"
	settingssvc "navhub/internal/service/settings"
)

type Service struct {
	repo     visitrepo.Repository
	settings *settingssvc.Service
}

func New(repo visitrepo.Repository, settings *settingssvc.Service) *Service {
	return &Service{repo: repo, settings: settings}
}

// Record stores one click-through, unless visit tracking is disabled in
// the system settings, in which case it is a silent no-op.
func (s *Service) Record(ctx context.Context, v domain.Visit) error {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if !cfg.EnableVisitTracking {
		return nil
	}
	_, err = s.repo.Record(ctx, v)
	return err
}

func (s *Service) Stats(ctx context.Context, days, limit int) (*domain.VisitStats, error) {
	return s.repo.Stats(ctx, days, limit)
}

func (s *Service) Frequency(ctx context.Context, days int) ([]domain.DailyVisits, error) {
	return s.repo.Frequency(ctx, days)
}
