package settings

import (
	"context"
	"time"

	"navhub/internal/cache"
	"navhub/internal/domain"
	settingsrepo "navhub/internal/repository/settings"
)

// Service serves system settings through a TTL cache: the settings row is
// read on nearly every public request, so hitting the database each time
// is wasteful. Updates invalidate the cache explicitly.
type Service struct {
	repo   settingsrepo.Repository
	cached *cache.Value[domain.Settings]
}

func New(repo settingsrepo.Repository, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		cached: cache.New[domain.Settings](ttl),
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	val, err := s.cached.Get(ctx, func(ctx context.Context) (domain.Settings, error) {
		out, err := s.repo.Get(ctx)
		if err != nil {
			return domain.Settings{}, err
		}
		return *out, nil
	})
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// Input carries a partial settings update; nil fields are left unchanged.
type Input struct {
	SiteName            *string              `json:"siteName"`
	SiteDescription     *string              `json:"siteDescription"`
	SiteLogo            *string              `json:"siteLogo"`
	Favicon             *string              `json:"favicon"`
	PageSize            *int                 `json:"pageSize"`
	ShowFooter          *bool                `json:"showFooter"`
	FooterCopyright     *string              `json:"footerCopyright"`
	FooterLinks         *[]domain.FooterLink `json:"footerLinks"`
	ShowAdminLink       *bool                `json:"showAdminLink"`
	EnableVisitTracking *bool                `json:"enableVisitTracking"`
	GithubURL           *string              `json:"githubUrl"`
}

func (s *Service) Update(ctx context.Context, in Input) (*domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.SiteName != nil {
		current.SiteName = *in.SiteName
	}
	if in.SiteDescription != nil {
		current.SiteDescription = *in.SiteDescription
	}
	if in.SiteLogo != nil {
		current.SiteLogo = *in.SiteLogo
	}
	if in.Favicon != nil {
		current.Favicon = *in.Favicon
	}
	if in.PageSize != nil {
		current.PageSize = *in.PageSize
	}
	if in.ShowFooter != nil {
		current.ShowFooter = *in.ShowFooter
	}
	if in.FooterCopyright != nil {
		current.FooterCopyright = *in.FooterCopyright
	}
	if in.FooterLinks != nil {
		current.FooterLinks = *in.FooterLinks
	}
	if in.ShowAdminLink != nil {
		current.ShowAdminLink = *in.ShowAdminLink
	}
	if in.EnableVisitTracking != nil {
		current.EnableVisitTracking = *in.EnableVisitTracking
	}
	if in.GithubURL != nil {
		current.GithubURL = *in.GithubURL
	}

	updated, err := s.repo.Update(ctx, *current)
	if err != nil {
		return nil, err
	}
	s.cached.Invalidate()
	return updated, nil
}
