package domain

import "time"

type FooterLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Settings is the single-row system configuration edited from the admin UI.
type Settings struct {
	ID                  string       `json:"id"`
	SiteName            string       `json:"siteName"`
	SiteDescription     string       `json:"siteDescription"`
	SiteLogo            string       `json:"siteLogo,omitempty"`
	Favicon             string       `json:"favicon,omitempty"`
	PageSize            int          `json:"pageSize"`
	ShowFooter          bool         `json:"showFooter"`
	FooterCopyright     string       `json:"footerCopyright"`
	FooterLinks         []FooterLink `json:"footerLinks"`
	ShowAdminLink       bool         `json:"showAdminLink"`
	EnableVisitTracking bool         `json:"enableVisitTracking"`
	GithubURL           string       `json:"githubUrl,omitempty"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}
