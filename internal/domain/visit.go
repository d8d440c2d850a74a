package domain

import "time"

// Visit is a single click-through on a site card.
type Visit struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Referer   string    `json:"referer,omitempty"`
	VisitedAt time.Time `json:"visitedAt"`
}

// TopSite is a site annotated with its visit count over a stats window.
type TopSite struct {
	Site
	VisitCount int64 `json:"visitCount"`
}

type VisitStats struct {
	TopSites    []TopSite `json:"topSites"`
	TotalVisits int64     `json:"totalVisits"`
}

type DailyVisits struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}
