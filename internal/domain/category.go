package domain

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	Sites     []Site    `json:"sites,omitempty"`
	SiteCount int       `json:"siteCount"`
	CreatedAt time.Time `json:"createdAt"`
}
