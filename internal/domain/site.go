package domain

import "time"

type Site struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	IconURL     string    `json:"iconUrl,omitempty"`
	Order       int       `json:"order"`
	IsPublished bool      `json:"isPublished"`
	CategoryID  string    `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
