// Package backup reads and writes the portal's own JSON backup format: a
// full-fidelity superset of the bookmark format that keeps descriptions,
// ordering and publish flags. Visit history is never part of a backup, so
// restoring one cannot resurrect analytics.
package backup

import (
	"encoding/json"
	"fmt"

	"navhub/internal/domain"
)

// Site is one exported site record. Pointer fields distinguish "absent"
// from zero values on import: a missing isPublished defaults to true, a
// missing order to a position assigned by the importer.
type Site struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
	Order       *int   `json:"order,omitempty"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}

// Category is one exported category with its sites. Slug is optional on
// import and regenerated from the name when absent.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Order *int   `json:"order,omitempty"`
	Sites []Site `json:"sites"`
}

// Decode parses a backup payload. The top-level value must be a JSON
// array; anything else is a domain.ErrInvalidBackup, reported with enough
// detail for the admin to fix the file.
func Decode(data []byte) ([]Category, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of categories: %v", domain.ErrInvalidBackup, err)
	}
	// A top-level null unmarshals into a nil slice without an error; only an
	// actual array is a valid backup.
	if categories == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of categories, got null", domain.ErrInvalidBackup)
	}
	for i, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: category %d is missing a name", domain.ErrInvalidBackup, i)
		}
	}
	return categories, nil
}

// Encode serializes the persisted catalog into the canonical backup shape.
func Encode(categories []domain.Category) ([]byte, error) {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		entry := Category{
			Name:  c.Name,
			Slug:  c.Slug,
			Order: intPtr(c.Order),
			Sites: make([]Site, 0, len(c.Sites)),
		}
		for _, s := range c.Sites {
			entry.Sites = append(entry.Sites, Site{
				Name:        s.Name,
				URL:         s.URL,
				Description: s.Description,
				IconURL:     s.IconURL,
				Order:       intPtr(s.Order),
				IsPublished: boolPtr(s.IsPublished),
			})
		}
		out = append(out, entry)
	}
	return json.MarshalIndent(out, "", "  ")
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
