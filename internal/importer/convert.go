package importer

import (
	"navhub/internal/backup"
	"navhub/internal/bookmarks"
)

// FromBookmarks adapts flattened bookmark categories to import entries.
// The bookmark format has no description, so the URL doubles as one, and
// every imported site starts out published.
func FromBookmarks(cats []bookmarks.ParsedCategory) []Entry {
	entries := make([]Entry, 0, len(cats))
	for _, c := range cats {
		entry := Entry{Name: c.Name, Sites: make([]SiteEntry, 0, len(c.Sites))}
		for _, s := range c.Sites {
			entry.Sites = append(entry.Sites, SiteEntry{
				Name:        s.Name,
				URL:         s.URL,
				Description: s.URL,
				IconURL:     s.Icon,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

// FromBackup adapts decoded JSON backup categories to import entries,
// carrying explicit slugs, ordering and publish flags through untouched.
func FromBackup(cats []backup.Category) []Entry {
	entries := make([]Entry, 0, len(cats))
	for _, c := range cats {
		entry := Entry{Name: c.Name, Slug: c.Slug, Order: c.Order, Sites: make([]SiteEntry, 0, len(c.Sites))}
		for _, s := range c.Sites {
			entry.Sites = append(entry.Sites, SiteEntry{
				Name:        s.Name,
				URL:         s.URL,
				Description: s.Description,
				IconURL:     s.IconURL,
				Order:       s.Order,
				IsPublished: s.IsPublished,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}
