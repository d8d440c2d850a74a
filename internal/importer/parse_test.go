package importer

import (
	"errors"
	"testing"

	"navhub/internal/bookmarks"
	"navhub/internal/domain"
)

func TestParseFile_JSONBackup(t *testing.T) {
	data := []byte(`[
  {
    "name": "Tools",
    "slug": "tools",
    "order": 5,
    "sites": [
      {"name": "Google", "url": "https://www.google.com", "description": "search", "order": 2, "isPublished": false}
    ]
  }
]`)

	entries, err := ParseFile("nav_backup_2026-08-29.json", data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %+v", entries)
	}
	e := entries[0]
	if e.Slug != "tools" || e.Order == nil || *e.Order != 5 {
		t.Fatalf("backup fields not carried through: %+v", e)
	}
	s := e.Sites[0]
	if s.Description != "search" || s.Order == nil || *s.Order != 2 || s.IsPublished == nil || *s.IsPublished {
		t.Fatalf("backup site fields not carried through: %+v", s)
	}
}

func TestParseFile_InvalidJSON(t *testing.T) {
	if _, err := ParseFile("backup.json", []byte(`{"not": "an array"}`)); !errors.Is(err, domain.ErrInvalidBackup) {
		t.Fatalf("expected ErrInvalidBackup, got %v", err)
	}
}

func TestParseFile_BookmarkHTML(t *testing.T) {
	data := []byte(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Tools</H3>
    <DL><p>
        <DT><A HREF="https://www.google.com" ICON="data:image/png;base64,abc">Google</A>
    </DL><p>
</DL><p>`)

	entries, err := ParseFile("bookmarks_2026-08-29.HTML", data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Tools" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	s := entries[0].Sites[0]
	if s.Description != s.URL {
		t.Fatalf("bookmark import should fall back to the URL as description, got %+v", s)
	}
	if s.IconURL != "data:image/png;base64,abc" {
		t.Fatalf("icon not carried through: %+v", s)
	}
	if s.Order != nil || s.IsPublished != nil {
		t.Fatalf("bookmark entries carry no explicit order or publish flag: %+v", s)
	}
}

func TestParseFile_HTMLWithoutLists(t *testing.T) {
	entries, err := ParseFile("export.htm", []byte(`<html><body>nothing here</body></html>`))
	if err != nil {
		t.Fatalf("structureless bookmark file should import as empty, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected zero entries, got %+v", entries)
	}
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	for _, name := range []string{"export.csv", "export.txt", "export"} {
		if _, err := ParseFile(name, []byte("x")); !errors.Is(err, domain.ErrUnsupportedFileType) {
			t.Fatalf("%s: expected ErrUnsupportedFileType, got %v", name, err)
		}
	}
}

func TestBookmarkRoundTrip_DropsDescriptions(t *testing.T) {
	// The bookmark format has no description field: exporting and
	// re-importing replaces every description with the site URL.
	out := bookmarks.Generate([]bookmarks.ParsedCategory{
		{Name: "Tools", Sites: []bookmarks.ParsedSite{
			{Name: "Google", URL: "https://www.google.com"},
		}},
	})

	entries, err := ParseFile("bookmarks.html", []byte(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Sites) != 1 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	s := entries[0].Sites[0]
	if s.Description != "https://www.google.com" {
		t.Fatalf("expected description replaced by URL, got %q", s.Description)
	}
}
