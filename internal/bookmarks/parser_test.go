package bookmarks

import (
	"errors"
	"strings"
	"testing"

	"navhub/internal/domain"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000">Tools</H3>
    <DL><p>
        <DT><A HREF="https://www.google.com" ADD_DATE="1700000000" ICON="data:image/png;base64,abc">Google</A>
        <DT><A HREF="https://www.deepl.com">DeepL</A>
    </DL><p>
    <DT><H3>Work</H3>
    <DL><p>
        <DT><H3>Tools</H3>
        <DL><p>
            <DT><A HREF="https://github.com">GitHub</A>
        </DL><p>
        <DT><A HREF="https://calendar.example.com">Calendar</A>
    </DL><p>
</DL><p>
`

func TestParseAndFlatten_SampleExport(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cats := Flatten(root)
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories (Tools merged, Work), got %d: %+v", len(cats), cats)
	}
	if cats[0].Name != "Tools" || cats[1].Name != "Work" {
		t.Fatalf("unexpected category order: %+v", cats)
	}

	// The nested Work/Tools folder merges into the first Tools bucket.
	if len(cats[0].Sites) != 3 {
		t.Fatalf("expected 3 sites in Tools, got %+v", cats[0].Sites)
	}
	if cats[0].Sites[0].Name != "Google" || cats[0].Sites[0].URL != "https://www.google.com" {
		t.Fatalf("unexpected first site: %+v", cats[0].Sites[0])
	}
	if cats[0].Sites[0].Icon != "data:image/png;base64,abc" {
		t.Fatalf("expected icon preserved, got %q", cats[0].Sites[0].Icon)
	}
	if cats[0].Sites[2].Name != "GitHub" {
		t.Fatalf("expected GitHub merged into Tools, got %+v", cats[0].Sites)
	}

	if len(cats[1].Sites) != 1 || cats[1].Sites[0].Name != "Calendar" {
		t.Fatalf("expected only Calendar in Work, got %+v", cats[1].Sites)
	}
}

func TestFlatten_DepthCollapse(t *testing.T) {
	const doc = `<DL><p>
    <DT><H3>A</H3>
    <DL><p>
        <DT><H3>B</H3>
        <DL><p>
            <DT><H3>C</H3>
            <DL><p>
                <DT><A HREF="https://example.com/link.html">link</A>
            </DL><p>
        </DL><p>
    </DL><p>
</DL><p>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cats := Flatten(root)
	if len(cats) != 1 {
		t.Fatalf("expected only the innermost folder to become a category, got %+v", cats)
	}
	if cats[0].Name != "C" || len(cats[0].Sites) != 1 || cats[0].Sites[0].Name != "link" {
		t.Fatalf("unexpected category: %+v", cats[0])
	}
}

func TestFlatten_TopLevelLinksDropped(t *testing.T) {
	const doc = `<DL><p>
    <DT><A HREF="https://orphan.example.com">Orphan</A>
    <DT><H3>Kept</H3>
    <DL><p>
        <DT><A HREF="https://kept.example.com">Kept Site</A>
    </DL><p>
</DL><p>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cats := Flatten(root)
	if len(cats) != 1 || cats[0].Name != "Kept" {
		t.Fatalf("expected only the foldered link to survive, got %+v", cats)
	}
	if len(cats[0].Sites) != 1 || cats[0].Sites[0].Name != "Kept Site" {
		t.Fatalf("unexpected sites: %+v", cats[0].Sites)
	}
}

func TestParse_NoListStructure(t *testing.T) {
	root, err := Parse(strings.NewReader(`<html><body><p>not a bookmark file</p></body></html>`))
	if !errors.Is(err, domain.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if root == nil || len(root.Children) != 0 {
		t.Fatalf("expected empty root, got %+v", root)
	}
	if cats := Flatten(root); len(cats) != 0 {
		t.Fatalf("expected zero categories, got %+v", cats)
	}
}

func TestParse_Placeholders(t *testing.T) {
	const doc = `<DL><p>
    <DT><H3></H3>
    <DL><p>
        <DT><A HREF="https://example.com"></A>
        <DT><A>No Href</A>
    </DL><p>
</DL><p>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cats := Flatten(root)
	if len(cats) != 1 || cats[0].Name != "Unnamed Category" {
		t.Fatalf("expected unnamed category placeholder, got %+v", cats)
	}
	if len(cats[0].Sites) != 2 {
		t.Fatalf("expected both links kept, got %+v", cats[0].Sites)
	}
	if cats[0].Sites[0].Name != "Unnamed Site" {
		t.Fatalf("expected unnamed site placeholder, got %q", cats[0].Sites[0].Name)
	}
	if cats[0].Sites[1].URL != "" {
		t.Fatalf("expected empty URL for missing href, got %q", cats[0].Sites[1].URL)
	}
}

func TestParse_IgnoresStrayListItems(t *testing.T) {
	const doc = `<DL><p>
    <DT><H3>Folder</H3>
    <DL><p>
        <DT>just text, neither folder nor link
        <DT><A HREF="https://example.com">Real</A>
    </DL><p>
</DL><p>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cats := Flatten(root)
	if len(cats) != 1 || len(cats[0].Sites) != 1 || cats[0].Sites[0].Name != "Real" {
		t.Fatalf("expected stray item ignored, got %+v", cats)
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	first := []ParsedCategory{
		{Name: "One", Sites: []ParsedSite{{Name: "a", URL: "https://a.example.com"}}},
		{Name: "Two", Sites: []ParsedSite{{Name: "b", URL: "https://b.example.com"}, {Name: "c", URL: "https://c.example.com"}}},
	}

	root, err := Parse(strings.NewReader(Generate(first)))
	if err != nil {
		t.Fatalf("parse generated document: %v", err)
	}
	second := Flatten(root)

	if len(second) != len(first) {
		t.Fatalf("expected %d categories, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i].Name != first[i].Name || len(second[i].Sites) != len(first[i].Sites) {
			t.Fatalf("category %d changed: %+v vs %+v", i, second[i], first[i])
		}
		for j := range first[i].Sites {
			if second[i].Sites[j].Name != first[i].Sites[j].Name || second[i].Sites[j].URL != first[i].Sites[j].URL {
				t.Fatalf("site %d/%d changed: %+v vs %+v", i, j, second[i].Sites[j], first[i].Sites[j])
			}
		}
	}
}
