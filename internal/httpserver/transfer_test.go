package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"navhub/internal/domain"
	"navhub/internal/importer"
)

type memStore struct {
	categories []domain.Category
	sites      []domain.Site
	nextID     int
}

func (s *memStore) DeleteAllVisits(context.Context) error { return nil }

func (s *memStore) DeleteAllSites(context.Context) error {
	s.sites = nil
	return nil
}

func (s *memStore) DeleteAllCategories(context.Context) error {
	s.categories = nil
	return nil
}

func (s *memStore) MaxCategoryOrder(context.Context) (int, error) {
	max := 0
	for _, c := range s.categories {
		if c.Order > max {
			max = c.Order
		}
	}
	return max, nil
}

func (s *memStore) CategoryBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return &s.categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) CreateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	s.nextID++
	c.ID = fmt.Sprintf("cat-%d", s.nextID)
	s.categories = append(s.categories, c)
	return &c, nil
}

func (s *memStore) MaxSiteOrder(_ context.Context, categoryID string) (int, error) {
	max := 0
	for _, site := range s.sites {
		if site.CategoryID == categoryID && site.Order > max {
			max = site.Order
		}
	}
	return max, nil
}

func (s *memStore) CreateSite(_ context.Context, site domain.Site) (*domain.Site, error) {
	s.nextID++
	site.ID = fmt.Sprintf("site-%d", s.nextID)
	s.sites = append(s.sites, site)
	return &site, nil
}

type memRunner struct{ store *memStore }

func (r *memRunner) InTx(_ context.Context, fn func(importer.Store) error) error {
	return fn(r.store)
}

type stubExporter struct {
	categories        []domain.Category
	err               error
	lastPublishedOnly bool
}

func (s *stubExporter) ListWithSites(_ context.Context, publishedOnly bool) ([]domain.Category, error) {
	s.lastPublishedOnly = publishedOnly
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func importRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/import", importHandler(importer.New(&memRunner{store: store}, testLogger()), testLogger()))
	return r
}

func uploadRequest(t *testing.T, filename string, content []byte, mode string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if mode != "" {
		if err := w.WriteField("mode", mode); err != nil {
			t.Fatalf("write mode field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestImportHandler_BookmarkFile(t *testing.T) {
	store := &memStore{}
	rec := httptest.NewRecorder()
	importRouter(store).ServeHTTP(rec, uploadRequest(t, "bookmarks.html", []byte(`<DL><p>
    <DT><H3>Tools</H3>
    <DL><p>
        <DT><A HREF="https://www.google.com">Google</A>
    </DL><p>
</DL><p>`), ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success       bool   `json:"success"`
		Message       string `json:"message"`
		ImportedCount int    `json:"importedCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.ImportedCount != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !strings.Contains(resp.Message, "appended 1 categories") {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(store.categories) != 1 || len(store.sites) != 1 {
		t.Fatalf("import did not reach the store: %+v %+v", store.categories, store.sites)
	}
}

func TestImportHandler_OverwriteMode(t *testing.T) {
	store := &memStore{}
	router := importRouter(store)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, uploadRequest(t, "backup.json", []byte(`[{"name": "Old", "sites": []}]`), ""))
	if first.Code != http.StatusOK {
		t.Fatalf("seed import: %d %s", first.Code, first.Body.String())
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "backup.json", []byte(`[{"name": "New", "sites": []}]`), "overwrite"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "imported 1 categories") {
		t.Fatalf("expected overwrite wording, got %s", rec.Body.String())
	}
	if len(store.categories) != 1 || store.categories[0].Name != "New" {
		t.Fatalf("overwrite did not replace data: %+v", store.categories)
	}
}

func TestImportHandler_UnsupportedType(t *testing.T) {
	rec := httptest.NewRecorder()
	importRouter(&memStore{}).ServeHTTP(rec, uploadRequest(t, "export.csv", []byte("a,b,c"), ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "unsupported file type") {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestImportHandler_InvalidBackup(t *testing.T) {
	rec := httptest.NewRecorder()
	importRouter(&memStore{}).ServeHTTP(rec, uploadRequest(t, "backup.json", []byte(`{"not": "an array"}`), ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid JSON backup") {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestImportHandler_NoFile(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/import", nil)
	importRouter(&memStore{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExportBackupHandler(t *testing.T) {
	exp := &stubExporter{categories: []domain.Category{{
		Name: "Tools", Slug: "tools", Order: 1,
		Sites: []domain.Site{{Name: "Google", URL: "https://www.google.com", Order: 1, IsPublished: true}},
	}}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/export", exportBackupHandler(exp))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if exp.lastPublishedOnly {
		t.Fatal("backup export must include unpublished sites")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=UTF-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, `attachment; filename="nav_backup_`) || !strings.HasSuffix(cd, `.json"`) {
		t.Fatalf("unexpected disposition %q", cd)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("exported backup is not a JSON array: %v", err)
	}
	if len(out) != 1 || out[0]["name"] != "Tools" {
		t.Fatalf("unexpected export payload: %+v", out)
	}
}

func TestExportBookmarksHandler(t *testing.T) {
	exp := &stubExporter{categories: []domain.Category{{
		Name:  "Tools",
		Sites: []domain.Site{{Name: "Google", URL: "https://www.google.com", IsPublished: true}},
	}}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/export", exportBookmarksHandler(exp))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !exp.lastPublishedOnly {
		t.Fatal("bookmark export must only include published sites")
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, `attachment; filename="bookmarks_`) || !strings.HasSuffix(cd, `.html"`) {
		t.Fatalf("unexpected disposition %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Fatalf("missing bookmark doctype:\n%s", body)
	}
	if !strings.Contains(body, `HREF="https://www.google.com"`) {
		t.Fatalf("missing exported site:\n%s", body)
	}
}
