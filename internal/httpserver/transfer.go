package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navhub/internal/backup"
	"navhub/internal/bookmarks"
	"navhub/internal/domain"
	"navhub/internal/importer"
)

// maxUploadBytes bounds bookmark/backup uploads. Imports run synchronously
// within one request, so huge files would only time out anyway.
const maxUploadBytes = 32 << 20

// Exporter is the read side of export: the category repository satisfies it.
type Exporter interface {
	ListWithSites(ctx context.Context, publishedOnly bool) ([]domain.Category, error)
}

func importHandler(imp *importer.Importer, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
			return
		}
		mode := importer.ParseMode(c.PostForm("mode"))

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}

		entries, err := importer.ParseFile(fileHeader.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnsupportedFileType):
				c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, expected .json, .html or .htm"})
			case errors.Is(err, domain.ErrInvalidBackup):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON backup, expected an array of categories"})
			default:
				logger.Printf("parse upload %q: %v", fileHeader.Filename, err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse uploaded file"})
			}
			return
		}

		count, err := imp.Run(c.Request.Context(), entries, mode)
		if err != nil {
			if errors.Is(err, domain.ErrImportInProgress) {
				c.JSON(http.StatusConflict, gin.H{"error": "another import is already running"})
				return
			}
			logger.Printf("import %q (mode=%s): %v", fileHeader.Filename, mode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
			return
		}

		verb := "imported"
		if mode == importer.ModeAppend {
			verb = "appended"
		}
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       fmt.Sprintf("successfully %s %d categories", verb, count),
			"importedCount": count,
		})
	}
}

func exportBackupHandler(exp Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := exp.ListWithSites(c.Request.Context(), false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export data"})
			return
		}
		data, err := backup.Encode(categories)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export data"})
			return
		}

		filename := fmt.Sprintf("nav_backup_%s.json", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/json; charset=UTF-8", data)
	}
}

func exportBookmarksHandler(exp Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := exp.ListWithSites(c.Request.Context(), true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export bookmarks"})
			return
		}

		parsed := make([]bookmarks.ParsedCategory, 0, len(categories))
		for _, cat := range categories {
			pc := bookmarks.ParsedCategory{Name: cat.Name}
			for _, s := range cat.Sites {
				pc.Sites = append(pc.Sites, bookmarks.ParsedSite{Name: s.Name, URL: s.URL, Icon: s.IconURL})
			}
			parsed = append(parsed, pc)
		}

		filename := fmt.Sprintf("bookmarks_%s.html", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/html; charset=UTF-8", []byte(bookmarks.Generate(parsed)))
	}
}
