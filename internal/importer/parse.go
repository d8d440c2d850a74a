package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"navhub/internal/backup"
	"navhub/internal/bookmarks"
	"navhub/internal/domain"
)

// ParseFile dispatches an uploaded file to the right decoder by extension:
// .json is the portal's own backup format, .html/.htm is a browser
// bookmark export. Anything else is rejected before parsing. A bookmark
// file without list structure yields zero entries, not an error.
func ParseFile(filename string, data []byte) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		categories, err := backup.Decode(data)
		if err != nil {
			return nil, err
		}
		return FromBackup(categories), nil
	case ".html", ".htm":
		root, err := bookmarks.Parse(bytes.NewReader(data))
		if err != nil && !errors.Is(err, domain.ErrMalformedDocument) {
			return nil, err
		}
		return FromBookmarks(bookmarks.Flatten(root)), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, filepath.Ext(filename))
	}
}
