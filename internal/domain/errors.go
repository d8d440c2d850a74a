package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrMalformedDocument indicates a bookmark file with no recognizable
	// list structure. The import path treats this as a zero-count result
	// rather than a failure, since real-world exports are often quirky.
	ErrMalformedDocument = errors.New("malformed bookmark document")
	// ErrInvalidBackup indicates a JSON backup payload that is not an array
	// or is missing required fields.
	ErrInvalidBackup = errors.New("invalid backup payload")
	// ErrUnsupportedFileType indicates an upload that is neither a JSON
	// backup nor a bookmark HTML file.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrImportInProgress indicates another import is currently running.
	ErrImportInProgress = errors.New("import already in progress")
)
