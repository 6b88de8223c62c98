package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// FileInfo describes a candidate file in the workspace directory.
type FileInfo struct {
	// Path is the file's full path, suitable for the loader.
	Path string

	// Name is the base name shown in the picker.
	Name string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time
}

// ChangeType represents the kind of workspace file change.
type ChangeType int

const (
	// ChangeCreated indicates a new file appeared.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates an existing file was modified.
	ChangeUpdated

	// ChangeDeleted indicates a file disappeared.
	ChangeDeleted
)

// FileEvent is a change notification from the workspace watcher.
// The interactive picker refreshes its listing from these.
type FileEvent struct {
	// Type is the kind of change.
	Type ChangeType

	// File is the affected file. For removals only Path and Name are
	// populated.
	File FileInfo
}

// OutputPath returns the destination for a cleaned file: the source
// path with suffix inserted before the extension, e.g. "data.csv" with
// suffix "_cleaned" becomes "data_cleaned.csv".
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
