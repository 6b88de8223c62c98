// Package workspace implements the workspace port over a local
// directory.
//
// The workspace is a single flat directory of CSV files. List returns
// the files sorted by name, skipping hidden files and subdirectories.
// Watch streams create, update and delete events using fsnotify until
// the caller's context is cancelled; events for hidden files and
// non-CSV files are filtered out.
package workspace
