// Package csvfile implements the table loader and writer over CSV
// files on disk.
//
// Loading applies the missing-value policy: cells are whitespace
// trimmed, and empty cells or recognised missing tokens (na, null, ...)
// become missing. Writing is atomic - output goes to a temporary file
// that is renamed into place only after the full table is flushed, so a
// failed write never leaves a partial output file.
package csvfile
