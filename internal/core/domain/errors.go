package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrLoad indicates the source file could not be turned into a
	// table: missing, unreadable, or structurally invalid. Fatal to the
	// run; no output is written.
	ErrLoad = errors.New("load failed")

	// ErrWrite indicates the destination path is not writable. Fatal to
	// the run; the cleaned table remains in memory but no file is
	// produced.
	ErrWrite = errors.New("write failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFiles indicates the workspace directory holds no candidate
	// files for the interactive picker.
	ErrNoFiles = errors.New("no files found")

	// ErrUnknownSetting indicates a configuration key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
