// Package file provides the file-based implementation of the
// ConfigStore driven port. Configuration is persisted as TOML in the
// user's config directory and flattened to dot-notation keys, e.g.
// clean.temporal_threshold.
package file
