package driving

import "github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current cleaning settings.
	Get() (*domain.CleanSettings, error)

	// Save persists cleaning settings.
	Save(settings *domain.CleanSettings) error

	// Value returns the rendered value of a single setting by key.
	// Returns domain.ErrUnknownSetting for keys that don't exist.
	Value(key string) (string, error)

	// Set parses and stores a single setting by key.
	// Returns domain.ErrUnknownSetting for keys that don't exist and
	// domain.ErrInvalidInput for values that don't parse or validate.
	Set(key, value string) error

	// Keys returns all recognised setting keys, sorted.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.CleanSettings

	// Reset restores all settings to their defaults and persists them.
	Reset() error

	// Validate checks if current settings are valid.
	Validate() error

	// Path returns the configuration file path.
	Path() string
}
