package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTemporalThreshold = "clean.temporal_threshold"
	keyNumericThreshold  = "clean.numeric_threshold"
	keySampleSize        = "clean.sample_size"
	keyNameHints         = "clean.name_hints"
	keyDateLayouts       = "clean.date_layouts"
	keyMissingTokens     = "clean.missing_tokens"
	keyExcludeColumns    = "clean.exclude_columns"
	keyOutputSuffix      = "clean.output_suffix"
	keyWorkspaceDir      = "workspace.dir"
	keyHistoryEnabled    = "history.enabled"
)

// SettingsService manages application settings. It bridges the flat
// key/value config store and the typed CleanSettings the pipeline
// consumes; unset keys fall back to the defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current cleaning settings.
func (s *SettingsService) Get() (*domain.CleanSettings, error) {
	defaults := domain.DefaultCleanSettings()

	settings := &domain.CleanSettings{
		TemporalThreshold: s.getFloat(keyTemporalThreshold, defaults.TemporalThreshold),
		NumericThreshold:  s.getFloat(keyNumericThreshold, defaults.NumericThreshold),
		SampleSize:        s.getInt(keySampleSize, defaults.SampleSize),
		NameHints:         s.getStringSlice(keyNameHints, defaults.NameHints),
		DateLayouts:       s.getStringSlice(keyDateLayouts, defaults.DateLayouts),
		MissingTokens:     s.getStringSlice(keyMissingTokens, defaults.MissingTokens),
		ExcludeColumns:    s.getStringSlice(keyExcludeColumns, defaults.ExcludeColumns),
		OutputSuffix:      s.getString(keyOutputSuffix, defaults.OutputSuffix),
		WorkspaceDir:      s.getString(keyWorkspaceDir, defaults.WorkspaceDir),
		HistoryEnabled:    s.getBool(keyHistoryEnabled, defaults.HistoryEnabled),
	}

	return settings, nil
}

// Save persists cleaning settings.
func (s *SettingsService) Save(settings *domain.CleanSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyTemporalThreshold, settings.TemporalThreshold); err != nil {
		return fmt.Errorf("save temporal threshold: %w", err)
	}
	if err := s.configStore.Set(keyNumericThreshold, settings.NumericThreshold); err != nil {
		return fmt.Errorf("save numeric threshold: %w", err)
	}
	if err := s.configStore.Set(keySampleSize, settings.SampleSize); err != nil {
		return fmt.Errorf("save sample size: %w", err)
	}
	if err := s.configStore.Set(keyNameHints, settings.NameHints); err != nil {
		return fmt.Errorf("save name hints: %w", err)
	}
	if err := s.configStore.Set(keyDateLayouts, settings.DateLayouts); err != nil {
		return fmt.Errorf("save date layouts: %w", err)
	}
	if err := s.configStore.Set(keyMissingTokens, settings.MissingTokens); err != nil {
		return fmt.Errorf("save missing tokens: %w", err)
	}
	if err := s.configStore.Set(keyExcludeColumns, settings.ExcludeColumns); err != nil {
		return fmt.Errorf("save exclude columns: %w", err)
	}
	if err := s.configStore.Set(keyOutputSuffix, settings.OutputSuffix); err != nil {
		return fmt.Errorf("save output suffix: %w", err)
	}
	if err := s.configStore.Set(keyWorkspaceDir, settings.WorkspaceDir); err != nil {
		return fmt.Errorf("save workspace dir: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.HistoryEnabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}

	return nil
}

// Value returns the rendered value of a single setting by key.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyTemporalThreshold:
		return formatFloat(settings.TemporalThreshold), nil
	case keyNumericThreshold:
		return formatFloat(settings.NumericThreshold), nil
	case keySampleSize:
		return strconv.Itoa(settings.SampleSize), nil
	case keyNameHints:
		return formatList(settings.NameHints), nil
	case keyDateLayouts:
		return formatList(settings.DateLayouts), nil
	case keyMissingTokens:
		return formatList(settings.MissingTokens), nil
	case keyExcludeColumns:
		return formatList(settings.ExcludeColumns), nil
	case keyOutputSuffix:
		return settings.OutputSuffix, nil
	case keyWorkspaceDir:
		return settings.WorkspaceDir, nil
	case keyHistoryEnabled:
		return strconv.FormatBool(settings.HistoryEnabled), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
}

// Set parses and stores a single setting by key. The new value is
// validated against the rest of the current settings before anything is
// persisted.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyTemporalThreshold:
		settings.TemporalThreshold, err = parseFloat(value)
	case keyNumericThreshold:
		settings.NumericThreshold, err = parseFloat(value)
	case keySampleSize:
		settings.SampleSize, err = parseInt(value)
	case keyNameHints:
		settings.NameHints = parseList(value)
	case keyDateLayouts:
		settings.DateLayouts = parseList(value)
	case keyMissingTokens:
		settings.MissingTokens = parseList(value)
	case keyExcludeColumns:
		settings.ExcludeColumns = parseList(value)
	case keyOutputSuffix:
		settings.OutputSuffix = value
	case keyWorkspaceDir:
		settings.WorkspaceDir = value
	case keyHistoryEnabled:
		settings.HistoryEnabled, err = parseBool(value)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Keys returns all recognised setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyTemporalThreshold,
		keyNumericThreshold,
		keySampleSize,
		keyNameHints,
		keyDateLayouts,
		keyMissingTokens,
		keyExcludeColumns,
		keyOutputSuffix,
		keyWorkspaceDir,
		keyHistoryEnabled,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.CleanSettings {
	return domain.DefaultCleanSettings()
}

// Reset restores all settings to their defaults and persists them.
func (s *SettingsService) Reset() error {
	defaults := domain.DefaultCleanSettings()
	return s.Save(&defaults)
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults. A key that has never
// been set falls back to the default; a key set to a zero value keeps
// that value.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

// Parsing and rendering helpers for single-key access.

func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, value)
	}
	return f, nil
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, value)
	}
	return n, nil
}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, value)
	}
	return b, nil
}

// parseList splits a semicolon-separated value into its trimmed
// elements. Semicolons rather than commas, because date layouts such as
// "Jan 2, 2006" contain commas. Empty elements are dropped; an empty
// input yields an empty list.
func parseList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatList(items []string) string {
	return strings.Join(items, "; ")
}
