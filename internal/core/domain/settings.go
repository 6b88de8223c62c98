package domain

import (
	"fmt"
	"time"
)

// CanonicalTimeLayout is the single fixed representation every parsed
// temporal value is rendered to. It is deliberately not configurable:
// one cleaning run produces one uniform timestamp format.
const CanonicalTimeLayout = "2006-01-02 15:04:05"

// CleanSettings holds the classification and normalisation policy for a
// cleaning run. Thresholds and format lists are configuration with
// defaults rather than hard-coded constants, so edge cases stay
// testable.
type CleanSettings struct {
	// TemporalThreshold is the minimum fraction of sampled values that
	// must parse as dates for a column to be tagged temporal.
	TemporalThreshold float64

	// NumericThreshold is the minimum fraction of sampled values that
	// must match the numeric grammar for a column to be tagged numeric.
	NumericThreshold float64

	// SampleSize caps how many non-missing values classification
	// inspects per column. Zero means inspect all values.
	SampleSize int

	// NameHints are lowercase substrings of column names that suggest a
	// temporal column (e.g., "date", "timestamp"). A hint only wins if
	// at least one sampled value actually parses.
	NameHints []string

	// DateLayouts is the ordered list of accepted Go time layouts.
	// Ambiguity is resolved by the first matching layout in the list.
	DateLayouts []string

	// MissingTokens are lowercase values treated as missing on load, in
	// addition to the empty string.
	MissingTokens []string

	// ExcludeColumns names columns the pipeline must leave untouched.
	// Excluded columns are tagged textual and skip normalisation.
	ExcludeColumns []string

	// OutputSuffix is appended to the source base name before the
	// extension when deriving the output path.
	OutputSuffix string

	// WorkspaceDir is the directory the interactive picker lists.
	WorkspaceDir string

	// HistoryEnabled controls whether cleaning runs are recorded.
	HistoryEnabled bool
}

// DefaultCleanSettings returns the policy defaults. The temporal
// threshold is intentionally lower than the numeric one: a third of a
// column parsing as dates is a strong signal, while numbers need near
// unanimity before the column stops being text.
func DefaultCleanSettings() CleanSettings {
	return CleanSettings{
		TemporalThreshold: 0.30,
		NumericThreshold:  0.90,
		SampleSize:        20,
		NameHints:         DefaultNameHints(),
		DateLayouts:       DefaultDateLayouts(),
		MissingTokens:     DefaultMissingTokens(),
		ExcludeColumns:    nil,
		OutputSuffix:      "_cleaned",
		WorkspaceDir:      ".",
		HistoryEnabled:    true,
	}
}

// DefaultDateLayouts returns the ordered default layout list. The
// canonical layout comes first so cleaned output re-parses to itself;
// day-first slashed layouts precede month-first ones, so 01/06/2023
// reads as the first of June.
func DefaultDateLayouts() []string {
	return []string{
		CanonicalTimeLayout,
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02",
		"02/01/2006 15:04:05",
		"02/01/2006 15:04",
		"02/01/2006",
		"01/02/2006 15:04:05",
		"01/02/2006 15:04",
		"01/02/2006",
		"02-01-2006",
		"2 Jan 2006",
		"Jan 2, 2006",
		"20060102",
	}
}

// DefaultNameHints returns the column-name substrings that suggest a
// temporal column.
func DefaultNameHints() []string {
	return []string{"date", "time", "datetime", "timestamp", "created", "modified"}
}

// DefaultMissingTokens returns the lowercase values treated as missing
// on load. The empty string is always missing and is not listed.
func DefaultMissingTokens() []string {
	return []string{"na", "n/a", "nan", "none", "null"}
}

// Validate checks the settings for internal consistency. Violations
// wrap ErrInvalidInput.
func (s CleanSettings) Validate() error {
	if s.TemporalThreshold <= 0 || s.TemporalThreshold > 1 {
		return fmt.Errorf("%w: temporal threshold %v outside (0, 1]", ErrInvalidInput, s.TemporalThreshold)
	}
	if s.NumericThreshold <= 0 || s.NumericThreshold > 1 {
		return fmt.Errorf("%w: numeric threshold %v outside (0, 1]", ErrInvalidInput, s.NumericThreshold)
	}
	if s.SampleSize < 0 {
		return fmt.Errorf("%w: sample size %d is negative", ErrInvalidInput, s.SampleSize)
	}
	if len(s.DateLayouts) == 0 {
		return fmt.Errorf("%w: date layout list is empty", ErrInvalidInput)
	}
	for _, layout := range s.DateLayouts {
		if err := validateLayout(layout); err != nil {
			return err
		}
	}
	if s.OutputSuffix == "" {
		return fmt.Errorf("%w: output suffix is empty", ErrInvalidInput)
	}
	return nil
}

// validateLayout checks a Go time layout by round-tripping a reference
// instant through it.
func validateLayout(layout string) error {
	if layout == "" {
		return fmt.Errorf("%w: empty date layout", ErrInvalidInput)
	}
	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(layout, ref.Format(layout)); err != nil {
		return fmt.Errorf("%w: date layout %q does not round-trip: %v", ErrInvalidInput, layout, err)
	}
	return nil
}
