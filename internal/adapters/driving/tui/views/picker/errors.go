package picker

import "errors"

// Error definitions for the picker view.
var (
	// ErrNoCleanerService indicates that no cleaner service was provided.
	ErrNoCleanerService = errors.New("cleaner service is required")
)
