// Package domain defines the core business entities for csvclean.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Table: An in-memory tabular dataset of named columns
//   - Column: A named, type-tagged sequence of cells
//   - Cell: A present scalar value or a missing marker
//   - CleanSettings: Classification and normalisation policy
//   - CleanReport: The observable outcome of one cleaning run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
