// Package normalisers provides implementations of the ColumnNormaliser
// interface for the classified column types. Each normaliser knows how
// to canonicalise the values of one column type.
//
// Normalisers are registered with the NormaliserRegistry at startup.
// Numeric columns intentionally have no normaliser and pass through the
// registry unchanged.
package normalisers
