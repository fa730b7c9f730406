// Package mapping declares and applies vendor-metadata-to-NeXus mapping
// tables.
//
// A Table pairs a target path prefix with a source key prefix and lists of
// typed field entries; applying a table walks the entries, resolves each
// source key against the flattened vendor metadata, coerces the value
// (string, bool, float64, timestamp, file fingerprint), converts units, and
// writes the result under the resolved template path.
//
// An absent source key is the dominant, expected miss and never errors;
// malformed table declarations (unknown modifier names, unresolvable unit
// symbols) are configuration errors caught by Validate before any
// application happens.
package mapping
