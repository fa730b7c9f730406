// Package template models the NeXus NXem template the conversion framework
// hands to the reader plugin: a flat mapping from schema paths to instance
// values, plus the variadic-path notation used by the mapping tables.
package template
