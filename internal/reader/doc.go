// Package reader orchestrates filling an NXem template from arbitrary user
// input: deployment configuration, ELN exports, convention documents, and
// metadata extracted from vendor files.
package reader
