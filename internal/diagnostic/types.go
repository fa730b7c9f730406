package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all findings collected during a mapping run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Table identifies the mapping table being applied (if any).
	Table string
	// SourceKey identifies the vendor metadata key involved (if any).
	SourceKey string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Codes used across the mapper.
const (
	CodeUnitUndefined       = "UNIT_UNDEFINED"
	CodeUnitUncategorized   = "UNIT_UNCATEGORIZED"
	CodeAxisShapeUnexpected = "AXIS_SHAPE_UNEXPECTED"
	CodeConventionDiffers   = "CONVENTION_DIFFERS_FROM_MSMSE"
	CodeFrameIllDefined     = "REFERENCE_FRAME_ILL_DEFINED"
	CodeFieldSkipped        = "FIELD_SKIPPED"
	CodeInputUnsupported    = "INPUT_UNSUPPORTED"
)

// AddError records an error finding.
func (d *Diagnostics) AddError(code, message, table, sourceKey string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		Table:     table,
		SourceKey: sourceKey,
	})
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, message, table, sourceKey string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Table:     table,
		SourceKey: sourceKey,
	})
}

// AddInfo records an informational finding.
func (d *Diagnostics) AddInfo(code, message, table, sourceKey string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		Table:     table,
		SourceKey: sourceKey,
	})
}

// HasErrors returns true if there are any error findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error findings, or nil if none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Table != "" {
		prefix = append(prefix, "["+d.Table+"]")
	}

	if d.SourceKey != "" {
		prefix = append(prefix, d.SourceKey)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
