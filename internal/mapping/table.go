package mapping

import (
	"fmt"

	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

// Metadata is flattened vendor metadata: nested tag structures joined with
// "/" into flat source keys.
type Metadata map[string]any

// FieldKind discriminates the variants a table entry can take.
type FieldKind int

const (
	// KindPlain maps a source key onto a target of the same name.
	KindPlain FieldKind = iota
	// KindRenamed maps a source key onto a differently named target.
	KindRenamed
	// KindConstant writes a fixed value, no source lookup.
	KindConstant
	// KindUnit maps a numeric source onto a target with unit handling.
	KindUnit
)

// String returns a human-readable kind name.
func (k FieldKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindRenamed:
		return "renamed"
	case KindConstant:
		return "constant"
	case KindUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Field is one tagged-variant entry of a mapping table.
type Field struct {
	Kind FieldKind

	// Trg is the target name below the table's target prefix.
	Trg string
	// Src is the source key below the table's source prefix.
	Src string
	// Value is the fixed value for constant entries. It may be a
	// units.Quantity, in which case magnitude and unit are written
	// separately.
	Value any

	// TrgUnit is the unit symbol the target path expects ("" for none).
	TrgUnit string
	// SrcUnit is a fixed unit symbol the source value is recorded in.
	SrcUnit string
	// SrcUnitKey is a metadata key holding the source unit symbol.
	SrcUnitKey string
}

// Plain declares a source key mapped onto a same-named target.
func Plain(name string) Field {
	return Field{Kind: KindPlain, Trg: name, Src: name}
}

// Renamed declares a source key mapped onto a differently named target.
func Renamed(trg, src string) Field {
	return Field{Kind: KindRenamed, Trg: trg, Src: src}
}

// Constant declares a fixed value written to the target.
func Constant(trg string, value any) Field {
	return Field{Kind: KindConstant, Trg: trg, Value: value}
}

// WithUnit declares a numeric source already recorded in the target unit.
func WithUnit(trg, trgUnit, src string) Field {
	return Field{Kind: KindUnit, Trg: trg, Src: src, TrgUnit: trgUnit}
}

// WithUnitConv declares a numeric source recorded in srcUnit, converted to
// trgUnit on write.
func WithUnitConv(trg, trgUnit, src, srcUnit string) Field {
	return Field{Kind: KindUnit, Trg: trg, Src: src, TrgUnit: trgUnit, SrcUnit: srcUnit}
}

// WithUnitKey declares a numeric source whose unit symbol sits under
// another metadata key, converted to trgUnit on write.
func WithUnitKey(trg, trgUnit, src, srcUnitKey string) Field {
	return Field{Kind: KindUnit, Trg: trg, Src: src, TrgUnit: trgUnit, SrcUnitKey: srcUnitKey}
}

// TimestampField maps a unix timestamp source key onto an ISO8601 target.
type TimestampField struct {
	Trg string
	Src string
	// Zone is an IANA timezone name; empty means UTC.
	Zone string
}

// Table maps source keys below PrefixSrc onto template paths below
// PrefixTrg. Each typed list carries the coercion applied to its entries.
type Table struct {
	// Name identifies the table in diagnostics.
	Name string

	// PrefixTrg is the variadic target path prefix.
	PrefixTrg string
	// PrefixSrc lists source key prefixes tried in order; empty means
	// keys are used verbatim.
	PrefixSrc []string

	// Use writes constants (no source lookup).
	Use []Field
	// Map passes source values through untyped.
	Map []Field
	// MapToStr requires text-typed sources.
	MapToStr []Field
	// MapToBool interprets human boolean statements strictly.
	MapToBool []Field
	// MapToF8 coerces sources to float64, with optional unit conversion.
	MapToF8 []Field
	// UnixToISO8601 converts unix timestamps to ISO8601 text.
	UnixToISO8601 []TimestampField
	// SHA256 fingerprints the file a source key points at.
	SHA256 []Field
}

// Validate checks the table declaration against the unit registry. It
// catches configuration mistakes (empty prefixes or names, unit symbols the
// registry cannot resolve) before any application happens.
func (t *Table) Validate(reg *units.Registry) error {
	if t.PrefixTrg == "" {
		return fmt.Errorf("table %s: prefix_trg must not be empty", t.Name)
	}

	lists := map[string][]Field{
		"use":         t.Use,
		"map":         t.Map,
		"map_to_str":  t.MapToStr,
		"map_to_bool": t.MapToBool,
		"map_to_f8":   t.MapToF8,
		"sha256":      t.SHA256,
	}

	for listName, fields := range lists {
		for _, f := range fields {
			if f.Trg == "" {
				return fmt.Errorf("table %s: %s entry with empty target", t.Name, listName)
			}

			if f.Kind != KindConstant && f.Src == "" {
				return fmt.Errorf("table %s: %s entry %q with empty source", t.Name, listName, f.Trg)
			}

			if f.TrgUnit != "" {
				if _, ok := reg.Lookup(f.TrgUnit); !ok {
					return fmt.Errorf("table %s: entry %q: unknown target unit %q", t.Name, f.Trg, f.TrgUnit)
				}
			}

			if f.SrcUnit != "" {
				if _, ok := reg.Lookup(f.SrcUnit); !ok {
					return fmt.Errorf("table %s: entry %q: unknown source unit %q", t.Name, f.Trg, f.SrcUnit)
				}
			}
		}
	}

	for _, f := range t.UnixToISO8601 {
		if f.Trg == "" || f.Src == "" {
			return fmt.Errorf("table %s: unix_to_iso8601 entry with empty target or source", t.Name)
		}
	}

	return nil
}

// sourcePrefixes returns the prefixes to try, falling back to the verbatim
// key when none are declared.
func (t *Table) sourcePrefixes() []string {
	if len(t.PrefixSrc) == 0 {
		return []string{""}
	}

	return t.PrefixSrc
}

// lookup resolves a source key against the metadata, trying each source
// prefix in declaration order.
func (t *Table) lookup(meta Metadata, src string) (any, bool) {
	for _, prefix := range t.sourcePrefixes() {
		if v, ok := meta[prefix+src]; ok {
			return v, true
		}
	}

	return nil, false
}
