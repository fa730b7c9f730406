package template

import (
	"errors"
	"fmt"
)

// ObjectKind is the HDF5-equivalent node kind of a template object.
type ObjectKind string

const (
	KindGroup     ObjectKind = "group"
	KindDataset   ObjectKind = "dataset"
	KindAttribute ObjectKind = "attribute"
)

// IsValid returns true if the kind is a recognized value.
func (k ObjectKind) IsValid() bool {
	return k == KindGroup || k == KindDataset || k == KindAttribute
}

// Object is one node of the labelled property graph a NeXus file
// serializes: an attribute, dataset, or group, carrying a unit symbol
// (not a unit category) and an instance value.
type Object struct {
	Name  string
	Unit  string
	Value any
	Kind  ObjectKind
}

// ErrInvalidKind reports a kind outside group/dataset/attribute.
var ErrInvalidKind = errors.New("object kind must be group, dataset, or attribute")

// NewObject validates and constructs an Object. Names and units must be
// non-empty; a nil value forces the unit to "unitless".
func NewObject(name, unit string, value any, kind ObjectKind) (*Object, error) {
	if name == "" {
		return nil, errors.New("object name must be a non-empty string")
	}

	if unit == "" {
		return nil, errors.New("object unit must be a non-empty string")
	}

	if !kind.IsValid() {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidKind, kind)
	}

	if value == nil {
		unit = "unitless"
	}

	return &Object{Name: name, Unit: unit, Value: value, Kind: kind}, nil
}

// String reports the object for debugging.
func (o *Object) String() string {
	return fmt.Sprintf("name: %s, unit: %s, kind: %s, value: %v", o.Name, o.Unit, o.Kind, o.Value)
}
