// Package humanbool normalizes free-text boolean statements found in
// ELN/YAML sources into strict booleans.
//
// The vocabulary is fixed and case-insensitive; anything outside it is a
// hard failure. Silent truthiness coercion on scientific metadata would
// corrupt provenance, so there is no default-false fallback.
package humanbool

import (
	"fmt"
	"strings"
)

// statements maps recognized lowercase tokens to their boolean value.
var statements = map[string]bool{
	"0":     false,
	"1":     true,
	"n":     false,
	"y":     true,
	"no":    false,
	"yes":   true,
	"false": false,
	"true":  true,
}

// ErrUnrecognizedToken reports a string outside the fixed vocabulary.
type ErrUnrecognizedToken struct {
	Token string
}

func (e *ErrUnrecognizedToken) Error() string {
	return fmt.Sprintf("%q is not a recognized boolean statement", e.Token)
}

// ErrNotConvertible reports an input type that cannot carry a boolean
// statement at all.
type ErrNotConvertible struct {
	Value any
}

func (e *ErrNotConvertible) Error() string {
	return fmt.Sprintf("value %v of type %T cannot be interpreted as boolean", e.Value, e.Value)
}

// Interpret converts a human boolean statement to a bool. Native booleans
// pass through unchanged; strings are matched case-insensitively against
// the fixed vocabulary.
func Interpret(arg any) (bool, error) {
	switch v := arg.(type) {
	case bool:
		return v, nil
	case string:
		val, ok := statements[strings.ToLower(v)]
		if !ok {
			return false, &ErrUnrecognizedToken{Token: v}
		}

		return val, nil
	default:
		return false, &ErrNotConvertible{Value: arg}
	}
}

// Probe reports whether arg would be interpretable without converting it.
func Probe(arg any) bool {
	switch v := arg.(type) {
	case bool:
		return true
	case string:
		_, ok := statements[strings.ToLower(v)]
		return ok
	default:
		return false
	}
}
