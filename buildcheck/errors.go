// SPDX-License-Identifier: MIT
// Package: roomcost/buildcheck
//
// errors.go — sentinel errors and the structured validation error shared by
// every builder in the module.
//
// Error policy:
//   • Callers branch on semantics with errors.Is(err, ErrMissingField) or
//     errors.Is(err, ErrInvalidValue).
//   • errors.As(err, &*Error) exposes the target name and each failing field.
//   • A single Error enumerates ALL failing fields of one Build call, in the
//     order the builder checked them.

package buildcheck

import (
	"errors"
	"strings"
)

// ErrMissingField indicates that a required builder field was never set
// (or was set to a blank string where text is required).
var ErrMissingField = errors.New("buildcheck: missing required field")

// ErrInvalidValue indicates that a field was set but its value was rejected
// by an opt-in validation policy (e.g. negative unit cost).
var ErrInvalidValue = errors.New("buildcheck: invalid field value")

// FieldError describes one failing field.
type FieldError struct {
	// Field is the stable machine name of the field ("name", "dimensions", ...).
	Field string
	// Description is the human-readable message, e.g. "Name can not be blank".
	Description string
	// Kind is ErrMissingField or ErrInvalidValue.
	Kind error
}

// Error is returned by Build methods when validation fails.
type Error struct {
	// Target names the value being built ("room", "flooring").
	Target string
	// Fields lists every failing field in check order. Never empty.
	Fields []FieldError
}

// Error renders "<target>: <desc>; <desc>".
func (e *Error) Error() string {
	descs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		descs = append(descs, f.Description)
	}

	return e.Target + ": " + strings.Join(descs, "; ")
}

// Unwrap returns the distinct sentinel kinds so errors.Is matches any of them.
func (e *Error) Unwrap() []error {
	var kinds []error
	for _, f := range e.Fields {
		if !containsErr(kinds, f.Kind) {
			kinds = append(kinds, f.Kind)
		}
	}

	return kinds
}

// Missing returns the names of fields that failed with ErrMissingField.
func (e *Error) Missing() []string {
	var names []string
	for _, f := range e.Fields {
		if f.Kind == ErrMissingField {
			names = append(names, f.Field)
		}
	}

	return names
}

// Has reports whether field failed validation for any reason.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}

	return false
}

func containsErr(list []error, target error) bool {
	for _, e := range list {
		if e == target {
			return true
		}
	}

	return false
}
