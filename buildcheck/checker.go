// SPDX-License-Identifier: MIT
// Package: roomcost/buildcheck
//
// checker.go — accumulator used inside Build methods.

package buildcheck

import (
	"errors"
	"math"
)

// Checker collects failing fields for one Build call.
// The zero value is not usable; construct with New.
type Checker struct {
	target string
	fields []FieldError
}

// New returns a Checker reporting failures against target.
func New(target string) *Checker {
	return &Checker{target: target}
}

// Require records a missing-field failure when ok is false.
func (c *Checker) Require(ok bool, field, description string) {
	if !ok {
		c.fields = append(c.fields, FieldError{Field: field, Description: description, Kind: ErrMissingField})
	}
}

// Check records an invalid-value failure when ok is false.
func (c *Checker) Check(ok bool, field, description string) {
	if !ok {
		c.fields = append(c.fields, FieldError{Field: field, Description: description, Kind: ErrInvalidValue})
	}
}

// Err returns nil when nothing failed, otherwise a *Error holding a copy of
// the collected fields.
func (c *Checker) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	fields := make([]FieldError, len(c.fields))
	copy(fields, c.fields)

	return &Error{Target: c.target, Fields: fields}
}

// Finite reports whether v is neither NaN nor ±Inf.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Nest merges the fields of a nested builder's *Error under prefix, e.g.
// field "name" of a flooring becomes "flooring.name" with the description
// "Flooring: Name can not be blank". Any other non-nil error is recorded as
// an invalid value of prefix.
func (c *Checker) Nest(prefix, label string, err error) {
	if err == nil {
		return
	}
	var be *Error
	if !errors.As(err, &be) {
		c.fields = append(c.fields, FieldError{Field: prefix, Description: label + ": " + err.Error(), Kind: ErrInvalidValue})
		return
	}
	for _, f := range be.Fields {
		c.fields = append(c.fields, FieldError{
			Field:       prefix + "." + f.Field,
			Description: label + ": " + f.Description,
			Kind:        f.Kind,
		})
	}
}
