// SPDX-License-Identifier: MIT
// Package: roomcost/flooring
//
// builder.go — validating construction of Flooring values.
//
// Contract:
//   • Builder is a value type; every WithX returns a modified copy, so
//     b2 := b1.WithUnitCost(3) never changes b1.
//   • Build requires a non-blank type name AND a unit cost. All missing
//     fields are reported together in one *buildcheck.Error.
//   • Value validation (negative / non-finite cost) is opt-in via Option.

package flooring

import (
	"strings"

	"github.com/katalvlaran/roomcost/buildcheck"
)

// Field names reported in *buildcheck.Error.
const (
	FieldName     = "name"
	FieldUnitCost = "unit_cost"
)

const (
	descNameBlank     = "Name can not be blank"
	descUnitCostUnset = "Unit cost must be set"
	descUnitCostNeg   = "Unit cost must be a finite, non-negative number"
)

// Builder accumulates the optional fields of a Flooring.
type Builder struct {
	name     string
	unitCost float64
	costSet  bool
	policy   policy
}

// NewBuilder returns an empty builder configured by opts.
func NewBuilder(opts ...Option) Builder {
	return Builder{policy: newPolicy(opts...)}
}

// WithSpecificName sets the flooring type name.
func (b Builder) WithSpecificName(name string) Builder {
	b.name = name
	return b
}

// WithUnitCost sets the cost per unit area.
func (b Builder) WithUnitCost(cost float64) Builder {
	b.unitCost = cost
	b.costSet = true
	return b
}

// Build validates the accumulated fields and returns the Flooring.
func (b Builder) Build() (Flooring, error) {
	c := buildcheck.New("flooring")
	c.Require(strings.TrimSpace(b.name) != "", FieldName, descNameBlank)
	c.Require(b.costSet, FieldUnitCost, descUnitCostUnset)
	if b.costSet && b.policy.nonNegativeCost {
		c.Check(ValidCost(b.unitCost), FieldUnitCost, descUnitCostNeg)
	}
	if err := c.Err(); err != nil {
		return Flooring{}, err
	}

	return Flooring{TypeName: b.name, UnitCost: b.unitCost}, nil
}

// ValidCost reports whether cost is finite and non-negative.
func ValidCost(cost float64) bool {
	return buildcheck.Finite(cost) && cost >= 0
}
