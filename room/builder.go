// SPDX-License-Identifier: MIT
// Package: roomcost/room
//
// builder.go — validating construction of Room values.
//
// Contract:
//   • Builder is a value type; WithX returns a modified copy (no aliasing
//     between branches of a chain).
//   • Required: non-blank name, dimensions, flooring. Build reports EVERY
//     missing field in one *buildcheck.Error instead of failing on the first.
//   • Flooring is accumulated through an embedded flooring.Builder, so a
//     blank flooring name surfaces as "flooring.name".
//   • Positivity / non-negativity checks are opt-in (see options.go).

package room

import (
	"strings"

	"github.com/katalvlaran/roomcost/buildcheck"
	"github.com/katalvlaran/roomcost/flooring"
)

// Field names reported in *buildcheck.Error.
const (
	FieldName       = "name"
	FieldDimensions = "dimensions"
	FieldFlooring   = "flooring"
)

const (
	descNameBlank       = "Name can not be blank"
	descDimensionsUnset = "Dimensions must be set"
	descFlooringUnset   = "Flooring must be set"
	descDimensionsNeg   = "Dimensions must be finite and positive"
)

// Builder accumulates the optional fields of a Room.
type Builder struct {
	name        string
	dimensions  DimensionSet
	dimsSet     bool
	flooring    flooring.Builder
	flooringSet bool
	policy      policy
}

// NewBuilder returns an empty builder configured by opts.
func NewBuilder(opts ...Option) Builder {
	p := newPolicy(opts...)
	return Builder{
		flooring: flooring.NewBuilder(p.flooringOpts()...),
		policy:   p,
	}
}

// WithName sets the room name.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithDimensions sets length and width together.
func (b Builder) WithDimensions(l, w float64) Builder {
	b.dimensions = NewDimensionSet(l, w)
	b.dimsSet = true
	return b
}

// WithDimensionSet sets both dimensions from d.
func (b Builder) WithDimensionSet(d DimensionSet) Builder {
	return b.WithDimensions(d.Length, d.Width)
}

// WithFlooring sets the flooring type name and unit cost together.
func (b Builder) WithFlooring(name string, unitCost float64) Builder {
	b.flooring = b.flooring.WithSpecificName(name).WithUnitCost(unitCost)
	b.flooringSet = true
	return b
}

// WithFlooringOf copies an already built Flooring into the builder.
func (b Builder) WithFlooringOf(f flooring.Flooring) Builder {
	return b.WithFlooring(f.TypeName, f.UnitCost)
}

// FlooringBuilder returns the flooring.Builder the room currently holds. It
// carries the room's cost policy, so extending it and passing it back through
// WithFlooringBuilder keeps that policy.
func (b Builder) FlooringBuilder() flooring.Builder {
	return b.flooring
}

// WithFlooringBuilder hands a partially or fully configured flooring.Builder
// to the room. Its own options govern flooring validation.
func (b Builder) WithFlooringBuilder(fb flooring.Builder) Builder {
	b.flooring = fb
	b.flooringSet = true
	return b
}

// Build validates the accumulated fields and returns the Room.
func (b Builder) Build() (Room, error) {
	c := buildcheck.New("room")
	c.Require(strings.TrimSpace(b.name) != "", FieldName, descNameBlank)
	c.Require(b.dimsSet, FieldDimensions, descDimensionsUnset)
	if b.dimsSet && b.policy.positiveDimensions {
		c.Check(positive(b.dimensions.Length) && positive(b.dimensions.Width), FieldDimensions, descDimensionsNeg)
	}
	c.Require(b.flooringSet, FieldFlooring, descFlooringUnset)

	var (
		f   flooring.Flooring
		err error
	)
	if b.flooringSet {
		f, err = b.flooring.Build()
		c.Nest(FieldFlooring, "Flooring", err)
	}
	if err = c.Err(); err != nil {
		return Room{}, err
	}

	return Room{name: b.name, dimensions: b.dimensions, flooring: f}, nil
}

func positive(v float64) bool {
	return buildcheck.Finite(v) && v > 0
}
