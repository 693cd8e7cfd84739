// SPDX-License-Identifier: MIT
// Package: roomcost/room
//
// dimensions.go — the DimensionSet value type.

package room

// DimensionSet is a length/width pair. It performs no validation of its own;
// positivity is an opt-in Builder policy.
type DimensionSet struct {
	Length float64
	Width  float64
}

// NewDimensionSet returns {l, w}.
func NewDimensionSet(l, w float64) DimensionSet {
	return DimensionSet{Length: l, Width: w}
}

// DefaultDimensions returns the 1×1 set.
func DefaultDimensions() DimensionSet {
	return NewDimensionSet(1, 1)
}

// DimensionsOf converts a {length, width} pair.
func DimensionsOf(pair [2]float64) DimensionSet {
	return NewDimensionSet(pair[0], pair[1])
}

// Area returns Width * Length.
func (d DimensionSet) Area() float64 {
	return d.Width * d.Length
}
