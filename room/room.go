// SPDX-License-Identifier: MIT
// Package: roomcost/room
//
// room.go — the Room value type, its derived quantities and its update API.
//
// Two APIs touch a Room and they are deliberately separate:
//   • Builder (builder.go) — accumulate-then-validate construction.
//   • Room.WithX / (*Room).SetFlooring — post-construction updates with NO
//     validation. WithX has a value receiver and returns the modified copy;
//     SetFlooring is the only in-place mutation in the model.

package room

import "github.com/katalvlaran/roomcost/flooring"

// DefaultName is the name of Default().
const DefaultName = "Generic"

// Room is a named area with a flooring type.
//
// A Room holds only strings and floats, so assigning it copies it fully.
// See equal.go for the (narrow) equality contract.
type Room struct {
	name       string
	dimensions DimensionSet
	flooring   flooring.Flooring
}

// Default returns a 1×1 "Generic" room with the default flooring.
func Default() Room {
	return Room{
		name:       DefaultName,
		dimensions: DefaultDimensions(),
		flooring:   flooring.Default(),
	}
}

// Name returns the room name.
func (r Room) Name() string { return r.name }

// Dimensions returns the room's length and width.
func (r Room) Dimensions() DimensionSet { return r.dimensions }

// Flooring returns the room's flooring.
func (r Room) Flooring() flooring.Flooring { return r.flooring }

// Area returns width * length.
func (r Room) Area() float64 {
	return r.dimensions.Area()
}

// FlooringCost returns Area() * unit cost.
func (r Room) FlooringCost() float64 {
	return r.flooring.CostFor(r.Area())
}

// WithName returns a copy of r renamed to name.
func (r Room) WithName(name string) Room {
	r.name = name
	return r
}

// WithDimensions returns a copy of r with length l and width w.
func (r Room) WithDimensions(l, w float64) Room {
	r.dimensions = NewDimensionSet(l, w)
	return r
}

// WithFlooring returns a copy of r with the given flooring name and unit cost.
func (r Room) WithFlooring(name string, unitCost float64) Room {
	r.SetFlooring(name, unitCost)
	return r
}

// SetFlooring replaces the flooring in place.
func (r *Room) SetFlooring(name string, unitCost float64) {
	r.flooring = flooring.Flooring{TypeName: name, UnitCost: unitCost}
}

// Clone returns an independent copy of r.
func (r Room) Clone() Room {
	return r
}
