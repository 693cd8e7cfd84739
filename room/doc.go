// Package room models a single room: a name, a DimensionSet and a flooring.
//
// Construction goes through the validating Builder:
//
//	r, err := room.NewBuilder().
//		WithName("Kitchen").
//		WithDimensions(20, 12).
//		WithFlooring("Tile", 3.87).
//		Build()
//	// r.Area() == 240, r.FlooringCost() == 928.8
//
// Build enumerates every missing required field (name, dimensions, flooring)
// in a single *buildcheck.Error.
//
// After construction a Room can be updated with the fluent WithX methods
// (value receivers, they return a modified copy) or with SetFlooring, the
// only in-place mutation. None of those validate.
//
// Equality is narrow on purpose: Equal and Compare look at the name and the
// derived area only. Two rooms that differ solely in flooring, or in how the
// same area is split into length and width, are Equal. Use == for a full
// structural comparison.
package room
