// Package house groups rooms into a named House and derives new houses from
// existing ones.
//
// 🏠 Building:
//
//	h := house.NewBuilder().
//		WithName("Sample").
//		WithRooms(rooms).
//		Build()
//
// Build never fails; an unset name becomes "Generic". The house copies the
// rooms it is given and receives a fresh uuid as its identity.
//
// 🔍 Reading:
//
//	for r := range h.Rooms() { ... }     // insertion order
//	for i, r := range h.All() { ... }
//
// Iteration yields Room values; the house cannot be modified through them.
//
// 🔧 Deriving:
//
//	upgraded := house.UpgradeFlooring(h, house.UpgradeHouseName, house.StoneBricks())
//
// UpgradeFlooring clones every room, installs the new flooring and builds a
// separate House. Because room equality only looks at name and area,
// h.Equal(upgraded) is still true; the difference shows in FlooringCost.
package house
