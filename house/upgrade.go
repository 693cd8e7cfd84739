// SPDX-License-Identifier: MIT
// Package: roomcost/house
//
// upgrade.go — deriving a re-floored house.

package house

import "github.com/katalvlaran/roomcost/flooring"

// Defaults for the standard upgrade applied by the roomcost command.
const (
	UpgradeHouseName    = "After Stone Bricks"
	UpgradeFlooringName = "Stone Bricks"
	UpgradeUnitCost     = 12.97
)

// StoneBricks returns the flooring installed by the standard upgrade.
func StoneBricks() flooring.Flooring {
	return flooring.Flooring{TypeName: UpgradeFlooringName, UnitCost: UpgradeUnitCost}
}

// UpgradeFlooring returns a new House named name whose rooms are clones of
// original's rooms with f installed in each. original is not modified and
// the two houses share no storage.
//
// Note that original.Equal(result) is true: room equality ignores flooring.
// Compare FlooringCost or Flooring() to observe the upgrade.
func UpgradeFlooring(original *House, name string, f flooring.Flooring) *House {
	b := NewBuilder().WithName(name)
	for r := range original.Rooms() {
		updated := r.Clone()
		updated.SetFlooring(f.TypeName, f.UnitCost)
		b = b.WithRoom(updated)
	}

	return b.Build()
}
