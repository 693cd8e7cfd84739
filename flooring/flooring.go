// SPDX-License-Identifier: MIT
// Package: roomcost/flooring
//
// flooring.go — the Flooring value type.

package flooring

// Default values for a Flooring that was never specified.
const (
	DefaultTypeName = "Generic"
	DefaultUnitCost = 1.0
)

// Flooring is a named surface covering with a cost per unit area.
// It is a plain value: copies never alias each other.
type Flooring struct {
	TypeName string
	UnitCost float64
}

// Default returns the generic flooring {"Generic", 1.0}.
func Default() Flooring {
	return Flooring{TypeName: DefaultTypeName, UnitCost: DefaultUnitCost}
}

// CostFor returns area * UnitCost.
func (f Flooring) CostFor(area float64) float64 {
	return area * f.UnitCost
}
