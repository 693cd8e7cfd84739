// SPDX-License-Identifier: MIT
// Package: roomcost/cost

package cost

import (
	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

// Summary aggregates per-room costs of one house.
type Summary struct {
	// Costs holds one value per room, in insertion order.
	Costs []float64
	Total float64
	// Extremes is meaningful only when HasExtremes is true.
	Extremes    Extremes
	HasExtremes bool
}

// Summarize maps every room of h through fn (typically Discount) and reduces
// the results.
func Summarize(h *house.House, fn func(room.Room) float64) Summary {
	costs := Map(h.Rooms(), fn)
	ext, ok := MinMax(costs)

	return Summary{
		Costs:       costs,
		Total:       Sum(costs),
		Extremes:    ext,
		HasExtremes: ok,
	}
}
