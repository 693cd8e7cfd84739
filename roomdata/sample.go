// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata

package roomdata

import "github.com/katalvlaran/roomcost/house"

// SampleData is the built-in three-room house used when no input is given.
const SampleData = `
Laundry Room; 8 4 1.95 Laminate
Kitchen; 20 12 3.87 Tile
Storage Room; 16 16 4.39 Birch Wood
`

// Sample parses SampleData.
func Sample(opts ...Option) (*house.House, error) {
	return ParseString(SampleData, opts...)
}
