// SPDX-License-Identifier: MIT
// Package: roomcost/room
//
// equal.go — equality and ordering of rooms.
//
// IMPORTANT: rooms compare by (name, area) ONLY.
//   • Flooring is ignored: a room before and after SetFlooring is Equal.
//   • Raw dimensions are ignored: 2×3 and 6×1 rooms with the same name are Equal.
// Use == on Room (all fields comparable) for full structural equality.

package room

import (
	"cmp"
	"strings"
)

// Key is the comparison key of a Room.
type Key struct {
	Name string
	Area float64
}

// Key returns {Name(), Area()}.
func (r Room) Key() Key {
	return Key{Name: r.name, Area: r.Area()}
}

// Equal reports whether r and other have the same name and the same area.
func (r Room) Equal(other Room) bool {
	return r.name == other.name && r.Area() == other.Area()
}

// Compare orders by name, then by area. It returns -1, 0 or +1.
// NaN areas sort before any other area.
func (r Room) Compare(other Room) int {
	if c := strings.Compare(r.name, other.name); c != 0 {
		return c
	}

	return cmp.Compare(r.Area(), other.Area())
}

// Less reports whether r sorts before other.
func (r Room) Less(other Room) bool {
	return r.Compare(other) < 0
}
