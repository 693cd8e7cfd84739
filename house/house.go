// SPDX-License-Identifier: MIT
// Package: roomcost/house
//
// house.go — the House type and its read-only views.
//
// Ownership:
//   • A House owns its room slice; nothing outside the package holds it.
//   • Every accessor hands out Room VALUES. A Room contains only strings and
//     floats, so a yielded room is a full copy and callers cannot reach back
//     into the house through it.
//   • Each built House carries a fresh uuid; ID() distinguishes two houses
//     whose rooms are Equal.

package house

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/roomcost/room"
)

// DefaultName is used when a Builder is given no name.
const DefaultName = "Generic"

// House is a named, ordered collection of rooms.
type House struct {
	id    uuid.UUID
	name  string
	rooms []room.Room
}

// ID returns the identity assigned at Build time.
func (h *House) ID() uuid.UUID { return h.id }

// Name returns the house name.
func (h *House) Name() string { return h.name }

// Len returns the number of rooms.
func (h *House) Len() int { return len(h.rooms) }

// At returns the i-th room in insertion order. It panics if i is out of range.
func (h *House) At(i int) room.Room { return h.rooms[i] }

// Rooms yields the rooms in insertion order.
func (h *House) Rooms() iter.Seq[room.Room] {
	return func(yield func(room.Room) bool) {
		for _, r := range h.rooms {
			if !yield(r) {
				return
			}
		}
	}
}

// All yields (index, room) pairs in insertion order.
func (h *House) All() iter.Seq2[int, room.Room] {
	return func(yield func(int, room.Room) bool) {
		for i, r := range h.rooms {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the rooms.
func (h *House) Slice() []room.Room {
	return slices.Clone(h.rooms)
}

// Sorted returns a copy of the rooms ordered by room.Room.Compare.
// Rooms that compare equal keep their insertion order.
func (h *House) Sorted() []room.Room {
	out := slices.Clone(h.rooms)
	slices.SortStableFunc(out, room.Room.Compare)

	return out
}

// Equal reports whether h and other hold the same number of rooms and the
// rooms are pairwise room.Room.Equal. Name and ID are ignored, and because
// room equality ignores flooring, so does this.
func (h *House) Equal(other *House) bool {
	if h == nil || other == nil {
		return h == other
	}

	return slices.EqualFunc(h.rooms, other.rooms, room.Room.Equal)
}

// SameInstance reports whether a and b are the same *House.
func SameInstance(a, b *House) bool {
	return a == b
}

// String renders "House (<name>)" followed by each room block, separated by
// blank lines.
func (h *House) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "House (%s)\n", h.name)
	for _, r := range h.rooms {
		sb.WriteString("\n")
		sb.WriteString(r.String())
	}

	return sb.String()
}
