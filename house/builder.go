// SPDX-License-Identifier: MIT
// Package: roomcost/house

package house

import (
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/roomcost/room"
)

// Builder accumulates a name and a room collection.
// Like the room and flooring builders it is a value type: every WithX copies
// the room slice before changing it, so two branches of one chain never share
// backing storage.
type Builder struct {
	name  string
	rooms []room.Room
}

// NewBuilder returns an empty builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithName sets the house name.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithRooms replaces the room collection with a copy of rooms.
func (b Builder) WithRooms(rooms []room.Room) Builder {
	b.rooms = slices.Clone(rooms)
	return b
}

// WithRoom appends one room.
func (b Builder) WithRoom(r room.Room) Builder {
	b.rooms = append(slices.Clip(b.rooms), r)
	return b
}

// Build returns the House. It always succeeds: there are no required fields,
// and an unset name becomes DefaultName.
func (b Builder) Build() *House {
	name := b.name
	if name == "" {
		name = DefaultName
	}
	rooms := slices.Clone(b.rooms)
	if rooms == nil {
		rooms = []room.Room{}
	}

	return &House{id: uuid.New(), name: name, rooms: rooms}
}
