// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// record.go — format-independent room records and their assembly into a House.
//
// Each decoder (text, YAML, HCL) turns its input into []record; absent fields
// stay nil so that room.Builder, not the decoder, decides what is missing.

package roomdata

import (
	"fmt"

	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

type record struct {
	pos      int    // 1-based line or room index
	text     string // raw line or room name, for Skipped.Text
	name     string
	length   *float64
	width    *float64
	flooring *flooringRecord
}

type flooringRecord struct {
	name     string
	unitCost *float64
}

// builder maps a record onto a room.Builder wrapping a flooring.Builder.
func (r record) builder(cfg config) room.Builder {
	b := room.NewBuilder(cfg.roomOpts...).WithName(r.name)
	if r.length != nil && r.width != nil {
		b = b.WithDimensions(*r.length, *r.width)
	}
	if r.flooring != nil {
		fb := b.FlooringBuilder().WithSpecificName(r.flooring.name)
		if r.flooring.unitCost != nil {
			fb = fb.WithUnitCost(*r.flooring.unitCost)
		}
		b = b.WithFlooringBuilder(fb)
	}

	return b
}

// buildRooms validates every record, honouring WithSkipInvalid.
// describe renders the context prefix for a failing record.
func buildRooms(records []record, cfg config, describe func(record) string) ([]room.Room, error) {
	rooms := make([]room.Room, 0, len(records))
	for _, rec := range records {
		r, err := buildRoom(rec, cfg, describe)
		if err != nil {
			if cfg.skip(Skipped{Record: rec.pos, Text: rec.text, Err: err}) {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, r)
	}

	return rooms, nil
}

func buildRoom(rec record, cfg config, describe func(record) string) (room.Room, error) {
	r, err := rec.builder(cfg).Build()
	if err != nil {
		return room.Room{}, fmt.Errorf("roomdata: %s: %w", describe(rec), err)
	}

	return r, nil
}

// assemble feeds rooms into a house.Builder. docName, if non-empty, wins over
// WithHouseName.
func assemble(rooms []room.Room, cfg config, docName string) *house.House {
	name := cfg.houseName
	if docName != "" {
		name = docName
	}

	return house.NewBuilder().WithName(name).WithRooms(rooms).Build()
}

func describeRoom(rec record) string {
	return fmt.Sprintf("room %d (%q)", rec.pos, rec.name)
}
