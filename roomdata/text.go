// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// text.go — the one-room-per-line text format.
//
//	<room name>; <length> <width> <unit_cost> <flooring name with optional spaces>
//
// Parsing rule:
//   1. split once on ';' (missing ';' ⇒ ErrMalformedLine);
//   2. trim the name, split the remainder on whitespace;
//   3. tokens 0..2 are length, width, unit cost (fewer ⇒ ErrMalformedLine);
//      an unparsable token becomes the fallback value (default 1.0), or
//      ErrBadNumber under WithStrictNumbers;
//   4. tokens 3.. rejoin with single spaces as the flooring name.
// Blank lines are ignored.

package roomdata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

const numericTokens = 3

// ParseLine parses a single record into a validated Room.
func ParseLine(line string, opts ...Option) (room.Room, error) {
	cfg := newConfig(opts...)
	rec, err := parseLine(line, 1, cfg)
	if err != nil {
		return room.Room{}, err
	}

	return buildRoom(rec, cfg, describeLine)
}

// ParseRooms reads records from r until EOF. Blank lines are skipped.
func ParseRooms(r io.Reader, opts ...Option) ([]room.Room, error) {
	return parseRooms(r, newConfig(opts...))
}

// ParseHouse reads records from r and assembles them into a House named by
// WithHouseName (house.DefaultName otherwise).
func ParseHouse(r io.Reader, opts ...Option) (*house.House, error) {
	cfg := newConfig(opts...)
	rooms, err := parseRooms(r, cfg)
	if err != nil {
		return nil, err
	}

	return assemble(rooms, cfg, ""), nil
}

// ParseString is ParseHouse over a string.
func ParseString(src string, opts ...Option) (*house.House, error) {
	return ParseHouse(strings.NewReader(src), opts...)
}

func parseRooms(r io.Reader, cfg config) ([]room.Room, error) {
	var (
		rooms  []room.Room
		lineNo int
		sc     = bufio.NewScanner(r)
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseLine(line, lineNo, cfg)
		if err == nil {
			var rm room.Room
			if rm, err = buildRoom(rec, cfg, describeLine); err == nil {
				rooms = append(rooms, rm)
				continue
			}
		}
		if cfg.skip(Skipped{Record: lineNo, Text: line, Err: err}) {
			continue
		}
		return nil, err
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("roomdata: read: %w", err)
	}

	return rooms, nil
}

func parseLine(line string, lineNo int, cfg config) (record, error) {
	name, rest, ok := strings.Cut(line, ";")
	if !ok {
		return record{}, fmt.Errorf("line %d: %q: missing ';': %w", lineNo, line, ErrMalformedLine)
	}
	tokens := strings.Fields(rest)
	if len(tokens) < numericTokens {
		return record{}, fmt.Errorf("line %d: %q: want %d numbers, got %d tokens: %w",
			lineNo, line, numericTokens, len(tokens), ErrMalformedLine)
	}

	var nums [numericTokens]float64
	for i := range nums {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			if cfg.strict {
				return record{}, fmt.Errorf("line %d: %q: %w", lineNo, tokens[i], ErrBadNumber)
			}
			v = cfg.fallback
		}
		nums[i] = v
	}
	length, width, unitCost := nums[0], nums[1], nums[2]

	return record{
		pos:    lineNo,
		text:   line,
		name:   strings.TrimSpace(name),
		length: &length,
		width:  &width,
		flooring: &flooringRecord{
			name:     strings.Join(tokens[numericTokens:], " "),
			unitCost: &unitCost,
		},
	}, nil
}

func describeLine(rec record) string {
	return fmt.Sprintf("line %d", rec.pos)
}
