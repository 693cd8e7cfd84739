// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// yaml.go — YAML house documents.
//
//	name: Sample
//	rooms:
//	  - name: Kitchen
//	    length: 20
//	    width: 12
//	    flooring:
//	      name: Tile
//	      unit_cost: 3.87

package roomdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roomcost/house"
)

type yamlHouse struct {
	Name  string     `yaml:"name"`
	Rooms []yamlRoom `yaml:"rooms"`
}

type yamlRoom struct {
	Name     string        `yaml:"name"`
	Length   *float64      `yaml:"length"`
	Width    *float64      `yaml:"width"`
	Flooring *yamlFlooring `yaml:"flooring"`
}

type yamlFlooring struct {
	Name     string   `yaml:"name"`
	UnitCost *float64 `yaml:"unit_cost"`
}

// DecodeYAML builds a House from a YAML document.
func DecodeYAML(src []byte, opts ...Option) (*house.House, error) {
	cfg := newConfig(opts...)

	var doc yamlHouse
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}

	records := make([]record, 0, len(doc.Rooms))
	for i, yr := range doc.Rooms {
		rec := record{pos: i + 1, text: yr.Name, name: yr.Name, length: yr.Length, width: yr.Width}
		if yr.Flooring != nil {
			rec.flooring = &flooringRecord{name: yr.Flooring.Name, unitCost: yr.Flooring.UnitCost}
		}
		records = append(records, rec)
	}

	rooms, err := buildRooms(records, cfg, describeRoom)
	if err != nil {
		return nil, err
	}

	return assemble(rooms, cfg, doc.Name), nil
}

// LoadYAML reads and decodes the YAML document at path.
func LoadYAML(path string, opts ...Option) (*house.House, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roomdata: LoadYAML: %w", err)
	}

	return DecodeYAML(src, opts...)
}
