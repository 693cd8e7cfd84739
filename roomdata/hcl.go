// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// hcl.go — HCL house documents.
//
//	name = "Sample"
//
//	room "Kitchen" {
//	  length = 20
//	  width  = 12
//	  flooring {
//	    name      = "Tile"
//	    unit_cost = price.tile   # needs WithPrices(map[string]float64{"tile": 3.87})
//	  }
//	}
//
// Expressions are evaluated with a single variable, "price", an object built
// from WithPrices. Without WithPrices it is an empty object.

package roomdata

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/roomcost/house"
)

// priceVar is the HCL variable holding WithPrices entries.
const priceVar = "price"

type hclHouse struct {
	Name  string    `hcl:"name,optional"`
	Rooms []hclRoom `hcl:"room,block"`
}

type hclRoom struct {
	Name     string       `hcl:"name,label"`
	Length   *float64     `hcl:"length,optional"`
	Width    *float64     `hcl:"width,optional"`
	Flooring *hclFlooring `hcl:"flooring,block"`
}

type hclFlooring struct {
	Name     string   `hcl:"name,optional"`
	UnitCost *float64 `hcl:"unit_cost,optional"`
}

// DecodeHCL builds a House from HCL source. filename is used in diagnostics.
func DecodeHCL(src []byte, filename string, opts ...Option) (*house.House, error) {
	cfg := newConfig(opts...)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %w", ErrDecode, diags)
	}

	var doc hclHouse
	if diags = gohcl.DecodeBody(file.Body, evalContext(cfg.prices), &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %w", ErrDecode, diags)
	}

	records := make([]record, 0, len(doc.Rooms))
	for i, hr := range doc.Rooms {
		rec := record{pos: i + 1, text: hr.Name, name: hr.Name, length: hr.Length, width: hr.Width}
		if hr.Flooring != nil {
			rec.flooring = &flooringRecord{name: hr.Flooring.Name, unitCost: hr.Flooring.UnitCost}
		}
		records = append(records, rec)
	}

	rooms, err := buildRooms(records, cfg, describeRoom)
	if err != nil {
		return nil, err
	}

	return assemble(rooms, cfg, doc.Name), nil
}

// LoadHCL reads and decodes the HCL file at path.
func LoadHCL(path string, opts ...Option) (*house.House, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roomdata: LoadHCL: %w", err)
	}

	return DecodeHCL(src, path, opts...)
}

func evalContext(prices map[string]float64) *hcl.EvalContext {
	attrs := make(map[string]cty.Value, len(prices))
	for k, v := range prices {
		attrs[k] = cty.NumberFloatVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{priceVar: cty.ObjectVal(attrs)},
	}
}
