// Package roomdata turns textual house descriptions into validated houses.
//
// Three input formats are supported:
//
//   - text: one room per line, "<name>; <length> <width> <unit_cost> <flooring>"
//   - YAML: a document with a name and a list of rooms
//   - HCL:  a "room" block per room, with an optional "price" object for costs
//
// Every decoder fills a room.Builder (which wraps a flooring.Builder) per
// record and lets the builder decide what is missing, then collects the rooms
// in a house.Builder. Numbers that fail to parse in the text format fall back
// to 1.0 unless WithStrictNumbers is given; this lenient default matches the
// sample data the tool was written for.
//
//	h, err := roomdata.ParseString("Kitchen; 20 12 3.87 Tile")
//	h, err := roomdata.Load("house.hcl", "", roomdata.WithPrices(prices))
//
// By default the first failing record aborts the parse; WithSkipInvalid drops
// failing records and reports each one to a callback instead.
package roomdata
