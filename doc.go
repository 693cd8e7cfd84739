// Package roomcost computes flooring costs for houses built from validated
// rooms: from a single Flooring value up to discounted totals over a whole
// house and its re-floored copy.
//
// 🚀 What is roomcost?
//
//	A small, dependency-light toolkit that brings together:
//		• Validated builders: Flooring, Room and House assembled from optional fields
//		• Value semantics: narrow (name, area) room equality, ordering, cloning
//		• Derivations: re-flooring a whole house without touching the original
//		• Aggregation: discount, total, min/max with first-occurrence ties
//		• Input: one-room-per-line text, YAML and HCL house documents
//		• Output: console report and Excel workbook export
//
// ✨ Why roomcost?
//
//   - Every missing builder field is reported at once, not just the first
//   - Builders are values: branching a chain never aliases earlier state
//   - Houses own their rooms; iteration hands out copies
//
// Packages:
//
//	buildcheck/ — structured validation errors shared by all builders
//	flooring/   — Flooring value + Builder
//	room/       — DimensionSet, Room + Builder, equality and rendering
//	house/      — House + Builder, identity, flooring upgrade
//	cost/       — discount, sum, min/max, per-house summary
//	roomdata/   — text, YAML and HCL decoders, built-in sample
//	report/     — text report and XLSX export
//	cmd/roomcost — the command-line tool
//
// Quick example:
//
//	r, err := room.NewBuilder().
//		WithName("Kitchen").
//		WithDimensions(20, 12).
//		WithFlooring("Tile", 3.87).
//		Build()
//	// r.Area() == 240, r.FlooringCost() == 928.8, cost.Discount(r) == 835.92
//
//	go install github.com/katalvlaran/roomcost/cmd/roomcost@latest
package roomcost
