// SPDX-License-Identifier: MIT
// Package: roomcost/room

package room

import (
	"fmt"
	"strings"
)

// String renders the room as a multi-line block:
//
//	Room (Laundry Room)
//	  Length:      8.0
//	  Width :      4.0
//	  Area  :     32.0
//
//	  Flooring  : Laminate
//	  Unit Cost : $     1.95
//	  Total Cost: $    62.40
//
// Every line, including the last, ends with a newline.
func (r Room) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Room (%s)\n", r.name)
	fmt.Fprintf(&sb, "  %-6s: %8.1f\n", "Length", r.dimensions.Length)
	fmt.Fprintf(&sb, "  %-6s: %8.1f\n", "Width", r.dimensions.Width)
	fmt.Fprintf(&sb, "  %-6s: %8.1f\n", "Area", r.Area())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Flooring  : %s\n", r.flooring.TypeName)
	fmt.Fprintf(&sb, "  Unit Cost : $ %8.2f\n", r.flooring.UnitCost)
	fmt.Fprintf(&sb, "  Total Cost: $ %8.2f\n", r.FlooringCost())

	return sb.String()
}
