// SPDX-License-Identifier: MIT
// Package: roomcost/cost
//
// cost.go — discounting and reduction over room sequences.

package cost

import (
	"iter"

	"github.com/katalvlaran/roomcost/room"
)

// DiscountRate is the share of the flooring cost that is actually charged.
const DiscountRate = 0.90

// Discount returns DiscountRate * r.FlooringCost().
func Discount(r room.Room) float64 {
	return DiscountRate * r.FlooringCost()
}

// Full returns r.FlooringCost() undiscounted. It has the same shape as
// Discount so either can be passed to Map or Summarize.
func Full(r room.Room) float64 {
	return r.FlooringCost()
}

// Map applies fn to every room of seq and collects the results in order.
func Map(seq iter.Seq[room.Room], fn func(room.Room) float64) []float64 {
	var out []float64
	for r := range seq {
		out = append(out, fn(r))
	}

	return out
}

// Sum adds values left to right. Sum(nil) == 0.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}

	return total
}
