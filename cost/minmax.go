// SPDX-License-Identifier: MIT
// Package: roomcost/cost
//
// minmax.go — extremes with first-occurrence tie-breaking.
//
// Tie-break: when several elements share the minimum (or maximum) key, the
// FIRST one encountered wins, for both ends. Only strict < and > replace the
// current extreme, so NaN keys never displace it.

package cost

import "iter"

// Extremes is the result of MinMax.
type Extremes struct {
	Min      float64
	Max      float64
	MinIndex int
	MaxIndex int
}

// MinMax returns the smallest and largest value with their indexes.
// ok is false when values is empty. A single value is both Min and Max.
func MinMax(values []float64) (ext Extremes, ok bool) {
	if len(values) == 0 {
		return Extremes{}, false
	}
	ext = Extremes{Min: values[0], Max: values[0]}
	for i := 1; i < len(values); i++ {
		v := values[i]
		if v < ext.Min {
			ext.Min, ext.MinIndex = v, i
		}
		if v > ext.Max {
			ext.Max, ext.MaxIndex = v, i
		}
	}

	return ext, true
}

// MinMaxBy returns the elements of seq with the smallest and largest key.
// ok is false when seq yields nothing.
func MinMaxBy[T any](seq iter.Seq[T], key func(T) float64) (lo, hi T, ok bool) {
	var loKey, hiKey float64
	for item := range seq {
		k := key(item)
		if !ok {
			lo, hi, loKey, hiKey, ok = item, item, k, k, true
			continue
		}
		if k < loKey {
			lo, loKey = item, k
		}
		if k > hiKey {
			hi, hiKey = item, k
		}
	}

	return lo, hi, ok
}
