// Package cost turns rooms into money: the 90% discount, per-room maps,
// totals and extremes.
//
//	s := cost.Summarize(h, cost.Discount)
//	fmt.Printf("Total: %.2f\n", s.Total)
//	if s.HasExtremes {
//		fmt.Printf("Min  : %.2f\n", s.Extremes.Min)
//		fmt.Printf("Max  : %.2f\n", s.Extremes.Max)
//	}
//
// MinMax and MinMaxBy break ties by first occurrence at both ends.
package cost
