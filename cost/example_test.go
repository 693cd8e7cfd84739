package cost_test

import (
	"fmt"

	"github.com/katalvlaran/roomcost/cost"
	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

// ExampleSummarize discounts every room of a small house.
func ExampleSummarize() {
	laundry, _ := room.NewBuilder().WithName("Laundry Room").WithDimensions(8, 4).WithFlooring("Laminate", 1.95).Build()
	kitchen, _ := room.NewBuilder().WithName("Kitchen").WithDimensions(20, 12).WithFlooring("Tile", 3.87).Build()
	h := house.NewBuilder().WithRoom(laundry).WithRoom(kitchen).Build()

	s := cost.Summarize(h, cost.Discount)
	for _, c := range s.Costs {
		fmt.Printf("%.2f\n", c)
	}
	fmt.Printf("Total: %.2f\n", s.Total)
	fmt.Printf("Min  : %.2f\n", s.Extremes.Min)
	fmt.Printf("Max  : %.2f\n", s.Extremes.Max)

	// Output:
	// 56.16
	// 835.92
	// Total: 892.08
	// Min  : 56.16
	// Max  : 835.92
}
