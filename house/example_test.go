package house_test

import (
	"fmt"

	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
)

// ExampleUpgradeFlooring re-floors a house; the copy is Equal to the original
// but costs more and is a different instance.
func ExampleUpgradeFlooring() {
	kitchen, _ := room.NewBuilder().WithName("Kitchen").WithDimensions(20, 12).WithFlooring("Tile", 3.87).Build()
	h := house.NewBuilder().WithName("Home").WithRoom(kitchen).Build()

	up := house.UpgradeFlooring(h, house.UpgradeHouseName, house.StoneBricks())

	fmt.Println(up.Name())
	fmt.Println(h.Equal(up), house.SameInstance(h, up))
	fmt.Printf("%.2f -> %.2f\n", h.At(0).FlooringCost(), up.At(0).FlooringCost())

	// Output:
	// After Stone Bricks
	// true false
	// 928.80 -> 3112.80
}
