package roomdata_test

import (
	"fmt"

	"github.com/katalvlaran/roomcost/roomdata"
)

func ExampleParseLine() {
	r, err := roomdata.ParseLine("Storage Room; 16 16 4.39 Birch Wood")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(r)

	// Output:
	// Room (Storage Room)
	//   Length:     16.0
	//   Width :     16.0
	//   Area  :    256.0
	//
	//   Flooring  : Birch Wood
	//   Unit Cost : $     4.39
	//   Total Cost: $  1123.84
}

func ExampleParseLine_error() {
	_, err := roomdata.ParseLine("Kitchen 20 12 3.87 Tile")
	fmt.Println(err)

	// Output:
	// line 1: "Kitchen 20 12 3.87 Tile": missing ';': roomdata: malformed line
}
