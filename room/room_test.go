package room_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/roomcost/flooring"
	"github.com/katalvlaran/roomcost/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoom(t *testing.T, name string, l, w float64, fname string, cost float64) room.Room {
	t.Helper()
	r, err := room.NewBuilder().WithName(name).WithDimensions(l, w).WithFlooring(fname, cost).Build()
	require.NoError(t, err)
	return r
}

// TestEqual_NameAndAreaOnly pins the narrow equality contract.
func TestEqual_NameAndAreaOnly(t *testing.T) {
	a := mustRoom(t, "A", 2, 3, "Tile", 1)
	b := mustRoom(t, "A", 6, 1, "Carpet", 7)

	assert.True(t, a.Equal(b), "same name and area must be equal")
	assert.True(t, b.Equal(a))
	assert.Equal(t, 0, a.Compare(b))
	assert.NotEqual(t, a, b, "structural comparison still sees the difference")

	c := mustRoom(t, "B", 2, 3, "Tile", 1)
	assert.False(t, a.Equal(c), "different names")

	d := mustRoom(t, "A", 2, 4, "Tile", 1)
	assert.False(t, a.Equal(d), "different areas")
}

// TestCompare orders by name first, then by area.
func TestCompare(t *testing.T) {
	small := mustRoom(t, "Den", 1, 1, "Tile", 1)
	large := mustRoom(t, "Den", 3, 3, "Tile", 1)
	attic := mustRoom(t, "Attic", 9, 9, "Tile", 1)

	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 1, large.Compare(small))
	assert.True(t, attic.Less(small), "name dominates area")

	rooms := []room.Room{large, small, attic}
	slices.SortFunc(rooms, room.Room.Compare)
	assert.Equal(t, []room.Key{{Name: "Attic", Area: 81}, {Name: "Den", Area: 1}, {Name: "Den", Area: 9}},
		[]room.Key{rooms[0].Key(), rooms[1].Key(), rooms[2].Key()})
}

// TestUpdateAPI checks that WithX returns a modified copy and leaves the
// receiver alone, while SetFlooring mutates in place.
func TestUpdateAPI(t *testing.T) {
	orig := mustRoom(t, "Kitchen", 20, 12, "Tile", 3.87)

	renamed := orig.WithName("Galley")
	resized := orig.WithDimensions(10, 10)
	refloored := orig.WithFlooring("Slate", 8)

	assert.Equal(t, "Kitchen", orig.Name())
	assert.Equal(t, "Galley", renamed.Name())
	assert.Equal(t, 100.0, resized.Area())
	assert.Equal(t, "Slate", refloored.Flooring().TypeName)
	assert.Equal(t, "Tile", orig.Flooring().TypeName)

	clone := orig.Clone()
	clone.SetFlooring("Stone Bricks", 12.97)
	assert.Equal(t, flooring.Flooring{TypeName: "Stone Bricks", UnitCost: 12.97}, clone.Flooring())
	assert.Equal(t, "Tile", orig.Flooring().TypeName, "clone must not alias original")
	assert.True(t, clone.Equal(orig), "flooring change is invisible to Equal")
	assert.NotEqual(t, orig.FlooringCost(), clone.FlooringCost())
}

func TestDefaults(t *testing.T) {
	r := room.Default()
	assert.Equal(t, "Generic", r.Name())
	assert.Equal(t, room.DimensionSet{Length: 1, Width: 1}, r.Dimensions())
	assert.Equal(t, flooring.Default(), r.Flooring())
	assert.Equal(t, 1.0, r.FlooringCost())

	assert.Equal(t, room.NewDimensionSet(1, 1), room.DefaultDimensions())
	assert.Equal(t, room.NewDimensionSet(4, 5), room.DimensionsOf([2]float64{4, 5}))
}

// TestString checks the fixed-width rendering.
func TestString(t *testing.T) {
	r := mustRoom(t, "Laundry Room", 8, 4, "Laminate", 1.95)
	want := "Room (Laundry Room)\n" +
		"  Length:      8.0\n" +
		"  Width :      4.0\n" +
		"  Area  :     32.0\n" +
		"\n" +
		"  Flooring  : Laminate\n" +
		"  Unit Cost : $     1.95\n" +
		"  Total Cost: $    62.40\n"
	assert.Equal(t, want, r.String())
}
