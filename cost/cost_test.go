package cost_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/roomcost/cost"
	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func build(t *testing.T, name string, l, w, unit float64) room.Room {
	t.Helper()
	r, err := room.NewBuilder().WithName(name).WithDimensions(l, w).WithFlooring("F", unit).Build()
	require.NoError(t, err)
	return r
}

// TestDiscount checks the 90% rule, including zero-area rooms.
func TestDiscount(t *testing.T) {
	tests := []struct {
		r    room.Room
		want float64
	}{
		{build(t, "Laundry Room", 8, 4, 1.95), 56.16},
		{build(t, "Kitchen", 20, 12, 3.87), 835.92},
		{build(t, "Storage Room", 16, 16, 4.39), 1011.456},
		{build(t, "Void", 0, 10, 5), 0},
	}
	for _, tc := range tests {
		t.Run(tc.r.Name(), func(t *testing.T) {
			got := cost.Discount(tc.r)
			assert.Equal(t, 0.90*tc.r.FlooringCost(), got)
			assert.InDelta(t, tc.want, got, eps)
		})
	}
	assert.Equal(t, build(t, "X", 2, 2, 2).FlooringCost(), cost.Full(build(t, "X", 2, 2, 2)))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, cost.Sum(nil))
	assert.InDelta(t, 1903.536, cost.Sum([]float64{56.16, 835.92, 1011.456}), eps)
}

func TestMap(t *testing.T) {
	rooms := []room.Room{build(t, "A", 1, 2, 3), build(t, "B", 2, 2, 1)}
	assert.Equal(t, []float64{6, 4}, cost.Map(slices.Values(rooms), cost.Full))
	assert.Nil(t, cost.Map(slices.Values([]room.Room(nil)), cost.Full))
}

// TestMinMax covers empty, single, ordinary and tie inputs.
func TestMinMax(t *testing.T) {
	_, ok := cost.MinMax(nil)
	assert.False(t, ok)

	ext, ok := cost.MinMax([]float64{7})
	require.True(t, ok)
	assert.Equal(t, cost.Extremes{Min: 7, Max: 7}, ext)

	ext, ok = cost.MinMax([]float64{56.16, 835.92, 1011.456})
	require.True(t, ok)
	assert.Equal(t, cost.Extremes{Min: 56.16, Max: 1011.456, MinIndex: 0, MaxIndex: 2}, ext)

	// ties resolve to the first occurrence at both ends
	ext, ok = cost.MinMax([]float64{5, 1, 9, 1, 9})
	require.True(t, ok)
	assert.Equal(t, 1, ext.MinIndex)
	assert.Equal(t, 2, ext.MaxIndex)

	ext, _ = cost.MinMax([]float64{3, math.NaN(), 4})
	assert.Equal(t, 3.0, ext.Min)
	assert.Equal(t, 4.0, ext.Max)
}

// TestMinMaxBy verifies the generic form and its tie-break on elements.
func TestMinMaxBy(t *testing.T) {
	a := build(t, "A", 2, 3, 1) // 6
	b := build(t, "B", 6, 1, 1) // 6, ties with A
	c := build(t, "C", 1, 1, 1) // 1
	d := build(t, "D", 3, 3, 1) // 9

	lo, hi, ok := cost.MinMaxBy(slices.Values([]room.Room{a, b}), cost.Full)
	require.True(t, ok)
	assert.Equal(t, "A", lo.Name())
	assert.Equal(t, "A", hi.Name())

	lo, hi, ok = cost.MinMaxBy(slices.Values([]room.Room{a, c, d, b}), cost.Full)
	require.True(t, ok)
	assert.Equal(t, "C", lo.Name())
	assert.Equal(t, "D", hi.Name())

	_, _, ok = cost.MinMaxBy(slices.Values([]int(nil)), func(int) float64 { return 0 })
	assert.False(t, ok)
}

// TestSummarize runs the full pipeline on the upgraded reference house.
func TestSummarize(t *testing.T) {
	h := house.NewBuilder().WithRooms([]room.Room{
		build(t, "Laundry Room", 8, 4, 1.95),
		build(t, "Kitchen", 20, 12, 3.87),
		build(t, "Storage Room", 16, 16, 4.39),
	}).Build()

	s := cost.Summarize(h, cost.Discount)
	require.Len(t, s.Costs, 3)
	assert.InDelta(t, 56.16, s.Costs[0], eps)
	assert.InDelta(t, 835.92, s.Costs[1], eps)
	assert.InDelta(t, 1903.536, s.Total, eps)
	require.True(t, s.HasExtremes)
	assert.InDelta(t, 56.16, s.Extremes.Min, eps)
	assert.InDelta(t, 1011.456, s.Extremes.Max, eps)

	up := cost.Summarize(house.UpgradeFlooring(h, house.UpgradeHouseName, house.StoneBricks()), cost.Discount)
	assert.InDelta(t, 373.536, up.Costs[0], eps)
	assert.InDelta(t, 2801.52, up.Costs[1], eps)
	assert.InDelta(t, 2988.288, up.Costs[2], eps)
	assert.InDelta(t, 6163.344, up.Total, eps)

	empty := cost.Summarize(house.NewBuilder().Build(), cost.Discount)
	assert.False(t, empty.HasExtremes)
	assert.Equal(t, 0.0, empty.Total)
}
