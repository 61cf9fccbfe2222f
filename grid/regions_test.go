package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestRegions_Conn4 labels a grid whose two areas touch only at a corner.
//
//	. . # #
//	. . # #
//	# # . .
//
// Conn4 sees two regions; Conn8 joins them through the (1,1)-(2,2) diagonal.
func TestRegions_Conn4(t *testing.T) {
	g, err := grid.Parse([]string{"..##", "..##", "##.."})
	require.NoError(t, err)

	labels, n := g.Regions(grid.Conn4)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{
		0, 0, -1, -1,
		0, 0, -1, -1,
		-1, -1, 1, 1,
	}, labels)

	_, n8 := g.Regions(grid.Conn8)
	assert.Equal(t, 1, n8)
}

// TestConnected covers sealed walls, open gaps and blocked endpoints.
func TestConnected(t *testing.T) {
	sealed, err := grid.Parse([]string{"..#..", "..#..", "..#.."})
	require.NoError(t, err)
	gap, err := grid.Parse([]string{"..#..", ".....", "..#.."})
	require.NoError(t, err)

	assert.False(t, sealed.Connected(grid.C(0, 0), grid.C(0, 4), grid.Conn8))
	assert.True(t, gap.Connected(grid.C(0, 0), grid.C(0, 4), grid.Conn8))
	assert.True(t, gap.Connected(grid.C(0, 0), grid.C(2, 4), grid.Conn4))
	assert.False(t, gap.Connected(grid.C(0, 0), grid.C(0, 2), grid.Conn8), "blocked endpoint")
	assert.False(t, gap.Connected(grid.C(0, 0), grid.C(9, 9), grid.Conn8), "out of bounds")
}

// TestRegions_AllBlocked returns no regions.
func TestRegions_AllBlocked(t *testing.T) {
	g, err := grid.Parse([]string{"##", "##"})
	require.NoError(t, err)

	labels, n := g.Regions(grid.Conn8)
	assert.Zero(t, n)
	assert.Equal(t, []int{-1, -1, -1, -1}, labels)
}
