package clipmap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
	"github.com/voxelsprout/core/pkg/world"
)

func smallWorld() *world.ChunkGrid {
	return world.InitializeFlatWorld(3, voxel.Stone)
}

func TestRebuildInvalidOnEmptyGrid(t *testing.T) {
	idx := NewIndex(DefaultConfig(2, 2))
	idx.Rebuild(world.NewChunkGrid())
	require.False(t, idx.Valid())
}

func TestRebuildValidOnNonEmptyGrid(t *testing.T) {
	idx := NewIndex(DefaultConfig(2, 2))
	idx.Rebuild(smallWorld())
	require.True(t, idx.Valid())
}

func TestFirstUpdateCameraPopulatesResidency(t *testing.T) {
	idx := NewIndex(DefaultConfig(2, 1))
	idx.Rebuild(smallWorld())

	var stats Stats
	idx.UpdateCamera(mgl32.Vec3{0, 0, 0}, &stats)

	require.Greater(t, stats.ResidentBrickCount, 0)
	require.Equal(t, 2, stats.UpdatedLevelCount)
}

// TestCameraStabilityInSameBrick exercises spec property 7: once the
// camera has an established brick coordinate on every level, repeated
// updates that stay within the same level-0 brick report zero updated
// levels and zero updated bricks.
func TestCameraStabilityInSameBrick(t *testing.T) {
	idx := NewIndex(DefaultConfig(2, 2))
	idx.Rebuild(smallWorld())

	var first Stats
	idx.UpdateCamera(mgl32.Vec3{1, 1, 1}, &first)

	positions := []mgl32.Vec3{
		{1.2, 1.0, 1.0},
		{2.0, 1.5, 0.9},
		{3.9, 1.1, 2.0},
		{0.1, 1.9, 3.9},
		{1.0, 1.0, 1.0},
	}
	for _, p := range positions {
		var stats Stats
		idx.UpdateCamera(p, &stats)
		require.Equal(t, 0, stats.UpdatedLevelCount, "position %v", p)
		require.Equal(t, 0, stats.UpdatedBrickCount, "position %v", p)
	}
}

func TestCameraMovingBricksReportsUpdate(t *testing.T) {
	idx := NewIndex(DefaultConfig(1, 1))
	idx.Rebuild(smallWorld())

	var first Stats
	idx.UpdateCamera(mgl32.Vec3{0, 0, 0}, &first)

	var moved Stats
	idx.UpdateCamera(mgl32.Vec3{1000, 0, 0}, &moved)
	require.Equal(t, 1, moved.UpdatedLevelCount)
	require.Greater(t, moved.UpdatedBrickCount, 0)
}

func TestQueryFarAwayReturnsEmpty(t *testing.T) {
	idx := NewIndex(DefaultConfig(1, 2))
	idx.Rebuild(smallWorld())

	var camStats Stats
	idx.UpdateCamera(mgl32.Vec3{0, 0, 0}, &camStats)

	farBox := grid.CellBox{
		MinInclusive: grid.Cell{X: 100000, Y: 100000, Z: 100000},
		MaxExclusive: grid.Cell{X: 100010, Y: 100010, Z: 100010},
		Valid:        true,
	}

	var queryStats Stats
	result := idx.QueryChunksIntersecting(farBox, &queryStats)
	require.Empty(t, result)
	require.Equal(t, 0, queryStats.VisibleChunkCount)
}

func TestQueryReturnsSortedIntersectingChunks(t *testing.T) {
	idx := NewIndex(DefaultConfig(1, 4))
	g := smallWorld()
	idx.Rebuild(g)

	var camStats Stats
	idx.UpdateCamera(mgl32.Vec3{0, 0, 0}, &camStats)

	box := g.WorldBounds()
	var queryStats Stats
	result := idx.QueryChunksIntersecting(box, &queryStats)

	require.NotEmpty(t, result)
	require.True(t, sortedAscending(result))
	require.Equal(t, len(result), queryStats.VisibleChunkCount)
}

func sortedAscending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}

func TestQueryWithNilStatsDoesNotPanic(t *testing.T) {
	idx := NewIndex(DefaultConfig(1, 2))
	g := smallWorld()
	idx.Rebuild(g)
	idx.UpdateCamera(mgl32.Vec3{0, 0, 0}, nil)
	require.NotPanics(t, func() {
		idx.QueryChunksIntersecting(g.WorldBounds(), nil)
	})
}
