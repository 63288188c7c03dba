package mesher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

func hashPatternChunk() *voxel.Chunk {
	c := voxel.NewChunk(0, 0, 0)
	for y := 0; y < voxel.Size; y++ {
		for z := 0; z < voxel.Size; z++ {
			for x := 0; x < voxel.Size; x++ {
				if (x+y+z)%3 == 0 {
					c.SetVoxel(x, y, z, voxel.Stone)
				}
			}
		}
	}
	return c
}

func solidCubeChunk(v voxel.Type) *voxel.Chunk {
	c := voxel.NewChunk(0, 0, 0)
	for y := 0; y < voxel.Size; y++ {
		c.FillLayer(y, v)
	}
	return c
}

func TestBuildNaiveDeterministic(t *testing.T) {
	c := hashPatternChunk()
	a := BuildNaive(c, 0)
	b := BuildNaive(c, 0)
	require.Equal(t, a.Vertices, b.Vertices)
	require.Equal(t, a.Indices, b.Indices)
}

func TestBuildGreedyDeterministic(t *testing.T) {
	c := hashPatternChunk()
	a := BuildGreedy(c, 0)
	b := BuildGreedy(c, 0)
	require.Equal(t, a.Vertices, b.Vertices)
	require.Equal(t, a.Indices, b.Indices)
}

func TestGreedyVertexCountNeverExceedsNaive(t *testing.T) {
	for _, c := range []*voxel.Chunk{hashPatternChunk(), solidCubeChunk(voxel.Stone)} {
		naive := BuildNaive(c, 0)
		greedy := BuildGreedy(c, 0)
		require.LessOrEqual(t, len(greedy.Vertices), len(naive.Vertices))
		require.LessOrEqual(t, len(greedy.Indices), len(naive.Indices))
	}
}

func TestGreedySolidCubeMergesToSixQuads(t *testing.T) {
	c := solidCubeChunk(voxel.Stone)
	mesh := BuildGreedy(c, 0)
	require.Equal(t, 6*4, len(mesh.Vertices))
	require.Equal(t, 6*6, len(mesh.Indices))
}

func TestNaiveEmptyChunkProducesNoGeometry(t *testing.T) {
	c := voxel.NewChunk(0, 0, 0)
	mesh := BuildNaive(c, 0)
	require.Empty(t, mesh.Vertices)
	require.Empty(t, mesh.Indices)
}

func TestNaiveAndGreedySameCoveredArea(t *testing.T) {
	c := hashPatternChunk()
	naive := BuildNaive(c, 1)
	greedy := BuildGreedy(c, 1)

	naiveArea := coveredArea(naive)
	greedyArea := coveredArea(greedy)
	require.Equal(t, naiveArea, greedyArea)
}

// coveredArea sums each quad's footprint in unit cells, decoded from its
// two opposite corners, as a resolution-independent way to compare naive
// and greedy output that emit a different vertex count for the same
// visible surface. Each packed vertex stores a base voxel, not the rendered
// corner, so the actual corner position is reconstructed as base plus that
// corner's unit cornerOffsets entry before diffing.
func coveredArea(mesh ChunkMeshData) int {
	area := 0
	for i := 0; i+3 < len(mesh.Vertices); i += 4 {
		x0, y0, z0, face0, c0, _, _, _ := mesh.Vertices[i].Unpack()
		x2, y2, z2, _, c2, _, _, _ := mesh.Vertices[i+2].Unpack()
		p0 := (grid.Cell{X: int32(x0), Y: int32(y0), Z: int32(z0)}).Add(cornerOffsets[face0][c0])
		p2 := (grid.Cell{X: int32(x2), Y: int32(y2), Z: int32(z2)}).Add(cornerOffsets[face0][c2])
		dx := abs(int(p2.X - p0.X))
		dy := abs(int(p2.Y - p0.Y))
		dz := abs(int(p2.Z - p0.Z))
		w, h := 1, 1
		switch {
		case dx == 0:
			w, h = dy, dz
		case dy == 0:
			w, h = dx, dz
		default:
			w, h = dx, dy
		}
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 1
		}
		area += w * h
	}
	return area
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestPackVertexRoundTrip(t *testing.T) {
	v := PackVertex(3, 17, 0, 4, 2, 1, 200, 2)
	x, y, z, face, corner, ao, material, lod := v.Unpack()
	require.Equal(t, 3, x)
	require.Equal(t, 17, y)
	require.Equal(t, 0, z)
	require.EqualValues(t, 4, face)
	require.Equal(t, 2, corner)
	require.Equal(t, 1, ao)
	require.EqualValues(t, 200, material)
	require.Equal(t, 2, lod)
}

func TestBuildSingleVoxelPreviewMesh(t *testing.T) {
	mesh := BuildSingleVoxelPreviewMesh(1, 2, 3, 3, 5)
	require.Equal(t, 24, len(mesh.Vertices))
	require.Equal(t, 36, len(mesh.Indices))
}
