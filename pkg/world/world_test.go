package world

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/network"
	"github.com/voxelsprout/core/pkg/voxel"
)

func buildTestGraph() *network.Graph {
	g := network.NewGraph()
	a := g.AddNode(network.Socket{Cell: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX})
	b := g.AddNode(network.Socket{Cell: grid.Cell{X: 2, Y: 0, Z: 0}, Dir: grid.NegX})
	g.AddEdge(a, b, network.Span{Start: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX, Length: 2}, network.Pipe, 1)
	return g
}

func TestSetVoxelAndVoxelAt(t *testing.T) {
	g := NewChunkGrid()
	ok := g.SetVoxel(grid.Cell{X: 20, Y: 1, Z: -5}, voxel.Stone, true)
	require.True(t, ok)
	require.Equal(t, voxel.Stone, g.VoxelAt(grid.Cell{X: 20, Y: 1, Z: -5}))
	require.Equal(t, 1, g.Len())
}

func TestSetVoxelNoAutoCreate(t *testing.T) {
	g := NewChunkGrid()
	ok := g.SetVoxel(grid.Cell{X: 0, Y: 0, Z: 0}, voxel.Stone, false)
	require.False(t, ok)
	require.Equal(t, 0, g.Len())
}

func TestInitializeFlatWorld(t *testing.T) {
	g := InitializeFlatWorld(1, voxel.Grass)
	require.Equal(t, 9, g.Len())
	require.Equal(t, voxel.Grass, g.VoxelAt(grid.Cell{X: 0, Y: 0, Z: 0}))
	require.Equal(t, voxel.Empty, g.VoxelAt(grid.Cell{X: 0, Y: 1, Z: 0}))
}

func TestBinaryRoundTrip(t *testing.T) {
	// S7: one chunk at (2,0,-3) with voxels (1..5,1,1) set.
	g := NewChunkGrid()
	c := voxel.NewChunk(2, 0, -3)
	c.SetVoxel(1, 1, 1, voxel.Stone)
	c.SetVoxel(2, 1, 1, voxel.Dirt)
	c.SetVoxel(3, 1, 1, voxel.Grass)
	c.SetVoxel(4, 1, 1, voxel.Wood)
	c.SetVoxel(5, 1, 1, voxel.SolidRed)
	g.PutChunk(c)

	dir := t.TempDir()
	path := filepath.Join(dir, "world.vxw")
	require.NoError(t, g.SaveToBinaryFile(path))

	loaded, err := LoadFromBinaryFile(path)
	require.NoError(t, err)
	require.True(t, g.Equal(loaded))

	got := loaded.ChunkAt(grid.Cell{X: 2, Y: 0, Z: -3})
	require.NotNil(t, got)
	require.Equal(t, voxel.Stone, got.VoxelAt(1, 1, 1))
	require.Equal(t, voxel.Dirt, got.VoxelAt(2, 1, 1))
	require.Equal(t, voxel.Grass, got.VoxelAt(3, 1, 1))
	require.Equal(t, voxel.Wood, got.VoxelAt(4, 1, 1))
	require.Equal(t, voxel.SolidRed, got.VoxelAt(5, 1, 1))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[0:4], []byte("NOPE"))
	_, err := LoadFromBinary(buf)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, BadMagic, loadErr.Kind)
}

func TestLoadRejectsBadVersion(t *testing.T) {
	g := NewChunkGrid()
	buf, err := g.encode()
	require.NoError(t, err)
	buf[4] = 99 // corrupt version field (little-endian u32, low byte)

	_, err = LoadFromBinary(buf)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, BadVersion, loadErr.Kind)
}

func TestLoadRejectsTruncated(t *testing.T) {
	g := NewChunkGrid()
	c := voxel.NewChunk(0, 0, 0)
	g.PutChunk(c)
	buf, err := g.encode()
	require.NoError(t, err)

	_, err = LoadFromBinary(buf[:len(buf)-10])
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, Truncated, loadErr.Kind)
}

func TestLoadRejectsSizeMismatch(t *testing.T) {
	g := NewChunkGrid()
	c := voxel.NewChunk(0, 0, 0)
	g.PutChunk(c)
	buf, err := g.encode()
	require.NoError(t, err)

	extended := append(buf, 0xAB)
	_, err = LoadFromBinary(extended)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, SizeMismatch, loadErr.Kind)
}

func TestNetworkGraphSidecarRoundTrip(t *testing.T) {
	g := buildTestGraph()
	dir := t.TempDir()
	path := filepath.Join(dir, "world.netw")

	require.NoError(t, SaveNetworkGraph(path, g))
	loaded, err := LoadNetworkGraph(path)
	require.NoError(t, err)
	require.Equal(t, g.NodeCount(), loaded.NodeCount())
	require.Equal(t, g.EdgeCount(), loaded.EdgeCount())
}
