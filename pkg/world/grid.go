// Package world owns the ordered collection of chunks that makes up a
// playable voxel world, plus its binary persistence format. It is adapted
// from the teacher's ChunkManager (pkg/game/chunk_manager.go), which keeps
// chunks in a map keyed by chunk coordinate guarded by a mutex; this package
// keeps that storage shape but drops the network-arrival worker, since here
// chunks are populated by CSG application and file loads rather than by a
// multiplayer server.
package world

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// ChunkGrid is an ordered collection of chunks, mutable only via whole-chunk
// replacement, SetVoxel at world coordinates, or CSG application.
type ChunkGrid struct {
	chunks map[grid.Cell]*voxel.Chunk
	order  []grid.Cell
}

// NewChunkGrid returns an empty grid.
func NewChunkGrid() *ChunkGrid {
	return &ChunkGrid{chunks: make(map[grid.Cell]*voxel.Chunk)}
}

// InitializeEmptyWorld returns a grid with no chunks at all.
func InitializeEmptyWorld() *ChunkGrid {
	return NewChunkGrid()
}

// InitializeFlatWorld returns a grid of radiusChunks*2+1 square chunks
// around the origin on the XZ plane, each with a single solid ground layer
// at local Y=0, one chunk tall (chunkY=0).
func InitializeFlatWorld(radiusChunks int32, ground voxel.Type) *ChunkGrid {
	g := NewChunkGrid()
	for cx := -radiusChunks; cx <= radiusChunks; cx++ {
		for cz := -radiusChunks; cz <= radiusChunks; cz++ {
			c := voxel.NewChunk(cx, 0, cz)
			c.FillLayer(0, ground)
			g.PutChunk(c)
		}
	}
	return g
}

// PutChunk inserts or replaces the chunk at its own coordinate.
func (g *ChunkGrid) PutChunk(c *voxel.Chunk) {
	coord := c.Coord()
	if _, exists := g.chunks[coord]; !exists {
		g.order = append(g.order, coord)
	}
	g.chunks[coord] = c
}

// ChunkAt returns the chunk at the given chunk coordinate, or nil.
func (g *ChunkGrid) ChunkAt(coord grid.Cell) *voxel.Chunk {
	return g.chunks[coord]
}

// Len returns the number of chunks in the grid.
func (g *ChunkGrid) Len() int {
	return len(g.order)
}

// Chunks returns the chunks in stable insertion order. The returned slice
// must not be mutated.
func (g *ChunkGrid) Chunks() []*voxel.Chunk {
	out := make([]*voxel.Chunk, 0, len(g.order))
	for _, coord := range g.order {
		out = append(out, g.chunks[coord])
	}
	return out
}

// ChunkIndex returns the stable index of the chunk at coord and whether it
// exists. Index order matches Chunks().
func (g *ChunkGrid) ChunkIndex(coord grid.Cell) (int, bool) {
	for i, c := range g.order {
		if c.Eq(coord) {
			return i, true
		}
	}
	return 0, false
}

// WorldBounds returns the union of every chunk's world-cell bounds.
func (g *ChunkGrid) WorldBounds() grid.CellBox {
	var box grid.CellBox
	for _, coord := range g.order {
		c := g.chunks[coord]
		box = box.IncludeBox(c.WorldBounds())
	}
	return box
}

// SetVoxel writes v at a world cell, creating the owning chunk on demand.
// Returns false if the write landed in a chunk that does not yet exist and
// autoCreate is false.
func (g *ChunkGrid) SetVoxel(world grid.Cell, v voxel.Type, autoCreate bool) bool {
	chunkCoord := voxel.WorldToChunkCoord(world)
	c := g.chunks[chunkCoord]
	if c == nil {
		if !autoCreate {
			return false
		}
		c = voxel.NewChunk(chunkCoord.X, chunkCoord.Y, chunkCoord.Z)
		g.PutChunk(c)
	}
	lx, ly, lz := voxel.WorldToLocal(world)
	c.SetVoxel(lx, ly, lz, v)
	return true
}

// VoxelAt returns the voxel at a world cell, or voxel.Empty if the owning
// chunk does not exist.
func (g *ChunkGrid) VoxelAt(world grid.Cell) voxel.Type {
	chunkCoord := voxel.WorldToChunkCoord(world)
	c := g.chunks[chunkCoord]
	if c == nil {
		return voxel.Empty
	}
	lx, ly, lz := voxel.WorldToLocal(world)
	return c.VoxelAt(lx, ly, lz)
}

// Equal reports whether two grids hold the same chunks (by coordinate and
// voxel contents), ignoring insertion order. Used by the binary round-trip
// test and the CLI demo's save/reload check.
func (g *ChunkGrid) Equal(o *ChunkGrid) bool {
	if len(g.chunks) != len(o.chunks) {
		return false
	}
	for coord, c := range g.chunks {
		oc := o.chunks[coord]
		if oc == nil {
			return false
		}
		if c.Voxels != oc.Voxels {
			return false
		}
	}
	return true
}
