// Package csg implements the constructive-solid-geometry command engine:
// brushes, commands, and the dense volume they are applied to. Brushes are
// a tagged union dispatched by Kind rather than a class hierarchy (spec
// §9's "tagged variant, not a class hierarchy" design note), grounded on
// the teacher's BlockType-as-tag style (pkg/voxel/block.go) and on the
// non-virtual per-tag dispatch pattern seen across the retrieval pack's
// mesher implementations.
package csg

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// Cell pairs a voxel tag with a 16-bit material id; 0 means "no material".
type Cell struct {
	Voxel    voxel.Type
	Material uint16
}

// Volume is a dense axis-aligned grid of Cells with a world origin and
// extents in cells. Out-of-bounds world cells read as the zero Cell and
// writes are silently ignored.
type Volume struct {
	origin grid.Cell
	size   grid.Cell
	cells  []Cell
}

// NewVolume allocates an empty volume of the given size at origin.
func NewVolume(origin, size grid.Cell) *Volume {
	n := int(size.X) * int(size.Y) * int(size.Z)
	if n < 0 {
		n = 0
	}
	return &Volume{origin: origin, size: size, cells: make([]Cell, n)}
}

// WorldBounds returns the volume's half-open world-cell box.
func (v *Volume) WorldBounds() grid.CellBox {
	return grid.CellBox{
		MinInclusive: v.origin,
		MaxExclusive: v.origin.Add(v.size),
		Valid:        true,
	}
}

func (v *Volume) localIndex(world grid.Cell) (int, bool) {
	local := world.Sub(v.origin)
	if local.X < 0 || local.X >= v.size.X ||
		local.Y < 0 || local.Y >= v.size.Y ||
		local.Z < 0 || local.Z >= v.size.Z {
		return 0, false
	}
	idx := int(local.X) + int(v.size.X)*(int(local.Z)+int(v.size.Z)*int(local.Y))
	return idx, true
}

// At returns the cell at a world coordinate, or the zero Cell if out of
// bounds.
func (v *Volume) At(world grid.Cell) Cell {
	idx, ok := v.localIndex(world)
	if !ok {
		return Cell{}
	}
	return v.cells[idx]
}

// Set writes a cell at a world coordinate; out-of-bounds writes are
// silently ignored.
func (v *Volume) Set(world grid.Cell, c Cell) {
	idx, ok := v.localIndex(world)
	if !ok {
		return
	}
	v.cells[idx] = c
}

// CopySolidsToChunk overlaps v's bounds with chunk's world bounds and, for
// each differing cell, writes v's voxel into the chunk. Returns the dirty
// world box.
func CopySolidsToChunk(v *Volume, chunk *voxel.Chunk) grid.CellBox {
	overlap := grid.Intersect(v.WorldBounds(), chunk.WorldBounds())
	var dirty grid.CellBox
	if overlap.Empty() {
		return dirty
	}

	for y := overlap.MinInclusive.Y; y < overlap.MaxExclusive.Y; y++ {
		for z := overlap.MinInclusive.Z; z < overlap.MaxExclusive.Z; z++ {
			for x := overlap.MinInclusive.X; x < overlap.MaxExclusive.X; x++ {
				world := grid.Cell{X: x, Y: y, Z: z}
				src := v.At(world)

				origin := chunk.WorldOrigin()
				lx, ly, lz := int(x-origin.X), int(y-origin.Y), int(z-origin.Z)
				if chunk.VoxelAt(lx, ly, lz) != src.Voxel {
					chunk.SetVoxel(lx, ly, lz, src.Voxel)
					dirty = dirty.IncludeCell(world)
				}
			}
		}
	}
	return dirty
}
