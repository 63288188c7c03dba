package csg

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// voxelSolidTag is the voxel type AddSolid writes. Per spec §9's closing
// note, Stone doubles as the generic "solid" tag — there is no separate
// Solid code point.
const voxelSolidTag = voxel.Stone

// Op is the CSG operation a Command applies.
type Op int

const (
	AddSolid Op = iota
	SubtractSolid
	PaintMaterial
)

// Affect mask bits selecting which current cell states a command may
// touch. AffectAll (0xFFFF) matches both.
const (
	AffectEmptyCells uint16 = 1 << 0
	AffectSolidCells uint16 = 1 << 1
	AffectAll        uint16 = 0xFFFF
)

// Command is (op, brush, material_id, affect_mask).
type Command struct {
	Op         Op
	Brush      Brush
	Material   uint16
	AffectMask uint16
}

func matchesAffectMask(mask uint16, solid bool) bool {
	if solid {
		return mask&AffectSolidCells != 0
	}
	return mask&AffectEmptyCells != 0
}

// ApplyCommand applies cmd to volume and returns the exact set of world
// cells actually mutated.
//
// Algorithm (spec §4.4):
//  1. Intersect volume.WorldBounds() with the brush's bounds. Empty ⇒
//     invalid dirty box.
//  2. Iterate the intersection in Y,Z,X order for deterministic trace
//     equality across runs.
//  3. For each cell inside the brush's shape, filter by affect_mask vs.
//     current state, then apply the op.
func ApplyCommand(volume *Volume, cmd Command) grid.CellBox {
	brushBounds := cmd.Brush.Bounds()
	region := grid.Intersect(volume.WorldBounds(), brushBounds)

	var dirty grid.CellBox
	if region.Empty() {
		return dirty
	}

	for y := region.MinInclusive.Y; y < region.MaxExclusive.Y; y++ {
		for z := region.MinInclusive.Z; z < region.MaxExclusive.Z; z++ {
			for x := region.MinInclusive.X; x < region.MaxExclusive.X; x++ {
				cell := grid.Cell{X: x, Y: y, Z: z}
				if !cmd.Brush.contains(region, cell) {
					continue
				}

				current := volume.At(cell)
				if !matchesAffectMask(cmd.AffectMask, current.Voxel.Solid()) {
					continue
				}

				if applyOp(volume, cmd, cell, current) {
					dirty = dirty.IncludeCell(cell)
				}
			}
		}
	}
	return dirty
}

// applyOp applies cmd's op to a single cell and reports whether the cell
// actually changed.
func applyOp(volume *Volume, cmd Command, cell grid.Cell, current Cell) bool {
	switch cmd.Op {
	case AddSolid:
		next := Cell{Voxel: voxelSolidTag, Material: cmd.Material}
		if next == current {
			return false
		}
		volume.Set(cell, next)
		return true
	case SubtractSolid:
		next := Cell{}
		if next == current {
			return false
		}
		volume.Set(cell, next)
		return true
	case PaintMaterial:
		if !current.Voxel.Solid() {
			return false
		}
		if current.Material == cmd.Material {
			return false
		}
		volume.Set(cell, Cell{Voxel: current.Voxel, Material: cmd.Material})
		return true
	default:
		return false
	}
}

// ApplyCommands is the left fold of ApplyCommand over cmds, returning the
// union of all dirty boxes. Replay of the same command sequence on equal
// initial volumes yields byte-identical volume state.
func ApplyCommands(volume *Volume, cmds []Command) grid.CellBox {
	var dirty grid.CellBox
	for _, cmd := range cmds {
		dirty = dirty.IncludeBox(ApplyCommand(volume, cmd))
	}
	return dirty
}
