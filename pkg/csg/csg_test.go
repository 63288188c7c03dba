package csg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsprout/core/pkg/grid"
)

func countSolid(v *Volume, size grid.Cell) int {
	n := 0
	for y := int32(0); y < size.Y; y++ {
		for z := int32(0); z < size.Z; z++ {
			for x := int32(0); x < size.X; x++ {
				if v.At(grid.Cell{X: x, Y: y, Z: z}).Voxel.Solid() {
					n++
				}
			}
		}
	}
	return n
}

func TestS1AddSolidBox(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 8, Y: 8, Z: 8})
	dirty := ApplyCommand(v, Command{
		Op:         AddSolid,
		Brush:      Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 4, Y: 4, Z: 4}},
		Material:   3,
		AffectMask: AffectAll,
	})

	require.Equal(t, 27, countSolid(v, grid.Cell{X: 8, Y: 8, Z: 8}))
	require.Equal(t, uint16(3), v.At(grid.Cell{X: 1, Y: 1, Z: 1}).Material)
	require.Equal(t, grid.Cell{X: 1, Y: 1, Z: 1}, dirty.MinInclusive)
	require.Equal(t, grid.Cell{X: 4, Y: 4, Z: 4}, dirty.MaxExclusive)
}

func TestS2SubtractSolidBox(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 8, Y: 8, Z: 8})
	ApplyCommand(v, Command{Op: AddSolid, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 4, Y: 4, Z: 4}}, Material: 3, AffectMask: AffectAll})

	ApplyCommand(v, Command{
		Op:         SubtractSolid,
		Brush:      Brush{Kind: Box, MinCell: grid.Cell{X: 2, Y: 2, Z: 2}, MaxCell: grid.Cell{X: 3, Y: 3, Z: 3}},
		AffectMask: AffectAll,
	})

	require.Equal(t, 26, countSolid(v, grid.Cell{X: 8, Y: 8, Z: 8}))
	require.False(t, v.At(grid.Cell{X: 2, Y: 2, Z: 2}).Voxel.Solid())
}

func TestS3PaintMaterialSolidOnly(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 8, Y: 8, Z: 8})
	ApplyCommand(v, Command{Op: AddSolid, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 4, Y: 4, Z: 4}}, Material: 3, AffectMask: AffectAll})
	ApplyCommand(v, Command{Op: SubtractSolid, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 2, Y: 2, Z: 2}, MaxCell: grid.Cell{X: 3, Y: 3, Z: 3}}, AffectMask: AffectAll})

	ApplyCommand(v, Command{
		Op:         PaintMaterial,
		Brush:      Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 4, Y: 4, Z: 4}},
		Material:   7,
		AffectMask: AffectSolidCells,
	})

	require.Equal(t, uint16(7), v.At(grid.Cell{X: 1, Y: 1, Z: 1}).Material)
	require.Equal(t, uint16(0), v.At(grid.Cell{X: 2, Y: 2, Z: 2}).Material)
}

func TestS4PrismPipe(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 6, Y: 6, Z: 6})
	ApplyCommand(v, Command{
		Op: AddSolid,
		Brush: Brush{
			Kind:     PrismPipe,
			Axis:     grid.PosY,
			MinCell:  grid.Cell{X: 2, Y: 0, Z: 2},
			MaxCell:  grid.Cell{X: 4, Y: 6, Z: 4},
			RadiusQ8: 128,
		},
		Material:   1,
		AffectMask: AffectAll,
	})

	require.Equal(t, 24, countSolid(v, grid.Cell{X: 6, Y: 6, Z: 6}))
}

func TestS5Ramp(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 4, Y: 4, Z: 1})
	ApplyCommand(v, Command{
		Op: AddSolid,
		Brush: Brush{
			Kind:    Ramp,
			Axis:    grid.PosX,
			MinCell: grid.Cell{X: 0, Y: 0, Z: 0},
			MaxCell: grid.Cell{X: 4, Y: 4, Z: 1},
		},
		Material:   1,
		AffectMask: AffectAll,
	})

	require.Equal(t, 10, countSolid(v, grid.Cell{X: 4, Y: 4, Z: 1}))
}

func TestDegenerateBrushIsEmpty(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 4, Y: 4, Z: 4})
	dirty := ApplyCommand(v, Command{
		Op:         AddSolid,
		Brush:      Brush{Kind: Box, MinCell: grid.Cell{X: 2, Y: 2, Z: 2}, MaxCell: grid.Cell{X: 2, Y: 2, Z: 2}},
		AffectMask: AffectAll,
	})
	require.False(t, dirty.Valid)
	require.Equal(t, 0, countSolid(v, grid.Cell{X: 4, Y: 4, Z: 4}))
}

func TestApplyCommandsReplayIsDeterministic(t *testing.T) {
	cmds := []Command{
		{Op: AddSolid, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 0, Y: 0, Z: 0}, MaxCell: grid.Cell{X: 5, Y: 5, Z: 5}}, Material: 2, AffectMask: AffectAll},
		{Op: SubtractSolid, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 3, Y: 3, Z: 3}}, AffectMask: AffectAll},
		{Op: PaintMaterial, Brush: Brush{Kind: Box, MinCell: grid.Cell{X: 0, Y: 0, Z: 0}, MaxCell: grid.Cell{X: 5, Y: 5, Z: 5}}, Material: 9, AffectMask: AffectSolidCells},
	}

	size := grid.Cell{X: 5, Y: 5, Z: 5}
	a := NewVolume(grid.Cell{}, size)
	b := NewVolume(grid.Cell{}, size)

	ApplyCommands(a, cmds)
	ApplyCommands(b, cmds)

	require.Equal(t, a.cells, b.cells)
}

func TestApplyCommandLocality(t *testing.T) {
	v := NewVolume(grid.Cell{}, grid.Cell{X: 6, Y: 6, Z: 6})
	before := make([]Cell, len(v.cells))
	copy(before, v.cells)

	dirty := ApplyCommand(v, Command{
		Op:         AddSolid,
		Brush:      Brush{Kind: Box, MinCell: grid.Cell{X: 1, Y: 1, Z: 1}, MaxCell: grid.Cell{X: 3, Y: 3, Z: 3}},
		AffectMask: AffectAll,
	})

	for y := int32(0); y < 6; y++ {
		for z := int32(0); z < 6; z++ {
			for x := int32(0); x < 6; x++ {
				c := grid.Cell{X: x, Y: y, Z: z}
				changed := v.At(c) != before[mustIndex(v, c)]
				require.Equal(t, dirty.Contains(c), changed, "cell %v", c)
			}
		}
	}
}

func mustIndex(v *Volume, c grid.Cell) int {
	idx, _ := v.localIndex(c)
	return idx
}
