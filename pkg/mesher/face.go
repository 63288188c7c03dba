package mesher

import "github.com/voxelsprout/core/pkg/grid"

// cornerOffsets gives the four corner offsets (each component 0 or 1) of
// one unit-cell face, indexed by grid.Direction (which already matches the
// spec's face table: 0:+X 1:-X 2:+Y 3:-Y 4:+Z 5:-Z), in counter-clockwise
// order as viewed from outside the cube along the face's outward normal.
var cornerOffsets = [grid.NumDirections][4]grid.Cell{
	grid.PosX: {{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}},
	grid.NegX: {{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 0}},
	grid.PosY: {{X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 0}},
	grid.NegY: {{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}},
	grid.PosZ: {{X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 0, Z: 1}},
	grid.NegZ: {{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}},
}

// quadWinding is the fixed index order that fans a quad's four corners into
// two triangles, matching the teacher's Mesh.AddFace convention.
var quadWinding = [6]int{0, 1, 2, 0, 2, 3}

// tangentAxes returns the two axis directions tangent to face (the two
// axes a corner offset varies over), in the same (u,v) order cornerOffsets
// uses.
func tangentAxes(face grid.Direction) (u, v grid.Direction) {
	switch face {
	case grid.PosX, grid.NegX:
		return grid.PosY, grid.PosZ
	case grid.PosY, grid.NegY:
		return grid.PosX, grid.PosZ
	default:
		return grid.PosX, grid.PosY
	}
}

// axisComponent returns the component of cell c along axis's positive
// direction (X for PosX/NegX, Y for PosY/NegY, Z for PosZ/NegZ).
func axisComponent(axis grid.Direction, c grid.Cell) int32 {
	switch axis {
	case grid.PosX, grid.NegX:
		return c.X
	case grid.PosY, grid.NegY:
		return c.Y
	default:
		return c.Z
	}
}

// tangentOffset returns axis's unit offset if corner's component along
// axis is 1 (the corner is on axis's positive side), or the opposite unit
// offset if it is 0.
func tangentOffset(axis grid.Direction, corner grid.Cell) grid.Cell {
	if axisComponent(axis, corner) == 1 {
		return axis.Offset()
	}
	return axis.Opposite().Offset()
}
