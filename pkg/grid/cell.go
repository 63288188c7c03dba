// Package grid provides the integer-grid primitives shared by every other
// package in this module: cell coordinates, axis-aligned cell boxes, and the
// six-neighbour directions. Every operation here is pure, deterministic, and
// allocation-free, matching the rest of the core's "no floats, no randomness"
// arithmetic policy.
package grid

// Cell is a single integer voxel position in world space.
type Cell struct {
	X, Y, Z int32
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Cell) Sub(o Cell) Cell {
	return Cell{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Mul returns c scaled by the integer k.
func (c Cell) Mul(k int32) Cell {
	return Cell{c.X * k, c.Y * k, c.Z * k}
}

// Eq reports whether c and o name the same cell.
func (c Cell) Eq(o Cell) bool {
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z
}

// Neighbor returns the cell adjacent to c along d.
func Neighbor(c Cell, d Direction) Cell {
	return c.Add(d.Offset())
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Cell) Cell {
	return Cell{minI32(a.X, b.X), minI32(a.Y, b.Y), minI32(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Cell) Cell {
	return Cell{maxI32(a.X, b.X), maxI32(a.Y, b.Y), maxI32(a.Z, b.Z)}
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
