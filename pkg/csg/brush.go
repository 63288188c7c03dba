package csg

import "github.com/voxelsprout/core/pkg/grid"

// BrushKind discriminates the Brush tagged union.
type BrushKind int

const (
	Box BrushKind = iota
	PrismPipe
	Ramp
)

// Brush is a tagged union of Box, PrismPipe(axis, radius_q8), and
// Ramp(axis), each carrying its own AABB as min_cell/max_cell. RadiusQ8 is
// only meaningful for PrismPipe; Axis is only meaningful for PrismPipe and
// Ramp.
type Brush struct {
	Kind     BrushKind
	MinCell  grid.Cell
	MaxCell  grid.Cell
	Axis     grid.Direction
	RadiusQ8 int32
}

// Bounds returns the brush's AABB, MinCell inclusive to MaxCell exclusive.
// An inverted box (where min >= max on any axis) yields an empty, invalid
// box — the DegenerateBrush case from spec §7, treated as empty rather than
// an error.
func (b Brush) Bounds() grid.CellBox {
	box := grid.CellBox{MinInclusive: b.MinCell, MaxExclusive: b.MaxCell, Valid: true}
	if box.Empty() {
		return grid.CellBox{}
	}
	return box
}

// contains evaluates brush_contains(brush, bounds, cell) for the cell's
// relation to the brush's shape. ApplyCommand passes as bounds the brush's
// box clipped to the volume, so a PrismPipe's centre and a Ramp's run are
// measured on that clipped region.
func (b Brush) contains(bounds grid.CellBox, cell grid.Cell) bool {
	switch b.Kind {
	case Box:
		return true
	case PrismPipe:
		return b.prismPipeContains(bounds, cell)
	case Ramp:
		return b.rampContains(bounds, cell)
	default:
		return false
	}
}

// crossAxes returns the two axis indices perpendicular to the pipe's run
// axis, in (first, second) order matching grid.Cell{X,Y,Z} component order.
func crossAxes(axis grid.Direction) (first, second func(grid.Cell) int32) {
	switch axis {
	case grid.PosX, grid.NegX:
		return func(c grid.Cell) int32 { return c.Y }, func(c grid.Cell) int32 { return c.Z }
	case grid.PosY, grid.NegY:
		return func(c grid.Cell) int32 { return c.X }, func(c grid.Cell) int32 { return c.Z }
	default: // PosZ, NegZ
		return func(c grid.Cell) int32 { return c.X }, func(c grid.Cell) int32 { return c.Y }
	}
}

func (b Brush) prismPipeContains(bounds grid.CellBox, cell grid.Cell) bool {
	first, second := crossAxes(b.Axis)

	// cell centre in Q8 space: cell*256 + 128.
	cellQ8a := first(cell)*256 + 128
	cellQ8b := second(cell)*256 + 128

	centreA := (first(bounds.MinInclusive) + first(bounds.MaxExclusive)) * 128
	centreB := (second(bounds.MinInclusive) + second(bounds.MaxExclusive)) * 128

	da := abs32(cellQ8a - centreA)
	db := abs32(cellQ8b - centreB)
	dist := da
	if db > dist {
		dist = db
	}
	return dist <= b.RadiusQ8
}

func (b Brush) rampContains(bounds grid.CellBox, cell grid.Cell) bool {
	switch b.Axis {
	case grid.PosY, grid.NegY:
		// The ramp degenerates to a full prism along ±Y.
		return true
	}

	minY := bounds.MinInclusive.Y
	height := bounds.MaxExclusive.Y - minY

	run, s := rampRunAndStep(bounds, b.Axis, cell)
	if run <= 0 {
		return false
	}

	rise := ceilDiv32((s+1)*height, run)
	if rise > height {
		rise = height
	}
	if rise < 0 {
		rise = 0
	}
	return cell.Y < minY+rise
}

// rampRunAndStep returns the run length along the ramp's axis and the
// 0-based step index of cell along that axis within bounds.
func rampRunAndStep(bounds grid.CellBox, axis grid.Direction, cell grid.Cell) (run, step int32) {
	switch axis {
	case grid.PosX:
		return bounds.MaxExclusive.X - bounds.MinInclusive.X, cell.X - bounds.MinInclusive.X
	case grid.NegX:
		return bounds.MaxExclusive.X - bounds.MinInclusive.X, bounds.MaxExclusive.X - 1 - cell.X
	case grid.PosZ:
		return bounds.MaxExclusive.Z - bounds.MinInclusive.Z, cell.Z - bounds.MinInclusive.Z
	case grid.NegZ:
		return bounds.MaxExclusive.Z - bounds.MinInclusive.Z, bounds.MaxExclusive.Z - 1 - cell.Z
	default:
		return 0, 0
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// ceilDiv32 is ceil(a/b) for positive b, matching spec §4.4's rise formula.
func ceilDiv32(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
