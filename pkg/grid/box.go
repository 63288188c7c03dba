package grid

// CellBox is a half-open axis-aligned box over cells: it contains every cell
// c with MinInclusive <= c < MaxExclusive on every axis. A zero-value box is
// invalid (contains nothing) until seeded via IncludeCell or IncludeBox.
type CellBox struct {
	MinInclusive Cell
	MaxExclusive Cell
	Valid        bool
}

// Empty reports whether the box is invalid or has zero volume on any axis.
func (b CellBox) Empty() bool {
	if !b.Valid {
		return true
	}
	return b.MinInclusive.X >= b.MaxExclusive.X ||
		b.MinInclusive.Y >= b.MaxExclusive.Y ||
		b.MinInclusive.Z >= b.MaxExclusive.Z
}

// Contains reports whether c lies within the box. An invalid or empty box
// contains no cell.
func (b CellBox) Contains(c Cell) bool {
	if b.Empty() {
		return false
	}
	return c.X >= b.MinInclusive.X && c.X < b.MaxExclusive.X &&
		c.Y >= b.MinInclusive.Y && c.Y < b.MaxExclusive.Y &&
		c.Z >= b.MinInclusive.Z && c.Z < b.MaxExclusive.Z
}

// IncludeCell returns the box that results from unioning c into b. Calling
// IncludeCell on a zero-value CellBox seeds a valid unit box around c.
func (b CellBox) IncludeCell(c Cell) CellBox {
	return b.IncludeBox(CellBox{
		MinInclusive: c,
		MaxExclusive: c.Add(Cell{1, 1, 1}),
		Valid:        true,
	})
}

// IncludeBox returns the running union of b and o.
func (b CellBox) IncludeBox(o CellBox) CellBox {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	return CellBox{
		MinInclusive: Min(b.MinInclusive, o.MinInclusive),
		MaxExclusive: Max(b.MaxExclusive, o.MaxExclusive),
		Valid:        true,
	}
}

// Intersect returns the overlap of a and b. The result is invalid whenever
// either input is invalid or empty, or the overlap collapses on any axis.
func Intersect(a, b CellBox) CellBox {
	if a.Empty() || b.Empty() {
		return CellBox{}
	}
	result := CellBox{
		MinInclusive: Max(a.MinInclusive, b.MinInclusive),
		MaxExclusive: Min(a.MaxExclusive, b.MaxExclusive),
		Valid:        true,
	}
	if result.Empty() {
		return CellBox{}
	}
	return result
}

// Size returns the extent of the box along each axis; zero on an empty box.
func (b CellBox) Size() Cell {
	if b.Empty() {
		return Cell{}
	}
	return b.MaxExclusive.Sub(b.MinInclusive)
}
