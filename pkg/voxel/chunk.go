package voxel

import "github.com/voxelsprout/core/pkg/grid"

// Size is the fixed edge length of a chunk in cells.
const Size = 16

// cellCount is the number of voxels owned by one chunk (16^3).
const cellCount = Size * Size * Size

// Chunk owns Size x Size x Size voxels in Y-major, Z-major, X-minor linear
// order: index(x,y,z) = x + Size*(z + Size*y). It carries its own
// (ChunkX,ChunkY,ChunkZ) chunk-grid coordinate, adapted from the teacher's
// Chunk.X/Y/Z fields (pkg/voxel/chunk.go) but keyed on grid.Cell chunk
// coordinates instead of raw int32 triples, and always exactly Size^3 rather
// than a caller-supplied size.
type Chunk struct {
	ChunkX, ChunkY, ChunkZ int32
	Voxels                 [cellCount]Type
}

// NewChunk creates an empty chunk at the given chunk-grid coordinate.
func NewChunk(chunkX, chunkY, chunkZ int32) *Chunk {
	return &Chunk{ChunkX: chunkX, ChunkY: chunkY, ChunkZ: chunkZ}
}

// Coord returns the chunk's position in chunk-grid coordinates.
func (c *Chunk) Coord() grid.Cell {
	return grid.Cell{X: c.ChunkX, Y: c.ChunkY, Z: c.ChunkZ}
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Size
}

func index(x, y, z int) int {
	return x + Size*(z+Size*y)
}

// VoxelAt returns the voxel at local coordinates (x,y,z). Out-of-bounds local
// coordinates return Empty by design: neighbouring-sample queries (AO,
// face-visibility) use this as an implicit border sentinel rather than a
// bounds-check branch at every call site.
func (c *Chunk) VoxelAt(x, y, z int) Type {
	if !inBounds(x, y, z) {
		return Empty
	}
	return c.Voxels[index(x, y, z)]
}

// SetVoxel writes v at local coordinates (x,y,z). Out-of-bounds coordinates
// are silently ignored (clamp-and-ignore), matching spec §4.2.
func (c *Chunk) SetVoxel(x, y, z int, v Type) {
	if !inBounds(x, y, z) {
		return
	}
	c.Voxels[index(x, y, z)] = v
}

// FillLayer writes v across the whole XZ slice of local Y-layer y.
func (c *Chunk) FillLayer(y int, v Type) {
	if y < 0 || y >= Size {
		return
	}
	for z := 0; z < Size; z++ {
		for x := 0; x < Size; x++ {
			c.Voxels[index(x, y, z)] = v
		}
	}
}

// WorldCell returns the world-space cell corresponding to local (x,y,z),
// regardless of whether that local coordinate is in bounds.
func (c *Chunk) WorldCell(x, y, z int) grid.Cell {
	return grid.Cell{
		X: c.ChunkX*Size + int32(x),
		Y: c.ChunkY*Size + int32(y),
		Z: c.ChunkZ*Size + int32(z),
	}
}

// WorldOrigin returns the world cell of this chunk's local (0,0,0) corner.
func (c *Chunk) WorldOrigin() grid.Cell {
	return grid.Cell{X: c.ChunkX * Size, Y: c.ChunkY * Size, Z: c.ChunkZ * Size}
}

// WorldBounds returns the chunk's half-open world-cell box.
func (c *Chunk) WorldBounds() grid.CellBox {
	min := c.WorldOrigin()
	return grid.CellBox{
		MinInclusive: min,
		MaxExclusive: min.Add(grid.Cell{X: Size, Y: Size, Z: Size}),
		Valid:        true,
	}
}

// ForEachNeighborCoord calls fn for each of the 26 neighbouring chunk
// coordinates (the 3x3x3 block around this chunk, excluding itself).
// Adapted from the teacher's Chunk.ForEachNeighbor (pkg/voxel/chunk.go),
// generalized to grid.Cell chunk coordinates.
func (c *Chunk) ForEachNeighborCoord(fn func(coord grid.Cell)) {
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				fn(grid.Cell{X: c.ChunkX + dx, Y: c.ChunkY + dy, Z: c.ChunkZ + dz})
			}
		}
	}
}

// WorldToChunkCoord converts a world cell to its owning chunk coordinate,
// using floor division so negative coordinates behave correctly (adapted
// from the teacher's WorldToChunkCoord in pkg/voxel/coord.go).
func WorldToChunkCoord(world grid.Cell) grid.Cell {
	return grid.Cell{
		X: floorDiv(world.X, Size),
		Y: floorDiv(world.Y, Size),
		Z: floorDiv(world.Z, Size),
	}
}

// WorldToLocal converts a world cell to local coordinates within its chunk.
func WorldToLocal(world grid.Cell) (x, y, z int) {
	return int(floorMod(world.X, Size)), int(floorMod(world.Y, Size)), int(floorMod(world.Z, Size))
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
