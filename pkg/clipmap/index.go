package clipmap

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/world"
)

// Stats is an optional set of counters a caller can pass to UpdateCamera
// or QueryChunksIntersecting to observe what happened,
// mirroring Gekko3D's plain-counter Profiler pattern
// (voxelrt/rt/app/profiler.go) rather than a metrics client library.
type Stats struct {
	VisitedNodes       int
	CandidateChunks    int
	VisibleChunkCount  int
	LevelActiveCounts  []int
	LevelUpdatedCounts []int
	UpdatedLevelCount  int
	UpdatedBrickCount  int
	ResidentBrickCount int
}

func (s *Stats) reset(levels int) {
	if s == nil {
		return
	}
	*s = Stats{
		LevelActiveCounts:  make([]int, levels),
		LevelUpdatedCounts: make([]int, levels),
	}
}

type level struct {
	brickSizeCells int32
	brickRadius    int32
	resident       map[grid.Cell]struct{}
	center         grid.Cell
	hasCenter      bool
}

// Index is the camera-centred brick residency cache. It is exclusively
// mutated by Rebuild/UpdateCamera; QueryChunksIntersecting only reads.
type Index struct {
	config Config
	valid  bool
	levels []level
	grid   *world.ChunkGrid
}

// NewIndex returns an index with the given configuration and no chunks.
func NewIndex(cfg Config) *Index {
	idx := &Index{config: cfg}
	idx.resetLevels()
	return idx
}

func (idx *Index) resetLevels() {
	idx.levels = make([]level, idx.config.Levels())
	for i := range idx.levels {
		idx.levels[i] = level{
			brickSizeCells: idx.config.BrickSizeCells[i],
			brickRadius:    idx.config.BrickRadius[i],
			resident:       make(map[grid.Cell]struct{}),
		}
	}
}

// Valid reports whether the index was last rebuilt over a non-empty grid.
func (idx *Index) Valid() bool {
	return idx.valid
}

// Config returns the configuration the index was constructed with, so a
// caller (the façade) can report it back to a client without keeping its
// own copy.
func (idx *Index) Config() Config {
	return idx.config
}

// Rebuild points the index at g, marks it valid iff g holds at least one
// chunk, and clears residency on every level (camera position is unknown
// again until the next UpdateCamera call). It does not compute the grid's
// bounds and does not check the configuration against them.
func (idx *Index) Rebuild(g *world.ChunkGrid) {
	idx.grid = g
	idx.valid = g.Len() > 0
	idx.resetLevels()
}

func floorDivI32(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func brickCoord(worldCell grid.Cell, brickSize int32) grid.Cell {
	return grid.Cell{
		X: floorDivI32(worldCell.X, brickSize),
		Y: floorDivI32(worldCell.Y, brickSize),
		Z: floorDivI32(worldCell.Z, brickSize),
	}
}

// chebyshevBall returns every brick coordinate within radius (inclusive)
// of center under the Chebyshev (L-infinity) metric.
func chebyshevBall(center grid.Cell, radius int32) map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{})
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				set[grid.Cell{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}] = struct{}{}
			}
		}
	}
	return set
}

// UpdateCamera recomputes, for each level, the brick coordinate centred on
// pos and the residency set around it. A level reports zero updated
// bricks when the camera's brick coordinate on that level has not changed
// since the previous call. The first call after Rebuild is always an
// update: Rebuild clears hasCenter, so that call populates every level's
// residency from empty.
func (idx *Index) UpdateCamera(pos mgl32.Vec3, stats *Stats) {
	stats.reset(idx.config.Levels())
	worldCell := grid.Cell{
		X: int32(math.Floor(float64(pos.X()))),
		Y: int32(math.Floor(float64(pos.Y()))),
		Z: int32(math.Floor(float64(pos.Z()))),
	}

	residentTotal := 0
	for i := range idx.levels {
		lvl := &idx.levels[i]
		newCenter := brickCoord(worldCell, lvl.brickSizeCells)

		if lvl.hasCenter && newCenter.Eq(lvl.center) {
			residentTotal += len(lvl.resident)
			if stats != nil {
				stats.LevelActiveCounts[i] = len(lvl.resident)
			}
			continue
		}

		newSet := chebyshevBall(newCenter, lvl.brickRadius)
		updated := 0
		for b := range newSet {
			if _, ok := lvl.resident[b]; !ok {
				updated++
			}
		}
		for b := range lvl.resident {
			if _, ok := newSet[b]; !ok {
				updated++
			}
		}

		lvl.resident = newSet
		lvl.center = newCenter
		lvl.hasCenter = true

		residentTotal += len(newSet)
		if stats != nil {
			stats.LevelActiveCounts[i] = len(newSet)
			stats.LevelUpdatedCounts[i] = updated
			stats.UpdatedBrickCount += updated
			if updated > 0 {
				stats.UpdatedLevelCount++
			}
		}
	}

	if stats != nil {
		stats.ResidentBrickCount = residentTotal
	}
}

// QueryChunksIntersecting returns the sorted, stable indices (per
// world.ChunkGrid.Chunks order) of chunks whose world AABB intersects box,
// visiting only chunks whose level-0 brick (i.e. chunk coordinate) is
// currently resident.
func (idx *Index) QueryChunksIntersecting(box grid.CellBox, stats *Stats) []int {
	if !idx.valid || idx.grid == nil || idx.config.Levels() == 0 {
		return nil
	}

	resident0 := idx.levels[0].resident
	var out []int
	for coord := range resident0 {
		if stats != nil {
			stats.VisitedNodes++
		}
		chunk := idx.grid.ChunkAt(coord)
		if chunk == nil {
			continue
		}
		if stats != nil {
			stats.CandidateChunks++
		}
		if !grid.Intersect(box, chunk.WorldBounds()).Empty() {
			i, ok := idx.grid.ChunkIndex(coord)
			if ok {
				out = append(out, i)
			}
		}
	}

	sort.Ints(out)
	if stats != nil {
		stats.VisibleChunkCount = len(out)
	}
	return out
}
