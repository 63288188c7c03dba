// Package clipmap implements the camera-centred, nested-level brick
// residency cache that sits between a world's chunk storage and the
// renderer façade: it tracks which chunks are "near" the camera without
// re-deriving that set from scratch every frame. Grounded on two pack
// sources: Gekko3D's brick/sector quantization in
// voxelrt/rt/volume/xbrickmap.go (brick-coordinate bookkeeping, dirty-flag
// idiom) and other_examples' streaming_grid.go (camera-driven load/unload
// radius loop, generalized here into an exact Chebyshev-ball set diff so
// "camera didn't leave its brick" means "zero updates", not just "few
// updates").
package clipmap

import "github.com/voxelsprout/core/pkg/voxel"

// Config describes the nested brick levels. Level 0's brick size is fixed
// to voxel.Size so a level-0 brick coordinate is exactly a chunk
// coordinate; each further level doubles brick size, matching the
// teacher's Sector-over-Brick doubling in xbrickmap.go.
type Config struct {
	BrickSizeCells []int32
	BrickRadius    []int32
}

// DefaultConfig builds a Config with the given number of levels (>=1),
// level 0 sized to one chunk and each subsequent level double the last,
// with the same brick_radius at every level.
func DefaultConfig(levels int, brickRadius int32) Config {
	if levels < 1 {
		levels = 1
	}
	cfg := Config{
		BrickSizeCells: make([]int32, levels),
		BrickRadius:    make([]int32, levels),
	}
	size := int32(voxel.Size)
	for i := 0; i < levels; i++ {
		cfg.BrickSizeCells[i] = size
		cfg.BrickRadius[i] = brickRadius
		size *= 2
	}
	return cfg
}

// Levels returns the configured level count.
func (c Config) Levels() int {
	return len(c.BrickSizeCells)
}
