package mesher

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// sampler reads a voxel's solidity at chunk-local coordinates, treating
// anything outside the chunk as Empty (the chunk's own VoxelAt already
// does this).
type sampler struct {
	chunk *voxel.Chunk
}

func (s sampler) solid(local grid.Cell) bool {
	return s.chunk.VoxelAt(int(local.X), int(local.Y), int(local.Z)).Solid()
}

// cornerAO computes the 0..3 ambient-occlusion level for one corner of one
// face of the voxel at local. n is the face normal offset; corner is the
// corner's 0/1 offset within the unit cell.
func cornerAO(s sampler, local grid.Cell, face grid.Direction, corner grid.Cell) int {
	n := face.Offset()
	uAxis, vAxis := tangentAxes(face)
	u := tangentOffset(uAxis, corner)
	w := tangentOffset(vAxis, corner)

	sideA := s.solid(local.Add(n).Add(u))
	sideB := s.solid(local.Add(n).Add(w))
	cornerBlock := s.solid(local.Add(n).Add(u).Add(w))

	var occlusion int
	if sideA && sideB {
		occlusion = 3
	} else {
		occlusion = boolToInt(sideA) + boolToInt(sideB) + boolToInt(cornerBlock)
	}

	ao := 3 - occlusion
	if ao < 0 {
		ao = 0
	}
	if ao > 3 {
		ao = 3
	}
	return ao
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// faceVisible reports whether the voxel at local shows face toward its
// outward neighbour (i.e. the neighbour is empty or outside the chunk).
func faceVisible(s sampler, local grid.Cell, face grid.Direction) bool {
	return !s.solid(local.Add(face.Offset()))
}
