package mesher

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// BuildNaive iterates voxels in Y,Z,X order; for each non-empty voxel it
// emits a face per direction whose outward neighbour is empty (or outside
// the chunk), with per-corner AO. lod is stamped into every emitted
// vertex.
func BuildNaive(chunk *voxel.Chunk, lod int) ChunkMeshData {
	var mesh ChunkMeshData
	s := sampler{chunk: chunk}

	for y := 0; y < voxel.Size; y++ {
		for z := 0; z < voxel.Size; z++ {
			for x := 0; x < voxel.Size; x++ {
				v := chunk.VoxelAt(x, y, z)
				if !v.Solid() {
					continue
				}
				local := grid.Cell{X: int32(x), Y: int32(y), Z: int32(z)}

				for _, face := range grid.Directions {
					if !faceVisible(s, local, face) {
						continue
					}
					emitFace(&mesh, s, local, face, v, lod)
				}
			}
		}
	}
	return mesh
}

// emitFace appends the single unit-cell quad for one voxel face.
func emitFace(mesh *ChunkMeshData, s sampler, local grid.Cell, face grid.Direction, v voxel.Type, lod int) {
	offsets := cornerOffsets[face]
	var verts [4]PackedVertex
	for i, off := range offsets {
		ao := cornerAO(s, local, face, off)
		verts[i] = PackVertex(int(local.X), int(local.Y), int(local.Z), face, i, ao, uint8(v), lod)
	}
	mesh.appendQuad(verts[0], verts[1], verts[2], verts[3])
}
