package mesher

import "github.com/voxelsprout/core/pkg/grid"

// BuildSingleVoxelPreviewMesh builds the 24-vertex, 36-index unit-cube mesh
// used for placement cursors and other free-floating single-voxel
// previews: one quad per face at local (x,y,z), with a caller-supplied
// uniform AO level and material, LOD 0.
func BuildSingleVoxelPreviewMesh(x, y, z, ao int, material uint8) ChunkMeshData {
	var mesh ChunkMeshData
	local := grid.Cell{X: int32(x), Y: int32(y), Z: int32(z)}

	for _, face := range grid.Directions {
		var verts [4]PackedVertex
		for i := range cornerOffsets[face] {
			verts[i] = PackVertex(int(local.X), int(local.Y), int(local.Z), face, i, ao, material, 0)
		}
		mesh.appendQuad(verts[0], verts[1], verts[2], verts[3])
	}
	return mesh
}
