// Package mesher turns chunk voxel data into packed 32-bit-vertex triangle
// meshes, in both a naive (one quad per exposed face) and a greedy
// (maximal-rectangle-merged) mode, sharing one per-face neighbour table and
// corner layout. Grounded on the teacher's voxel.PackVertex/GreedyMeshChunk
// (pkg/voxel/mesh.go): same bit-packing and mask-and-extend techniques,
// re-sliced to this spec's exact field widths and merge key.
package mesher

import "github.com/voxelsprout/core/pkg/grid"

// PackedVertex is one 32-bit word: x:5|y:5|z:5|face:3|corner:2|ao:2|
// material:8|lod:2. Positions are local to the chunk.
type PackedVertex uint32

// PackVertex packs one vertex. x,y,z are chunk-local positions in [0,31];
// face indexes into grid.Directions; corner runs 0..3 in the per-face
// order defined by cornerOffsets; ao is a 0..3 occlusion level; material
// is the voxel's material byte; lod is the mesh's LOD level (0 =
// authoritative).
func PackVertex(x, y, z int, face grid.Direction, corner, ao int, material uint8, lod int) PackedVertex {
	return PackedVertex(
		uint32(x&0x1F) |
			uint32(y&0x1F)<<5 |
			uint32(z&0x1F)<<10 |
			uint32(int(face)&0x7)<<15 |
			uint32(corner&0x3)<<18 |
			uint32(ao&0x3)<<20 |
			uint32(material)<<22 |
			uint32(lod&0x3)<<30,
	)
}

// Unpack decodes a PackedVertex back into its fields.
func (p PackedVertex) Unpack() (x, y, z int, face grid.Direction, corner, ao int, material uint8, lod int) {
	v := uint32(p)
	x = int(v & 0x1F)
	y = int((v >> 5) & 0x1F)
	z = int((v >> 10) & 0x1F)
	face = grid.Direction((v >> 15) & 0x7)
	corner = int((v >> 18) & 0x3)
	ao = int((v >> 20) & 0x3)
	material = uint8((v >> 22) & 0xFF)
	lod = int((v >> 30) & 0x3)
	return
}

// ChunkMeshData is a flat triangle mesh: quads already fanned out into
// indexed triangles via the [0,1,2,0,2,3] winding.
type ChunkMeshData struct {
	Vertices []PackedVertex
	Indices  []uint32
}

// appendQuad appends four vertices and the two triangles ([0,1,2,0,2,3])
// that fan them, matching the teacher's Mesh.AddFace winding convention.
func (m *ChunkMeshData) appendQuad(v0, v1, v2, v3 PackedVertex) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2, v3)
	m.Indices = append(m.Indices,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

// ChunkLodMeshes holds up to three LOD levels; LOD 0 is authoritative and
// always populated. Higher levels may be empty.
type ChunkLodMeshes struct {
	Levels [3]ChunkMeshData
}
