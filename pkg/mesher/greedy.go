package mesher

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// MesherEncodingLimit is the largest chunk-local coordinate a PackedVertex
// can represent (5 bits), comfortably above voxel.Size-1. The packed base
// voxel of a merged quad's corner is always a real cell of the chunk, so it
// never approaches this limit in practice; BuildGreedy still checks every
// merged quad's base voxels against the chunk bounds before packing and
// falls back to the quad's unit cells if one would ever fall outside.
const MesherEncodingLimit = 31

// maskCell is one cell of a per-face 2D merge mask: present voxels carry a
// key combining material and the four-corner AO signature that a
// neighbouring cell must match exactly to be folded into the same
// rectangle.
type maskCell struct {
	present  bool
	material uint8
	aoSig    uint8
}

func (m maskCell) key() uint16 {
	return uint16(m.material)<<8 | uint16(m.aoSig)
}

// aoSignature packs the four per-corner AO levels of one voxel face into a
// single byte, two bits each, in cornerOffsets order.
func aoSignature(s sampler, local grid.Cell, face grid.Direction) uint8 {
	var sig uint8
	for i, off := range cornerOffsets[face] {
		ao := cornerAO(s, local, face, off)
		sig |= uint8(ao&0x3) << uint(i*2)
	}
	return sig
}

func aoFromSignature(sig uint8, corner int) int {
	return int((sig >> uint(corner*2)) & 0x3)
}

// normalAxis returns the positive-axis direction that face varies the
// chunk's layer index along: PosX for PosX/NegX, PosY for PosY/NegY, PosZ
// for PosZ/NegZ.
func normalAxis(face grid.Direction) grid.Direction {
	switch face {
	case grid.PosX, grid.NegX:
		return grid.PosX
	case grid.PosY, grid.NegY:
		return grid.PosY
	default:
		return grid.PosZ
	}
}

// cellFromLayerUV reconstructs the chunk-local cell at tangent coordinates
// (u,v) on the given layer along face's normal axis.
func cellFromLayerUV(face grid.Direction, layer, u, v int32) grid.Cell {
	switch face {
	case grid.PosX, grid.NegX:
		return grid.Cell{X: layer, Y: u, Z: v}
	case grid.PosY, grid.NegY:
		return grid.Cell{X: u, Y: layer, Z: v}
	default:
		return grid.Cell{X: u, Y: v, Z: layer}
	}
}

// scaleAlongAxis replaces a 0/1 corner offset component along axis with
// scale, leaving the other components untouched. Used to stretch a
// single-cell corner offset into a merged rectangle's corner offset.
func scaleAlongAxis(c grid.Cell, axis grid.Direction, scale int32) grid.Cell {
	switch axis {
	case grid.PosX, grid.NegX:
		if c.X == 1 {
			c.X = scale
		}
	case grid.PosY, grid.NegY:
		if c.Y == 1 {
			c.Y = scale
		}
	default:
		if c.Z == 1 {
			c.Z = scale
		}
	}
	return c
}

// rectCorner stretches cornerOffsets[face][i] to the size of a w(u) by
// h(v) merged rectangle instead of a single cell.
func rectCorner(face grid.Direction, off grid.Cell, w, h int32) grid.Cell {
	uAxis, vAxis := tangentAxes(face)
	off = scaleAlongAxis(off, uAxis, w)
	off = scaleAlongAxis(off, vAxis, h)
	return off
}

// inChunkBounds reports whether c is a real cell of the chunk. emitRect
// calls this on each corner's base voxel, not the (possibly stretched)
// rectangle corner itself: spec §4.5 step 4 defines the fallback on base
// voxels leaving the chunk, not on the packed field's raw 5-bit range.
func inChunkBounds(c grid.Cell) bool {
	return c.X >= 0 && c.X < voxel.Size &&
		c.Y >= 0 && c.Y < voxel.Size &&
		c.Z >= 0 && c.Z < voxel.Size
}

// BuildGreedy meshes a chunk one face direction at a time: for each of the
// Size layers along a face's normal axis it builds a 2D mask of visible
// voxel faces keyed by material and four-corner AO signature, then
// extracts maximal rectangles from the mask (extending along u, then
// along v) instead of emitting one quad per voxel.
func BuildGreedy(chunk *voxel.Chunk, lod int) ChunkMeshData {
	var mesh ChunkMeshData
	s := sampler{chunk: chunk}

	for _, face := range grid.Directions {
		axis := normalAxis(face)
		for layer := int32(0); layer < voxel.Size; layer++ {
			greedyFaceLayer(&mesh, s, face, axis, layer, lod)
		}
	}
	return mesh
}

func greedyFaceLayer(mesh *ChunkMeshData, s sampler, face, axis grid.Direction, layer int32, lod int) {
	const n = voxel.Size
	var mask [n][n]maskCell

	for v := int32(0); v < n; v++ {
		for u := int32(0); u < n; u++ {
			local := cellFromLayerUV(face, layer, u, v)
			vox := s.chunk.VoxelAt(int(local.X), int(local.Y), int(local.Z))
			if !vox.Solid() || !faceVisible(s, local, face) {
				continue
			}
			mask[u][v] = maskCell{present: true, material: uint8(vox), aoSig: aoSignature(s, local, face)}
		}
	}

	var used [n][n]bool
	for v := int32(0); v < n; v++ {
		for u := int32(0); u < n; u++ {
			if used[u][v] || !mask[u][v].present {
				continue
			}
			key := mask[u][v].key()

			width := int32(1)
			for u+width < n && !used[u+width][v] && mask[u+width][v].present && mask[u+width][v].key() == key {
				width++
			}

			height := int32(1)
		heightLoop:
			for v+height < n {
				for k := int32(0); k < width; k++ {
					if used[u+k][v+height] || !mask[u+k][v+height].present || mask[u+k][v+height].key() != key {
						break heightLoop
					}
				}
				height++
			}

			for dv := int32(0); dv < height; dv++ {
				for du := int32(0); du < width; du++ {
					used[u+du][v+dv] = true
				}
			}

			emitRect(mesh, face, layer, u, v, width, height, mask[u][v], lod)
		}
	}
}

// emitRect packs each corner as the base voxel nearest it (the rectangle's
// own stretched corner minus that corner's unit cornerOffsets entry), per
// spec §4.5 step 4: the consumer reconstructs the rendered corner from the
// base voxel plus the packed corner index, so the stretched position itself
// is never packed.
func emitRect(mesh *ChunkMeshData, face grid.Direction, layer, u, v, width, height int32, cell maskCell, lod int) {
	origin := cellFromLayerUV(face, layer, u, v)

	var bases [4]grid.Cell
	for i, off := range cornerOffsets[face] {
		stretched := origin.Add(rectCorner(face, off, width, height))
		bases[i] = stretched.Sub(off)
		if !inChunkBounds(bases[i]) {
			emitUnitCells(mesh, face, layer, u, v, width, height, cell, lod)
			return
		}
	}

	var verts [4]PackedVertex
	for i, b := range bases {
		ao := aoFromSignature(cell.aoSig, i)
		verts[i] = PackVertex(int(b.X), int(b.Y), int(b.Z), face, i, ao, cell.material, lod)
	}
	mesh.appendQuad(verts[0], verts[1], verts[2], verts[3])
}

// emitUnitCells is the MesherEncodingLimit fallback: it re-emits a merged
// rectangle as one quad per constituent cell, each safely within the
// packed vertex's position width.
func emitUnitCells(mesh *ChunkMeshData, face grid.Direction, layer, u, v, width, height int32, cell maskCell, lod int) {
	for dv := int32(0); dv < height; dv++ {
		for du := int32(0); du < width; du++ {
			base := cellFromLayerUV(face, layer, u+du, v+dv)
			var verts [4]PackedVertex
			for i := range cornerOffsets[face] {
				verts[i] = PackVertex(int(base.X), int(base.Y), int(base.Z), face, i, aoFromSignature(cell.aoSig, i), cell.material, lod)
			}
			mesh.appendQuad(verts[0], verts[1], verts[2], verts[3])
		}
	}
}
