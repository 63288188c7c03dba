package facade

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/voxelsprout/core/pkg/mesher"
)

// VoxelSample is one populated cell of an imported MagicaVoxel model, in
// model-local coordinates with a palette color index.
type VoxelSample struct {
	X, Y, Z    uint32
	ColorIndex byte
}

// VoxModel is a simplified MagicaVoxel model: one size plus one flat voxel
// list and the file's last-seen palette. Grounded on Gekko3D's VoxFile/
// VoxModel (vox.go), trimmed to the three chunk kinds this façade actually
// needs (SIZE, XYZI, RGBA) — no scene graph (nTRN/nGRP/nSHP), no materials
// (MATL), no physics analysis, since nothing in this module places
// imported props into a transform hierarchy or simulates rigid bodies.
type VoxModel struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []VoxelSample
	Palette             [256][4]byte
}

const voxMagic = "VOX "

var errNotVoxFile = errors.New("facade: not a VOX file")

// LoadVoxFile reads a MagicaVoxel .vox file and returns its last model
// (MagicaVoxel files with multiple SIZE/XYZI pairs are rare outside of
// scene-graph exports this parser doesn't handle) and the palette defined
// by its RGBA chunk, or defaultVoxPalette's grayscale fallback if it has
// none.
func LoadVoxFile(path string) (*VoxModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != voxMagic {
		return nil, errNotVoxFile
	}

	var version int32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, err
	}

	model := &VoxModel{Palette: defaultVoxPalette()}

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(f, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		var chunkSize, childrenSize int32
		if err := binary.Read(f, binary.LittleEndian, &chunkSize); err != nil {
			return nil, err
		}
		if err := binary.Read(f, binary.LittleEndian, &childrenSize); err != nil {
			return nil, err
		}

		data := make([]byte, chunkSize)
		if _, err := io.ReadFull(f, data); err != nil {
			return nil, err
		}

		switch string(chunkID[:]) {
		case "SIZE":
			if len(data) < 12 {
				return nil, errors.New("facade: SIZE chunk too small")
			}
			model.SizeX = binary.LittleEndian.Uint32(data[0:4])
			model.SizeY = binary.LittleEndian.Uint32(data[4:8])
			model.SizeZ = binary.LittleEndian.Uint32(data[8:12])
		case "XYZI":
			if len(data) < 4 {
				return nil, errors.New("facade: XYZI chunk too small")
			}
			count := binary.LittleEndian.Uint32(data[0:4])
			model.Voxels = make([]VoxelSample, 0, count)
			for i := uint32(0); i < count; i++ {
				off := 4 + i*4
				if int(off)+3 >= len(data) {
					return nil, errors.New("facade: XYZI chunk data overflow")
				}
				model.Voxels = append(model.Voxels, VoxelSample{
					X:          uint32(data[off]),
					Y:          uint32(data[off+1]),
					Z:          uint32(data[off+2]),
					ColorIndex: data[off+3],
				})
			}
		case "RGBA":
			for i := 0; i < 255 && (i+1)*4+3 < len(data); i++ {
				off := i * 4
				model.Palette[i+1] = [4]byte{data[off], data[off+1], data[off+2], data[off+3]}
			}
		}
	}

	return model, nil
}

// defaultVoxPalette returns MagicaVoxel's identity-ish fallback palette:
// grayscale ramp, index 0 reserved as transparent. Import tooling that
// needs the exact official 255-color default palette should supply an
// RGBA chunk; this fallback only avoids an all-black model when one is
// absent.
func defaultVoxPalette() [256][4]byte {
	var p [256][4]byte
	for i := 1; i < 256; i++ {
		v := byte((i * 255) / 255)
		p[i] = [4]byte{v, v, v, 255}
	}
	return p
}

// voxEncodingLimit is the largest voxel-local coordinate BuildVoxModelMesh
// can place: PackedVertex's base-voxel fields are each 5 bits wide, and the
// preview mesh packs a voxel's own coordinate directly.
const voxEncodingLimit = mesher.MesherEncodingLimit

// BuildVoxModelMesh converts every populated cell of model into a unit-cube
// mesh using mesher.BuildSingleVoxelPreviewMesh per voxel, skipping voxels
// whose coordinates would overflow PackedVertex's 5-bit position field
// rather than silently wrapping them. The palette's color index becomes
// the packed vertex material byte directly; mapping palette indices to a
// game material table, if ever needed, belongs to the caller.
func BuildVoxModelMesh(model *VoxModel) mesher.ChunkMeshData {
	var out mesher.ChunkMeshData
	for _, v := range model.Voxels {
		if v.X > voxEncodingLimit || v.Y > voxEncodingLimit || v.Z > voxEncodingLimit {
			continue
		}
		unit := mesher.BuildSingleVoxelPreviewMesh(int(v.X), int(v.Y), int(v.Z), 3, v.ColorIndex)
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, unit.Vertices...)
		for _, idx := range unit.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
