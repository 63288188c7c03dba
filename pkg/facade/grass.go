package facade

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/voxel"
)

// GrassInstance is one procedural grass-blade placement on top of a Grass
// voxel's exposed top face.
type GrassInstance struct {
	Cell         grid.Cell // world cell directly above the supporting Grass voxel
	JitterX      float32
	JitterZ      float32
	RotationRads float32
	Scale        float32
}

// GrassInstancesForChunk places one GrassInstance per Grass voxel in chunk
// whose top neighbour is non-solid (an exposed top face), with
// jitter/rotation/scale derived deterministically from the world cell
// coordinate via hash/fnv rather than math/rand: the same world is always
// decorated identically across runs and across save/reload, with no seed
// to thread through persistence. Mirrors the teacher's own preference for
// deterministic, coordinate-keyed placement over a stateful RNG wherever
// reproducibility across runs matters (pkg/voxel/chunk.go's own
// neighbour-order determinism).
func GrassInstancesForChunk(chunk *voxel.Chunk) []GrassInstance {
	var out []GrassInstance
	for y := 0; y < voxel.Size; y++ {
		for z := 0; z < voxel.Size; z++ {
			for x := 0; x < voxel.Size; x++ {
				if chunk.VoxelAt(x, y, z) != voxel.Grass {
					continue
				}
				if chunk.VoxelAt(x, y+1, z).Solid() {
					continue
				}
				top := chunk.WorldCell(x, y+1, z)
				out = append(out, grassInstanceAt(top))
			}
		}
	}
	return out
}

// grassInstanceAt derives a GrassInstance's jitter/rotation/scale from the
// FNV-1a hash of its world cell, splitting the 64-bit digest into four
// independent fields by byte range so the four outputs don't correlate.
func grassInstanceAt(cell grid.Cell) GrassInstance {
	h := cellHash(cell.X, cell.Y, cell.Z)

	jitterX := unitFloat(uint32(h)) - 0.5
	jitterZ := unitFloat(uint32(h>>16)) - 0.5
	rotation := unitFloat(uint32(h>>32)) * 2 * math.Pi
	scale := 0.75 + unitFloat(uint32(h>>48))*0.5

	return GrassInstance{
		Cell:         cell,
		JitterX:      jitterX * 0.8,
		JitterZ:      jitterZ * 0.8,
		RotationRads: float32(rotation),
		Scale:        scale,
	}
}

// unitFloat maps the low 16 bits of v onto [0, 1).
func unitFloat(v uint32) float32 {
	return float32(v&0xFFFF) / float32(0x10000)
}

func cellHash(x, y, z int32) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(x))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(z))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}
