package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/voxelsprout/core/pkg/voxel"
)

// magic is the canonical world-file header. The original source's comments
// say "VXW1" but its loader actually checks a header constant defined
// elsewhere; this rewrite fixes "VXW1" as the one true magic and documents
// it here, per spec §9's open question.
const magic = "VXW1"

const wireVersion = uint32(2)

const chunkVoxelBytes = voxel.Size * voxel.Size * voxel.Size
const chunkRecordBytes = 4 + 4 + 4 + chunkVoxelBytes // chunk_x,y,z + voxel bytes

// LoadErrorKind enumerates the ways a load can fail.
type LoadErrorKind int

const (
	BadMagic LoadErrorKind = iota
	BadVersion
	Truncated
	SizeMismatch
	Io
)

func (k LoadErrorKind) String() string {
	switch k {
	case BadMagic:
		return "BadMagic"
	case BadVersion:
		return "BadVersion"
	case Truncated:
		return "Truncated"
	case SizeMismatch:
		return "SizeMismatch"
	case Io:
		return "Io"
	default:
		return "Unknown"
	}
}

// LoadError is returned by LoadFromBinaryFile/LoadFromBinary on failure.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("world: load failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("world: load failed (%s)", e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(kind LoadErrorKind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}

// SaveToBinaryFile writes g to path using the §6.1 wire format. It builds
// the whole buffer first, writes it to a temp file in the same directory,
// then renames over the destination, so a crash mid-write never corrupts an
// existing save — generalized from the teacher's "build the full packet
// buffer, then issue one net.Conn.Write" idiom (pkg/network/client.go) to
// "build then rename" for file persistence.
func (g *ChunkGrid) SaveToBinaryFile(path string) error {
	buf, err := g.encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vxw-*.tmp")
	if err != nil {
		return fmt.Errorf("world: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("world: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("world: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("world: rename temp file into place: %w", err)
	}
	return nil
}

func (g *ChunkGrid) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(magic)
	if err := binary.Write(&buf, binary.LittleEndian, wireVersion); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(g.order))); err != nil {
		return nil, err
	}
	for _, coord := range g.order {
		c := g.chunks[coord]
		if err := binary.Write(&buf, binary.LittleEndian, c.ChunkX); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, c.ChunkY); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, c.ChunkZ); err != nil {
			return nil, err
		}
		for _, v := range c.Voxels {
			buf.WriteByte(byte(v))
		}
	}
	return buf.Bytes(), nil
}

// LoadFromBinaryFile reads a ChunkGrid previously written by
// SaveToBinaryFile.
func LoadFromBinaryFile(path string) (*ChunkGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadErr(Io, err)
	}
	return LoadFromBinary(data)
}

// LoadFromBinary decodes the §6.1 wire format from an in-memory buffer.
func LoadFromBinary(data []byte) (*ChunkGrid, error) {
	if len(data) < 12 {
		return nil, loadErr(Truncated, io.ErrUnexpectedEOF)
	}
	if string(data[0:4]) != magic {
		return nil, loadErr(BadMagic, nil)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != wireVersion {
		return nil, loadErr(BadVersion, nil)
	}
	chunkCount := binary.LittleEndian.Uint32(data[8:12])

	wantLen := 12 + int(chunkCount)*chunkRecordBytes
	if len(data) != wantLen {
		if len(data) < wantLen {
			return nil, loadErr(Truncated, io.ErrUnexpectedEOF)
		}
		return nil, loadErr(SizeMismatch, nil)
	}

	g := NewChunkGrid()
	r := bytes.NewReader(data[12:])
	for i := uint32(0); i < chunkCount; i++ {
		var x, y, z int32
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return nil, loadErr(Truncated, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return nil, loadErr(Truncated, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &z); err != nil {
			return nil, loadErr(Truncated, err)
		}

		c := voxel.NewChunk(x, y, z)
		voxelBytes := make([]byte, chunkVoxelBytes)
		if _, err := io.ReadFull(r, voxelBytes); err != nil {
			return nil, loadErr(Truncated, err)
		}
		for i, b := range voxelBytes {
			c.Voxels[i] = voxel.Type(b)
		}
		g.PutChunk(c)
	}
	return g, nil
}
