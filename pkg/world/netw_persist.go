package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/voxelsprout/core/pkg/network"
)

// netwMagic identifies the optional network-graph sidecar file: a ".netw"
// companion to a ".vxw" world file persisting a network.Graph so a saved
// world's pipe/belt/track topology survives a process restart. This is
// additive relative to spec §6.1's binary world format, grounded on the
// teacher's pkg/network/client.go manual-packet-buffer idiom rather than on
// original_source (whose NetworkProcedural.hpp assumes an in-memory-only
// graph).
const netwMagic = "VXN1"

const netwVersion = uint32(1)

// SaveNetworkGraph writes g to path using the same atomic temp-file-then-
// rename strategy as SaveToBinaryFile.
func SaveNetworkGraph(path string, g *network.Graph) error {
	var buf bytes.Buffer
	buf.WriteString(netwMagic)
	if err := binary.Write(&buf, binary.LittleEndian, netwVersion); err != nil {
		return err
	}
	if err := network.EncodeGraph(&buf, g); err != nil {
		return fmt.Errorf("world: encode network graph: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".netw-*.tmp")
	if err != nil {
		return fmt.Errorf("world: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("world: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("world: close temp file: %w", err)
	}
	return os.Rename(tmpName, path)
}

// LoadNetworkGraph reads a network.Graph previously written by
// SaveNetworkGraph.
func LoadNetworkGraph(path string) (*network.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadErr(Io, err)
	}
	if len(data) < 8 {
		return nil, loadErr(Truncated, io.ErrUnexpectedEOF)
	}
	if string(data[0:4]) != netwMagic {
		return nil, loadErr(BadMagic, nil)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != netwVersion {
		return nil, loadErr(BadVersion, nil)
	}

	g, err := network.DecodeGraph(bytes.NewReader(data[8:]))
	if err != nil {
		return nil, loadErr(Truncated, err)
	}
	return g, nil
}
