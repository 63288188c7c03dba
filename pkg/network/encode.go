package network

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/voxelsprout/core/pkg/grid"
)

// edgeRecordBytes is the on-disk size of one encoded edge: NodeA, NodeB
// (u32 each), Span.Start (3*i32), Span.Dir (u8), Span.Length (u32), Kind
// (u8), Payload (u8). Grounded on the teacher's pkg/network/client.go
// manual-packet-buffer idiom (binary.Write field-by-field into a
// pre-sized buffer), reused here for graph persistence instead of
// multiplayer wire packets.
const edgeRecordBytes = 4 + 4 + 12 + 1 + 4 + 1 + 1

// EncodeSocket appends a Socket's wire representation to w.
func EncodeSocket(w io.Writer, s Socket) error {
	if err := binary.Write(w, binary.LittleEndian, s.Cell.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, s.Cell.Y); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, s.Cell.Z); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(s.Dir)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s.PortID)
}

// DecodeSocket reads a Socket previously written by EncodeSocket.
func DecodeSocket(r io.Reader) (Socket, error) {
	var s Socket
	if err := binary.Read(r, binary.LittleEndian, &s.Cell.X); err != nil {
		return Socket{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &s.Cell.Y); err != nil {
		return Socket{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &s.Cell.Z); err != nil {
		return Socket{}, err
	}
	var dir uint8
	if err := binary.Read(r, binary.LittleEndian, &dir); err != nil {
		return Socket{}, err
	}
	s.Dir = grid.Direction(dir)
	if err := binary.Read(r, binary.LittleEndian, &s.PortID); err != nil {
		return Socket{}, err
	}
	return s, nil
}

// EncodeEdge appends an Edge's wire representation to w.
func EncodeEdge(w io.Writer, e Edge) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(e.NodeA)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(e.NodeB)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, e.Span.Start.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, e.Span.Start.Y); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, e.Span.Start.Z); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(e.Span.Dir)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, e.Span.Length); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(e.Kind)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, e.Payload)
}

// DecodeEdge reads an Edge previously written by EncodeEdge (ID is left
// zero; the caller re-derives it from insertion order via AddEdge).
func DecodeEdge(r io.Reader) (a, b NodeId, span Span, kind Kind, payload byte, err error) {
	var na, nb uint32
	if err = binary.Read(r, binary.LittleEndian, &na); err != nil {
		return
	}
	if err = binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return
	}
	if err = binary.Read(r, binary.LittleEndian, &span.Start.X); err != nil {
		return
	}
	if err = binary.Read(r, binary.LittleEndian, &span.Start.Y); err != nil {
		return
	}
	if err = binary.Read(r, binary.LittleEndian, &span.Start.Z); err != nil {
		return
	}
	var dir uint8
	if err = binary.Read(r, binary.LittleEndian, &dir); err != nil {
		return
	}
	span.Dir = grid.Direction(dir)
	if err = binary.Read(r, binary.LittleEndian, &span.Length); err != nil {
		return
	}
	var k uint8
	if err = binary.Read(r, binary.LittleEndian, &k); err != nil {
		return
	}
	kind = Kind(k)
	if err = binary.Read(r, binary.LittleEndian, &payload); err != nil {
		return
	}
	a, b = NodeId(na), NodeId(nb)
	return
}

// EncodeGraph writes the full node/edge table of g to w: node_count (u32),
// each socket, edge_count (u32), each edge.
func EncodeGraph(w io.Writer, g *Graph) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(g.NodeCount())); err != nil {
		return err
	}
	for _, n := range g.nodes {
		if err := EncodeSocket(w, n); err != nil {
			return fmt.Errorf("network: encode node: %w", err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(g.EdgeCount())); err != nil {
		return err
	}
	for _, e := range g.edges {
		if err := EncodeEdge(w, e); err != nil {
			return fmt.Errorf("network: encode edge: %w", err)
		}
	}
	return nil
}

// DecodeGraph reads a graph previously written by EncodeGraph.
func DecodeGraph(r io.Reader) (*Graph, error) {
	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, fmt.Errorf("network: read node count: %w", err)
	}
	g := NewGraph()
	for i := uint32(0); i < nodeCount; i++ {
		s, err := DecodeSocket(r)
		if err != nil {
			return nil, fmt.Errorf("network: decode node %d: %w", i, err)
		}
		g.AddNode(s)
	}

	var edgeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
		return nil, fmt.Errorf("network: read edge count: %w", err)
	}
	for i := uint32(0); i < edgeCount; i++ {
		a, b, span, kind, payload, err := DecodeEdge(r)
		if err != nil {
			return nil, fmt.Errorf("network: decode edge %d: %w", i, err)
		}
		if _, err := g.AddEdge(a, b, span, kind, payload); err != nil {
			return nil, fmt.Errorf("network: rebuild edge %d: %w", i, err)
		}
	}
	return g, nil
}
