// Package network implements the transport-network topology graph for
// pipes, belts, and tracks: a typed adjacency graph with join-piece
// classification and fixed-point transforms for rendering metric positions
// and angles. Despite the name, this package has nothing to do with the
// teacher's pkg/network TCP multiplayer client — that protocol is a
// Non-goal here. What carries over from the teacher is the *idiom*: stable
// integer ids into growable slices instead of pointer adjacency (mirroring
// ChunkBufferManager's chunkToIndexMap/chunkPositions in
// pkg/render/chunkBufferManager.go), and encoding/binary manual buffer
// packing (mirroring pkg/network/client.go) reused here for the graph's
// on-disk edge encoding.
package network

import (
	"errors"
	"fmt"

	"github.com/voxelsprout/core/pkg/grid"
)

// NodeId and EdgeId are stable, monotonically assigned identifiers.
type NodeId uint32
type EdgeId uint32

// Socket is a node's identity: a cell, the direction the socket faces, and
// a port discriminator for the rare case a cell exposes more than one
// socket in the same direction.
type Socket struct {
	Cell   grid.Cell
	Dir    grid.Direction
	PortID uint8
}

// Kind enumerates the transport network this edge belongs to.
type Kind int

const (
	Pipe Kind = iota
	Belt
	Track
)

// Span describes the run of cells an edge occupies: length_voxels cells
// starting at Start, stepping along Dir. Length must be >= 1.
type Span struct {
	Start  grid.Cell
	Dir    grid.Direction
	Length uint32
}

// ErrInvalidSpan is returned by AddEdge when the span has zero length or
// either endpoint does not exist.
var ErrInvalidSpan = errors.New("network: invalid span")

// Edge connects two nodes over a span, carrying the network kind and an
// opaque payload byte (e.g. item/fluid type for belts/pipes).
type Edge struct {
	ID       EdgeId
	NodeA    NodeId
	NodeB    NodeId
	Span     Span
	Kind     Kind
	Payload  byte
}

// Graph is a directed typed adjacency graph over Socket nodes. Nodes and
// edges live in growable slices keyed by their stable id; adjacency is a
// parallel slice of edge-id lists preserving insertion order, eliminating
// pointer cycles at the type level per spec §9.
type Graph struct {
	nodes      []Socket
	edges      []Edge
	edgesByNode [][]EdgeId
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends socket as a new node and returns its id.
func (g *Graph) AddNode(socket Socket) NodeId {
	id := NodeId(len(g.nodes))
	g.nodes = append(g.nodes, socket)
	g.edgesByNode = append(g.edgesByNode, nil)
	return id
}

// Node returns the socket for id and whether id is valid.
func (g *Graph) Node(id NodeId) (Socket, bool) {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return Socket{}, false
	}
	return g.nodes[id], true
}

// NodeCount returns the number of nodes added so far.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge validates and appends an edge between a and b, returning its id.
func (g *Graph) AddEdge(a, b NodeId, span Span, kind Kind, payload byte) (EdgeId, error) {
	if span.Length < 1 {
		return 0, fmt.Errorf("%w: length %d < 1", ErrInvalidSpan, span.Length)
	}
	if _, ok := g.Node(a); !ok {
		return 0, fmt.Errorf("%w: node %d does not exist", ErrInvalidSpan, a)
	}
	if _, ok := g.Node(b); !ok {
		return 0, fmt.Errorf("%w: node %d does not exist", ErrInvalidSpan, b)
	}

	id := EdgeId(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, NodeA: a, NodeB: b, Span: span, Kind: kind, Payload: payload})
	g.edgesByNode[a] = append(g.edgesByNode[a], id)
	g.edgesByNode[b] = append(g.edgesByNode[b], id)
	return id, nil
}

// Edge returns the edge for id and whether id is valid.
func (g *Graph) Edge(id EdgeId) (Edge, bool) {
	if int(id) < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// EdgesForNode returns the ids of edges incident to id, in insertion order.
func (g *Graph) EdgesForNode(id NodeId) []EdgeId {
	if int(id) < 0 || int(id) >= len(g.edgesByNode) {
		return nil
	}
	return g.edgesByNode[id]
}

// RasterizeSpan returns exactly span.Length cells starting at span.Start,
// stepping along span.Dir.
func RasterizeSpan(span Span) []grid.Cell {
	cells := make([]grid.Cell, span.Length)
	step := span.Dir.Offset()
	cur := span.Start
	for i := uint32(0); i < span.Length; i++ {
		cells[i] = cur
		cur = cur.Add(step)
	}
	return cells
}
