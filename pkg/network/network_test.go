package network

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsprout/core/pkg/grid"
)

func TestAddNodeAndEdge(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Socket{Cell: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX})
	b := g.AddNode(Socket{Cell: grid.Cell{X: 1, Y: 0, Z: 0}, Dir: grid.NegX})

	require.Equal(t, NodeId(0), a)
	require.Equal(t, NodeId(1), b)

	id, err := g.AddEdge(a, b, Span{Start: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX, Length: 1}, Pipe, 0)
	require.NoError(t, err)
	require.Equal(t, EdgeId(0), id)

	require.Equal(t, []EdgeId{0}, g.EdgesForNode(a))
	require.Equal(t, []EdgeId{0}, g.EdgesForNode(b))
}

func TestAddEdgeRejectsZeroLength(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Socket{})
	b := g.AddNode(Socket{})

	_, err := g.AddEdge(a, b, Span{Length: 0}, Pipe, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSpan))
}

func TestAddEdgeRejectsMissingEndpoint(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Socket{})

	_, err := g.AddEdge(a, NodeId(99), Span{Length: 1}, Pipe, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSpan))
}

func TestRasterizeSpan(t *testing.T) {
	span := Span{Start: grid.Cell{X: 1, Y: 0, Z: 0}, Dir: grid.PosZ, Length: 4}
	cells := RasterizeSpan(span)
	require.Len(t, cells, 4)
	for i, c := range cells {
		require.Equal(t, grid.Cell{X: 1, Y: 0, Z: int32(i)}, c)
	}
}

func TestClassifyJoinPiece(t *testing.T) {
	cases := []struct {
		mask uint8
		want JoinPiece
	}{
		{0, Isolated},
		{grid.PosX.Bit(), EndCap},
		{grid.PosX.Bit() | grid.NegX.Bit(), Straight},
		{grid.PosX.Bit() | grid.PosY.Bit(), Elbow},
		{grid.PosX.Bit() | grid.NegX.Bit() | grid.PosY.Bit(), Tee},
		{grid.PosX.Bit() | grid.NegX.Bit() | grid.PosY.Bit() | grid.NegY.Bit(), Cross},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ClassifyJoinPiece(c.mask), "mask %06b", c.mask)
	}
}

func TestNeighborMask6(t *testing.T) {
	occupied := map[grid.Cell]bool{
		{X: 1, Y: 0, Z: 0}: true,
		{X: 0, Y: 1, Z: 0}: true,
	}
	mask := NeighborMask6(grid.Cell{}, func(c grid.Cell) bool { return occupied[c] })
	require.Equal(t, grid.PosX.Bit()|grid.PosY.Bit(), mask)
}

func TestQuantizeFixedRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1.5, -1.5, 100.25, -100.25} {
		q := QuantizeFixed(f, Q12Frac)
		back := DequantizeFixed(q, Q12Frac)
		require.InDelta(t, f, back, 1.0/float64(int64(1)<<Q12Frac))
	}
}

func TestQuantizeFixedSaturates(t *testing.T) {
	require.Equal(t, int32(1<<31-1), QuantizeFixed(1e20, Q12Frac))
	require.Equal(t, int32(-(1 << 31)), QuantizeFixed(-1e20, Q12Frac))
}

func TestQuantizeAngleWrapsAndRoundTrips(t *testing.T) {
	cases := []float64{0, 90, -90, 180, -180, 270, -270, 359}
	for _, deg := range cases {
		q := QuantizeAngleDegQ10(deg)
		back := DequantizeAngleDegQ10(q)
		wrapped := wrapSymmetric180(deg)
		require.InDelta(t, wrapped, back, 180.0/1024.0)
	}
}

func TestExtendPipeEndpoints(t *testing.T) {
	cfg := PipeConfig{
		TransferHalfExtent: 0.4,
		MaxEndExtension:    0.5,
		MinRenderedRadius:  0.1,
		MaxRenderedRadius:  0.5,
		BranchBoost:        0.05,
	}

	main := PipeAt{Cell: grid.Cell{X: 0, Y: 0, Z: 0}, Axis: grid.PosX, BaseRadius: 0.2}
	branch := PipeAt{Cell: grid.Cell{X: 0, Y: 1, Z: 0}, Axis: grid.PosZ, BaseRadius: 0.1}

	pipes := map[grid.Cell]PipeAt{branch.Cell: branch}
	lookup := func(c grid.Cell) (PipeAt, bool) {
		p, ok := pipes[c]
		return p, ok
	}

	extensions := ExtendPipeEndpoints(cfg, main, lookup)
	require.Len(t, extensions, 1)
	require.Equal(t, grid.PosY, extensions[0].Dir)
	require.GreaterOrEqual(t, extensions[0].Extension, 0.0)
	require.LessOrEqual(t, extensions[0].Extension, cfg.MaxEndExtension)
}

func TestExtendPipeEndpointsColinearNeighborNoExtension(t *testing.T) {
	cfg := PipeConfig{TransferHalfExtent: 0.4, MaxEndExtension: 0.5, MinRenderedRadius: 0.1, MaxRenderedRadius: 0.5}
	main := PipeAt{Cell: grid.Cell{X: 0, Y: 0, Z: 0}, Axis: grid.PosX, BaseRadius: 0.2}
	straightThrough := PipeAt{Cell: grid.Cell{X: 0, Y: 1, Z: 0}, Axis: grid.PosY, BaseRadius: 0.2}

	lookup := func(c grid.Cell) (PipeAt, bool) {
		if c.Eq(grid.Cell{X: 0, Y: 1, Z: 0}) {
			return straightThrough, true
		}
		return PipeAt{}, false
	}

	extensions := ExtendPipeEndpoints(cfg, main, lookup)
	require.Len(t, extensions, 0)
}

func TestEncodeDecodeGraphRoundTrip(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Socket{Cell: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX, PortID: 1})
	b := g.AddNode(Socket{Cell: grid.Cell{X: 3, Y: 0, Z: 0}, Dir: grid.NegX})
	_, err := g.AddEdge(a, b, Span{Start: grid.Cell{X: 0, Y: 0, Z: 0}, Dir: grid.PosX, Length: 3}, Pipe, 42)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeGraph(&buf, g))

	decoded, err := DecodeGraph(&buf)
	require.NoError(t, err)
	require.Equal(t, g.NodeCount(), decoded.NodeCount())
	require.Equal(t, g.EdgeCount(), decoded.EdgeCount())

	origNode, _ := g.Node(a)
	gotNode, _ := decoded.Node(a)
	require.Equal(t, origNode, gotNode)

	origEdge, _ := g.Edge(0)
	gotEdge, _ := decoded.Edge(0)
	require.Equal(t, origEdge, gotEdge)
}
