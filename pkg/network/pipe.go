package network

import "github.com/voxelsprout/core/pkg/grid"

// PipeConfig carries the tunables pipe-endpoint extension needs. There are
// no environment variables (spec §6.3); callers supply this explicitly,
// mirroring the teacher's preference for explicit constructor parameters
// over global state.
type PipeConfig struct {
	TransferHalfExtent float64 // pipe_transfer_half_extent
	MaxEndExtension     float64 // pipe_max_end_extension
	MinRenderedRadius   float64
	MaxRenderedRadius   float64
	BranchBoost         float64
}

// PipeAt describes one pipe segment for endpoint-extension purposes.
type PipeAt struct {
	Cell       grid.Cell
	Axis       grid.Direction // the pipe's own run axis (either of its two directions)
	BaseRadius float64
}

// EndpointExtension is the computed extension amount for one socket-facing
// direction of a pipe.
type EndpointExtension struct {
	Dir       grid.Direction
	Extension float64
}

// RenderedRadius returns clamp(baseRadius, min, max) plus a branch boost
// applied when any off-axis neighbour exists.
func RenderedRadius(cfg PipeConfig, baseRadius float64, hasOffAxisNeighbor bool) float64 {
	r := baseRadius
	if r < cfg.MinRenderedRadius {
		r = cfg.MinRenderedRadius
	}
	if r > cfg.MaxRenderedRadius {
		r = cfg.MaxRenderedRadius
	}
	if hasOffAxisNeighbor {
		r += cfg.BranchBoost
	}
	return r
}

// isColinear reports whether dir lies along axis (either the positive or
// the negative direction of that axis).
func isColinear(axis, dir grid.Direction) bool {
	return dir == axis || dir == axis.Opposite()
}

// ExtendPipeEndpoints computes, for a pipe at PipeAt, the extension amount
// of each face that has a neighbouring pipe in a direction other than the
// pipe's own axis. neighborAt returns the neighbouring pipe at a cell, or
// ok=false if there is none.
func ExtendPipeEndpoints(cfg PipeConfig, pipe PipeAt, neighborAt func(grid.Cell) (PipeAt, bool)) []EndpointExtension {
	var out []EndpointExtension

	for _, d := range grid.Directions {
		if isColinear(pipe.Axis, d) {
			continue
		}
		neighbor, ok := neighborAt(grid.Neighbor(pipe.Cell, d))
		if !ok {
			continue
		}

		// No extension when the neighbour pipe is colinear with the shared
		// axis d (i.e. it runs straight through rather than branching).
		if isColinear(neighbor.Axis, d) {
			continue
		}

		neighborHasOffAxis := false
		for _, nd := range grid.Directions {
			if isColinear(neighbor.Axis, nd) {
				continue
			}
			if _, ok := neighborAt(grid.Neighbor(neighbor.Cell, nd)); ok {
				neighborHasOffAxis = true
				break
			}
		}
		neighborRadius := RenderedRadius(cfg, neighbor.BaseRadius, neighborHasOffAxis)
		neighborHalfExtent := cfg.TransferHalfExtent * neighborRadius

		extension := 0.5 - neighborHalfExtent
		if extension < 0 {
			extension = 0
		}
		if extension > cfg.MaxEndExtension {
			extension = cfg.MaxEndExtension
		}

		out = append(out, EndpointExtension{Dir: d, Extension: extension})
	}

	return out
}
