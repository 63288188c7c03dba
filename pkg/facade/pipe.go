package facade

import (
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/network"
)

// PipeEndpointStates computes the rendered endpoint extensions for one
// pipe, given a callback that looks up whatever neighbouring pipe (if any)
// sits at a cell. Thin wrapper over network.ExtendPipeEndpoints: the
// façade boundary exists so a renderer never has to import pkg/network
// directly for this one call.
func PipeEndpointStates(cfg network.PipeConfig, pipe network.PipeAt, neighborAt func(grid.Cell) (network.PipeAt, bool)) []network.EndpointExtension {
	return network.ExtendPipeEndpoints(cfg, pipe, neighborAt)
}

// ClassifyJoinPiece classifies a six-neighbour occupancy mask into a join
// piece (straight, elbow, tee, cross, ...). Thin wrapper over
// network.ClassifyJoinPiece.
func ClassifyJoinPiece(mask uint8) network.JoinPiece {
	return network.ClassifyJoinPiece(mask)
}
