package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelsprout/core/pkg/clipmap"
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/logging"
	"github.com/voxelsprout/core/pkg/mesher"
	"github.com/voxelsprout/core/pkg/world"
)

// Facade is the single entry point an external renderer drives: it owns no
// rendering state of its own, only the clipmap residency index and the
// background mesh scheduler, both keyed off the world grid it was built
// from. Every exported method is a thin pass-through to grid/clipmap/
// mesher/network, per the grounding ledger's "facade stays a few-line
// wrapper" rule.
type Facade struct {
	grid      *world.ChunkGrid
	clip      *clipmap.Index
	scheduler *Scheduler
	logger    logging.Logger
}

// NewFacade builds a façade over g using clipCfg for residency tracking.
// A nil logger falls back to a no-op logger.
func NewFacade(g *world.ChunkGrid, clipCfg clipmap.Config, logger logging.Logger) *Facade {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	idx := clipmap.NewIndex(clipCfg)
	idx.Rebuild(g)

	f := &Facade{
		grid:      g,
		clip:      idx,
		scheduler: NewScheduler(logger),
		logger:    logger,
	}
	f.UpdateChunkMesh(nil)
	return f
}

// Close stops the background mesh scheduler.
func (f *Facade) Close() {
	f.scheduler.Close()
}

// UpdateCamera refreshes clipmap residency around pos, reporting stats if
// non-nil.
func (f *Facade) UpdateCamera(pos mgl32.Vec3, stats *clipmap.Stats) {
	f.clip.UpdateCamera(pos, stats)
}

// VisibleChunkIndices returns the stable Chunks()-order indices of chunks
// whose world bounds intersect box, restricted to clipmap-resident chunks,
// recording query stats if non-nil.
func (f *Facade) VisibleChunkIndices(box grid.CellBox, stats *clipmap.Stats) []int {
	return f.clip.QueryChunksIntersecting(box, stats)
}

// GrassInstances returns the procedural grass placements for the chunk at
// chunkIndex, or nil if the index is out of range.
func (f *Facade) GrassInstances(chunkIndex int) []GrassInstance {
	chunks := f.grid.Chunks()
	if chunkIndex < 0 || chunkIndex >= len(chunks) {
		return nil
	}
	return GrassInstancesForChunk(chunks[chunkIndex])
}

// ChunkLodMeshes returns the most recently scheduled LOD mesh set for the
// chunk at chunkIndex, and whether one has been computed yet.
func (f *Facade) ChunkLodMeshes(chunkIndex int) (mesher.ChunkLodMeshes, bool) {
	meshes, _, ok := f.scheduler.MeshFor(chunkIndex)
	return meshes, ok
}

// UpdateChunkMesh (re)enqueues meshing for the given chunk indices, or for
// every chunk in the grid when chunkIndices is nil. The scheduler meshes
// asynchronously; call ChunkLodMeshes afterward (once the scheduler has
// drained) to retrieve results.
func (f *Facade) UpdateChunkMesh(chunkIndices []int) {
	chunks := f.grid.Chunks()
	if chunkIndices == nil {
		for i, c := range chunks {
			f.scheduler.Enqueue(i, c)
		}
		return
	}
	for _, i := range chunkIndices {
		if i < 0 || i >= len(chunks) {
			continue
		}
		f.scheduler.Enqueue(i, chunks[i])
	}
}

// ClipmapQueryConfig returns the clipmap's configured brick sizes/radii.
func (f *Facade) ClipmapQueryConfig() clipmap.Config {
	return f.clip.Config()
}

// SpatialQueryReport bundles the outcome of a single VisibleChunkIndices
// call for a caller that wants to log or display it without holding onto a
// clipmap.Stats value itself.
type SpatialQueryReport struct {
	Used         bool
	Stats        clipmap.Stats
	VisibleCount int
}

// SetSpatialQueryStats is a narrow diagnostic hook: it exists so calling
// code (a debug overlay, a CLI demo) can hand back a previously captured
// clipmap.Stats for logging without reaching into the clipmap package
// itself.
func (f *Facade) SetSpatialQueryStats(report SpatialQueryReport) {
	if !report.Used {
		return
	}
	f.logger.Debugf("facade: spatial query visited=%d candidates=%d visible=%d",
		report.Stats.VisitedNodes, report.Stats.CandidateChunks, report.VisibleCount)
}
