// Command voxelsproutctl is a headless demo that exercises the whole
// deterministic voxel-world pipeline end to end: build a world, edit it
// with CSG commands, mesh it both ways, run the clipmap over it, and
// round-trip it through the binary save format. It replaces the teacher's
// two GPU window programs (cmd/voxels, cmd/cube_example), which cannot
// survive headless since a render window is out of this module's scope.
// This is the only place in the module allowed to call log.Fatalf/os.Exit;
// every library package below it returns errors instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelsprout/core/pkg/clipmap"
	"github.com/voxelsprout/core/pkg/csg"
	"github.com/voxelsprout/core/pkg/grid"
	"github.com/voxelsprout/core/pkg/logging"
	"github.com/voxelsprout/core/pkg/mesher"
	"github.com/voxelsprout/core/pkg/voxel"
	"github.com/voxelsprout/core/pkg/world"
)

func main() {
	radius := flag.Int("radius", 2, "flat world radius in chunks")
	savePath := flag.String("save", "", "path to save/reload the world from (defaults to a temp file)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.NewDefaultLogger("voxelsproutctl", *debug)

	if err := run(int32(*radius), *savePath, logger); err != nil {
		log.Fatalf("voxelsproutctl: %v", err)
	}
}

func run(radius int32, savePath string, logger logging.Logger) error {
	fmt.Println("voxelsproutctl: building flat world...")
	g := world.InitializeFlatWorld(radius, voxel.Stone)
	fmt.Printf("  %d chunks\n", g.Len())

	if err := applyDemoEdits(g); err != nil {
		return fmt.Errorf("applying CSG edits: %w", err)
	}

	if err := reportMeshCounts(g); err != nil {
		return fmt.Errorf("meshing: %w", err)
	}

	reportClipmapStats(g, logger)

	if err := roundTripSaveLoad(g, savePath); err != nil {
		return fmt.Errorf("save/reload round trip: %w", err)
	}

	fmt.Println("voxelsproutctl: all checks passed")
	return nil
}

// applyDemoEdits adds a solid box to the world's first chunk, carves a
// pipe-shaped tunnel through it, then paints part of the result, exercising
// csg §4.4's three operation kinds end to end.
func applyDemoEdits(g *world.ChunkGrid) error {
	chunks := g.Chunks()
	if len(chunks) == 0 {
		return fmt.Errorf("world has no chunks to edit")
	}
	chunk := chunks[0]
	origin := chunk.WorldOrigin()
	size := grid.Cell{X: voxel.Size, Y: voxel.Size, Z: voxel.Size}

	vol := csg.NewVolume(origin, size)
	seedVolumeFromChunk(vol, chunk)

	commands := []csg.Command{
		{
			Op: csg.AddSolid,
			Brush: csg.Brush{
				Kind:    csg.Box,
				MinCell: origin.Add(grid.Cell{X: 2, Y: 8, Z: 2}),
				MaxCell: origin.Add(grid.Cell{X: 10, Y: 12, Z: 10}),
			},
			Material:   1,
			AffectMask: csg.AffectAll,
		},
		{
			Op: csg.SubtractSolid,
			Brush: csg.Brush{
				Kind:     csg.PrismPipe,
				MinCell:  origin.Add(grid.Cell{X: 0, Y: 8, Z: 4}),
				MaxCell:  origin.Add(grid.Cell{X: 16, Y: 11, Z: 8}),
				Axis:     grid.PosX,
				RadiusQ8: 1 << 7,
			},
			AffectMask: csg.AffectAll,
		},
		{
			Op: csg.PaintMaterial,
			Brush: csg.Brush{
				Kind:    csg.Box,
				MinCell: origin.Add(grid.Cell{X: 2, Y: 8, Z: 2}),
				MaxCell: origin.Add(grid.Cell{X: 6, Y: 10, Z: 6}),
			},
			Material:   7,
			AffectMask: csg.AffectSolidCells,
		},
	}

	dirty := csg.ApplyCommands(vol, commands)
	csg.CopySolidsToChunk(vol, chunk)
	fmt.Printf("  applied %d CSG commands, dirty box valid=%v\n", len(commands), dirty.Valid)
	return nil
}

// seedVolumeFromChunk copies a chunk's existing voxels into vol so edits
// layer on top of the flat world's ground instead of starting from empty.
func seedVolumeFromChunk(vol *csg.Volume, chunk *voxel.Chunk) {
	origin := chunk.WorldOrigin()
	for y := 0; y < voxel.Size; y++ {
		for z := 0; z < voxel.Size; z++ {
			for x := 0; x < voxel.Size; x++ {
				v := chunk.VoxelAt(x, y, z)
				if v == voxel.Empty {
					continue
				}
				world := origin.Add(grid.Cell{X: int32(x), Y: int32(y), Z: int32(z)})
				vol.Set(world, csg.Cell{Voxel: v})
			}
		}
	}
}

// reportMeshCounts meshes every chunk both ways and verifies spec
// Property 4: greedy meshing never emits more vertices than naive meshing.
func reportMeshCounts(g *world.ChunkGrid) error {
	var totalNaive, totalGreedy int
	for _, chunk := range g.Chunks() {
		naive := mesher.BuildNaive(chunk, 0)
		greedy := mesher.BuildGreedy(chunk, 0)
		if len(greedy.Vertices) > len(naive.Vertices) {
			return fmt.Errorf("chunk %v: greedy mesh (%d verts) exceeded naive mesh (%d verts)",
				chunk.Coord(), len(greedy.Vertices), len(naive.Vertices))
		}
		totalNaive += len(naive.Vertices)
		totalGreedy += len(greedy.Vertices)
	}
	fmt.Printf("  naive vertices=%d greedy vertices=%d\n", totalNaive, totalGreedy)
	return nil
}

// reportClipmapStats rebuilds a clipmap over g and walks a short simulated
// camera path, printing residency stats at each step.
func reportClipmapStats(g *world.ChunkGrid, logger logging.Logger) {
	idx := clipmap.NewIndex(clipmap.DefaultConfig(2, 2))
	idx.Rebuild(g)

	path := []mgl32.Vec3{
		{0, 0, 0},
		{8, 0, 0},
		{40, 0, 40},
	}
	for _, pos := range path {
		var stats clipmap.Stats
		idx.UpdateCamera(pos, &stats)
		fmt.Printf("  camera at %v: resident=%d updated_levels=%d updated_bricks=%d\n",
			pos, stats.ResidentBrickCount, stats.UpdatedLevelCount, stats.UpdatedBrickCount)
	}

	var queryStats clipmap.Stats
	visible := idx.QueryChunksIntersecting(g.WorldBounds(), &queryStats)
	logger.Infof("clipmap query: visited=%d candidates=%d visible=%d",
		queryStats.VisitedNodes, queryStats.CandidateChunks, len(visible))
}

// roundTripSaveLoad writes g to path (or a temp file) and reloads it,
// verifying the reload is byte-for-byte equal in voxel contents.
func roundTripSaveLoad(g *world.ChunkGrid, path string) error {
	if path == "" {
		f, err := os.CreateTemp("", "voxelsproutctl-*.vxw")
		if err != nil {
			return err
		}
		path = f.Name()
		f.Close()
		defer os.Remove(path)
	}

	if err := g.SaveToBinaryFile(path); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	reloaded, err := world.LoadFromBinaryFile(path)
	if err != nil {
		return fmt.Errorf("reloading: %w", err)
	}

	if !g.Equal(reloaded) {
		return fmt.Errorf("reloaded world does not match saved world")
	}

	fmt.Printf("  saved and reloaded %d chunks from %s, contents match\n", reloaded.Len(), path)
	return nil
}
