package world

import "github.com/voxelsprout/core/pkg/logging"

// SaveWorld wraps SaveToBinaryFile with Info/Warn logging through the
// caller-supplied Logger (nil disables logging via logging.NewNopLogger).
func SaveWorld(g *ChunkGrid, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger.Infof("world: saving %d chunks to %s", g.Len(), path)
	if err := g.SaveToBinaryFile(path); err != nil {
		logger.Warnf("world: save to %s failed: %v", path, err)
		return err
	}
	return nil
}

// LoadWorld wraps LoadFromBinaryFile with Info/Warn logging through the
// caller-supplied Logger.
func LoadWorld(path string, logger logging.Logger) (*ChunkGrid, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	g, err := LoadFromBinaryFile(path)
	if err != nil {
		logger.Warnf("world: load from %s failed: %v", path, err)
		return nil, err
	}
	logger.Infof("world: loaded %d chunks from %s", g.Len(), path)
	return g, nil
}
