package gen

import (
	"log/slog"

	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
)

// FlatGenerator fills every column with the same stack of layers.
type FlatGenerator struct {
	preset Preset
	log    *slog.Logger
}

// NewFlatGenerator creates a FlatGenerator. The preset must be valid.
// A nil log discards debug output.
func NewFlatGenerator(preset Preset, log *slog.Logger) *FlatGenerator {
	return &FlatGenerator{preset: preset, log: orDiscard(log)}
}

func (g *FlatGenerator) Populate(c *chunk.Chunk) {
	for x := uint8(0); x < chunk.SizeX; x++ {
		for z := uint8(0); z < chunk.SizeZ; z++ {
			var y uint8
			for _, l := range g.preset.Layers {
				c.FillColumn(x, z, y, y+l.Height, l.Block)
				y += l.Height
			}
		}
	}
	c.RecomputeHeightmap(IsSolid)

	cx, cz := c.Position()
	g.log.Debug("populated flat chunk", "chunkX", cx, "chunkZ", cz, "preset", g.preset.Name)
}

func (g *FlatGenerator) HeightAt(_, _ int64) int {
	return g.preset.SurfaceHeight()
}
