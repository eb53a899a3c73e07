package gen

import (
	"log/slog"

	"github.com/ojrac/opensimplex-go"

	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
)

const (
	minHeight = 5
	maxHeight = chunk.SizeY - 8

	baseHeight      = 64.0
	heightAmplitude = 28.0
	detailAmplitude = 4.0
)

// NoiseGenerator produces rolling terrain from 2D simplex noise: bedrock at
// y=0, stone, a few layers of dirt, grass above sea level and sand below it,
// with water filling up to sea level.
type NoiseGenerator struct {
	terrain opensimplex.Noise
	detail  opensimplex.Noise
	log     *slog.Logger
}

// NewNoiseGenerator creates a NoiseGenerator from a seed.
func NewNoiseGenerator(seed int64, log *slog.Logger) *NoiseGenerator {
	return &NoiseGenerator{
		terrain: opensimplex.New(seed),
		detail:  opensimplex.New(seed + 1),
		log:     orDiscard(log),
	}
}

func (g *NoiseGenerator) Populate(c *chunk.Chunk) {
	cx, cz := c.Position()

	// Columns are filled bottom to top, which walks each contiguous run once.
	for x := uint8(0); x < chunk.SizeX; x++ {
		for z := uint8(0); z < chunk.SizeZ; z++ {
			h := g.HeightAt(cx*chunk.SizeX+int64(x), cz*chunk.SizeZ+int64(z))
			g.fillColumn(c, x, z, uint8(h))
		}
	}
	c.RecomputeHeightmap(IsSolid)

	g.log.Debug("populated noise chunk", "chunkX", cx, "chunkZ", cz)
}

// fillColumn writes one column whose top solid block sits at y=h-1.
func (g *NoiseGenerator) fillColumn(c *chunk.Chunk, x, z, h uint8) {
	top := h - 1
	c.SetBlockAt(x, 0, z, BlockBedrock)
	c.FillColumn(x, z, 1, top-3, BlockStone)
	c.FillColumn(x, z, top-3, top, BlockDirt)

	if top >= seaLevel {
		c.SetBlockAt(x, top, z, BlockGrass)
		return
	}
	c.SetBlockAt(x, top, z, BlockSand)
	c.FillColumn(x, z, h, seaLevel+1, BlockWater)
}

func (g *NoiseGenerator) HeightAt(bx, bz int64) int {
	base := octaves(g.terrain, float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)
	detail := octaves(g.detail, float64(bx)/32.0, float64(bz)/32.0, 3, 0.5)

	h := int(baseHeight + base*heightAmplitude + detail*detailAmplitude)
	if h < minHeight {
		h = minHeight
	}
	if h > maxHeight {
		h = maxHeight
	}
	return h
}

// octaves sums n octaves of noise, each at double the frequency and
// persistence times the amplitude of the last. The result stays in [-1, 1].
func octaves(n opensimplex.Noise, x, z float64, count int, persistence float64) float64 {
	var total, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < count; i++ {
		total += n.Eval2(x*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return total / norm
}
