package gen

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
)

// Block IDs written by the generators. The chunk store treats them as opaque.
const (
	BlockAir     uint32 = 0
	BlockStone   uint32 = 1
	BlockGrass   uint32 = 2
	BlockDirt    uint32 = 3
	BlockBedrock uint32 = 7
	BlockWater   uint32 = 9 // stationary water
	BlockSand    uint32 = 12
	BlockGravel  uint32 = 13

	seaLevel = 62
)

// Generator names accepted by New.
const (
	NameFlat  = "flat"
	NameNoise = "noise"
)

// ErrUnknownGenerator is returned by New for an unrecognised generator name.
var ErrUnknownGenerator = errors.New("unknown generator")

// Generator fills chunks deterministically.
type Generator interface {
	// Populate writes terrain into c through its setters and rebuilds its
	// heightmap. The chunk's position selects the terrain.
	Populate(c *chunk.Chunk)
	// HeightAt returns the heightmap value (top solid y + 1) of the world
	// column at block coordinates bx, bz.
	HeightAt(bx, bz int64) int
}

// IsSolid treats everything except air and water as solid. The generators
// build heightmaps with it so that sea floors, not sea surfaces, are recorded.
func IsSolid(block uint32) bool {
	return block != BlockAir && block != BlockWater
}

// New returns the generator registered under name. preset is only used by the
// flat generator. A nil log discards debug output.
func New(name string, seed int64, preset Preset, log *slog.Logger) (Generator, error) {
	switch name {
	case NameFlat:
		if err := preset.Validate(); err != nil {
			return nil, fmt.Errorf("flat generator: %w", err)
		}
		return NewFlatGenerator(preset, log), nil
	case NameNoise:
		return NewNoiseGenerator(seed, log), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
