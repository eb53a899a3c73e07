package gen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
)

var (
	ErrEmptyPreset   = errors.New("preset has no layers")
	ErrPresetTooTall = errors.New("preset layers exceed chunk height")
	ErrEmptyLayer    = errors.New("layer has zero height")
)

// Layer is a horizontal slab of one block type.
type Layer struct {
	Block  uint32 `yaml:"block"`
	Height uint8  `yaml:"height"`
}

// Preset lists the layers of a flat world from the bottom up.
type Preset struct {
	Name   string  `yaml:"name"`
	Layers []Layer `yaml:"layers"`
}

// DefaultPreset returns the classic superflat layout:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
func DefaultPreset() Preset {
	return Preset{
		Name: "classic",
		Layers: []Layer{
			{Block: BlockBedrock, Height: 1},
			{Block: BlockStone, Height: 2},
			{Block: BlockDirt, Height: 1},
			{Block: BlockGrass, Height: 1},
		},
	}
}

// Validate checks that the preset fits in a chunk.
func (p Preset) Validate() error {
	if len(p.Layers) == 0 {
		return ErrEmptyPreset
	}
	total := 0
	for i, l := range p.Layers {
		if l.Height == 0 {
			return fmt.Errorf("layer %d: %w", i, ErrEmptyLayer)
		}
		total += int(l.Height)
	}
	if total > chunk.SizeY {
		return fmt.Errorf("%d > %d: %w", total, chunk.SizeY, ErrPresetTooTall)
	}
	return nil
}

// SurfaceHeight returns the heightmap value every column of the preset gets:
// one above the highest solid layer, or 0 if no layer is solid.
func (p Preset) SurfaceHeight() int {
	h, top := 0, 0
	for _, l := range p.Layers {
		h += int(l.Height)
		if IsSolid(l.Block) {
			top = h
		}
	}
	return top
}

// ParsePreset decodes and validates a YAML preset.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("invalid preset %q: %w", p.Name, err)
	}
	return p, nil
}

// LoadPreset reads a YAML preset from path.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(data)
}
