package gen

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
)

func TestFlatGeneratorLayers(t *testing.T) {
	g := NewFlatGenerator(DefaultPreset(), nil)
	c := chunk.New(0, 0)
	g.Populate(c)

	// y=0: bedrock, y=1-2: stone, y=3: dirt, y=4: grass
	tests := []struct {
		y     uint8
		block uint32
		name  string
	}{
		{0, BlockBedrock, "bedrock"},
		{1, BlockStone, "stone"},
		{2, BlockStone, "stone"},
		{3, BlockDirt, "dirt"},
		{4, BlockGrass, "grass"},
		{5, BlockAir, "air"},
		{127, BlockAir, "air"},
	}

	for _, tt := range tests {
		got := c.BlockAt(7, tt.y, 3)
		if got != tt.block {
			t.Errorf("y=%d: got %d, want %d (%s)", tt.y, got, tt.block, tt.name)
		}
	}
}

func TestFlatGeneratorHeightmap(t *testing.T) {
	g := NewFlatGenerator(DefaultPreset(), nil)
	c := chunk.New(-3, 8)
	g.Populate(c)

	for i := 0; i < chunk.Columns; i++ {
		if h := c.Height(uint8(i)); h != 5 {
			t.Fatalf("Height(%d) = %d, want 5", i, h)
		}
	}
	if got := g.HeightAt(1000, -1000); got != 5 {
		t.Errorf("HeightAt = %d, want 5", got)
	}
}

func TestFlatGeneratorWaterSurface(t *testing.T) {
	p := Preset{
		Name: "lake",
		Layers: []Layer{
			{Block: BlockBedrock, Height: 1},
			{Block: BlockSand, Height: 10},
			{Block: BlockWater, Height: 5},
		},
	}
	g, err := New(NameFlat, 0, p, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := chunk.New(0, 0)
	g.Populate(c)

	if got := c.BlockAt(0, 15, 0); got != BlockWater {
		t.Errorf("BlockAt(0,15,0) = %d, want water", got)
	}
	// Water is not solid, so the heightmap records the sand floor.
	if got := c.HeightAt(0, 0); got != 11 {
		t.Errorf("HeightAt(0,0) = %d, want 11", got)
	}
	if got := g.HeightAt(0, 0); got != 11 {
		t.Errorf("generator HeightAt = %d, want 11", got)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New("void", 0, DefaultPreset(), nil); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("New(void) err = %v, want ErrUnknownGenerator", err)
	}
	if _, err := New(NameFlat, 0, Preset{}, nil); !errors.Is(err, ErrEmptyPreset) {
		t.Errorf("New(flat, empty) err = %v, want ErrEmptyPreset", err)
	}
}
