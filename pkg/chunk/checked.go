package chunk

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain is returned by the checked accessors for coordinates outside
// x,z in [0,16) and y in [0,128).
var ErrOutOfDomain = errors.New("coordinates out of chunk domain")

// InDomain reports whether x, y, z address a voxel without aliasing.
func InDomain(x, y, z uint8) bool {
	return x < SizeX && y < SizeY && z < SizeZ
}

// InHeightmapDomain reports whether x, z address a column without aliasing.
func InHeightmapDomain(x, z uint8) bool {
	return x < SizeX && z < SizeZ
}

// CheckedIndex is Index with domain validation.
func CheckedIndex(x, y, z uint8) (uint16, error) {
	if !InDomain(x, y, z) {
		return 0, fmt.Errorf("voxel (%d,%d,%d): %w", x, y, z, ErrOutOfDomain)
	}
	return Index(x, y, z), nil
}

// CheckedHeightmapIndex is HeightmapIndex with domain validation.
func CheckedHeightmapIndex(x, z uint8) (uint8, error) {
	if !InHeightmapDomain(x, z) {
		return 0, fmt.Errorf("column (%d,%d): %w", x, z, ErrOutOfDomain)
	}
	return HeightmapIndex(x, z), nil
}

// Checked is a validating view of a chunk. Accessors reject out-of-domain
// coordinates with ErrOutOfDomain instead of aliasing another voxel.
type Checked struct {
	c *Chunk
}

// Checked returns a validating view of c. The view shares c's storage.
func (c *Chunk) Checked() Checked {
	return Checked{c: c}
}

func (v Checked) Block(x, y, z uint8) (uint32, error) {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return 0, err
	}
	return v.c.Block(i), nil
}

func (v Checked) SetBlock(x, y, z uint8, block uint32) error {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return err
	}
	v.c.SetBlock(i, block)
	return nil
}

func (v Checked) Rotation(x, y, z uint8) (uint8, error) {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return 0, err
	}
	return v.c.Rotation(i), nil
}

func (v Checked) SetRotation(x, y, z uint8, rotation uint8) error {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return err
	}
	v.c.SetRotation(i, rotation)
	return nil
}

func (v Checked) Light(x, y, z uint8) (uint8, error) {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return 0, err
	}
	return v.c.Light(i), nil
}

func (v Checked) SetLight(x, y, z uint8, light uint8) error {
	i, err := CheckedIndex(x, y, z)
	if err != nil {
		return err
	}
	v.c.SetLight(i, light)
	return nil
}

func (v Checked) Height(x, z uint8) (uint8, error) {
	i, err := CheckedHeightmapIndex(x, z)
	if err != nil {
		return 0, err
	}
	return v.c.Height(i), nil
}

func (v Checked) SetHeight(x, z uint8, height uint8) error {
	i, err := CheckedHeightmapIndex(x, z)
	if err != nil {
		return err
	}
	v.c.SetHeight(i, height)
	return nil
}
