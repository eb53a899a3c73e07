package chunk

// SolidFunc reports whether a block ID counts as solid for a column scan.
type SolidFunc func(block uint32) bool

// NonAir treats every block ID other than 0 as solid.
func NonAir(block uint32) bool {
	return block != 0
}

// TopBlock returns the highest y in column (x, z) whose block satisfies solid.
// ok is false when the column has no such block.
func (c *Chunk) TopBlock(x, z uint8, solid SolidFunc) (y uint8, ok bool) {
	base := int(ColumnBase(x, z))
	for i := base + SizeY - 1; i >= base; i-- {
		if solid(c.block[i]) {
			return uint8(i - base), true
		}
	}
	return 0, false
}

// RecomputeHeightmap rewrites every heightmap entry as one above the top solid
// block of its column, or 0 for a column with no solid block.
func (c *Chunk) RecomputeHeightmap(solid SolidFunc) {
	for i := 0; i < Columns; i++ {
		x, z := HeightmapCoordinates(uint8(i))
		var h uint8
		if top, ok := c.TopBlock(x, z, solid); ok {
			h = top + 1
		}
		c.heightmap[i] = h
	}
}

// FillColumn sets block for every y in [from, to) of column (x, z).
// to is clamped to SizeY; an empty range is a no-op.
func (c *Chunk) FillColumn(x, z uint8, from, to uint8, block uint32) {
	if to > SizeY {
		to = SizeY
	}
	if from >= to {
		return
	}
	base := ColumnBase(x, z)
	run := c.block[base+uint16(from) : base+uint16(to)]
	for i := range run {
		run[i] = block
	}
}
