package chunk

const (
	// Chunk dimensions
	SizeX = 16
	SizeY = 128
	SizeZ = 16

	// Strides of the flat voxel layout. Y has stride 1.
	StrideX = SizeZ * SizeY // 2048
	StrideZ = SizeY         // 128

	Volume  = SizeX * SizeY * SizeZ // 32768 voxels
	Columns = SizeX * SizeZ         // 256 heightmap entries
)

// Chunk is a dense 16x128x16 voxel region with a per-column heightmap.
//
// block, rotation and light are index-aligned: the same flat index addresses
// the same voxel in all three. All arrays are zero after New.
//
// A Chunk is not safe for concurrent use. Distinct chunks share nothing.
type Chunk struct {
	position  [2]int64
	block     [Volume]uint32
	rotation  [Volume]uint8
	light     [Volume]uint8
	heightmap [Columns]uint8
}

// New creates a zeroed chunk at world chunk coordinates (x, z).
func New(x, z int64) *Chunk {
	return &Chunk{position: [2]int64{x, z}}
}

// Position returns the chunk's world chunk coordinates.
func (c *Chunk) Position() (x, z int64) {
	return c.position[0], c.position[1]
}

// Clone returns a deep copy of c.
func (c *Chunk) Clone() *Chunk {
	cp := *c
	return &cp
}

// Block returns the block ID at flat index i. It panics if i >= Volume.
func (c *Chunk) Block(i uint16) uint32 {
	return c.block[i]
}

// BlockAt returns the block ID at local x, y, z.
func (c *Chunk) BlockAt(x, y, z uint8) uint32 {
	return c.Block(Index(x, y, z))
}

// BlockAtVec returns the block ID at p.
func (c *Chunk) BlockAtVec(p Vec3) uint32 {
	return c.Block(VecIndex(p))
}

// SetBlock stores a block ID at flat index i. It panics if i >= Volume.
func (c *Chunk) SetBlock(i uint16, block uint32) {
	c.block[i] = block
}

// SetBlockAt stores a block ID at local x, y, z.
func (c *Chunk) SetBlockAt(x, y, z uint8, block uint32) {
	c.SetBlock(Index(x, y, z), block)
}

// SetBlockAtVec stores a block ID at p.
func (c *Chunk) SetBlockAtVec(p Vec3, block uint32) {
	c.SetBlock(VecIndex(p), block)
}

// Rotation returns the rotation at flat index i. It panics if i >= Volume.
func (c *Chunk) Rotation(i uint16) uint8 {
	return c.rotation[i]
}

func (c *Chunk) RotationAt(x, y, z uint8) uint8 {
	return c.Rotation(Index(x, y, z))
}

func (c *Chunk) RotationAtVec(p Vec3) uint8 {
	return c.Rotation(VecIndex(p))
}

// SetRotation stores a rotation at flat index i. It panics if i >= Volume.
func (c *Chunk) SetRotation(i uint16, rotation uint8) {
	c.rotation[i] = rotation
}

func (c *Chunk) SetRotationAt(x, y, z uint8, rotation uint8) {
	c.SetRotation(Index(x, y, z), rotation)
}

func (c *Chunk) SetRotationAtVec(p Vec3, rotation uint8) {
	c.SetRotation(VecIndex(p), rotation)
}

// Light returns the light level at flat index i. It panics if i >= Volume.
func (c *Chunk) Light(i uint16) uint8 {
	return c.light[i]
}

func (c *Chunk) LightAt(x, y, z uint8) uint8 {
	return c.Light(Index(x, y, z))
}

func (c *Chunk) LightAtVec(p Vec3) uint8 {
	return c.Light(VecIndex(p))
}

// SetLight stores a light level at flat index i. It panics if i >= Volume.
func (c *Chunk) SetLight(i uint16, light uint8) {
	c.light[i] = light
}

func (c *Chunk) SetLightAt(x, y, z uint8, light uint8) {
	c.SetLight(Index(x, y, z), light)
}

func (c *Chunk) SetLightAtVec(p Vec3, light uint8) {
	c.SetLight(VecIndex(p), light)
}

// Height returns the heightmap value at heightmap index i.
// Every uint8 is a valid heightmap index.
func (c *Chunk) Height(i uint8) uint8 {
	return c.heightmap[i]
}

// HeightAt returns the heightmap value of column (x, z).
func (c *Chunk) HeightAt(x, z uint8) uint8 {
	return c.Height(HeightmapIndex(x, z))
}

// SetHeight stores a heightmap value at heightmap index i.
func (c *Chunk) SetHeight(i uint8, height uint8) {
	c.heightmap[i] = height
}

// SetHeightAt stores the heightmap value of column (x, z).
func (c *Chunk) SetHeightAt(x, z uint8, height uint8) {
	c.SetHeight(HeightmapIndex(x, z), height)
}
