package chunk

import "github.com/go-gl/mathgl/mgl64"

// Origin returns the world-space corner of the chunk: (x*16, 0, z*16).
func (c *Chunk) Origin() mgl64.Vec3 {
	x, z := c.Position()
	return mgl64.Vec3{float64(x * SizeX), 0, float64(z * SizeZ)}
}

// WorldPosition converts a local voxel position to world space.
func (c *Chunk) WorldPosition(p Vec3) mgl64.Vec3 {
	return c.Origin().Add(p.Vec())
}
