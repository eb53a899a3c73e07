package chunk

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a local voxel position inside a chunk.
type Vec3 struct {
	X, Y, Z uint8
}

// Vec returns p as a float vector, for consumers working in mesh or light space.
func (p Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

func (p Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
