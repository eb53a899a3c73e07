package chunk

// Flat layout: index = x*StrideX + z*StrideZ + y.
//
// Y is the innermost axis, so the 128 voxels of one (x,z) column occupy a
// contiguous run. Heightmap scans, downward fills and bottom-to-top meshing
// walk memory linearly and only jump when moving to the next column.
//
// None of the conversions below validate their input. Coordinates outside
// x,z in [0,16) and y in [0,128) still produce a number: the arithmetic wraps
// in uint16 (uint8 for the heightmap) and the result may alias another voxel.
// Use CheckedIndex / CheckedHeightmapIndex when the input is untrusted.

// Index converts local x, y, z coordinates into a flat voxel index.
func Index(x, y, z uint8) uint16 {
	return uint16(x)*StrideX + uint16(z)*StrideZ + uint16(y)
}

// Coordinates converts a flat voxel index back into local x, y, z coordinates.
func Coordinates(i uint16) (x, y, z uint8) {
	x = uint8(i / StrideX)
	i %= StrideX
	z = uint8(i / StrideZ)
	y = uint8(i % StrideZ)
	return x, y, z
}

// VecIndex is Index for a point.
func VecIndex(p Vec3) uint16 {
	return Index(p.X, p.Y, p.Z)
}

// IndexVec is Coordinates returning a point.
func IndexVec(i uint16) Vec3 {
	x, y, z := Coordinates(i)
	return Vec3{X: x, Y: y, Z: z}
}

// HeightmapIndex converts a column's x, z coordinates into a heightmap index.
func HeightmapIndex(x, z uint8) uint8 {
	return x*SizeZ + z
}

// HeightmapCoordinates converts a heightmap index back into x, z.
func HeightmapCoordinates(i uint8) (x, z uint8) {
	return i / SizeZ, i % SizeZ
}

// ColumnBase returns the flat index of voxel (x, 0, z). The column occupies
// [ColumnBase(x, z), ColumnBase(x, z)+SizeY).
func ColumnBase(x, z uint8) uint16 {
	return Index(x, 0, z)
}
