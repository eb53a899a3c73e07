package chunk

import (
	"math/rand/v2"
	"testing"
)

func filledChunk(t *testing.T, seed uint64) *Chunk {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	c := New(int64(r.IntN(511)-255), int64(r.IntN(511)-255))
	for i := 0; i < Volume; i++ {
		c.SetBlock(uint16(i), r.Uint32())
		c.SetRotation(uint16(i), uint8(r.UintN(256)))
		c.SetLight(uint16(i), uint8(r.UintN(256)))
	}
	for i := 0; i < Columns; i++ {
		c.SetHeight(uint8(i), uint8(r.UintN(256)))
	}
	return c
}

func TestNewIsZeroed(t *testing.T) {
	c := New(1, 2)
	for i := 0; i < Volume; i++ {
		idx := uint16(i)
		if c.Block(idx) != 0 || c.Rotation(idx) != 0 || c.Light(idx) != 0 {
			t.Fatalf("voxel %d not zero: block=%d rotation=%d light=%d",
				idx, c.Block(idx), c.Rotation(idx), c.Light(idx))
		}
	}
	for i := 0; i < Columns; i++ {
		if h := c.Height(uint8(i)); h != 0 {
			t.Fatalf("height %d = %d, want 0", i, h)
		}
	}
}

func TestAddressingEquivalence(t *testing.T) {
	c := filledChunk(t, 42)

	for i := 0; i < Volume; i++ {
		idx := uint16(i)
		x, y, z := Coordinates(idx)
		p := IndexVec(idx)

		if b, bt, bv := c.Block(idx), c.BlockAt(x, y, z), c.BlockAtVec(p); b != bt || b != bv {
			t.Fatalf("block %d: index=%d tuple=%d vec=%d", idx, b, bt, bv)
		}
		if r, rt, rv := c.Rotation(idx), c.RotationAt(x, y, z), c.RotationAtVec(p); r != rt || r != rv {
			t.Fatalf("rotation %d: index=%d tuple=%d vec=%d", idx, r, rt, rv)
		}
		if l, lt, lv := c.Light(idx), c.LightAt(x, y, z), c.LightAtVec(p); l != lt || l != lv {
			t.Fatalf("light %d: index=%d tuple=%d vec=%d", idx, l, lt, lv)
		}
	}

	for i := 0; i < Columns; i++ {
		x, z := HeightmapCoordinates(uint8(i))
		if h, ht := c.Height(uint8(i)), c.HeightAt(x, z); h != ht {
			t.Fatalf("height %d: index=%d tuple=%d", i, h, ht)
		}
	}
}

func TestSettersVisibleEverywhere(t *testing.T) {
	c := New(0, 0)
	p := Vec3{X: 4, Y: 100, Z: 13}
	idx := VecIndex(p)

	c.SetBlockAtVec(p, 7)
	c.SetRotationAt(p.X, p.Y, p.Z, 3)
	c.SetLight(idx, 15)

	if got := c.Block(idx); got != 7 {
		t.Errorf("Block(%d) = %d, want 7", idx, got)
	}
	if got := c.BlockAt(p.X, p.Y, p.Z); got != 7 {
		t.Errorf("BlockAt%v = %d, want 7", p, got)
	}
	if got := c.RotationAtVec(p); got != 3 {
		t.Errorf("RotationAtVec(%v) = %d, want 3", p, got)
	}
	if got := c.Rotation(idx); got != 3 {
		t.Errorf("Rotation(%d) = %d, want 3", idx, got)
	}
	if got := c.LightAtVec(p); got != 15 {
		t.Errorf("LightAtVec(%v) = %d, want 15", p, got)
	}
	if got := c.LightAt(p.X, p.Y, p.Z); got != 15 {
		t.Errorf("LightAt%v = %d, want 15", p, got)
	}
}

func TestFieldsAreIndependent(t *testing.T) {
	c := New(0, 0)
	for i := 0; i < Volume; i++ {
		c.SetBlock(uint16(i), 0xFFFFFFFF)
	}
	c.SetBlockAt(15, 127, 15, 1)

	for i := 0; i < Volume; i++ {
		idx := uint16(i)
		if c.Rotation(idx) != 0 || c.Light(idx) != 0 {
			t.Fatalf("voxel %d: rotation=%d light=%d after block writes", idx, c.Rotation(idx), c.Light(idx))
		}
	}
	for i := 0; i < Columns; i++ {
		if c.Height(uint8(i)) != 0 {
			t.Fatalf("height %d = %d after block writes", i, c.Height(uint8(i)))
		}
	}

	c.SetLightAt(1, 2, 3, 9)
	if got := c.BlockAt(1, 2, 3); got != 0xFFFFFFFF {
		t.Errorf("BlockAt(1,2,3) = %d after SetLightAt, want 0xFFFFFFFF", got)
	}
	if got := c.RotationAt(1, 2, 3); got != 0 {
		t.Errorf("RotationAt(1,2,3) = %d after SetLightAt, want 0", got)
	}
}

func TestPositionImmutable(t *testing.T) {
	c := filledChunk(t, 7)
	x, z := c.Position()

	for i := 0; i < Volume; i += 97 {
		c.SetBlock(uint16(i), uint32(i))
	}
	for i := 0; i < Columns; i++ {
		c.SetHeight(uint8(i), 1)
	}
	if gx, gz := c.Position(); gx != x || gz != z {
		t.Errorf("Position() = (%d,%d) after writes, want (%d,%d)", gx, gz, x, z)
	}

	n := New(-9223372036854775808, 9223372036854775807)
	if gx, gz := n.Position(); gx != -9223372036854775808 || gz != 9223372036854775807 {
		t.Errorf("Position() = (%d,%d), want int64 extremes", gx, gz)
	}
}

func TestBlockScenario(t *testing.T) {
	c := New(5, -12)
	c.SetBlockAt(3, 64, 9, 42)

	const idx = 3*2048 + 9*128 + 64
	if got := Index(3, 64, 9); got != idx {
		t.Fatalf("Index(3,64,9) = %d, want %d", got, idx)
	}
	if got := c.Block(idx); got != 42 {
		t.Errorf("Block(%d) = %d, want 42", idx, got)
	}
	if got := c.BlockAt(3, 64, 9); got != 42 {
		t.Errorf("BlockAt(3,64,9) = %d, want 42", got)
	}
	if got := c.BlockAtVec(Vec3{X: 3, Y: 64, Z: 9}); got != 42 {
		t.Errorf("BlockAtVec(3,64,9) = %d, want 42", got)
	}
	if x, z := c.Position(); x != 5 || z != -12 {
		t.Errorf("Position() = (%d,%d), want (5,-12)", x, z)
	}
}

func TestHeightmapScenario(t *testing.T) {
	c := New(0, 0)
	c.SetHeightAt(0, 0, 128)
	c.SetHeightAt(15, 15, 7)

	if got := c.Height(0); got != 128 {
		t.Errorf("Height(0) = %d, want 128", got)
	}
	if got := c.Height(255); got != 7 {
		t.Errorf("Height(255) = %d, want 7", got)
	}
	if got := c.HeightAt(15, 15); got != 7 {
		t.Errorf("HeightAt(15,15) = %d, want 7", got)
	}
}

func TestIndexPastVolumePanics(t *testing.T) {
	c := New(0, 0)
	defer func() {
		if recover() == nil {
			t.Error("Block(Volume) did not panic")
		}
	}()
	_ = c.Block(Volume)
}

func TestCloneIsDeep(t *testing.T) {
	c := New(3, 4)
	c.SetBlockAt(1, 1, 1, 5)
	cp := c.Clone()
	cp.SetBlockAt(1, 1, 1, 6)
	cp.SetHeightAt(2, 2, 9)

	if got := c.BlockAt(1, 1, 1); got != 5 {
		t.Errorf("original BlockAt(1,1,1) = %d after clone write, want 5", got)
	}
	if got := c.HeightAt(2, 2); got != 0 {
		t.Errorf("original HeightAt(2,2) = %d after clone write, want 0", got)
	}
	if x, z := cp.Position(); x != 3 || z != 4 {
		t.Errorf("clone Position() = (%d,%d), want (3,4)", x, z)
	}
}

func BenchmarkColumnScan(b *testing.B) {
	c := New(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.RecomputeHeightmap(NonAir)
	}
}
