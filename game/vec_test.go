package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Normalize(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	n := Vec3{X: 3, Z: 4}.Normalize()
	assert.InDelta(t, 1, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 5, Vec3{X: 3, Z: 4}.DistanceTo(Vec3{}), 1e-12)
}

func TestVec3_RotateY(t *testing.T) {
	v := Vec3{Z: -1}.RotateY(math.Pi / 2)
	assert.InDelta(t, -1, v.X, 1e-12)
	assert.InDelta(t, 0, v.Z, 1e-12)

	w := Vec3{X: 1, Y: 2}.RotateY(math.Pi)
	assert.InDelta(t, -1, w.X, 1e-12)
	assert.Equal(t, 2.0, w.Y)
}

func TestYawTowards(t *testing.T) {
	from := Vec3{}
	to := Vec3{X: 5}
	yaw := YawTowards(from, to)
	assert.InDelta(t, math.Pi/2, yaw, 1e-12)

	// 局部 +Z 旋转后指向目标
	dir := Vec3{Z: 1}.RotateY(yaw)
	assert.InDelta(t, 1, dir.X, 1e-12)
	assert.InDelta(t, 0, dir.Z, 1e-12)
}

func TestScatterLoot(t *testing.T) {
	a := ScatterLoot(LootCount, rand.New(rand.NewSource(3)))
	b := ScatterLoot(LootCount, rand.New(rand.NewSource(3)))
	assert.Len(t, a, LootCount)
	assert.Equal(t, a, b)
	for _, c := range a {
		assert.Equal(t, LootHeight, c.Position.Y)
		assert.LessOrEqual(t, math.Abs(c.Position.X), SpawnSpread/2)
		assert.LessOrEqual(t, math.Abs(c.Position.Z), SpawnSpread/2)
	}
}
