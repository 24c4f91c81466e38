package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFire_NoOpGuards(t *testing.T) {
	tests := []struct {
		name     string
		ammo     int
		captured bool
		ended    bool
	}{
		{"no ammo", 0, true, false},
		{"no capture", 10, false, false},
		{"round ended", 10, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.Ammo = tt.ammo
			r := newTestRoster(Vec3{Y: 1, Z: -10})

			res := Fire(&p, tt.captured, tt.ended, r)

			assert.Equal(t, ShotResult{}, res)
			assert.Equal(t, tt.ammo, p.Ammo)
			assert.Equal(t, EnemyStartHealth, r.Enemies[0].Health)
		})
	}
}

func TestFire_HitsNearestOnly(t *testing.T) {
	p := NewPlayer()
	r := newTestRoster(Vec3{Y: 1, Z: -20}, Vec3{Y: 1, Z: -10})

	res := Fire(&p, true, false, r)

	require.True(t, res.Fired)
	require.True(t, res.Hit)
	assert.Equal(t, r.Enemies[1].ID, res.EnemyID)
	assert.InDelta(t, 9.5, res.Distance, 1e-9)
	assert.Equal(t, MaxAmmo-1, p.Ammo)
	assert.Equal(t, 50.0, r.Enemies[1].Health)
	assert.Equal(t, 100.0, r.Enemies[0].Health)
}

func TestFire_SkipsUntargetable(t *testing.T) {
	p := NewPlayer()
	r := newTestRoster(Vec3{Y: 1, Z: -20}, Vec3{Y: 1, Z: -10})
	r.Enemies[1].Health = 0

	res := Fire(&p, true, false, r)

	require.True(t, res.Hit)
	assert.Equal(t, r.Enemies[0].ID, res.EnemyID)
	assert.Equal(t, 0.0, r.Enemies[1].Health)
}

func TestFire_TwoHitsDropEnemyThenPassThrough(t *testing.T) {
	p := NewPlayer()
	r := newTestRoster(Vec3{Y: 1, Z: -20}, Vec3{Y: 1, Z: -10})

	Fire(&p, true, false, r)
	Fire(&p, true, false, r)
	assert.Equal(t, 0.0, r.Enemies[1].Health)

	res := Fire(&p, true, false, r)
	assert.Equal(t, r.Enemies[0].ID, res.EnemyID)
	assert.Equal(t, 0.0, r.Enemies[1].Health)
	assert.Equal(t, MaxAmmo-3, p.Ammo)
}

func TestFire_Miss(t *testing.T) {
	p := NewPlayer()
	r := newTestRoster(Vec3{X: 5, Y: 1, Z: -10})

	res := Fire(&p, true, false, r)

	assert.True(t, res.Fired)
	assert.False(t, res.Hit)
	assert.Equal(t, MaxAmmo-1, p.Ammo)
	assert.Equal(t, EnemyStartHealth, r.Enemies[0].Health)
}

func TestFire_FollowsView(t *testing.T) {
	p := NewPlayer()
	p.Yaw = math.Pi / 2
	r := newTestRoster(Vec3{X: -10, Y: 1})

	res := Fire(&p, true, false, r)
	assert.True(t, res.Hit)

	p.Pitch = 1.2
	r.Enemies[0].Health = EnemyStartHealth
	res = Fire(&p, true, false, r)
	assert.False(t, res.Hit)
}

func TestFire_AmmoNeverNegative(t *testing.T) {
	p := NewPlayer()
	r := newTestRoster(Vec3{X: 50, Y: 1, Z: 50})
	for i := 0; i < MaxAmmo+10; i++ {
		Fire(&p, true, false, r)
		require.GreaterOrEqual(t, p.Ammo, 0)
	}
	assert.Equal(t, 0, p.Ammo)
}

func TestRayHitsEnemy_RotatedBox(t *testing.T) {
	e := &Enemy{Position: Vec3{Y: 1, Z: -10}, Yaw: math.Pi / 4}
	// 旋转 45° 后水平截面对角线约为 0.707
	_, ok := rayHitsEnemy(Vec3{X: 0.65, Y: 1}, Vec3{Z: -1}, e)
	assert.True(t, ok)
	_, ok = rayHitsEnemy(Vec3{X: 0.75, Y: 1}, Vec3{Z: -1}, e)
	assert.False(t, ok)
}
