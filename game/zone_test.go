package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneStep_ShrinksAndFloors(t *testing.T) {
	z := NewZone()
	th := NewThrottle(DamageInterval)
	now := time.Unix(0, 0)

	z.Step(now, 0.1, Vec3{}, Settings{}, th)
	assert.InDelta(t, 99.85, z.Radius, 1e-9)

	for i := 0; i < 2000; i++ {
		z.Step(now, 0.1, Vec3{}, Settings{}, th)
	}
	assert.Equal(t, ZoneMinRadius, z.Radius)
}

func TestZoneStep_RadiusNeverIncreases(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	z := NewZone()
	th := NewThrottle(DamageInterval)
	now := time.Unix(0, 0)

	prev := z.Radius
	for i := 0; i < 5000; i++ {
		dt := rng.Float64()*0.2 - 0.05
		z.Step(now, dt, Vec3{}, Settings{}, th)
		require.LessOrEqual(t, z.Radius, prev)
		require.GreaterOrEqual(t, z.Radius, ZoneMinRadius)
		prev = z.Radius
	}
}

func TestZoneStep_DamageOutside(t *testing.T) {
	tests := []struct {
		name     string
		hardcore bool
		want     float64
	}{
		{"normal", false, 2},
		{"hardcore", true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewZone()
			th := NewThrottle(DamageInterval)
			evs := z.Step(time.Unix(0, 0), 0.016, Vec3{X: 150}, Settings{Hardcore: tt.hardcore}, th)
			require.Len(t, evs, 1)
			assert.Equal(t, tt.want, evs[0].Amount)
			assert.Equal(t, SourceZone, evs[0].Source)
		})
	}
}

func TestZoneStep_NoDamageInside(t *testing.T) {
	z := NewZone()
	th := NewThrottle(DamageInterval)
	evs := z.Step(time.Unix(0, 0), 0.016, Vec3{X: 30, Z: 30}, Settings{}, th)
	assert.Empty(t, evs)
}

func TestZoneStep_Throttled(t *testing.T) {
	z := NewZone()
	th := NewThrottle(DamageInterval)
	base := time.Unix(0, 0)

	hits := 0
	for off := time.Duration(0); off < 2*time.Second; off += 16 * time.Millisecond {
		hits += len(z.Step(base.Add(off), 0.016, Vec3{X: 200}, Settings{}, th))
	}
	assert.Equal(t, 4, hits)
}

func TestZoneClosing(t *testing.T) {
	assert.False(t, (&Zone{Radius: 20}).Closing())
	assert.True(t, (&Zone{Radius: 19.9}).Closing())
}
