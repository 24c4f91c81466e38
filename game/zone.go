package game

import (
	"math"
	"time"
)

// Zone 安全区，圆心固定在世界原点，半径只减不增
type Zone struct {
	Radius float64
}

func NewZone() Zone {
	return Zone{Radius: ZoneStartRadius}
}

// Step 收缩半径；玩家在圈外时按节流造成伤害
func (z *Zone) Step(now time.Time, dt float64, player Vec3, s Settings, th *Throttle) []DamageEvent {
	z.Radius = math.Max(ZoneMinRadius, z.Radius-ZoneShrinkRate*math.Max(0, dt))

	if z.Outside(player) && th.Allow(now) {
		return []DamageEvent{{Amount: s.ZoneDamage(), Source: SourceZone}}
	}
	return nil
}

// Outside 玩家到原点的水平距离超过当前半径
func (z *Zone) Outside(p Vec3) bool {
	return math.Hypot(p.X, p.Z) > z.Radius
}

// Closing HUD 警告阈值
func (z *Zone) Closing() bool {
	return z.Radius < ZoneWarningRadius
}
