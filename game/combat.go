package game

import "math"

// ShotResult 一次开火的结果
type ShotResult struct {
	Fired    bool
	Hit      bool
	EnemyID  string
	Distance float64
}

// Fire 命中判定：一次射线，只伤最近的一个存活敌人。
// 已淘汰、没子弹或未持有指针独占时静默忽略。
func Fire(p *Player, captured, ended bool, roster *Roster) ShotResult {
	if ended || p.Ammo <= 0 || !captured {
		return ShotResult{}
	}
	p.Ammo--
	res := ShotResult{Fired: true}

	origin := p.Eye()
	dir := Forward(p.Yaw, p.Pitch)

	var target *Enemy
	best := math.Inf(1)
	for _, e := range roster.Enemies {
		if !e.Targetable() {
			continue
		}
		if t, ok := rayHitsEnemy(origin, dir, e); ok && t < best {
			best = t
			target = e
		}
	}
	if target == nil {
		return res
	}

	target.Health = math.Max(0, target.Health-ShotDamage)
	res.Hit = true
	res.EnemyID = target.ID
	res.Distance = best
	return res
}

// rayHitsEnemy 射线与敌人朝向包围盒求交（slab 法），返回沿射线的距离
func rayHitsEnemy(origin, dir Vec3, e *Enemy) (float64, bool) {
	lo := origin.Sub(e.Position).RotateY(-e.Yaw)
	ld := dir.RotateY(-e.Yaw)
	half := [3]float64{EnemyHalfWidth, EnemyHalfHeight, EnemyHalfWidth}
	o := [3]float64{lo.X, lo.Y, lo.Z}
	d := [3]float64{ld.X, ld.Y, ld.Z}

	tmin, tmax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < -half[i] || o[i] > half[i] {
				return 0, false
			}
			continue
		}
		t1 := (-half[i] - o[i]) / d[i]
		t2 := (half[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
