package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// EnemyState 行为状态，只能 idle → chasing，不会回退
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyChasing
)

func (s EnemyState) String() string {
	if s == EnemyChasing {
		return "chasing"
	}
	return "idle"
}

// Enemy AI 敌人。Health 由命中判定直接扣减，下一帧由 Roster.Step 结算死亡
type Enemy struct {
	ID       string
	Position Vec3
	Yaw      float64
	Health   float64
	State    EnemyState
	Alive    bool
}

// Targetable 仍可被射线选中
func (e *Enemy) Targetable() bool {
	return e.Alive && e.Health > 0
}

// Roster 固定规模的敌人名单，不会重生
type Roster struct {
	Enemies []*Enemy
	alive   int
}

// NewRoster 在以原点为中心、边长 SpawnSpread 的正方形内随机撒点
func NewRoster(n int, rng *rand.Rand) *Roster {
	r := &Roster{Enemies: make([]*Enemy, 0, n), alive: n}
	for i := 0; i < n; i++ {
		r.Enemies = append(r.Enemies, &Enemy{
			ID: fmt.Sprintf("e%d", i+1),
			Position: Vec3{
				X: (rng.Float64() - 0.5) * SpawnSpread,
				Y: EnemyBaseHeight,
				Z: (rng.Float64() - 0.5) * SpawnSpread,
			},
			Health: EnemyStartHealth,
			State:  EnemyIdle,
			Alive:  true,
		})
	}
	return r
}

// Alive 当前存活数（只在有敌人死亡的帧变化）
func (r *Roster) Alive() int { return r.alive }

func (r *Roster) Get(id string) *Enemy {
	for _, e := range r.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RosterStep 一帧敌人模拟的产出
type RosterStep struct {
	Damage       []DamageEvent
	Killed       []string
	AliveChanged bool
	Alive        int
}

// Step 推进一帧：结算死亡 → 仇恨 → 追击 → 接触伤害 → 浮动动画。
// elapsed 为开局以来的时间，仅用于浮动动画。
func (r *Roster) Step(now time.Time, elapsed time.Duration, dt float64, player Vec3, s Settings, th *Throttle) RosterStep {
	var out RosterStep
	alive := 0
	ms := float64(elapsed) / float64(time.Millisecond)

	for _, e := range r.Enemies {
		if !e.Alive {
			continue
		}
		if e.Health <= 0 {
			e.Health = 0
			e.Alive = false
			out.Killed = append(out.Killed, e.ID)
			continue
		}
		alive++

		dist := e.Position.DistanceTo(player)
		if dist < AggroRadius {
			e.State = EnemyChasing
		}

		if e.State == EnemyChasing {
			dir := player.Sub(e.Position).Normalize()
			e.Position = e.Position.Add(dir.Scale(ChaseSpeed * dt))
			e.Yaw = YawTowards(e.Position, player)
		}

		// 节流器全体共用：多个敌人同时贴身也只计一次
		if dist < ContactRadius && th.Allow(now) {
			out.Damage = append(out.Damage, DamageEvent{Amount: s.ContactDamage(), Source: SourceEnemy})
		}

		e.Position.Y = EnemyBaseHeight + math.Sin(ms*BobFrequency+e.Position.X)*BobAmplitude
	}

	if len(out.Killed) > 0 {
		r.alive = alive
		out.AliveChanged = true
	}
	out.Alive = r.alive
	return out
}
