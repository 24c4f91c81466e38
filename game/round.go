package game

import (
	"math/rand"
	"time"
)

// Phase 回合状态：Active → Eliminated，终态不可逆
type Phase int

const (
	PhaseActive Phase = iota
	PhaseEliminated
)

func (p Phase) String() string {
	if p == PhaseEliminated {
		return "eliminated"
	}
	return "active"
}

// HUD 只读快照，字段与前端 HUD 一一对应
type HUD struct {
	Health           float64 `json:"health"`
	Armor            float64 `json:"armor"`
	Ammo             int     `json:"ammo"`
	MaxAmmo          int     `json:"maxAmmo"`
	EnemiesRemaining int     `json:"enemiesRemaining"`
	FPS              int     `json:"fps"`
	Stamina          float64 `json:"stamina"`
	ZoneRadius       float64 `json:"zoneRadius"`
	GameOver         bool    `json:"gameOver"`
	Hardcore         bool    `json:"hardcore"`
	ZoneClosing      bool    `json:"zoneClosing"`
}

// EnemyView 渲染端绘制用
type EnemyView struct {
	ID       string  `json:"id"`
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
	State    string  `json:"state"`
	Alive    bool    `json:"alive"`
}

// World 每帧推给渲染端的位置快照
type World struct {
	Player     Vec3        `json:"player"`
	Eye        Vec3        `json:"eye"`
	Yaw        float64     `json:"yaw"`
	Pitch      float64     `json:"pitch"`
	ZoneRadius float64     `json:"zoneRadius"`
	Enemies    []EnemyView `json:"enemies"`
}

// Frame 一次 Tick 的产出，由服务端负责日志与下发
type Frame struct {
	Seq           int64
	HUD           HUD
	Shots         []ShotResult
	Kills         []string
	RosterChanged bool
	Damage        []DamageOutcome
	EliminatedNow bool
}

// Round 一局游戏的全部状态，由单一控制器在同一线程推进
type Round struct {
	ID       string
	Settings Settings

	Player   Player
	Vitals   Vitals
	Roster   *Roster
	Zone     Zone
	Loot     []LootCrate
	Controls Controls

	enemyThrottle *Throttle
	zoneThrottle  *Throttle

	started   time.Time
	lastFrame time.Time
	seq       int64

	fps              int
	enemiesRemaining int
}

// NewRound 以固定默认值开局
func NewRound(id string, s Settings, rng *rand.Rand, now time.Time) *Round {
	r := &Round{
		ID:            id,
		Settings:      s,
		Player:        NewPlayer(),
		Vitals:        NewVitals(),
		Roster:        NewRoster(EnemyCount, rng),
		Zone:          NewZone(),
		enemyThrottle: NewThrottle(DamageInterval),
		zoneThrottle:  NewThrottle(DamageInterval),
		started:       now,
		lastFrame:     now,
	}
	r.Loot = ScatterLoot(LootCount, rng)
	r.enemiesRemaining = r.Roster.Alive()
	return r
}

func (r *Round) Phase() Phase {
	if r.Vitals.Eliminated {
		return PhaseEliminated
	}
	return PhaseActive
}

func (r *Round) Ended() bool { return r.Vitals.Eliminated }

// Tick 推进一帧：消费输入 → 移动 → 敌人 → 毒圈 → 伤害结算 → HUD
func (r *Round) Tick(now time.Time, events []Event) Frame {
	dt := now.Sub(r.lastFrame).Seconds()
	dt = clamp(dt, 0, MaxFrameDelta)
	r.lastFrame = now
	r.seq++
	f := Frame{Seq: r.seq}

	for _, ev := range events {
		if r.Controls.Apply(ev, r.Ended()) {
			if shot := Fire(&r.Player, r.Controls.Captured, r.Ended(), r.Roster); shot.Fired {
				f.Shots = append(f.Shots, shot)
			}
		}
	}

	if r.Ended() {
		f.HUD = r.HUD()
		return f
	}

	tel := StepLocomotion(&r.Player, &r.Controls, dt)
	r.fps = tel.FPS

	pos := r.Player.Position
	rs := r.Roster.Step(now, now.Sub(r.started), dt, pos, r.Settings, r.enemyThrottle)
	f.Kills = rs.Killed
	if rs.AliveChanged {
		r.enemiesRemaining = rs.Alive
		f.RosterChanged = true
	}

	damage := rs.Damage
	damage = append(damage, r.Zone.Step(now, dt, pos, r.Settings, r.zoneThrottle)...)

	for _, ev := range damage {
		out := r.Vitals.Apply(ev)
		f.Damage = append(f.Damage, out)
		if out.Eliminated {
			f.EliminatedNow = true
		}
	}

	f.HUD = r.HUD()
	return f
}

// HUD 当前快照
func (r *Round) HUD() HUD {
	return HUD{
		Health:           r.Vitals.Health,
		Armor:            r.Vitals.Armor,
		Ammo:             r.Player.Ammo,
		MaxAmmo:          MaxAmmo,
		EnemiesRemaining: r.enemiesRemaining,
		FPS:              r.fps,
		Stamina:          r.Player.Stamina,
		ZoneRadius:       r.Zone.Radius,
		GameOver:         r.Vitals.Eliminated,
		Hardcore:         r.Settings.Hardcore,
		ZoneClosing:      r.Zone.Closing(),
	}
}

// World 渲染端只读的位置数据
func (r *Round) World() World {
	w := World{
		Player:     r.Player.Position,
		Eye:        r.Player.Eye(),
		Yaw:        r.Player.Yaw,
		Pitch:      r.Player.Pitch,
		ZoneRadius: r.Zone.Radius,
		Enemies:    make([]EnemyView, 0, len(r.Roster.Enemies)),
	}
	for _, e := range r.Roster.Enemies {
		w.Enemies = append(w.Enemies, EnemyView{
			ID:       e.ID,
			Position: e.Position,
			Yaw:      e.Yaw,
			State:    e.State.String(),
			Alive:    e.Alive,
		})
	}
	return w
}
