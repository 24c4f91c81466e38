package game

import "math"

// Player 玩家实体；生命与护甲不在这里，由 Vitals 统一管理
type Player struct {
	Position Vec3
	Yaw      float64
	Pitch    float64
	Stamina  float64
	Ammo     int
}

func NewPlayer() Player {
	return Player{Stamina: StaminaMax, Ammo: MaxAmmo}
}

// Eye 视点（射线起点）
func (p *Player) Eye() Vec3 {
	return Vec3{X: p.Position.X, Y: EyeHeight, Z: p.Position.Z}
}

// Telemetry 每帧转发给 HUD 的移动数据
type Telemetry struct {
	FPS       int
	Stamina   float64
	Sprinting bool
}

// StepLocomotion 根据按键推进位置与体力，根据指针位移更新视角
func StepLocomotion(p *Player, c *Controls, dt float64) Telemetry {
	fps := 0
	if dt > 0 {
		fps = int(math.Round(1 / dt))
	}

	sprinting := c.Held(KeySprint) && p.Stamina > 0
	speed := WalkSpeed
	if sprinting {
		speed = SprintSpeed
		p.Stamina = clamp(p.Stamina-StaminaDrain*dt, 0, StaminaMax)
	} else {
		p.Stamina = clamp(p.Stamina+StaminaRegen*dt, 0, StaminaMax)
	}

	if dir := c.axis(); dir.LenSq() > 0 {
		move := dir.Normalize().RotateY(p.Yaw).Scale(speed * dt)
		p.Position = p.Position.Add(move)
	}
	p.Position.Y = 0

	dx, dy := c.TakeLook()
	p.Yaw -= dx * LookSensitivity
	p.Pitch = clamp(p.Pitch-dy*LookSensitivity, -PitchLimit, PitchLimit)

	return Telemetry{FPS: fps, Stamina: p.Stamina, Sprinting: sprinting}
}
