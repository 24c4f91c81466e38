package game

import "math"

// DamageSource 伤害来源
type DamageSource int

const (
	SourceEnemy DamageSource = iota + 1
	SourceZone
)

func (s DamageSource) String() string {
	switch s {
	case SourceEnemy:
		return "enemy"
	case SourceZone:
		return "zone"
	}
	return "unknown"
}

// DamageEvent 瞬时伤害消息，由聚合器立即消费
type DamageEvent struct {
	Amount float64
	Source DamageSource
}

// DamageOutcome 一次结算的结果
type DamageOutcome struct {
	Event      DamageEvent
	Applied    bool // 已淘汰后为 false
	Absorbed   float64
	HealthLoss float64
	Eliminated bool // 本次结算导致淘汰
}

// Vitals 玩家生命与护甲，唯一可写入口是 Apply
type Vitals struct {
	Health     float64
	Armor      float64
	Eliminated bool
}

func NewVitals() Vitals {
	return Vitals{Health: StartHealth, Armor: StartArmor}
}

// Apply 护甲先吸收至多一半伤害，剩余扣血；血量归零即永久淘汰
func (v *Vitals) Apply(ev DamageEvent) DamageOutcome {
	out := DamageOutcome{Event: ev}
	if v.Eliminated {
		return out
	}
	amount := math.Max(0, ev.Amount)
	absorbed := math.Min(v.Armor, amount*ArmorAbsorbRatio)
	remaining := amount - absorbed
	before := v.Health

	v.Armor = clamp(v.Armor-absorbed, 0, MaxArmor)
	v.Health = clamp(v.Health-remaining, 0, MaxHealth)

	out.Applied = true
	out.Absorbed = absorbed
	out.HealthLoss = before - v.Health
	if v.Health <= 0 {
		v.Eliminated = true
		out.Eliminated = true
	}
	return out
}
