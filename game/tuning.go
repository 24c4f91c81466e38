package game

import (
	"math"
	"time"
)

const (
	MaxFrameDelta   = 0.1   // 秒；后台标签页恢复后不追帧
	WalkSpeed       = 6.0   // 单位/秒
	SprintSpeed     = 12.0  // 单位/秒
	StaminaMax      = 100.0
	StaminaDrain    = 30.0  // 冲刺时每秒消耗
	StaminaRegen    = 15.0  // 非冲刺时每秒恢复
	LookSensitivity = 0.002 // 弧度/像素
	EyeHeight       = 1.8

	StartHealth      = 100.0
	StartArmor       = 50.0
	MaxHealth        = 100.0
	MaxArmor         = 100.0
	MaxAmmo          = 30
	ArmorAbsorbRatio = 0.5 // 护甲最多吸收单次伤害的一半
	ShotDamage       = 50.0

	EnemyCount       = 15
	EnemyStartHealth = 100.0
	AggroRadius      = 100.0
	ChaseSpeed       = 4.0
	ContactRadius    = 3.0
	EnemyHalfWidth   = 0.5 // 命中盒 1×2×1
	EnemyHalfHeight  = 1.0
	EnemyBaseHeight  = 1.0
	BobAmplitude     = 0.1
	BobFrequency     = 0.003 // 每毫秒

	ContactDamage      = 5.0
	ZoneDamage         = 2.0
	HardcoreMultiplier = 2.0
	DamageInterval     = 500 * time.Millisecond

	ZoneStartRadius   = 100.0
	ZoneMinRadius     = 5.0
	ZoneShrinkRate    = 1.5 // 单位/秒
	ZoneWarningRadius = 20.0

	SpawnSpread = 380.0 // 出生区域边长，以原点为中心
	LootCount   = 20
	LootHeight  = 0.5
)

// PitchLimit 俯仰角上下限（约 ±72°）
var PitchLimit = math.Pi / 2.5
