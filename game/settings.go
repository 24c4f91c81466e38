package game

import (
	"errors"
	"fmt"
)

// ErrInvalidQuality 画质倍率不在可选列表中
var ErrInvalidQuality = errors.New("invalid quality")

// Quality 渲染分辨率倍率，仅透传给渲染端
type Quality float64

const (
	QualityLow    Quality = 1
	QualityMedium Quality = 1.5
	QualityHigh   Quality = 2
	QualityUltra  Quality = 3
)

// ParseQuality 校验倍率，只接受 1 / 1.5 / 2 / 3
func ParseQuality(v float64) (Quality, error) {
	switch q := Quality(v); q {
	case QualityLow, QualityMedium, QualityHigh, QualityUltra:
		return q, nil
	}
	return 0, fmt.Errorf("quality %v: %w", v, ErrInvalidQuality)
}

// Settings 开局时选定，本局内不可变
type Settings struct {
	Quality  Quality `json:"quality"`
	Hardcore bool    `json:"hardcore"`
}

// DefaultSettings 主菜单默认值
func DefaultSettings() Settings {
	return Settings{Quality: QualityLow}
}

// DamageMultiplier 硬核模式下所有伤害翻倍
func (s Settings) DamageMultiplier() float64 {
	if s.Hardcore {
		return HardcoreMultiplier
	}
	return 1
}

func (s Settings) ContactDamage() float64 { return ContactDamage * s.DamageMultiplier() }

func (s Settings) ZoneDamage() float64 { return ZoneDamage * s.DamageMultiplier() }
