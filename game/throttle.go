package game

import "time"

// Throttle 伤害节流：同一个实例内，两次放行之间至少间隔 Interval。
// 所有敌人共用一个实例，毒圈单独一个实例。
type Throttle struct {
	Interval time.Duration

	last  time.Time
	fired bool
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{Interval: interval}
}

// Allow 首次调用必定放行
func (t *Throttle) Allow(now time.Time) bool {
	if t.fired && now.Sub(t.last) < t.Interval {
		return false
	}
	t.fired = true
	t.last = now
	return true
}
