package server

import (
	"sync/atomic"
)

// ArenaMetrics 记录 Arena 运行期的关键指标（用于监控与调试）
type ArenaMetrics struct {
	TickCount         int64 // 统计的 Tick 次数
	InputsAccepted    int64 // 被接受的输入数
	ChanFullDiscarded int64 // 因通道满被丢弃的输入数
	RoundsStarted     int64
	ShotsFired        int64
	Hits              int64
	Kills             int64
	DamageApplied     int64 // 实际结算的伤害事件
	TotalTickNs       int64 // Tick 累计耗时（纳秒）
}

func (m *ArenaMetrics) IncAccepted()          { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *ArenaMetrics) IncChanFullDiscarded() { atomic.AddInt64(&m.ChanFullDiscarded, 1) }
func (m *ArenaMetrics) IncRoundsStarted()     { atomic.AddInt64(&m.RoundsStarted, 1) }
func (m *ArenaMetrics) AddShot(hit bool) {
	atomic.AddInt64(&m.ShotsFired, 1)
	if hit {
		atomic.AddInt64(&m.Hits, 1)
	}
}
func (m *ArenaMetrics) AddKills(n int)  { atomic.AddInt64(&m.Kills, int64(n)) }
func (m *ArenaMetrics) AddDamage(n int) { atomic.AddInt64(&m.DamageApplied, int64(n)) }
func (m *ArenaMetrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *ArenaMetrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":          tick,
		"inputs_accepted":     atomic.LoadInt64(&m.InputsAccepted),
		"chan_full_discarded": atomic.LoadInt64(&m.ChanFullDiscarded),
		"rounds_started":      atomic.LoadInt64(&m.RoundsStarted),
		"shots_fired":         atomic.LoadInt64(&m.ShotsFired),
		"hits":                atomic.LoadInt64(&m.Hits),
		"kills":               atomic.LoadInt64(&m.Kills),
		"damage_applied":      atomic.LoadInt64(&m.DamageApplied),
		"avg_tick_ms":         avgMs,
	}
}
