package server

import "time"

const (
	// DefaultTicksPerSecond 世界推进频率，对应渲染端的一帧
	DefaultTicksPerSecond = 60
)

func tickInterval(hz int) time.Duration {
	if hz <= 0 {
		hz = DefaultTicksPerSecond
	}
	return time.Second / time.Duration(hz)
}

// StartTicker 启动 Arena 的 Tick 循环（单线程推进世界），Arena 关闭后退出
func (a *Arena) StartTicker() {
	if a.tickerStarted {
		return
	}
	a.tickerStarted = true
	go func() {
		ticker := time.NewTicker(tickInterval(a.tickHz))
		defer ticker.Stop()
		for {
			select {
			case <-a.closed:
				return
			case <-ticker.C:
				// 核心循环：处理输入 → 更新世界 → 广播结果
				start := time.Now()
				a.Step(a.now())
				a.metrics.AddTick(time.Since(start).Nanoseconds())
			}
		}
	}()
}
