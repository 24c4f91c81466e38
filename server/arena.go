package server

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"zonearena/game"
)

// Arena 一个连接对应一个 Arena：权威状态维护在内存，单线程 Tick 推进
type Arena struct {
	ID string

	pilot    *Player
	watchers map[Conn]struct{}
	round    *game.Round

	inputChan chan Input
	watchChan chan Conn

	rng     *rand.Rand
	now     func() time.Time
	tickHz  int
	metrics *ArenaMetrics

	// 本帧状态：BeginTick 重置
	pending  []game.Event
	frame    game.Frame
	outbound [][]byte

	// 供 HTTP 管理接口跨协程读取
	mu      sync.RWMutex
	lastHUD *game.HUD
	tickSeq int64

	tickerStarted bool
	closeOnce     sync.Once
	closed        chan struct{}
	onClose       func(id string)
}

// NewArena 创建 Arena，初始化数据结构；局要等客户端发送 start 才开始
func NewArena(id string, pilot *Player, cfg Config) *Arena {
	queue := cfg.InputQueue
	if queue <= 0 {
		queue = 256
	}
	return &Arena{
		ID:        id,
		pilot:     pilot,
		watchers:  make(map[Conn]struct{}),
		inputChan: make(chan Input, queue), // 足够缓冲，避免网络读阻塞影响 Tick
		watchChan: make(chan Conn, 8),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
		tickHz:    cfg.TickHz,
		metrics:   &ArenaMetrics{},
		closed:    make(chan struct{}),
	}
}

// OnInput 入站输入（不立即改变状态），等下一次 Tick 处理
func (a *Arena) OnInput(in Input) {
	select {
	case a.inputChan <- in:
		a.metrics.IncAccepted()
	default:
		// 丢弃：为了实时性，避免背压影响世界推进
		if n := atomic.LoadInt64(&a.metrics.ChanFullDiscarded); n%64 == 0 {
			Log.Warnf("arena=%s input queue full, dropping", a.ID)
		}
		a.metrics.IncChanFullDiscarded()
	}
}

// Watch 注册一个只读 HUD 订阅者
func (a *Arena) Watch(c Conn) {
	select {
	case a.watchChan <- c:
		// 与 Close 的排空竞争：送达后才发现已关闭，自行关掉
		if a.isClosed() {
			c.Close()
		}
	case <-a.closed:
		c.Close()
	}
}

// RequestLeave 请求在 Tick 线程中关闭 Arena，避免并发改动状态
func (a *Arena) RequestLeave() {
	select {
	case a.inputChan <- Input{Control: CtrlLeave}:
	case <-a.closed:
	}
}

// Step 执行一次完整的 Tick：处理输入 → 更新世界 → 下发结果
func (a *Arena) Step(now time.Time) {
	a.BeginTick()
	a.ProcessInputs(now)
	a.UpdateWorld(now)
	a.Broadcast()
}

// BeginTick 重置帧内状态
func (a *Arena) BeginTick() {
	a.pending = a.pending[:0]
	a.frame = game.Frame{}
	a.outbound = a.outbound[:0]
}

// ProcessInputs 非阻塞 drain：控制指令立即执行，输入事件攒到本帧交给 Round
func (a *Arena) ProcessInputs(now time.Time) {
	for {
		select {
		case c := <-a.watchChan:
			a.watchers[c] = struct{}{}
		case in := <-a.inputChan:
			switch in.Control {
			case CtrlStart:
				a.startRound(in.Settings, now)
			case CtrlMenu:
				a.toMenu()
			case CtrlLeave:
				a.Close()
				return
			default:
				if a.round != nil {
					a.pending = append(a.pending, in.Event)
				}
			}
		default:
			return
		}
	}
}

// UpdateWorld 推进当前局
func (a *Arena) UpdateWorld(now time.Time) {
	if a.round == nil || a.isClosed() {
		return
	}
	was := a.round.Ended()
	f := a.round.Tick(now, a.pending)
	a.frame = f
	if was {
		return
	}

	for _, s := range f.Shots {
		a.metrics.AddShot(s.Hit)
		if s.Hit {
			Log.Debugf("arena=%s hit enemy=%s dist=%.1f", a.ID, s.EnemyID, s.Distance)
		}
	}
	applied := 0
	for _, d := range f.Damage {
		if d.Applied {
			applied++
		}
	}
	a.metrics.AddDamage(applied)
	if len(f.Kills) > 0 {
		a.metrics.AddKills(len(f.Kills))
		Log.Infof("arena=%s killed=%v remaining=%d", a.ID, f.Kills, f.HUD.EnemiesRemaining)
	}
	if f.EliminatedNow {
		Log.Infof("arena=%s round=%s eliminated remaining=%d ammo=%d",
			a.ID, a.round.ID, f.HUD.EnemiesRemaining, f.HUD.Ammo)
	}

	hud := f.HUD
	a.mu.Lock()
	a.lastHUD = &hud
	a.tickSeq = f.Seq
	a.mu.Unlock()
}

// Broadcast 将本帧结果发给玩家（HUD + 世界），观察者只收 HUD
func (a *Arena) Broadcast() {
	if a.isClosed() {
		return
	}
	if a.round != nil && a.frame.Seq > 0 {
		hud := a.encode(MsgHUD, a.frame.HUD)
		a.outbound = append(a.outbound, hud, a.encode(MsgWorld, a.round.World()))
		if a.frame.RosterChanged {
			a.outbound = append(a.outbound, a.encode(MsgRoster, RosterUpdate{
				EnemiesRemaining: a.frame.HUD.EnemiesRemaining,
				Killed:           a.frame.Kills,
			}))
		}
		if a.frame.EliminatedNow {
			a.outbound = append(a.outbound, a.encode(MsgEliminated, Eliminated{
				EnemiesRemaining: a.frame.HUD.EnemiesRemaining,
				AmmoLeft:         a.frame.HUD.Ammo,
			}))
		}
		for w := range a.watchers {
			w.Enqueue(hud)
		}
	}
	if a.pilot == nil || a.pilot.Conn == nil {
		return
	}
	for _, b := range a.outbound {
		if b != nil {
			a.pilot.Conn.Enqueue(b)
		}
	}
}

// Welcome 连接建立后的第一条消息
func (a *Arena) Welcome() {
	if a.pilot != nil && a.pilot.Conn != nil {
		a.pilot.Conn.Enqueue(a.encode(MsgWelcome, Welcome{ArenaID: a.ID, TickHz: a.tickHz}))
	}
}

func (a *Arena) startRound(s game.Settings, now time.Time) {
	id := uuid.NewString()
	a.pending = a.pending[:0]
	a.round = game.NewRound(id, s, a.rng, now)
	a.metrics.IncRoundsStarted()
	Log.Infof("arena=%s round=%s started quality=%v hardcore=%v", a.ID, id, s.Quality, s.Hardcore)

	hud := a.round.HUD()
	a.mu.Lock()
	a.lastHUD = &hud
	a.mu.Unlock()

	a.outbound = append(a.outbound, a.encode(MsgStarted, Started{
		RoundID:  id,
		Settings: s,
		Loot:     a.round.Loot,
		HUD:      hud,
	}))
}

// toMenu 丢弃整局状态（不是暂停）
func (a *Arena) toMenu() {
	if a.round != nil {
		Log.Infof("arena=%s round=%s discarded (menu)", a.ID, a.round.ID)
	}
	a.round = nil
	a.pending = a.pending[:0]
	a.mu.Lock()
	a.lastHUD = nil
	a.mu.Unlock()
	a.outbound = append(a.outbound, a.encode(MsgMenu, nil))
}

func (a *Arena) encode(t string, payload any) []byte {
	b, err := Encode(t, payload)
	if err != nil {
		Log.Errorf("arena=%s %v", a.ID, err)
		return nil
	}
	return b
}

// Close 关闭连接与观察者，停止 Tick；可重复调用
func (a *Arena) Close() {
	a.closeOnce.Do(func() {
		close(a.closed)
		if a.pilot != nil && a.pilot.Conn != nil {
			a.pilot.Conn.Close()
		}
		for w := range a.watchers {
			w.Close()
		}
		a.watchers = map[Conn]struct{}{}
		// 尚未登记的观察者也一并关闭
		for drained := false; !drained; {
			select {
			case w := <-a.watchChan:
				w.Close()
			default:
				drained = true
			}
		}
		Log.Infof("arena=%s closed", a.ID)
		if a.onClose != nil {
			a.onClose(a.ID)
		}
	})
}

func (a *Arena) isClosed() bool {
	select {
	case <-a.closed:
		return true
	default:
		return false
	}
}

// ArenaInfo 管理接口的只读视图
type ArenaInfo struct {
	ID    string    `json:"id"`
	Phase string    `json:"phase"`
	Tick  int64     `json:"tick"`
	HUD   *game.HUD `json:"hud,omitempty"`
}

// Info 跨协程安全
func (a *Arena) Info() ArenaInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	info := ArenaInfo{ID: a.ID, Phase: "menu", Tick: a.tickSeq}
	if a.lastHUD != nil {
		hud := *a.lastHUD
		info.HUD = &hud
		info.Phase = game.PhaseActive.String()
		if hud.GameOver {
			info.Phase = game.PhaseEliminated.String()
		}
	}
	return info
}

func (a *Arena) Metrics() *ArenaMetrics { return a.metrics }
