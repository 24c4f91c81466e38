package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey 无法映射到逻辑按键
var ErrUnknownKey = errors.New("unknown key")

// Key 逻辑按键
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeySprint
	keyCount
)

var keyNames = map[string]Key{
	"forward":    KeyForward,
	"back":       KeyBack,
	"left":       KeyLeft,
	"right":      KeyRight,
	"sprint":     KeySprint,
	"keyw":       KeyForward,
	"arrowup":    KeyForward,
	"keys":       KeyBack,
	"arrowdown":  KeyBack,
	"keya":       KeyLeft,
	"arrowleft":  KeyLeft,
	"keyd":       KeyRight,
	"arrowright": KeyRight,
	"shiftleft":  KeySprint,
	"shiftright": KeySprint,
}

// ParseKey 同时接受逻辑名与浏览器 KeyboardEvent.code（WASD、方向键、Shift）
func ParseKey(s string) (Key, error) {
	if k, ok := keyNames[normalizeCode(s)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("key %q: %w", s, ErrUnknownKey)
}

func normalizeCode(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

var keyLabels = [keyCount]string{"forward", "back", "left", "right", "sprint"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyLabels[k]
}

// EventKind 输入事件类型
type EventKind int

const (
	EventKeyDown EventKind = iota + 1
	EventKeyUp
	EventLook
	EventCapture
	EventFire
)

// Event 输入源送来的离散事件，由 Tick 开头统一消费
type Event struct {
	Kind EventKind
	Key  Key
	Code string  // 物理按键码；为空时按逻辑键记
	DX   float64 // 指针位移（像素）
	DY   float64
	Held bool // EventCapture：是否持有指针独占
}

func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }
func Look(dx, dy float64) Event { return Event{Kind: EventLook, DX: dx, DY: dy} }
func Capture(held bool) Event { return Event{Kind: EventCapture, Held: held} }
func FireEvent() Event { return Event{Kind: EventFire} }

// KeyCode 物理按键事件：W 与 ↑ 各自记按下状态，任一按住即视为前进
func KeyCode(code string, down bool) (Event, error) {
	k, err := ParseKey(code)
	if err != nil {
		return Event{}, err
	}
	kind := EventKeyUp
	if down {
		kind = EventKeyDown
	}
	return Event{Kind: kind, Key: k, Code: normalizeCode(code)}, nil
}

// Controls 当前按键与指针状态
type Controls struct {
	pressed  map[string]Key // 物理按键码 → 逻辑键
	Captured bool

	lookX, lookY float64
}

func (c *Controls) Held(k Key) bool {
	for _, pk := range c.pressed {
		if pk == k {
			return true
		}
	}
	return false
}

// Apply 应用一个事件；返回 true 表示这是一次开火指令，交给命中判定处理
func (c *Controls) Apply(ev Event, ended bool) bool {
	switch ev.Kind {
	case EventKeyDown, EventKeyUp:
		if ev.Key < 0 || ev.Key >= keyCount {
			break
		}
		code := ev.Code
		if code == "" {
			code = ev.Key.String()
		}
		if ev.Kind == EventKeyUp {
			delete(c.pressed, code)
			break
		}
		if c.pressed == nil {
			c.pressed = make(map[string]Key)
		}
		c.pressed[code] = ev.Key
	case EventLook:
		if c.Captured && !ended {
			c.lookX += ev.DX
			c.lookY += ev.DY
		}
	case EventCapture:
		c.Captured = ev.Held
	case EventFire:
		return true
	}
	return false
}

// TakeLook 取出并清空累计的指针位移
func (c *Controls) TakeLook() (dx, dy float64) {
	dx, dy = c.lookX, c.lookY
	c.lookX, c.lookY = 0, 0
	return dx, dy
}

// axis 四个方向键合成的局部移动向量（未归一化）
func (c *Controls) axis() Vec3 {
	var v Vec3
	if c.Held(KeyForward) {
		v.Z--
	}
	if c.Held(KeyBack) {
		v.Z++
	}
	if c.Held(KeyLeft) {
		v.X--
	}
	if c.Held(KeyRight) {
		v.X++
	}
	return v
}
