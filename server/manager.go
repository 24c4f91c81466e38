package server

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ArenaManager 管理多个 Arena 的生命周期
type ArenaManager struct {
	mu     sync.RWMutex
	arenas map[string]*Arena
}

var (
	defaultManager *ArenaManager
	once           sync.Once
)

// GetArenaManager 单例管理器
func GetArenaManager() *ArenaManager {
	once.Do(func() {
		defaultManager = NewArenaManager()
	})
	return defaultManager
}

func NewArenaManager() *ArenaManager {
	return &ArenaManager{arenas: make(map[string]*Arena)}
}

// Create 为新连接创建 Arena；关闭时自动从管理器移除
func (m *ArenaManager) Create(pilot *Player, cfg Config) *Arena {
	id := uuid.NewString()
	if pilot != nil {
		pilot.ID = PlayerID(id)
	}
	a := NewArena(id, pilot, cfg)
	a.onClose = m.Remove

	m.mu.Lock()
	m.arenas[id] = a
	m.mu.Unlock()
	return a
}

func (m *ArenaManager) Get(id string) (*Arena, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.arenas[id]
	return a, ok
}

func (m *ArenaManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.arenas, id)
}

// List 按 ID 排序的只读视图
func (m *ArenaManager) List() []ArenaInfo {
	m.mu.RLock()
	arenas := make([]*Arena, 0, len(m.arenas))
	for _, a := range m.arenas {
		arenas = append(arenas, a)
	}
	m.mu.RUnlock()

	out := make([]ArenaInfo, 0, len(arenas))
	for _, a := range arenas {
		out = append(out, a.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CloseAll 退出时请求所有 Arena 关闭
func (m *ArenaManager) CloseAll() {
	m.mu.RLock()
	arenas := make([]*Arena, 0, len(m.arenas))
	for _, a := range m.arenas {
		arenas = append(arenas, a)
	}
	m.mu.RUnlock()
	for _, a := range arenas {
		a.RequestLeave()
	}
}
