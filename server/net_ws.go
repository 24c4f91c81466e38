package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
)

// ClientConn 负责发送（写）数据到客户端的轻量包装
type ClientConn struct {
	ws   *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClientConn(ws *websocket.Conn) *ClientConn {
	return &ClientConn{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// Enqueue 将要发送的消息压入队列（非阻塞，满则丢弃）
func (c *ClientConn) Enqueue(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- b:
	default:
		// 为了实时性，丢弃新消息（防止阻塞 Tick）
	}
}

// Close 关闭发送队列，写协程随后关闭底层连接
func (c *ClientConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump 独立协程，负责从 send 队列写出到 WS，并定期 ping
func (c *ClientConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *ClientConn) prepareRead() {
	c.ws.SetReadLimit(1 << 16)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
}

// readPump 读取客户端输入，转换为 Input 注入 Arena
func (c *ClientConn) readPump(arena *Arena) {
	// 读泵退出时，通知 Arena 在 Tick 线程中关闭
	defer arena.RequestLeave()
	c.prepareRead()

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				Log.Warnf("arena=%s read: %v", arena.ID, err)
			}
			return
		}
		// 每条消息读取最新默认值，管理接口的修改对之后的开局生效
		in, ok := ParseInput(payload, RoundDefaults())
		if !ok {
			continue
		}
		arena.OnInput(in)
	}
}

// drainPump 观察者只读：丢弃入站内容，只维持心跳与断开检测
func (c *ClientConn) drainPump() {
	defer c.Close()
	c.prepareRead()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 演示环境：允许所有来源（生产环境需严格限制）
		return true
	},
}

// HandleWS WebSocket 接入：每个连接独占一个 Arena（单人局）
func HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.Warnf("upgrade error: %v", err)
		return
	}

	client := NewClientConn(ws)
	arena := GetArenaManager().Create(&Player{Conn: client}, CurrentConfig())
	Log.Infof("arena=%s opened remote=%s", arena.ID, r.RemoteAddr)

	arena.Welcome()
	arena.StartTicker()

	go client.writePump()
	go client.readPump(arena)
}

// HandleWatch 只读 HUD 订阅：/ws/watch?arena=<id>
func HandleWatch(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("arena")
	if id == "" {
		http.Error(w, "missing arena query", http.StatusBadRequest)
		return
	}
	arena, ok := GetArenaManager().Get(id)
	if !ok {
		http.Error(w, "arena not found", http.StatusNotFound)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.Warnf("upgrade error: %v", err)
		return
	}
	client := NewClientConn(ws)
	go client.writePump()
	go client.drainPump()
	arena.Watch(client)
	Log.Infof("arena=%s watcher attached remote=%s", arena.ID, r.RemoteAddr)
}
