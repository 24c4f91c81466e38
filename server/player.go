package server

// PlayerID 表示玩家唯一标识（即所在 Arena 的 ID）
type PlayerID string

// Conn 发送端抽象：ClientConn 实现它，测试里用假连接替换
type Conn interface {
	Enqueue(b []byte)
	Close()
}

// Player 驾驶这一局的客户端
type Player struct {
	ID   PlayerID
	Conn Conn // 网络连接的发送端（写协程）
}
