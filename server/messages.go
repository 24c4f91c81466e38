package server

import (
	"encoding/json"
	"fmt"

	"zonearena/game"
)

const (
	MsgWelcome    = "welcome"
	MsgStarted    = "started"
	MsgHUD        = "hud"
	MsgWorld      = "world"
	MsgRoster     = "roster"
	MsgEliminated = "eliminated"
	MsgMenu       = "menu"
)

// Envelope 出站消息统一外壳
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type Welcome struct {
	ArenaID string `json:"arenaId"`
	TickHz  int    `json:"tickHz"`
}

type Started struct {
	RoundID  string           `json:"roundId"`
	Settings game.Settings    `json:"settings"`
	Loot     []game.LootCrate `json:"loot"`
	HUD      game.HUD         `json:"hud"`
}

type RosterUpdate struct {
	EnemiesRemaining int      `json:"enemiesRemaining"`
	Killed           []string `json:"killed"`
}

// Eliminated 结算界面数据
type Eliminated struct {
	EnemiesRemaining int `json:"enemiesRemaining"`
	AmmoLeft         int `json:"ammoLeft"`
}

// Encode 生成出站 JSON
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode: empty message type")
	}
	e := Envelope{Type: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", t, err)
		}
		e.Data = pb
	}
	return json.Marshal(e)
}

// DecodeEnvelope 客户端与测试使用
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.Type)
	}
	err := json.Unmarshal(env.Data, &out)
	return out, err
}
