package server

import (
	"encoding/json"
	"strings"

	"zonearena/game"
)

// ControlKind 回合级控制指令（不属于输入源事件）
type ControlKind int

const (
	CtrlNone  ControlKind = iota
	CtrlStart             // 主菜单 Deploy
	CtrlMenu              // Return to menu：丢弃整局
	CtrlLeave             // 连接断开
)

// Input 入站消息解析后的结果，由 Tick 线程统一消费
type Input struct {
	Control  ControlKind
	Settings game.Settings // CtrlStart
	Event    game.Event
}

// 入站 JSON（WebSocket 文本消息），示例：
// {"type":"start","quality":1.5,"hardcore":true}
// {"type":"key","key":"KeyW","down":true}
// {"type":"look","dx":12,"dy":-3}
// {"type":"capture","held":true}
// {"type":"fire"}
// {"type":"menu"}
type InputMessage struct {
	Type     string   `json:"type"`
	Key      string   `json:"key,omitempty"`
	Down     bool     `json:"down,omitempty"`
	DX       float64  `json:"dx,omitempty"`
	DY       float64  `json:"dy,omitempty"`
	Held     bool     `json:"held,omitempty"`
	Quality  *float64 `json:"quality,omitempty"`
	Hardcore *bool    `json:"hardcore,omitempty"`
}

// ParseInput 把一条入站消息转换为 Input；无法识别的消息返回 false，直接忽略。
// defaults 用于 start 消息中缺省的字段。
func ParseInput(payload []byte, defaults game.Settings) (Input, bool) {
	var im InputMessage
	if err := json.Unmarshal(payload, &im); err != nil {
		return Input{}, false
	}
	switch strings.ToLower(im.Type) {
	case "start":
		s := defaults
		if im.Quality != nil {
			q, err := game.ParseQuality(*im.Quality)
			if err != nil {
				Log.Debugf("start: %v, using %v", err, s.Quality)
			} else {
				s.Quality = q
			}
		}
		if im.Hardcore != nil {
			s.Hardcore = *im.Hardcore
		}
		return Input{Control: CtrlStart, Settings: s}, true
	case "menu":
		return Input{Control: CtrlMenu}, true
	case "key":
		ev, err := game.KeyCode(im.Key, im.Down)
		if err != nil {
			return Input{}, false
		}
		return Input{Event: ev}, true
	case "look":
		return Input{Event: game.Look(im.DX, im.DY)}, true
	case "capture":
		return Input{Event: game.Capture(im.Held)}, true
	case "fire":
		return Input{Event: game.FireEvent()}, true
	}
	return Input{}, false
}
