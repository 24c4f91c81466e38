package server

import (
	"encoding/json"
	"net/http"

	"zonearena/game"
)

// HandleAdminConfig 新开局默认设置的读取与更新；已开始的局不受影响
// GET /admin/config   返回当前默认值
// POST /admin/config  以 JSON 载荷更新部分字段
func HandleAdminConfig(w http.ResponseWriter, r *http.Request) {
	type cfg struct {
		Quality  *float64 `json:"quality,omitempty"`
		Hardcore *bool    `json:"hardcore,omitempty"`
		TickHz   int      `json:"tickHz,omitempty"`
	}

	switch r.Method {
	case http.MethodGet:
		c := CurrentConfig()
		q := float64(c.Round.Quality)
		writeJSON(w, http.StatusOK, cfg{Quality: &q, Hardcore: &c.Round.Hardcore, TickHz: c.TickHz})
		return
	case http.MethodPost:
		var body cfg
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		s := CurrentConfig().Round
		if body.Quality != nil {
			q, err := game.ParseQuality(*body.Quality)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			s.Quality = q
		}
		if body.Hardcore != nil {
			s.Hardcore = *body.Hardcore
		}
		SetRoundDefaults(s)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		Log.Infof("config updated: quality=%v hardcore=%v", s.Quality, s.Hardcore)
		return
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
}

// HandleArenas 列出当前所有 Arena 及其 HUD
// GET /admin/arenas
func HandleArenas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"arenas": GetArenaManager().List()})
}

// HandleMetrics 输出指定 Arena 的运行指标
// GET /metrics?arena=<id>
func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("arena")
	arena, ok := GetArenaManager().Get(id)
	if !ok {
		http.Error(w, "arena not found", http.StatusNotFound)
		return
	}
	info := arena.Info()
	writeJSON(w, http.StatusOK, map[string]any{
		"arena":   id,
		"tick":    info.Tick,
		"metrics": arena.Metrics().Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
