package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zonearena/server"
)

// ZoneArena 入口：启动 HTTP + WebSocket 服务；每个连接独占一局
func main() {
	var addr, configDir string
	flag.StringVar(&addr, "addr", "", "server listen address, e.g. :8080 (overrides config)")
	flag.StringVar(&configDir, "config", ".", "directory containing zonearena.yaml")
	flag.Parse()

	if err := server.LoadConfig(configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if addr != "" {
		server.SetAddr(addr)
	}
	cfg := server.CurrentConfig()

	// zap 日志写入文件（带滚动）
	if err := server.InitLogger(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer server.SyncLogger()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)
	mux.HandleFunc("/ws/watch", server.HandleWatch)
	// 渲染端（three.js 场景 + HUD）作为静态资源
	mux.Handle("/", http.FileServer(http.Dir(cfg.WebDir)))
	// 管理与监控接口
	mux.HandleFunc("/admin/config", server.HandleAdminConfig)
	mux.HandleFunc("/admin/arenas", server.HandleArenas)
	mux.HandleFunc("/metrics", server.HandleMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		server.Log.Infof("ZoneArena listening on %s tick=%dHz", cfg.Addr, cfg.TickHz)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			server.Log.Fatalf("listen: %v", err)
		}
	}()

	// 优雅退出（Ctrl+C）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	server.Log.Info("Shutting down...")

	server.GetArenaManager().CloseAll()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		server.Log.Errorf("shutdown: %v", err)
	}
}
