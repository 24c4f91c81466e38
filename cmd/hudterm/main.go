package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"

	"zonearena/game"
	"zonearena/server"
)

// hudterm 终端里的只读 HUD：订阅 /ws/watch?arena=<id>
func main() {
	var addr, arena string
	flag.StringVar(&addr, "addr", "localhost:8080", "server address")
	flag.StringVar(&arena, "arena", "", "arena id to watch (see /admin/arenas)")
	flag.Parse()
	if arena == "" {
		fmt.Fprintln(os.Stderr, "missing -arena")
		os.Exit(2)
	}

	if err := run(addr, arena); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr, arena string) error {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws/watch", RawQuery: url.Values{"arena": {arena}}.Encode()}
	ws, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", u.String(), err)
	}
	defer ws.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	huds := make(chan game.HUD, 8)
	lost := make(chan error, 1)
	go readHUD(ws, huds, lost)

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	v := view{arena: arena}
	v.draw(screen)
	for {
		select {
		case h := <-huds:
			v.hud = &h
			v.draw(screen)
		case err := <-lost:
			v.status = "disconnected: " + err.Error()
			v.draw(screen)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				v.draw(screen)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}

func readHUD(ws *websocket.Conn, out chan game.HUD, lost chan<- error) {
	for {
		_, b, err := ws.ReadMessage()
		if err != nil {
			lost <- err
			return
		}
		env, err := server.DecodeEnvelope(b)
		if err != nil || env.Type != server.MsgHUD {
			continue
		}
		h, err := server.DecodePayload[game.HUD](env)
		if err != nil {
			continue
		}
		offerLatest(out, h)
	}
}

// offerLatest 队列满时丢掉最旧的一帧，保证最新 HUD 能送达（单一生产者）
func offerLatest(out chan game.HUD, h game.HUD) {
	select {
	case out <- h:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- h:
	default:
	}
}
