package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"zonearena/game"
)

const barWidth = 20

var (
	styleText   = tcell.StyleDefault
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHealth = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleArmor  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStam   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

type view struct {
	arena  string
	hud    *game.HUD
	status string
}

func (v *view) draw(s tcell.Screen) {
	s.Clear()
	drawText(s, 0, 0, styleDim, "arena "+v.arena+"  (q to quit)")

	if v.hud == nil {
		drawText(s, 0, 2, styleDim, "waiting for round...")
	} else {
		h := v.hud
		drawBar(s, 0, 2, "HP ", h.Health, game.MaxHealth, styleHealth)
		drawBar(s, 0, 3, "ARM", h.Armor, game.MaxArmor, styleArmor)
		drawBar(s, 0, 4, "STM", h.Stamina, game.StaminaMax, styleStam)
		drawText(s, 0, 6, styleText, fmt.Sprintf("AMMO    %d / %d", h.Ammo, h.MaxAmmo))
		drawText(s, 0, 7, styleText, fmt.Sprintf("ENEMIES %d", h.EnemiesRemaining))
		drawText(s, 0, 8, styleText, fmt.Sprintf("ZONE    %.1fm", h.ZoneRadius))
		drawText(s, 0, 9, styleDim, fmt.Sprintf("FPS     %d", h.FPS))

		row := 11
		if h.Hardcore {
			drawText(s, 0, row, styleWarn, "[HARDCORE]")
			row++
		}
		if h.ZoneClosing {
			drawText(s, 0, row, styleWarn, "ZONE CLOSING")
			row++
		}
		if h.GameOver {
			drawText(s, 0, row+1, styleBanner,
				fmt.Sprintf(" ELIMINATED  enemies left %d  ammo %d ", h.EnemiesRemaining, h.Ammo))
		}
	}

	if v.status != "" {
		_, hgt := s.Size()
		drawText(s, 0, hgt-1, styleWarn, v.status)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawBar 标签 + 按比例填充的条 + 数值
func drawBar(s tcell.Screen, x, y int, label string, value, limit float64, style tcell.Style) {
	drawText(s, x, y, styleText, label+" ")
	x += len(label) + 1
	filled := 0
	if limit > 0 {
		filled = int(math.Round(barWidth * math.Max(0, math.Min(value, limit)) / limit))
	}
	for i := 0; i < barWidth; i++ {
		if i < filled {
			s.SetContent(x+i, y, '█', nil, style)
		} else {
			s.SetContent(x+i, y, '·', nil, styleDim)
		}
	}
	drawText(s, x+barWidth+1, y, styleText, fmt.Sprintf("%3.0f", math.Floor(value)))
}
