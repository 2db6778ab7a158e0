// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"infection-td/internal/app"
	"infection-td/internal/config"
	"infection-td/internal/event"
)

const maxMessages = 5

var highlightColor = color.RGBA{255, 255, 0, 255}

type message struct {
	text string
	ttl  float64
}

// HUD выводит текстовую сводку забега и ленту уведомлений.
// Подписывается на события игры как event.Listener.
type HUD struct {
	face     font.Face
	palette  []string
	selected int
	messages []message
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face, selected: -1}
}

// SetPalette задаёт строки списка башен и выбранную позицию.
func (h *HUD) SetPalette(lines []string, selected int) {
	h.palette = lines
	h.selected = selected
}

// Notify добавляет уведомление в ленту.
func (h *HUD) Notify(format string, args ...any) {
	h.messages = append(h.messages, message{text: fmt.Sprintf(format, args...), ttl: config.MessageLifetime})
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.InfectionStarted:
		h.Notify("Tower #%v infected! Click it to cure", e.Data)
	case event.InfectionCured:
		h.Notify("Tower #%v cured", e.Data)
	case event.WaveStarted:
		h.Notify("Wave %d started", e.Data.(int)+1)
	case event.WaveCompleted:
		h.Notify("Wave %d cleared", e.Data.(int)+1)
	case event.GameOver:
		h.Notify("Game over")
	case event.Victory:
		h.Notify("Victory!")
	}
}

// Update старит уведомления на dt секунд реального времени.
func (h *HUD) Update(dt float64) {
	alive := h.messages[:0]
	for _, m := range h.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			alive = append(alive, m)
		}
	}
	h.messages = alive
}

// Messages returns the texts currently on screen, oldest first.
func (h *HUD) Messages() []string {
	out := make([]string, len(h.messages))
	for i, m := range h.messages {
		out[i] = m.text
	}
	return out
}

func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	x, y := config.HUDMarginX, config.HUDMarginY
	line := func(clr color.Color, format string, args ...any) {
		text.Draw(screen, fmt.Sprintf(format, args...), h.face, x, y, clr)
		y += config.HUDLineHeight
	}

	line(config.TextLightColor, "Money: %d   Lives: %d", snap.Money, snap.Lives)
	wave := "-"
	if snap.WaveIndex >= 0 {
		wave = fmt.Sprintf("%d/%d (%s, %d to spawn)", snap.WaveIndex+1, snap.WaveCount, snap.WavePhase, snap.WavePending)
	}
	line(config.TextLightColor, "Wave: %s", wave)
	line(config.TextLightColor, "Kills: %d  Leaked: %d  Infections: %d  Cures: %d", snap.Kills, snap.Leaked, snap.Infections, snap.Cures)
	y += config.HUDLineHeight / 2

	for i, p := range h.palette {
		clr := color.Color(config.TextLightColor)
		if i == h.selected {
			clr = highlightColor
		}
		line(clr, "%s", p)
	}
	y += config.HUDLineHeight / 2
	line(config.TextLightColor, "Space: next wave  U: upgrade  S: sell  C: cure  P: pause  F: speed")

	y = config.ScreenHeight - config.InfoPanelHeight - config.HUDLineHeight*maxMessages
	for _, m := range h.messages {
		line(config.InfectedColor, "%s", m.text)
	}
}
