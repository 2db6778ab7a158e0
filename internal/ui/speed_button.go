// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"infection-td/internal/config"
)

// SpeedButton переключает множитель скорости симуляции по кругу.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	CurrentState   int
	face           font.Face
}

func NewSpeedButton(x, y, size float32, face font.Face) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, face: face}
}

// Multiplier returns how many simulation ticks run per frame.
func (b *SpeedButton) Multiplier() int {
	return config.SpeedMultipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)
	c := config.SpeedButtonColors[b.CurrentState%len(config.SpeedButtonColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8
	for _, shift := range []float32{0, offset} {
		x1, y1 := b.X-width+shift, b.Y-height/2
		x2, y2 := b.X+shift, b.Y
		x3, y3 := b.X-width+shift, b.Y+height/2
		vector.StrokeLine(screen, x1, y1, x2, y2, 3, c, true)
		vector.StrokeLine(screen, x2, y2, x3, y3, 3, c, true)
	}
	label := fmt.Sprintf("x%d", b.Multiplier())
	text.Draw(screen, label, b.face, int(b.X-width), int(b.Y+height+12), config.TextLightColor)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, поэтому попадание считаем по кругу
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedMultipliers)
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}
