// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"infection-td/internal/config"
)

const (
	livesCols          = 10
	livesCircleRadius  = 6.0
	livesCircleSpacing = 3.0
)

var (
	lifeFullColor = color.RGBA{50, 100, 255, 255}
	lifeLowColor  = color.RGBA{220, 40, 40, 255}
	lifeLostColor = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator показывает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// lifeColor: потерянные — чёрные, при половине и меньше — все красные.
func lifeColor(j, lives, maxLives int) color.RGBA {
	switch {
	case j >= lives:
		return lifeLostColor
	case lives <= maxLives/2:
		return lifeLowColor
	default:
		return lifeFullColor
	}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		row, col := j/livesCols, j%livesCols
		x := i.X + float32(col)*(livesCircleRadius*2+livesCircleSpacing)
		y := i.Y + float32(row)*(livesCircleRadius*2+livesCircleSpacing)
		vector.DrawFilledCircle(screen, x, y, livesCircleRadius, lifeColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, x, y, livesCircleRadius, 1, config.UIBorderColor, true)
	}
}
