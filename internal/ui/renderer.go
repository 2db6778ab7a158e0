// internal/ui/renderer.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"infection-td/internal/app"
	"infection-td/internal/config"
	"infection-td/internal/types"
)

const (
	pathWidth       = 24
	bossRadiusScale = 1.6
	healthBarWidth  = 24
	healthBarHeight = 4
	levelPipRadius  = 2
)

var damageFlashColor = color.RGBA{255, 255, 255, 255}

// Renderer рисует поле по снимку состояния. Симуляцию он не трогает.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap *app.Snapshot, selected types.EntityID) {
	screen.Fill(config.BackgroundColor)
	r.drawPath(screen, snap)

	for _, tower := range snap.Towers {
		if tower.ID == selected {
			rangeR := float32(tower.Effective.Range)
			vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), rangeR, config.RangeColor, true)
			vector.StrokeCircle(screen, float32(tower.X), float32(tower.Y), rangeR, 1, config.TowerStrokeColor, true)
		}
	}
	for _, tower := range snap.Towers {
		r.drawTower(screen, tower, snap.Time)
	}
	for _, enemy := range snap.Enemies {
		r.drawEnemy(screen, enemy)
	}
	for _, proj := range snap.Projectiles {
		c, ok := config.ProjectileColors[string(proj.Type)]
		if !ok {
			c = config.TowerStrokeColor
		}
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), config.ProjectileRadius, c, true)
	}
	for _, blast := range snap.Blasts {
		c := config.ProjectileColors["offensive-area"]
		c.A = uint8(255 * (1 - math.Min(1, blast.Fade)))
		vector.StrokeCircle(screen, float32(blast.X), float32(blast.Y), float32(blast.Radius), 3, c, true)
	}
}

func (r *Renderer) drawPath(screen *ebiten.Image, snap *app.Snapshot) {
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathWidth, config.PathColor, true)
		// Скругляем стыки сегментов
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), pathWidth/2, config.PathColor, true)
	}
}

func (r *Renderer) drawTower(screen *ebiten.Image, tower app.TowerView, gameTime float64) {
	x, y := float32(tower.X), float32(tower.Y)
	c, ok := config.TowerColors[string(tower.Type)]
	if !ok {
		c = config.TowerStrokeColor
	}

	if tower.Infected {
		pulse := math.Sin(gameTime * 2 * math.Pi)
		pulseRadius := float32(config.TowerRadius+6) * float32(1+0.15*pulse)
		infected := config.InfectedColor
		infected.A = uint8(160 + 64*pulse)
		vector.DrawFilledCircle(screen, x, y, pulseRadius, infected, true)
	}
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+2, config.TowerStrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, c, true)

	// Уровень — точки над башней
	for i := 0; i < tower.Level; i++ {
		px := x - float32(tower.MaxLevel*3) + float32(i*6) + 3
		vector.DrawFilledCircle(screen, px, y-config.TowerRadius-6, levelPipRadius, config.TowerStrokeColor, true)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, enemy app.EnemyView) {
	x, y := float32(enemy.X), float32(enemy.Y)
	radius := float32(config.EnemyRadius)
	if enemy.Tier == config.BossTier {
		radius *= bossRadiusScale
	}
	body := enemy.Color
	if enemy.Flash {
		body = damageFlashColor
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)
	if enemy.Slowed {
		vector.StrokeCircle(screen, x, y, radius+2, 2, color.RGBA{100, 180, 255, 255}, true)
	}

	if enemy.MaxHP <= 0 {
		return
	}
	barX, barY := x-healthBarWidth/2, y-radius-8
	vector.DrawFilledRect(screen, barX, barY, healthBarWidth, healthBarHeight, config.HealthBarBack, false)
	frac := float32(math.Max(0, enemy.HP/enemy.MaxHP))
	vector.DrawFilledRect(screen, barX, barY, healthBarWidth*frac, healthBarHeight, config.HealthBarFront, false)
}
