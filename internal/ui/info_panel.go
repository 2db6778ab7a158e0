// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"infection-td/internal/app"
	"infection-td/internal/config"
	"infection-td/internal/types"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 260
)

// InfoPanel выезжает снизу и показывает характеристики выбранной башни.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - config.InfoPanelHeight
}

// Hide drops the selection at once; the empty panel slides out.
func (p *InfoPanel) Hide() {
	p.TargetEntity = 0
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

// Contains reports whether a screen point falls on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+config.InfoPanelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	tower, ok := findTower(snap, p.TargetEntity)
	if !ok {
		// Башню продали, пока панель была открыта
		p.Hide()
		return
	}
	x, y := panelRect.Min.X+15, panelRect.Min.Y+20
	for i, column := range towerInfoColumns(tower) {
		cy := y
		for _, s := range column {
			text.Draw(screen, s, p.fontFace, x+i*columnSpacing, cy, config.TextLightColor)
			cy += lineHeight
		}
	}
}

func findTower(snap *app.Snapshot, id types.EntityID) (app.TowerView, bool) {
	for _, t := range snap.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return app.TowerView{}, false
}

// towerInfoColumns раскладывает характеристики башни по колонкам панели.
func towerInfoColumns(t app.TowerView) [][]string {
	title := []string{
		fmt.Sprintf("%s #%d", t.Name, t.ID),
		fmt.Sprintf("Type: %s", t.Type),
		fmt.Sprintf("Level: %d/%d", t.Level+1, t.MaxLevel+1),
	}
	var stats []string
	if t.Type.IsOffensive() {
		stats = append(stats,
			fmt.Sprintf("Damage: %.0f", t.Effective.Damage),
			fmt.Sprintf("Fire every: %.2fs (base %.2fs)", t.Effective.FireRate, t.Base.FireRate),
			fmt.Sprintf("Range: %.0f (base %.0f)", t.Effective.Range, t.Base.Range),
		)
	}
	if t.Effective.Income > 0 {
		stats = append(stats, fmt.Sprintf("Income: %.0f every %.1fs", t.Effective.Income, t.Effective.Interval))
	}
	if t.Effective.IsBuffSource() {
		stats = append(stats, fmt.Sprintf("Aura: -%.0f%% fire interval, +%.0f%% range within %.0f",
			t.Effective.BuffFireratePct, t.Effective.BuffRangePct, t.Base.Range))
	}
	if t.Effective.AutoHeal {
		stats = append(stats, fmt.Sprintf("Auto-cure within %.0f after %.1fs", t.Effective.Range, t.Effective.ScanDelay))
	}

	actions := []string{fmt.Sprintf("S: sell for %d", t.SellValue)}
	if t.Level < t.MaxLevel {
		actions = append(actions, fmt.Sprintf("U: upgrade for %d", t.UpgradeCost))
	} else {
		actions = append(actions, "Max level")
	}
	if t.Infected {
		actions = append(actions, fmt.Sprintf("INFECTED: %d/%d cure clicks", t.CureClicks, t.CureRequired))
	}
	return [][]string{title, stats, actions}
}
