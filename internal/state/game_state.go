// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"infection-td/internal/app"
	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/ui"
)

var towerHotkeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры: переводит ввод в команды и рисует снимок.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	data          *defs.GameData
	seed          int64
	renderer      *ui.Renderer
	hud           *ui.HUD
	infoPanel     *ui.InfoPanel
	waveIndicator *ui.WaveIndicator
	indicator     *ui.StateIndicator
	lives         *ui.LivesIndicator
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	catalog       []app.TowerOption
	maxLives      int
	selectedDef   int // индекс в TowerOrder, -1 — ничего не выбрано
}

func NewGameState(sm *StateMachine, data *defs.GameData, seed int64) (*GameState, error) {
	face := basicfont.Face7x13
	hud := ui.NewHUD(face)
	gameLogic, err := app.NewGame(data,
		app.WithSeed(seed),
		app.WithViewportWidth(config.ScreenWidth),
		app.WithListener(hud),
	)
	if err != nil {
		return nil, err
	}

	gs := &GameState{
		sm:            sm,
		game:          gameLogic,
		data:          data,
		seed:          seed,
		renderer:      ui.NewRenderer(),
		hud:           hud,
		infoPanel:     ui.NewInfoPanel(face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDMarginY+10, face),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-160, config.ButtonY, config.ButtonSize),
		lives:         ui.NewLivesIndicator(config.ScreenWidth-300, config.ButtonY+40),
		pauseButton:   ui.NewPauseButton(config.PauseButtonX, config.ButtonY, config.ButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		speedButton:   ui.NewSpeedButton(config.SpeedButtonX, config.ButtonY, config.ButtonSize, face),
		catalog:       gameLogic.TowerCatalog(),
		maxLives:      gameLogic.Snapshot().Lives,
		selectedDef:   -1,
	}
	gs.refreshPalette()
	return gs, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.hud.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			if g.handleUIClick(x, y) {
				return
			}
		} else {
			g.handleGameClick(float64(x), float64(y))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selectDef(-1)
		g.infoPanel.Hide()
	}

	// Ускорение — несколько тиков за кадр, dt не масштабируется
	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.game.Update(deltaTime)
	}

	if state := g.game.State(); state != component.Running {
		snap := g.game.Snapshot()
		log.Printf("GameState: run %s finished, victory: %v, %.1fs simulated", snap.RunID, state == component.Victory, snap.Time)
		g.sm.SetState(NewMenuState(g.sm, g.data, g.seed, &snap))
	}
}

func (g *GameState) handleKeys() {
	for i, key := range towerHotkeys {
		if inpututil.IsKeyJustPressed(key) && i < len(g.catalog) {
			g.selectDef(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.selectDef(-1)
		g.infoPanel.Hide()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.report(g.game.StartNextWave())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speedButton.ToggleState()
	}

	target := g.infoPanel.TargetEntity
	if target == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.report(g.game.UpgradeTower(target))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		_, err := g.game.CureClick(target)
		g.report(err)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		refund, err := g.game.SellTower(target)
		if err == nil {
			g.hud.Notify("Sold for %d", refund)
			g.infoPanel.Hide()
		}
		g.report(err)
	}
}

func (g *GameState) isClickOnUI(x, y int) bool {
	return g.pauseButton.IsClicked(x, y) ||
		g.speedButton.IsClicked(x, y) ||
		g.indicator.IsClicked(x, y) ||
		g.infoPanel.Contains(x, y)
}

// handleUIClick returns true when the click switched the state.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		if g.pauseButton.CanToggle(time.Now()) {
			g.sm.SetState(NewPauseState(g.sm, g))
			return true
		}
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= config.ClickCooldown*time.Millisecond {
			g.speedButton.ToggleState()
		}
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.report(g.game.StartNextWave())
	}
	// Клик по инфо-панели ничего не делает
	return false
}

func (g *GameState) handleGameClick(x, y float64) {
	if id, found := g.game.TowerAt(x, y); found {
		g.infoPanel.SetTarget(id)
		if g.game.IsInfected(id) {
			cured, err := g.game.CureClick(id)
			g.report(err)
			if cured {
				log.Printf("GameState: tower %d cured by clicks", id)
			}
		}
		return
	}
	if g.selectedDef < 0 {
		g.infoPanel.Hide()
		return
	}
	defID := g.catalog[g.selectedDef].ID
	id, err := g.game.PlaceTower(defID, x, y)
	if err != nil {
		g.report(fmt.Errorf("cannot place %s: %w", defID, err))
		return
	}
	g.infoPanel.SetTarget(id)
}

func (g *GameState) selectDef(i int) {
	g.selectedDef = i
	g.refreshPalette()
}

func (g *GameState) refreshPalette() {
	lines := make([]string, 0, len(g.catalog))
	for i, opt := range g.catalog {
		key := " "
		if i < len(towerHotkeys) {
			key = fmt.Sprint(i + 1)
		}
		lines = append(lines, fmt.Sprintf("%s: %s [%s] $%d", key, opt.Name, opt.Type, opt.Cost))
	}
	g.hud.SetPalette(lines, g.selectedDef)
}

func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	log.Printf("GameState: %v", err)
	g.hud.Notify("%v", err)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, &snap, g.infoPanel.TargetEntity)
	g.hud.Draw(screen, &snap)
	g.waveIndicator.Draw(screen, snap.WaveIndex+1, snap.WaveCount)
	g.indicator.Draw(screen, ui.PhaseColor(snap.WavePhase, snap.WaveIndex >= 0))
	g.lives.Draw(screen, snap.Lives, g.maxLives)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
	g.infoPanel.Draw(screen, &snap)
}
