// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"infection-td/internal/app"
	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
)

// MenuState — стартовый экран и экран итогов забега.
type MenuState struct {
	sm     *StateMachine
	data   *defs.GameData
	seed   int64
	result *app.Snapshot // nil до первого забега
}

func NewMenuState(sm *StateMachine, data *defs.GameData, seed int64, result *app.Snapshot) *MenuState {
	return &MenuState{sm: sm, data: data, seed: seed, result: result}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm, m.data, m.seed)
		if err != nil {
			log.Printf("MenuState: cannot start a run: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	face := basicfont.Face7x13
	y := config.ScreenHeight / 3
	for _, line := range menuLines(m.result) {
		text.Draw(screen, line, face, config.ScreenWidth/2-150, y, config.TextLightColor)
		y += config.HUDLineHeight * 2
	}
}

func (m *MenuState) Exit() {}

// menuLines builds the screen text, with the results of the last run if any.
func menuLines(result *app.Snapshot) []string {
	lines := []string{"INFECTION TOWER DEFENSE"}
	if result != nil {
		outcome := "DEFEAT"
		if result.State == component.Victory {
			outcome = "VICTORY"
		}
		lines = append(lines,
			outcome,
			fmt.Sprintf("Waves cleared: %d/%d   Lives left: %d", result.WavesCleared, result.WaveCount, result.Lives),
			fmt.Sprintf("Kills: %d   Leaked: %d", result.Kills, result.Leaked),
			fmt.Sprintf("Infections: %d   Cured: %d", result.Infections, result.Cures),
			fmt.Sprintf("Money earned: %d", result.LifetimeEarned),
		)
	}
	return append(lines, "Press Space to start")
}
