// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	// Окончательная проверка dt — в Game.Update, здесь только реальное время кадра
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "data/game.yaml", "Game data file (.yaml, .yml or .json)")
	seed := flag.Int64("seed", 0, "PRNG seed for infections, 0 means time-based")
	devMode := flag.Bool("dev", false, "Start directly in the game state")
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	data, err := defs.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	sm := state.NewStateMachine()
	if *devMode {
		gs, err := state.NewGameState(sm, data, *seed)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, data, *seed, nil))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Infection Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
