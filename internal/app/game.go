// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/event"
	"infection-td/internal/system"
	"infection-td/internal/types"
	"infection-td/internal/utils"
	"infection-td/pkg/pathmap"
)

// Game holds the simulation context of one run. Everything outside the
// package talks to it through the command methods and Snapshot.
type Game struct {
	runID              string
	ecs                *entity.ECS
	library            *defs.Library
	path               *pathmap.Path
	eventDispatcher    *event.Dispatcher
	rng                *utils.PRNGService
	clock              system.Clock
	scheduler          *system.Scheduler
	movementSystem     *system.MovementSystem
	statusEffectSystem *system.StatusEffectSystem
	auraSystem         *system.AuraSystem
	combatSystem       *system.CombatSystem
	towerSystem        *system.TowerSystem
	projectileSystem   *system.ProjectileSystem
	visualEffectSystem *system.VisualEffectSystem
	waveSystem         *system.WaveSystem
	infectionSystem    *system.InfectionSystem
	economySystem      *system.EconomySystem
	stateSystem        *system.StateSystem

	width, height float64
	isPaused      bool
	nextWave      int
}

// Option configures NewGame.
type Option func(*options)

type options struct {
	seed          int64
	viewportWidth float64
	width, height float64
	listeners     []event.Listener
}

// WithSeed fixes the PRNG seed (infection choice). 0 means time-based.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithViewportWidth stretches the path's last waypoint to the given width.
func WithViewportWidth(width float64) Option {
	return func(o *options) { o.viewportWidth = width }
}

// WithBounds sets the playfield size used for placement checks.
func WithBounds(width, height float64) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithListener subscribes l to every event before the run starts.
func WithListener(l event.Listener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// NewGame validates gd and builds a run. Configuration problems are fatal.
func NewGame(gd *defs.GameData, opts ...Option) (*Game, error) {
	o := options{width: config.ScreenWidth, height: config.ScreenHeight}
	for _, opt := range opts {
		opt(&o)
	}
	if err := defs.Validate(gd); err != nil {
		return nil, fmt.Errorf("cannot start run: %w", err)
	}
	lib := defs.NewLibrary(gd)

	var points []pathmap.Point
	for _, p := range lib.PathPoints() {
		points = append(points, pathmap.Point{X: p.X, Y: p.Y})
	}
	path, err := pathmap.New(points)
	if err != nil {
		return nil, fmt.Errorf("cannot start run: %w", err)
	}
	if o.viewportWidth > 0 {
		if err := path.FitToWidth(o.viewportWidth); err != nil {
			return nil, fmt.Errorf("cannot start run: %w", err)
		}
	}

	ecs := entity.NewECS()
	ecs.Wallet.Money = lib.Settings.StartMoney
	ecs.Lives = lib.Settings.StartLives
	eventDispatcher := event.NewDispatcher()
	for _, l := range o.listeners {
		eventDispatcher.SubscribeAll(l)
	}

	g := &Game{
		runID:           uuid.New().String(),
		ecs:             ecs,
		library:         lib,
		path:            path,
		eventDispatcher: eventDispatcher,
		rng:             utils.NewPRNGService(o.seed),
		scheduler:       system.NewScheduler(),
		width:           o.width,
		height:          o.height,
	}
	g.movementSystem = system.NewMovementSystem(ecs, path)
	g.statusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.auraSystem = system.NewAuraSystem(ecs, lib.Settings.Infection)
	g.combatSystem = system.NewCombatSystem(ecs)
	g.economySystem = system.NewEconomySystem(ecs, eventDispatcher, lib.RefundRate())
	g.infectionSystem = system.NewInfectionSystem(ecs, eventDispatcher, g.rng, lib.Settings.Infection, g.scheduler, g.auraSystem)
	g.towerSystem = system.NewTowerSystem(ecs, g.combatSystem, g.economySystem, g.infectionSystem)
	g.projectileSystem = system.NewProjectileSystem(ecs, g.statusEffectSystem)
	g.visualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.waveSystem = system.NewWaveSystem(ecs, lib, path, eventDispatcher)
	g.stateSystem = system.NewStateSystem(ecs, eventDispatcher, len(lib.Waves))

	log.Printf("Game %s: started with %d money, %d lives, %d waves, infection enabled: %v (seed %d)",
		g.runID, ecs.Wallet.Money, ecs.Lives, len(lib.Waves), g.infectionSystem.Enabled(), g.rng.Seed())
	return g, nil
}

// Update progresses the simulation by one frame. rawDelta is validated
// and clamped first. Nothing happens while paused or after the run ended.
func (g *Game) Update(rawDelta float64) {
	if g.isPaused || g.ecs.GameState != component.Running {
		return
	}
	dt := g.clock.Step(rawDelta)
	g.ecs.GameTime = g.clock.Elapsed
	waveActive := g.ecs.Wave.InProgress()

	g.waveSystem.Update(dt)
	g.towerSystem.Update(dt, waveActive)
	g.projectileSystem.Update(dt)
	g.visualEffectSystem.Update(dt)
	g.statusEffectSystem.Update(dt)
	g.movementSystem.Update(dt)
	g.cleanupDestroyedEntities()
	if g.ecs.GameState != component.Running {
		return
	}
	g.infectionSystem.Update(dt, waveActive)
	g.waveSystem.CheckCompletion()
}

// cleanupDestroyedEntities removes dead and leaked enemies and spent
// projectiles. Kills pay the reward, leaks cost lives.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range entity.SortedIDs(g.ecs.Enemies) {
		// После конца забега ни наград, ни событий
		if g.ecs.GameState != component.Running {
			break
		}
		enemy := g.ecs.Enemies[id]
		dead := !g.ecs.Healths[id].Alive()
		if !dead && !enemy.ReachedEnd {
			continue
		}
		g.ecs.RemoveEnemy(id)
		if dead {
			g.ecs.Stats.Kills++
			g.economySystem.Earn(enemy.Reward)
			g.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
		} else {
			g.ecs.Stats.Leaked++
			g.ecs.Lives -= enemy.LeakDamage
			g.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
		}
	}
	for id, proj := range g.ecs.Projectiles {
		if !proj.Active {
			g.ecs.RemoveProjectile(id)
		}
	}
}

// Pause suspends Update. Rendering keeps reading snapshots.
func (g *Game) Pause() { g.isPaused = true }

// Resume continues a paused run.
func (g *Game) Resume() { g.isPaused = false }

// TogglePause flips the pause flag and returns the new value.
func (g *Game) TogglePause() bool {
	g.isPaused = !g.isPaused
	return g.isPaused
}

// IsPaused reports whether updates are suspended.
func (g *Game) IsPaused() bool { return g.isPaused }

// StartWave starts wave n (0-based).
func (g *Game) StartWave(n int) error {
	if g.ecs.GameState != component.Running {
		return ErrRunOver
	}
	if g.ecs.Wave.InProgress() {
		return ErrWaveInProgress
	}
	if n < 0 || n >= len(g.library.Waves) {
		return fmt.Errorf("wave %d: %w", n, ErrUnknownWave)
	}
	g.waveSystem.StartWave(n)
	g.nextWave = n + 1
	return nil
}

// StartNextWave starts the wave after the last one started.
func (g *Game) StartNextWave() error {
	return g.StartWave(g.nextWave)
}

// NextWave returns the index StartNextWave would start.
func (g *Game) NextWave() int { return g.nextWave }

// RunID identifies this run in logs and snapshots.
func (g *Game) RunID() string { return g.runID }

// State returns whether the run is going, lost or won.
func (g *Game) State() component.GameState { return g.ecs.GameState }

// IsInfected reports whether tower id is currently infected.
func (g *Game) IsInfected(id types.EntityID) bool {
	_, ok := g.ecs.Infections[id]
	return ok
}

// TowerOption is one buildable tower definition, as listed to the player.
type TowerOption struct {
	ID   string
	Name string
	Type defs.TowerType
	Cost int
}

// TowerCatalog lists buildable towers in configuration order.
func (g *Game) TowerCatalog() []TowerOption {
	out := make([]TowerOption, 0, len(g.library.TowerOrder))
	for _, id := range g.library.TowerOrder {
		def := g.library.Towers[id]
		out = append(out, TowerOption{ID: def.ID, Name: def.Name, Type: def.Type, Cost: def.CostPlace})
	}
	return out
}
