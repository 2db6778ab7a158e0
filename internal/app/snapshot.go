// internal/app/snapshot.go
package app

import (
	"image/color"
	"maps"

	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
	"infection-td/pkg/pathmap"
)

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	ID        types.EntityID
	DefID     string
	X, Y      float64
	HP, MaxHP float64
	Speed     float64
	Slowed    bool
	Segment   int
	Tier      string
	Color     color.RGBA
	Flash     bool // только что получил урон
}

// TowerView is a read-only copy of one tower.
type TowerView struct {
	ID           types.EntityID
	DefID        string
	Name         string
	Type         defs.TowerType
	X, Y         float64
	Level        int
	MaxLevel     int
	UpgradeCost  int // 0 на максимальном уровне
	SellValue    int
	Base         defs.Stats
	Effective    defs.Stats
	Infected     bool
	CureClicks   int
	CureRequired int
}

// ProjectileView is a read-only copy of one projectile.
type ProjectileView struct {
	ID   types.EntityID
	Kind component.ProjectileKind
	X, Y float64
	Type defs.TowerType
}

// BlastView is an expanding impact ring.
type BlastView struct {
	X, Y   float64
	Radius float64
	Fade   float64 // 0 в начале, 1 в конце
}

// Snapshot is a deep copy of everything a renderer or test needs. It
// shares no memory with the simulation.
type Snapshot struct {
	RunID          string
	Time           float64
	Money          int
	LifetimeEarned int
	Lives          int
	State          component.GameState
	Paused         bool
	WaveIndex      int // -1 до первой волны
	WavePhase      component.WavePhase
	WavePending    int
	WaveCount      int
	NextWave       int
	InfectionTimer float64
	Enemies        []EnemyView
	Towers         []TowerView
	Projectiles    []ProjectileView
	Blasts         []BlastView
	Path           []pathmap.Point
	Kills          int
	Leaked         int
	Infections     int
	Cures          int
	WavesCleared   int
	DamageByTower  map[types.EntityID]float64
	DamageByType   map[defs.TowerType]float64
}

// Snapshot copies the current simulation state. Entities are listed in id
// order.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ecs
	snap := Snapshot{
		RunID:          g.runID,
		Time:           g.clock.Elapsed,
		Money:          ecs.Wallet.Money,
		LifetimeEarned: ecs.Wallet.LifetimeEarned,
		Lives:          ecs.Lives,
		State:          ecs.GameState,
		Paused:         g.isPaused,
		WaveIndex:      -1,
		WaveCount:      len(g.library.Waves),
		NextWave:       g.nextWave,
		InfectionTimer: g.infectionSystem.Timer(),
		Path:           g.path.Points(),
		Kills:          ecs.Stats.Kills,
		Leaked:         ecs.Stats.Leaked,
		Infections:     ecs.Stats.Infections,
		Cures:          ecs.Stats.Cures,
		WavesCleared:   g.stateSystem.Cleared(),
		DamageByTower:  maps.Clone(ecs.Stats.DamageByTower),
		DamageByType:   maps.Clone(ecs.Stats.DamageByType),
	}
	if w := ecs.Wave; w != nil {
		snap.WaveIndex = w.Index
		snap.WavePhase = w.Phase
		snap.WavePending = w.Pending()
	}

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		pos := ecs.Positions[id]
		health := ecs.Healths[id]
		view := EnemyView{
			ID:      id,
			DefID:   enemy.DefID,
			X:       pos.X,
			Y:       pos.Y,
			HP:      health.Value,
			MaxHP:   health.Max,
			Tier:    enemy.Tier,
			Segment: ecs.PathCursors[id].Index,
			Color:   config.DefaultEnemyColor,
		}
		_, view.Flash = ecs.DamageFlashes[id]
		if def, ok := g.library.Enemies[enemy.DefID]; ok {
			if c, ok := def.RGBA(); ok {
				view.Color = c
			}
		}
		if v := ecs.Velocities[id]; v != nil {
			view.Speed = v.Speed
			view.Slowed = v.Speed < v.Base
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range entity.SortedIDs(ecs.Towers) {
		tower := ecs.Towers[id]
		pos := ecs.Positions[id]
		stats := ecs.TowerStats[id]
		def := g.library.Towers[tower.DefID]
		view := TowerView{
			ID:        id,
			DefID:     tower.DefID,
			Name:      tower.Name,
			Type:      tower.Type,
			X:         pos.X,
			Y:         pos.Y,
			Level:     tower.Level,
			MaxLevel:  def.MaxLevel(),
			SellValue: g.economySystem.RefundFor(tower.TotalCost),
			Base:      stats.Base.Clone(),
			Effective: stats.Effective.Clone(),
		}
		if cost, ok := def.UpgradeCost(tower.Level); ok {
			view.UpgradeCost = cost
		}
		if inf, ok := ecs.Infections[id]; ok {
			view.Infected = true
			view.CureClicks = inf.CureClicks
			view.CureRequired = inf.CureRequired
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		proj := ecs.Projectiles[id]
		pos := ecs.Positions[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:   id,
			Kind: proj.Kind,
			X:    pos.X,
			Y:    pos.Y,
			Type: proj.SourceType,
		})
	}
	for _, id := range entity.SortedIDs(ecs.Blasts) {
		blast := ecs.Blasts[id]
		snap.Blasts = append(snap.Blasts, BlastView{
			X:      blast.X,
			Y:      blast.Y,
			Radius: blast.Radius(),
			Fade:   blast.Timer / blast.Duration,
		})
	}
	return snap
}
