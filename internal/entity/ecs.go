// internal/entity/ecs.go
package entity

import (
	"slices"

	"infection-td/internal/component"
	"infection-td/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathCursors   map[types.EntityID]*component.PathCursor
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	StatusEffects map[types.EntityID]*component.StatusEffects
	Towers        map[types.EntityID]*component.Tower
	TowerStats    map[types.EntityID]*component.TowerStats
	Infections    map[types.EntityID]*component.Infection
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Blasts        map[types.EntityID]*component.Blast
	Wave          *component.Wave
	Wallet        *component.Wallet
	Stats         *component.GameStats
	Lives         int
	GameState     component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathCursors:   make(map[types.EntityID]*component.PathCursor),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Towers:        make(map[types.EntityID]*component.Tower),
		TowerStats:    make(map[types.EntityID]*component.TowerStats),
		Infections:    make(map[types.EntityID]*component.Infection),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Blasts:        make(map[types.EntityID]*component.Blast),
		Wallet:        &component.Wallet{},
		Stats:         component.NewGameStats(),
		GameState:     component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyAlive reports whether id is a present enemy with health left.
func (ecs *ECS) EnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	return ecs.Healths[id].Alive()
}

// RemoveEnemy drops every enemy component of id.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathCursors, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.DamageFlashes, id)
}

// RemoveTower drops every tower component of id.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.TowerStats, id)
	delete(ecs.Infections, id)
}

// RemoveProjectile drops every projectile component of id.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}

// SortedIDs returns the keys of m in ascending order, so systems visit
// entities in creation order regardless of map iteration.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
