// internal/system/visual_effect.go
package system

import (
	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/entity"
	"infection-td/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и
// кольцами взрывов. На симуляцию они не влияют.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.DamageFlashes) {
		flash := s.ecs.DamageFlashes[id]
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Blasts) {
		blast := s.ecs.Blasts[id]
		blast.Timer += deltaTime
		if blast.Timer >= blast.Duration {
			delete(s.ecs.Blasts, id)
		}
	}
}

// Flash marks an enemy as just hit.
func Flash(ecs *entity.ECS, enemyID types.EntityID) {
	ecs.DamageFlashes[enemyID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
}

// SpawnBlast adds an expanding ring at an area impact.
func SpawnBlast(ecs *entity.ECS, x, y, radius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Blasts[id] = &component.Blast{X: x, Y: y, MaxRadius: radius, Duration: config.BlastEffectDuration}
	return id
}
