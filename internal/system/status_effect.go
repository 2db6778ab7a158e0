// internal/system/status_effect.go
package system

import (
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update counts down every active effect and recomputes speed for enemies
// whose effects expired.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.StatusEffects) {
		if s.ecs.StatusEffects[id].Decay(deltaTime) {
			s.recomputeSpeed(id)
		}
	}
}

// Apply puts an on-hit ability effect on an enemy. Bosses ignore slows
// weaker than the immunity threshold; such applications are dropped.
func (s *StatusEffectSystem) Apply(enemyID types.EntityID, ability *defs.AbilityDef) bool {
	if ability == nil {
		return false
	}
	enemy, ok := s.ecs.Enemies[enemyID]
	effects, hasEffects := s.ecs.StatusEffects[enemyID]
	if !ok || !hasEffects {
		return false
	}
	if ability.Type == defs.EffectSlow && enemy.Tier == config.BossTier && ability.Value < config.BossSlowImmunityThreshold {
		return false
	}
	if !effects.Apply(ability.Type, ability.Value, ability.Duration) {
		return false
	}
	s.recomputeSpeed(enemyID)
	return true
}

func (s *StatusEffectSystem) recomputeSpeed(id types.EntityID) {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}
	effects := s.ecs.StatusEffects[id]
	if effects == nil || effects.Len() == 0 {
		vel.Speed = vel.Base
		return
	}
	vel.Speed = vel.Base * effects.SpeedMultiplier()
}

