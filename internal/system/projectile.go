// internal/system/projectile.go
package system

import (
	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/entity"
	"infection-td/internal/types"
	"infection-td/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, effects *StatusEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, effects: effects}
}

// Update moves every active projectile and resolves hits. Deactivated
// projectiles stay in the ECS until cleanup.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if !proj.Active || pos == nil {
			proj.Active = false
			continue
		}

		proj.Elapsed += deltaTime
		if proj.Elapsed > config.ProjectileMaxLifetime {
			proj.Active = false
			continue
		}

		switch proj.Kind {
		case component.ProjectileHoming:
			s.updateHoming(proj, pos, deltaTime)
		case component.ProjectileArea:
			s.updateArea(proj, pos, deltaTime)
		}
	}
}

func (s *ProjectileSystem) updateHoming(proj *component.Projectile, pos *component.Position, deltaTime float64) {
	// Цель пропала или уже мертва — снаряд исчезает без эффекта.
	if !s.ecs.EnemyAlive(proj.TargetID) {
		proj.Active = false
		return
	}
	targetPos := s.ecs.Positions[proj.TargetID]
	var left float64
	pos.X, pos.Y, left = utils.MoveToward(pos.X, pos.Y, targetPos.X, targetPos.Y, proj.Speed*deltaTime)
	if left > config.ProjectileHitEpsilon {
		return
	}
	s.hitTarget(proj)
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	ApplyDamage(s.ecs, proj.TargetID, proj.Damage, proj.SourceID, proj.SourceType)
	if proj.Ability != nil && s.ecs.EnemyAlive(proj.TargetID) {
		s.effects.Apply(proj.TargetID, proj.Ability)
	}
	proj.Active = false
}

func (s *ProjectileSystem) updateArea(proj *component.Projectile, pos *component.Position, deltaTime float64) {
	var left float64
	pos.X, pos.Y, left = utils.MoveToward(pos.X, pos.Y, proj.ImpactX, proj.ImpactY, proj.Speed*deltaTime)
	if left > config.ProjectileHitEpsilon {
		return
	}
	SpawnBlast(s.ecs, proj.ImpactX, proj.ImpactY, proj.BlastRadius)
	for _, enemyID := range s.enemiesInBlast(proj.ImpactX, proj.ImpactY, proj.BlastRadius) {
		ApplyDamage(s.ecs, enemyID, proj.Damage, proj.SourceID, proj.SourceType)
	}
	proj.Active = false
}

// enemiesInBlast collects living enemies with distance <= radius.
func (s *ProjectileSystem) enemiesInBlast(x, y, radius float64) []types.EntityID {
	var hit []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if !s.ecs.EnemyAlive(id) {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos != nil && utils.Distance(x, y, pos.X, pos.Y) <= radius {
			hit = append(hit, id)
		}
	}
	return hit
}
