package system

import (
	"math"

	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
	"infection-td/internal/utils"
)

// CombatSystem выбирает цели и создаёт снаряды для атакующих башен.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update counts the tower's cooldown down and fires when it is ready and a
// target is in range. Towers without damage, firerate and range never fire.
func (s *CombatSystem) Update(towerID types.EntityID, deltaTime float64) {
	tower, ok := s.ecs.Towers[towerID]
	stats, hasStats := s.ecs.TowerStats[towerID]
	if !ok || !hasStats || !tower.Type.IsOffensive() || !stats.Effective.CanAttack() {
		return
	}
	if tower.Cooldown > 0 {
		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			return
		}
	}
	tower.Cooldown = 0
	s.Fire(towerID)
}

// Fire picks a target for the tower and spawns one projectile at it.
// Returns false when nothing is in range.
func (s *CombatSystem) Fire(towerID types.EntityID) bool {
	tower := s.ecs.Towers[towerID]
	stats := s.ecs.TowerStats[towerID].Effective
	towerPos := s.ecs.Positions[towerID]

	targetID, found := SelectTarget(s.ecs, towerPos.X, towerPos.Y, stats.Range)
	if !found {
		return false
	}
	tower.Cooldown = stats.FireRate
	s.createProjectile(towerID, tower, stats, targetID)
	return true
}

// SelectTarget returns the living enemy within rangeRadius (inclusive) that
// has progressed furthest; ties go to more remaining hp, then to the one
// nearer to (x, y), then to the older entity.
func SelectTarget(ecs *entity.ECS, x, y, rangeRadius float64) (types.EntityID, bool) {
	var (
		best     types.EntityID
		bestIdx  int
		bestHP   float64
		bestDist = math.MaxFloat64
		found    bool
	)
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		if !ecs.EnemyAlive(id) {
			continue
		}
		pos, cursor := ecs.Positions[id], ecs.PathCursors[id]
		if pos == nil || cursor == nil {
			continue
		}
		dist := utils.Distance(x, y, pos.X, pos.Y)
		if dist > rangeRadius {
			continue
		}
		hp := ecs.Healths[id].Value
		better := !found ||
			cursor.Index > bestIdx ||
			(cursor.Index == bestIdx && hp > bestHP) ||
			(cursor.Index == bestIdx && hp == bestHP && dist < bestDist)
		if better {
			best, bestIdx, bestHP, bestDist, found = id, cursor.Index, hp, dist, true
		}
	}
	return best, found
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, stats defs.Stats, targetID types.EntityID) {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	proj := &component.Projectile{
		Damage:     stats.Damage,
		Speed:      projectileSpeed(tower.Type, stats),
		SourceID:   towerID,
		SourceType: tower.Type,
		Active:     true,
	}
	if tower.Type == defs.TowerOffensiveArea {
		// Снаряд летит в точку, где цель была в момент выстрела.
		targetPos := s.ecs.Positions[targetID]
		proj.Kind = component.ProjectileArea
		proj.ImpactX, proj.ImpactY = targetPos.X, targetPos.Y
		proj.BlastRadius = stats.AoeRadius
		if proj.BlastRadius <= 0 {
			proj.BlastRadius = config.DefaultBlastRadius
		}
	} else {
		proj.Kind = component.ProjectileHoming
		proj.TargetID = targetID
		if stats.Ability != nil {
			a := *stats.Ability
			proj.Ability = &a
		}
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
}

func projectileSpeed(kind defs.TowerType, stats defs.Stats) float64 {
	if stats.ProjectileSpeed > 0 {
		return stats.ProjectileSpeed
	}
	switch kind {
	case defs.TowerOffensiveHeavy:
		return config.HeavyProjectileSpeed
	case defs.TowerOffensiveArea:
		return config.AreaProjectileSpeed
	default:
		return config.ProjectileSpeed
	}
}
