// internal/system/utils.go
package system

import (
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
)

// ApplyDamage наносит урон врагу и записывает его на счёт башни-источника.
// Возвращает фактически нанесённый урон.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage float64, sourceID types.EntityID, sourceType defs.TowerType) float64 {
	if !ecs.EnemyAlive(enemyID) {
		return 0
	}
	dealt := ecs.Healths[enemyID].Damage(damage)
	if dealt > 0 {
		ecs.Stats.RecordDamage(sourceID, sourceType, dealt)
		Flash(ecs, enemyID)
	}
	return dealt
}
