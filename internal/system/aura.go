package system

import (
	"math"

	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
	"infection-td/internal/utils"
)

// AuraSystem пересчитывает эффективные характеристики всех башен:
// base → баффы от башен поддержки → дебафф заражения.
type AuraSystem struct {
	ecs       *entity.ECS
	infection *defs.InfectionSettings // nil, если механика заражения выключена
}

func NewAuraSystem(ecs *entity.ECS, infection *defs.InfectionSettings) *AuraSystem {
	return &AuraSystem{ecs: ecs, infection: infection}
}

// RecalculateAuras полностью пересчитывает Buffed и Effective у всех башен из Base.
// Вызывать после любого изменения набора башен, их уровня или заражения.
// Повторный вызов без изменений даёт идентичный результат.
func (s *AuraSystem) RecalculateAuras() {
	ids := entity.SortedIDs(s.ecs.Towers)
	for _, id := range ids {
		tower := s.ecs.Towers[id]
		stats, ok := s.ecs.TowerStats[id]
		if !ok {
			continue
		}
		buffed := stats.Base
		if !tower.Type.IsSupport() {
			fireMul, rangeMul := s.multipliersFor(id, ids)
			buffed.FireRate *= fireMul
			buffed.Range *= rangeMul
		}
		stats.Buffed = buffed

		effective := buffed
		if _, infected := s.ecs.Infections[id]; infected && s.infection != nil {
			effective.FireRate *= 1 + s.infection.Effect.FireratePct/100
			effective.Range = math.Max(0, effective.Range*(1-s.infection.Effect.RangePct/100))
		}
		stats.Effective = effective
	}
}

// multipliersFor combines every support tower that has target in its own
// unbuffed range. Order does not matter: both factors are products.
func (s *AuraSystem) multipliersFor(target types.EntityID, ids []types.EntityID) (fireMul, rangeMul float64) {
	fireMul, rangeMul = 1, 1
	targetPos := s.ecs.Positions[target]
	for _, srcID := range ids {
		if srcID == target {
			continue
		}
		src := s.ecs.Towers[srcID]
		srcStats := s.ecs.TowerStats[srcID]
		srcPos := s.ecs.Positions[srcID]
		if !src.Type.IsSupport() || srcStats == nil || srcPos == nil || !srcStats.Base.IsBuffSource() {
			continue
		}
		if utils.Distance(srcPos.X, srcPos.Y, targetPos.X, targetPos.Y) > srcStats.Base.Range {
			continue
		}
		fireMul *= 1 - srcStats.Base.BuffFireratePct/100
		rangeMul *= 1 + srcStats.Base.BuffRangePct/100
	}
	return fireMul, rangeMul
}
