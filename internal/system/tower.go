// internal/system/tower.go
package system

import (
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
)

// TowerSystem runs the per-tick behavior of every tower by category.
type TowerSystem struct {
	ecs       *entity.ECS
	combat    *CombatSystem
	economy   *EconomySystem
	infection *InfectionSystem
}

func NewTowerSystem(ecs *entity.ECS, combat *CombatSystem, economy *EconomySystem, infection *InfectionSystem) *TowerSystem {
	return &TowerSystem{ecs: ecs, combat: combat, economy: economy, infection: infection}
}

func (s *TowerSystem) Update(deltaTime float64, waveActive bool) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		switch {
		case tower.Type == defs.TowerEconomic:
			if waveActive {
				s.updateIncome(id, deltaTime)
			}
		case tower.Type.IsOffensive():
			s.combat.Update(id, deltaTime)
		case tower.Type == defs.TowerSupportSensor:
			s.infection.ScanFrom(id)
		}
		// Обычная поддержка действует только через пересчёт аур.
	}
}

// updateIncome pays Income every Interval seconds of wave time.
func (s *TowerSystem) updateIncome(id types.EntityID, deltaTime float64) {
	stats, ok := s.ecs.TowerStats[id]
	if !ok || stats.Effective.Income <= 0 || stats.Effective.Interval <= 0 {
		return
	}
	tower := s.ecs.Towers[id]
	tower.IncomeTimer += deltaTime
	for tower.IncomeTimer >= stats.Effective.Interval {
		tower.IncomeTimer -= stats.Effective.Interval
		s.economy.Earn(int(stats.Effective.Income))
	}
}
