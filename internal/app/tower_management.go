// internal/app/tower_management.go
package app

import (
	"fmt"
	"log"

	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/entity"
	"infection-td/internal/event"
	"infection-td/internal/types"
	"infection-td/internal/utils"
	"infection-td/pkg/pathmap"
)

// PlaceTower builds a tower of definition defID centered at (x, y).
func (g *Game) PlaceTower(defID string, x, y float64) (types.EntityID, error) {
	if g.ecs.GameState != component.Running {
		return 0, ErrRunOver
	}
	def, ok := g.library.Towers[defID]
	if !ok {
		return 0, fmt.Errorf("tower %q: %w", defID, ErrUnknownTowerDef)
	}
	if err := g.canPlaceTower(x, y); err != nil {
		return 0, err
	}
	if !g.economySystem.Purchase(def.CostPlace) {
		return 0, ErrInsufficientFunds
	}

	id := g.ecs.NewEntity()
	g.ecs.Positions[id] = &component.Position{X: x, Y: y}
	g.ecs.Towers[id] = &component.Tower{
		DefID:     def.ID,
		Name:      def.Name,
		Type:      def.Type,
		TotalCost: def.CostPlace,
	}
	base := def.StatsAt(0)
	g.ecs.TowerStats[id] = &component.TowerStats{Base: base, Buffed: base, Effective: base}
	g.auraSystem.RecalculateAuras()

	g.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

func (g *Game) canPlaceTower(x, y float64) error {
	if x < 0 || y < 0 || x > g.width || y > g.height {
		return ErrOutOfBounds
	}
	if g.path.IsNear(pathmap.Point{X: x, Y: y}, config.PathClearance) {
		return ErrOnPath
	}
	for id := range g.ecs.Towers {
		pos := g.ecs.Positions[id]
		if utils.Distance(pos.X, pos.Y, x, y) < config.MinTowerSpacing {
			return ErrTooCloseToTower
		}
	}
	return nil
}

// UpgradeTower raises the tower one level, paying the next upgrade's cost.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.ecs.GameState != component.Running {
		return ErrRunOver
	}
	tower, ok := g.ecs.Towers[id]
	if !ok {
		return ErrUnknownTower
	}
	def := g.library.Towers[tower.DefID]
	cost, ok := def.UpgradeCost(tower.Level)
	if !ok {
		return ErrMaxLevel
	}
	if !g.economySystem.Purchase(cost) {
		return ErrInsufficientFunds
	}
	tower.Level++
	tower.TotalCost += cost
	g.ecs.TowerStats[id].Base = def.StatsAt(tower.Level)
	g.auraSystem.RecalculateAuras()

	g.eventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// SellTower removes the tower and refunds part of everything spent on it.
// Pending auto-cures for it are dropped.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	if g.ecs.GameState != component.Running {
		return 0, ErrRunOver
	}
	tower, ok := g.ecs.Towers[id]
	if !ok {
		return 0, ErrUnknownTower
	}
	refund := g.economySystem.Refund(tower.TotalCost)
	if n := g.scheduler.CancelTarget(id); n > 0 {
		log.Printf("Game %s: dropped %d pending auto-cures of sold tower %d", g.runID, n, id)
	}
	g.ecs.RemoveTower(id)
	g.auraSystem.RecalculateAuras()

	g.eventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return refund, nil
}

// CureClick registers one cure click on an infected tower. It returns
// true on the click that removes the infection.
func (g *Game) CureClick(id types.EntityID) (bool, error) {
	if g.ecs.GameState != component.Running {
		return false, ErrRunOver
	}
	if _, ok := g.ecs.Towers[id]; !ok {
		return false, ErrUnknownTower
	}
	cured, infected := g.infectionSystem.CureClick(id)
	if !infected {
		return false, ErrNotInfected
	}
	return cured, nil
}

// TowerAt returns the tower whose footprint contains (x, y).
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(g.ecs.Towers) {
		pos := g.ecs.Positions[id]
		if utils.Distance(pos.X, pos.Y, x, y) <= config.TowerRadius {
			return id, true
		}
	}
	return 0, false
}
