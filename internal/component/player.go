// internal/component/player.go
package component

import (
	"infection-td/internal/defs"
	"infection-td/internal/types"
)

// Wallet is the player's money.
type Wallet struct {
	Money          int
	LifetimeEarned int // never decreases
}

// GameStats are run-wide counters for the HUD and analytics.
type GameStats struct {
	Kills         int
	Leaked        int
	Infections    int
	Cures         int
	DamageByTower map[types.EntityID]float64
	DamageByType  map[defs.TowerType]float64
}

// NewGameStats returns zeroed stats.
func NewGameStats() *GameStats {
	return &GameStats{
		DamageByTower: make(map[types.EntityID]float64),
		DamageByType:  make(map[defs.TowerType]float64),
	}
}

// RecordDamage attributes dealt damage to a tower.
func (s *GameStats) RecordDamage(tower types.EntityID, kind defs.TowerType, amount float64) {
	s.DamageByTower[tower] += amount
	s.DamageByType[kind] += amount
}
