// component/tower.go
package component

import "infection-td/internal/defs"

type Tower struct {
	DefID       string
	Name        string
	Type        defs.TowerType
	Level       int     // 0-based
	TotalCost   int     // стоимость постройки плюс все улучшения
	Cooldown    float64 // время до следующего выстрела
	IncomeTimer float64 // накопитель для экономических башен
}

// TowerStats keeps the three stat snapshots of a tower. Only Effective is
// read by behavior; all three are rewritten by the buff recalculation.
type TowerStats struct {
	Base      defs.Stats
	Buffed    defs.Stats
	Effective defs.Stats
}

// Infection marks a tower as infected. Serial distinguishes successive
// infections of the same tower.
type Infection struct {
	CureClicks   int
	CureRequired int
	Serial       uint64
}
