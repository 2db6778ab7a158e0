// internal/defs/library.go
package defs

import "infection-td/internal/config"

// Library indexes validated game data by id.
type Library struct {
	Towers     map[string]*TowerDefinition
	Enemies    map[string]*EnemyDefinition
	TowerOrder []string // порядок из файла, для горячих клавиш
	Waves      []WaveDefinition
	Settings   GameSettings
}

// NewLibrary builds lookup tables over gd. gd must already be validated.
func NewLibrary(gd *GameData) *Library {
	lib := &Library{
		Towers:   make(map[string]*TowerDefinition, len(gd.Towers)),
		Enemies:  make(map[string]*EnemyDefinition, len(gd.Enemies)),
		Waves:    gd.Waves,
		Settings: gd.Settings,
	}
	for i := range gd.Towers {
		lib.Towers[gd.Towers[i].ID] = &gd.Towers[i]
		lib.TowerOrder = append(lib.TowerOrder, gd.Towers[i].ID)
	}
	for i := range gd.Enemies {
		lib.Enemies[gd.Enemies[i].ID] = &gd.Enemies[i]
	}
	return lib
}

// RefundRate returns the configured sell refund fraction.
func (l *Library) RefundRate() float64 {
	if l.Settings.RefundRate != nil {
		return *l.Settings.RefundRate
	}
	return config.DefaultRefundRate
}

// PathPoints returns the configured path or the default one.
func (l *Library) PathPoints() []PathPoint {
	if len(l.Settings.Path) >= 2 {
		return l.Settings.Path
	}
	return DefaultPath()
}
