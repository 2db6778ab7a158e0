// internal/defs/waves.go
package defs

// CompositionGroup spawns Count enemies of one type, IntervalMs apart,
// starting DelayMs after the wave begins.
type CompositionGroup struct {
	EnemyID    string  `json:"enemy_id" yaml:"enemy_id"`
	Count      int     `json:"count" yaml:"count"`
	IntervalMs float64 `json:"interval_ms" yaml:"interval_ms"`
	DelayMs    float64 `json:"delay_ms,omitempty" yaml:"delay_ms,omitempty"`
}

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	Composition []CompositionGroup `json:"composition" yaml:"composition"`
}

// InfectionEffect is the debuff applied to an infected tower, in percent.
type InfectionEffect struct {
	FireratePct float64 `json:"firerate_pct" yaml:"firerate_pct"`
	RangePct    float64 `json:"range_pct" yaml:"range_pct"`
}

// InfectionSettings configures the periodic infection hazard.
type InfectionSettings struct {
	EverySeconds       float64         `json:"every_s" yaml:"every_s"`
	CureClicksRequired int             `json:"cure_clicks_required" yaml:"cure_clicks_required"`
	Effect             InfectionEffect `json:"effect" yaml:"effect"`
}

// PathPoint is a waypoint in the configuration file.
type PathPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// GameSettings are run-wide parameters.
type GameSettings struct {
	StartMoney int                `json:"start_money" yaml:"start_money"`
	StartLives int                `json:"start_lives" yaml:"start_lives"`
	RefundRate *float64           `json:"refund_rate,omitempty" yaml:"refund_rate,omitempty"`
	Infection  *InfectionSettings `json:"infection_mechanic,omitempty" yaml:"infection_mechanic,omitempty"`
	Path       []PathPoint        `json:"path,omitempty" yaml:"path,omitempty"`
}

// GameData is the whole configuration consumed by the simulation.
type GameData struct {
	Towers   []TowerDefinition `json:"towers" yaml:"towers"`
	Enemies  []EnemyDefinition `json:"enemies" yaml:"enemies"`
	Waves    []WaveDefinition  `json:"waves" yaml:"waves"`
	Settings GameSettings      `json:"game_settings" yaml:"game_settings"`
}

// DefaultPath is used when the configuration has no path of its own.
func DefaultPath() []PathPoint {
	return []PathPoint{
		{X: 0, Y: 150},
		{X: 400, Y: 150},
		{X: 400, Y: 450},
		{X: 800, Y: 450},
		{X: 800, Y: 750},
		{X: 1100, Y: 750},
	}
}
