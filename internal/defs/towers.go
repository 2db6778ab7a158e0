// internal/defs/towers.go
package defs

// AbilityDef is an on-hit effect carried by a tower's projectiles.
type AbilityDef struct {
	Type     EffectType `json:"type" yaml:"type"`
	Value    float64    `json:"value" yaml:"value"`
	Duration float64    `json:"duration_s" yaml:"duration_s"`
}

// StatBlock is a partial set of tower stats. The base block and every
// upgrade use it; nil fields mean "not set here".
type StatBlock struct {
	Damage          *float64    `json:"dmg,omitempty" yaml:"dmg,omitempty"`
	FireRate        *float64    `json:"firerate_s,omitempty" yaml:"firerate_s,omitempty"` // seconds between shots
	Range           *float64    `json:"range,omitempty" yaml:"range,omitempty"`
	Income          *float64    `json:"income,omitempty" yaml:"income,omitempty"`
	Interval        *float64    `json:"interval_s,omitempty" yaml:"interval_s,omitempty"`
	BuffFireratePct *float64    `json:"buff_firerate_pct,omitempty" yaml:"buff_firerate_pct,omitempty"`
	BuffRangePct    *float64    `json:"buff_range_pct,omitempty" yaml:"buff_range_pct,omitempty"`
	ScanDelay       *float64    `json:"scan_delay_s,omitempty" yaml:"scan_delay_s,omitempty"`
	AutoHeal        *bool       `json:"auto_heal,omitempty" yaml:"auto_heal,omitempty"`
	Ability         *AbilityDef `json:"ability,omitempty" yaml:"ability,omitempty"`
	AoeRadius       *float64    `json:"aoe_radius,omitempty" yaml:"aoe_radius,omitempty"`
	ProjectileSpeed *float64    `json:"projectile_speed,omitempty" yaml:"projectile_speed,omitempty"`
}

// UpgradeDef is one step of a tower's upgrade table.
type UpgradeDef struct {
	Cost      int `json:"cost" yaml:"cost"`
	StatBlock `yaml:",inline"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID        string       `json:"id" yaml:"id"`
	Name      string       `json:"name" yaml:"name"`
	Type      TowerType    `json:"type" yaml:"type"`
	CostPlace int          `json:"cost_place" yaml:"cost_place"`
	Base      StatBlock    `json:"base" yaml:"base"`
	Upgrades  []UpgradeDef `json:"upgrades" yaml:"upgrades"`
}

// Stats are fully resolved tower stats for one level.
type Stats struct {
	Damage          float64
	FireRate        float64
	Range           float64
	Income          float64
	Interval        float64
	BuffFireratePct float64
	BuffRangePct    float64
	ScanDelay       float64
	AutoHeal        bool
	Ability         *AbilityDef
	AoeRadius       float64
	ProjectileSpeed float64
}

// Clone returns a copy that shares no pointers with s.
func (s Stats) Clone() Stats {
	if s.Ability != nil {
		a := *s.Ability
		s.Ability = &a
	}
	return s
}

// CanAttack reports whether damage, firerate and range are all defined.
func (s Stats) CanAttack() bool {
	return s.Damage > 0 && s.FireRate > 0 && s.Range > 0
}

// IsBuffSource reports whether the stats project any buff.
func (s Stats) IsBuffSource() bool {
	return s.BuffFireratePct != 0 || s.BuffRangePct != 0
}

// MaxLevel is the highest reachable 0-based level.
func (d *TowerDefinition) MaxLevel() int {
	return len(d.Upgrades)
}

// UpgradeCost returns the price of going from level to level+1.
func (d *TowerDefinition) UpgradeCost(level int) (int, bool) {
	if level < 0 || level >= len(d.Upgrades) {
		return 0, false
	}
	return d.Upgrades[level].Cost, true
}

// StatsAt resolves the base block plus upgrades[0:level] applied in order.
func (d *TowerDefinition) StatsAt(level int) Stats {
	var s Stats
	s.apply(&d.Base)
	for i := 0; i < level && i < len(d.Upgrades); i++ {
		s.apply(&d.Upgrades[i].StatBlock)
	}
	return s
}

func (s *Stats) apply(b *StatBlock) {
	setIf(&s.Damage, b.Damage)
	setIf(&s.FireRate, b.FireRate)
	setIf(&s.Range, b.Range)
	setIf(&s.Income, b.Income)
	setIf(&s.Interval, b.Interval)
	setIf(&s.BuffFireratePct, b.BuffFireratePct)
	setIf(&s.BuffRangePct, b.BuffRangePct)
	setIf(&s.ScanDelay, b.ScanDelay)
	setIf(&s.AoeRadius, b.AoeRadius)
	setIf(&s.ProjectileSpeed, b.ProjectileSpeed)
	if b.AutoHeal != nil {
		s.AutoHeal = *b.AutoHeal
	}
	if b.Ability != nil {
		a := *b.Ability
		s.Ability = &a
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
