// internal/defs/types.go
package defs

// TowerType is the behavior category of a tower.
type TowerType string

const (
	TowerEconomic        TowerType = "economic"
	TowerOffensiveSingle TowerType = "offensive-single"
	TowerOffensiveHeavy  TowerType = "offensive-heavy"
	TowerOffensiveArea   TowerType = "offensive-area"
	TowerSupport         TowerType = "support"
	TowerSupportSensor   TowerType = "support-sensor"
)

// Valid reports whether t is one of the known categories.
func (t TowerType) Valid() bool {
	switch t {
	case TowerEconomic, TowerOffensiveSingle, TowerOffensiveHeavy, TowerOffensiveArea, TowerSupport, TowerSupportSensor:
		return true
	}
	return false
}

// IsOffensive reports whether towers of this category attack enemies.
func (t TowerType) IsOffensive() bool {
	return t == TowerOffensiveSingle || t == TowerOffensiveHeavy || t == TowerOffensiveArea
}

// IsSupport covers both plain support and sensor towers. Neither receives buffs.
func (t TowerType) IsSupport() bool {
	return t == TowerSupport || t == TowerSupportSensor
}

// InfectionImmune reports whether the category can never be infected.
func (t TowerType) InfectionImmune() bool {
	return t == TowerSupportSensor
}

// EffectType identifies a status effect kind.
type EffectType string

const (
	EffectSlow EffectType = "slow"
)
