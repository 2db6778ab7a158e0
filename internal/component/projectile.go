// internal/component/projectile.go
package component

import (
	"infection-td/internal/defs"
	"infection-td/internal/types"
)

// ProjectileKind selects how a projectile resolves.
type ProjectileKind int

const (
	// ProjectileHoming follows a live enemy and hits only it.
	ProjectileHoming ProjectileKind = iota
	// ProjectileArea flies to a fixed point and explodes there.
	ProjectileArea
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Kind        ProjectileKind
	TargetID    types.EntityID // только для ProjectileHoming
	ImpactX     float64        // только для ProjectileArea
	ImpactY     float64
	BlastRadius float64
	Damage      float64
	Speed       float64
	SourceID    types.EntityID
	SourceType  defs.TowerType
	Ability     *defs.AbilityDef
	Elapsed     float64
	Active      bool
}
