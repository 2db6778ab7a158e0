// internal/component/status_effect.go
package component

import "infection-td/internal/defs"

// StatusEffect is one active effect on an enemy.
type StatusEffect struct {
	Value     float64
	Remaining float64 // seconds
}

// StatusEffects holds at most one active record per effect type.
type StatusEffects struct {
	active map[defs.EffectType]StatusEffect
}

// NewStatusEffects returns an empty tracker.
func NewStatusEffects() *StatusEffects {
	return &StatusEffects{active: make(map[defs.EffectType]StatusEffect)}
}

// Apply stores the effect if the type is not active yet, or if the new value
// or the new duration is strictly greater than the current one. A weaker
// reapplication never shortens a stronger effect. Returns true when stored.
func (s *StatusEffects) Apply(kind defs.EffectType, value, duration float64) bool {
	if duration <= 0 {
		return false
	}
	if cur, ok := s.active[kind]; ok && value <= cur.Value && duration <= cur.Remaining {
		return false
	}
	s.active[kind] = StatusEffect{Value: value, Remaining: duration}
	return true
}

// Decay counts every effect down by dt and removes expired ones.
// Returns true if anything expired.
func (s *StatusEffects) Decay(dt float64) bool {
	expired := false
	for kind, e := range s.active {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			delete(s.active, kind)
			expired = true
			continue
		}
		s.active[kind] = e
	}
	return expired
}

// Get returns the active record for kind.
func (s *StatusEffects) Get(kind defs.EffectType) (StatusEffect, bool) {
	e, ok := s.active[kind]
	return e, ok
}

// Len returns the number of active effects.
func (s *StatusEffects) Len() int {
	return len(s.active)
}

// SpeedMultiplier multiplies the modifiers of all active effects.
func (s *StatusEffects) SpeedMultiplier() float64 {
	m := 1.0
	for kind, e := range s.active {
		m *= speedModifier(kind, e.Value)
	}
	return m
}

func speedModifier(kind defs.EffectType, value float64) float64 {
	switch kind {
	case defs.EffectSlow:
		if value >= 1 {
			return 0
		}
		return 1 - value
	default:
		return 1
	}
}
