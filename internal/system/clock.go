// internal/system/clock.go
package system

import (
	"math"

	"infection-td/internal/config"
)

// Clock turns raw frame time into a validated simulation step.
type Clock struct {
	Elapsed float64 // суммарное симулированное время
	Ticks   uint64
}

// Step validates raw, advances the clock and returns the dt to simulate.
// Non-finite, zero and negative values become the nominal step; anything
// above MaxDeltaTime is clamped.
func (c *Clock) Step(raw float64) float64 {
	dt := ClampDelta(raw)
	c.Elapsed += dt
	c.Ticks++
	return dt
}

// ClampDelta applies the dt rules without advancing a clock.
func ClampDelta(raw float64) float64 {
	switch {
	case math.IsNaN(raw) || math.IsInf(raw, -1) || raw <= 0:
		return config.NominalDeltaTime
	case math.IsInf(raw, 1) || raw > config.MaxDeltaTime:
		return config.MaxDeltaTime
	}
	return raw
}
