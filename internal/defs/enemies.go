// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	HP     float64 `json:"hp" yaml:"hp"`
	Speed  float64 `json:"speed" yaml:"speed"`
	Reward int     `json:"reward" yaml:"reward"`
	Color  string  `json:"color" yaml:"color"`
	Tier   string  `json:"tier,omitempty" yaml:"tier,omitempty"`     // "boss" включает иммунитет к слабым замедлениям
	Damage int     `json:"damage,omitempty" yaml:"damage,omitempty"` // сколько жизней снимает при прорыве
}

// RGBA parses Color as #rrggbb or #rrggbbaa. ok is false for anything else.
func (d *EnemyDefinition) RGBA() (c color.RGBA, ok bool) {
	s := strings.TrimPrefix(d.Color, "#")
	c.A = 255
	switch len(s) {
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
		return c, err == nil
	case 8:
		_, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		return c, err == nil
	}
	return color.RGBA{}, false
}
