// internal/component/visual.go
package component

// DamageFlash указывает, что враг должен быть отрисован цветом урона.
type DamageFlash struct {
	Timer    float64 // сколько осталось
	Duration float64
}

// Blast — расширяющееся кольцо взрыва снаряда по площади. Только визуал.
type Blast struct {
	X, Y      float64
	MaxRadius float64
	Timer     float64 // сколько эффект уже активен
	Duration  float64
}

// Radius returns the current ring radius.
func (b *Blast) Radius() float64 {
	if b.Duration <= 0 {
		return b.MaxRadius
	}
	return b.MaxRadius * min(1, b.Timer/b.Duration)
}
