package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Alive reports whether there is any health left.
func (h *Health) Alive() bool {
	return h != nil && h.Value > 0
}

// Damage lowers health, never below zero. Returns the amount actually removed.
func (h *Health) Damage(amount float64) float64 {
	if amount <= 0 || h.Value <= 0 {
		return 0
	}
	if amount > h.Value {
		amount = h.Value
	}
	h.Value -= amount
	return amount
}
