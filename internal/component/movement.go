// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity holds the configured speed and the speed after status effects.
type Velocity struct {
	Base  float64
	Speed float64
}

// PathCursor tracks progress along the path: the current segment and the
// distance already covered inside it.
type PathCursor struct {
	Index    int
	Distance float64
}

// Before reports whether c is strictly behind o (lexicographic order).
func (c PathCursor) Before(o PathCursor) bool {
	if c.Index != o.Index {
		return c.Index < o.Index
	}
	return c.Distance < o.Distance
}
