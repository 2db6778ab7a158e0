// internal/utils/math.go
package utils

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveToward steps from (x, y) toward (tx, ty) by at most step and returns
// the new point and the distance still left to the target.
func MoveToward(x, y, tx, ty, step float64) (nx, ny, left float64) {
	dist := Distance(x, y, tx, ty)
	if dist <= step || dist == 0 {
		return tx, ty, 0
	}
	k := step / dist
	return x + (tx-x)*k, y + (ty-y)*k, dist - step
}
