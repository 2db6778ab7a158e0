// pkg/pathmap/path.go
package pathmap

import (
	"errors"
	"fmt"
	"math"
)

// Point is a waypoint in screen pixels.
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Lerp interpolates between p and o, t in [0, 1].
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

var (
	ErrTooFewPoints      = errors.New("path needs at least 2 points")
	ErrDuplicateWaypoint = errors.New("consecutive waypoints must be distinct")
)

// Path is the fixed polyline enemies walk along. Segment i runs from
// point i to point i+1.
type Path struct {
	points  []Point
	lengths []float64 // длина каждого сегмента
	total   float64
}

// New builds a path from waypoints. The slice is copied.
func New(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	p := &Path{points: append([]Point(nil), points...)}
	for i := 1; i < len(p.points); i++ {
		if p.points[i] == p.points[i-1] {
			return nil, fmt.Errorf("waypoint %d: %w", i, ErrDuplicateWaypoint)
		}
	}
	p.measure()
	return p, nil
}

func (p *Path) measure() {
	p.lengths = make([]float64, len(p.points)-1)
	p.total = 0
	for i := range p.lengths {
		p.lengths[i] = p.points[i].Distance(p.points[i+1])
		p.total += p.lengths[i]
	}
}

// SegmentCount returns the number of segments (points - 1).
func (p *Path) SegmentCount() int {
	return len(p.lengths)
}

// PointCount returns the number of waypoints.
func (p *Path) PointCount() int {
	return len(p.points)
}

// Point returns waypoint i.
func (p *Path) Point(i int) Point {
	return p.points[i]
}

// Points returns a copy of all waypoints.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Segment returns the endpoints and length of segment i.
func (p *Path) Segment(i int) (Point, Point, float64) {
	return p.points[i], p.points[i+1], p.lengths[i]
}

// TotalLength returns the summed length of all segments.
func (p *Path) TotalLength() float64 {
	return p.total
}

// DistanceTo returns the shortest distance from pt to any segment of the path.
func (p *Path) DistanceTo(pt Point) float64 {
	best := math.MaxFloat64
	for i := range p.lengths {
		if d := distanceToSegment(pt, p.points[i], p.points[i+1]); d < best {
			best = d
		}
	}
	return best
}

// IsNear reports whether pt lies within clearance of the path (inclusive).
func (p *Path) IsNear(pt Point, clearance float64) bool {
	return p.DistanceTo(pt) <= clearance
}

// PositionAt maps normalized progress in [0, 1] onto the path.
func (p *Path) PositionAt(progress float64) Point {
	if progress <= 0 || math.IsNaN(progress) {
		return p.points[0]
	}
	if progress >= 1 {
		return p.points[len(p.points)-1]
	}
	target := progress * p.total
	for i, l := range p.lengths {
		if target <= l {
			return p.points[i].Lerp(p.points[i+1], target/l)
		}
		target -= l
	}
	return p.points[len(p.points)-1]
}

// FitToWidth moves the terminal waypoint horizontally onto the right edge
// of a viewport of the given width. Applying it again with the same width
// changes nothing.
func (p *Path) FitToWidth(width float64) error {
	last := len(p.points) - 1
	fitted := Point{X: width, Y: p.points[last].Y}
	if fitted == p.points[last] {
		return nil
	}
	if fitted == p.points[last-1] {
		return fmt.Errorf("fit to width %.0f: %w", width, ErrDuplicateWaypoint)
	}
	p.points[last] = fitted
	p.measure()
	return nil
}

func distanceToSegment(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return pt.Distance(a)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return pt.Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
