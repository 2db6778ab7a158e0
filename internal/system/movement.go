// internal/system/movement.go
package system

import (
	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/entity"
	"infection-td/pkg/pathmap"
)

// MovementSystem обновляет позиции врагов вдоль пути.
type MovementSystem struct {
	ecs  *entity.ECS
	path *pathmap.Path
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.Path) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

func (s *MovementSystem) Update(deltaTime float64) {
	segments := s.path.SegmentCount()
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.ReachedEnd || !s.ecs.Healths[id].Alive() {
			continue
		}
		cursor, hasCursor := s.ecs.PathCursors[id]
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasCursor || !hasVel || !hasPos {
			continue
		}

		if cursor.Index < segments {
			cursor.Distance += vel.Speed * deltaTime * config.SpeedScale
			_, _, length := s.path.Segment(cursor.Index)
			if cursor.Distance >= length {
				// Остаток не переносится на следующий сегмент.
				cursor.Index++
				cursor.Distance = 0
			}
		}
		if cursor.Index >= segments {
			enemy.ReachedEnd = true
		}
		pt := PositionOnPath(s.path, *cursor)
		pos.X, pos.Y = pt.X, pt.Y
	}
}

// PositionOnPath interpolates the point a cursor refers to.
func PositionOnPath(path *pathmap.Path, cursor component.PathCursor) pathmap.Point {
	if cursor.Index >= path.SegmentCount() {
		return path.Point(path.PointCount() - 1)
	}
	a, b, length := path.Segment(cursor.Index)
	return a.Lerp(b, cursor.Distance/length)
}
