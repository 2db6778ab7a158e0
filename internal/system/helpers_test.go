package system

import (
	"math"
	"testing"

	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
	"infection-td/pkg/pathmap"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestPath: вправо на 100, затем вниз на 100.
func newTestPath(t *testing.T) *pathmap.Path {
	t.Helper()
	path, err := pathmap.New([]pathmap.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	if err != nil {
		t.Fatalf("pathmap.New() error = %v", err)
	}
	return path
}

func addEnemy(ecs *entity.ECS, x, y, hp float64, segment int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Base: 1, Speed: 1}
	ecs.PathCursors[id] = &component.PathCursor{Index: segment}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.StatusEffects[id] = component.NewStatusEffects()
	ecs.Enemies[id] = &component.Enemy{DefID: "grunt", Reward: 5, LeakDamage: 1}
	return id
}

func addTower(ecs *entity.ECS, kind defs.TowerType, x, y float64, stats defs.Stats) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: string(kind), Type: kind}
	ecs.TowerStats[id] = &component.TowerStats{Base: stats, Buffed: stats, Effective: stats}
	return id
}

func gunStats() defs.Stats {
	return defs.Stats{Damage: 10, FireRate: 1, Range: 100}
}
