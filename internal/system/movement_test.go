package system

import (
	"testing"

	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
)

func TestMovement_ProgressIsMonotone(t *testing.T) {
	ecs := entity.NewECS()
	path := newTestPath(t)
	ms := NewMovementSystem(ecs, path)
	id := addEnemy(ecs, 0, 0, 10, 0)

	prev := *ecs.PathCursors[id]
	for i := 0; i < 1000 && !ecs.Enemies[id].ReachedEnd; i++ {
		ms.Update(0.05)
		cur := *ecs.PathCursors[id]
		if cur.Before(prev) {
			t.Fatalf("tick %d: progress went backwards %+v -> %+v", i, prev, cur)
		}
		prev = cur
	}
	if !ecs.Enemies[id].ReachedEnd {
		t.Fatal("Expected enemy to reach the end")
	}
	if pos := ecs.Positions[id]; pos.X != 100 || pos.Y != 100 {
		t.Errorf("Expected enemy parked at the last waypoint, got %+v", pos)
	}
}

func TestMovement_OvershootDiscarded(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, newTestPath(t))
	id := addEnemy(ecs, 95, 0, 10, 0)
	ecs.PathCursors[id].Distance = 95

	ms.Update(0.1) // 6 px
	cursor := ecs.PathCursors[id]
	if cursor.Index != 1 || cursor.Distance != 0 {
		t.Errorf("Expected cursor at start of segment 1, got %+v", cursor)
	}
	if pos := ecs.Positions[id]; pos.X != 100 || pos.Y != 0 {
		t.Errorf("Expected enemy at the corner, got %+v", pos)
	}
}

func TestMovement_SkipsDead(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, newTestPath(t))
	id := addEnemy(ecs, 0, 0, 10, 0)
	ecs.Healths[id].Value = 0

	ms.Update(0.1)
	if *ecs.PathCursors[id] != (component.PathCursor{}) {
		t.Errorf("Expected dead enemy to stay put, got %+v", ecs.PathCursors[id])
	}
}

func TestStatusEffect_BossSlowImmunity(t *testing.T) {
	tests := []struct {
		name  string
		tier  string
		value float64
		want  float64
	}{
		{"weak slow on grunt", "", 0.3, 0.7},
		{"weak slow on boss", "boss", 0.3, 1},
		{"strong slow on boss", "boss", 0.6, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			effects := NewStatusEffectSystem(ecs)
			id := addEnemy(ecs, 0, 0, 10, 0)
			ecs.Enemies[id].Tier = tt.tier

			effects.Apply(id, &defs.AbilityDef{Type: defs.EffectSlow, Value: tt.value, Duration: 2})
			if got := ecs.Velocities[id].Speed; !approx(got, tt.want) {
				t.Errorf("Expected speed %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatusEffect_ExpiryRestoresSpeed(t *testing.T) {
	ecs := entity.NewECS()
	effects := NewStatusEffectSystem(ecs)
	id := addEnemy(ecs, 0, 0, 10, 0)

	effects.Apply(id, &defs.AbilityDef{Type: defs.EffectSlow, Value: 0.5, Duration: 1})
	effects.Update(0.5)
	if ecs.Velocities[id].Speed != 0.5 {
		t.Fatalf("Expected slow active, speed %v", ecs.Velocities[id].Speed)
	}
	effects.Update(0.5)
	if ecs.Velocities[id].Speed != 1 {
		t.Errorf("Expected base speed after expiry, got %v", ecs.Velocities[id].Speed)
	}
}
