package system

import (
	"testing"

	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
)

func TestSelectTarget_TieBreaks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ecs *entity.ECS) (want uint64)
	}{
		{"furthest segment wins", func(ecs *entity.ECS) uint64 {
			addEnemy(ecs, 10, 0, 100, 0)
			return uint64(addEnemy(ecs, 50, 0, 10, 1))
		}},
		{"more hp wins on same segment", func(ecs *entity.ECS) uint64 {
			addEnemy(ecs, 10, 0, 20, 1)
			return uint64(addEnemy(ecs, 50, 0, 40, 1))
		}},
		{"nearer wins on same segment and hp", func(ecs *entity.ECS) uint64 {
			addEnemy(ecs, 50, 0, 20, 1)
			return uint64(addEnemy(ecs, 10, 0, 20, 1))
		}},
		{"older wins on full tie", func(ecs *entity.ECS) uint64 {
			id := addEnemy(ecs, 0, 20, 20, 1)
			addEnemy(ecs, 0, -20, 20, 1)
			return uint64(id)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			want := tt.setup(ecs)
			got, ok := SelectTarget(ecs, 0, 0, 100)
			if !ok || uint64(got) != want {
				t.Errorf("SelectTarget() = %d, %v; want %d", got, ok, want)
			}
		})
	}
}

func TestSelectTarget_RangeInclusive(t *testing.T) {
	ecs := entity.NewECS()
	edge := addEnemy(ecs, 100, 0, 10, 0)
	addEnemy(ecs, 0, 100.5, 10, 3)
	dead := addEnemy(ecs, 5, 0, 10, 5)
	ecs.Healths[dead].Value = 0

	got, ok := SelectTarget(ecs, 0, 0, 100)
	if !ok || got != edge {
		t.Errorf("Expected enemy exactly at range to be chosen, got %d ok=%v", got, ok)
	}
}

func TestCombat_Cooldown(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)
	gun := addTower(ecs, defs.TowerOffensiveSingle, 0, 0, gunStats())
	addEnemy(ecs, 50, 0, 100, 0)

	combat.Update(gun, 0.1)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("Expected a shot on a ready tower, got %d projectiles", len(ecs.Projectiles))
	}
	if ecs.Towers[gun].Cooldown != 1 {
		t.Errorf("Expected cooldown reset to firerate, got %v", ecs.Towers[gun].Cooldown)
	}
	combat.Update(gun, 0.5)
	if len(ecs.Projectiles) != 1 {
		t.Errorf("Expected no shot while cooling down")
	}
	combat.Update(gun, 0.5)
	if len(ecs.Projectiles) != 2 {
		t.Errorf("Expected second shot after the cooldown, got %d", len(ecs.Projectiles))
	}
}

func TestCombat_NoTargetKeepsReady(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)
	gun := addTower(ecs, defs.TowerOffensiveSingle, 0, 0, gunStats())
	ecs.Towers[gun].Cooldown = 0.05

	combat.Update(gun, 0.1)
	if ecs.Towers[gun].Cooldown != 0 || len(ecs.Projectiles) != 0 {
		t.Errorf("Expected ready tower without shot, cooldown %v", ecs.Towers[gun].Cooldown)
	}
	addEnemy(ecs, 20, 0, 10, 0)
	combat.Update(gun, 0.01)
	if len(ecs.Projectiles) != 1 {
		t.Error("Expected immediate shot once a target appears")
	}
}

func TestCombat_IncompleteStatsNeverFire(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)
	stats := gunStats()
	stats.FireRate = 0
	gun := addTower(ecs, defs.TowerOffensiveSingle, 0, 0, stats)
	addEnemy(ecs, 20, 0, 10, 0)

	combat.Update(gun, 0.1)
	if len(ecs.Projectiles) != 0 {
		t.Error("Expected tower without firerate to stay idle")
	}
}

func TestCombat_AreaCapturesImpactPoint(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)
	mortar := addTower(ecs, defs.TowerOffensiveArea, 0, 0, gunStats())
	addEnemy(ecs, 30, 40, 10, 0)

	combat.Update(mortar, 0.1)
	for _, proj := range ecs.Projectiles {
		if proj.Kind != component.ProjectileArea || proj.ImpactX != 30 || proj.ImpactY != 40 {
			t.Errorf("Unexpected area projectile %+v", proj)
		}
		if proj.BlastRadius <= 0 {
			t.Error("Expected default blast radius")
		}
	}
}
