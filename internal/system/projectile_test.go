package system

import (
	"testing"

	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/types"
)

func addProjectile(ecs *entity.ECS, proj *component.Projectile, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	proj.Active = true
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Projectiles[id] = proj
	return id
}

func TestProjectile_HomingHitAppliesSlow(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs, NewStatusEffectSystem(ecs))
	enemy := addEnemy(ecs, 10, 0, 50, 0)
	proj := addProjectile(ecs, &component.Projectile{
		Kind:       component.ProjectileHoming,
		TargetID:   enemy,
		Damage:     10,
		Speed:      420,
		SourceType: defs.TowerOffensiveSingle,
		Ability:    &defs.AbilityDef{Type: defs.EffectSlow, Value: 0.5, Duration: 2},
	}, 0, 0)

	ps.Update(0.1)
	if hp := ecs.Healths[enemy].Value; hp != 40 {
		t.Errorf("Expected 40 hp after hit, got %v", hp)
	}
	if ecs.Projectiles[proj].Active {
		t.Error("Expected projectile to be spent")
	}
	if speed := ecs.Velocities[enemy].Speed; speed != 0.5 {
		t.Errorf("Expected slowed speed 0.5, got %v", speed)
	}
	if ecs.Stats.DamageByType[defs.TowerOffensiveSingle] != 10 {
		t.Errorf("Expected damage recorded, got %v", ecs.Stats.DamageByType)
	}
}

func TestProjectile_LostTarget(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs, NewStatusEffectSystem(ecs))
	enemy := addEnemy(ecs, 300, 0, 50, 0)
	proj := addProjectile(ecs, &component.Projectile{Kind: component.ProjectileHoming, TargetID: enemy, Damage: 10, Speed: 100}, 0, 0)

	ps.Update(0.1)
	if !ecs.Projectiles[proj].Active {
		t.Fatal("Expected projectile still in flight")
	}
	ecs.RemoveEnemy(enemy)
	ps.Update(0.1)
	if ecs.Projectiles[proj].Active {
		t.Error("Expected projectile without target to be deactivated")
	}
}

func TestProjectile_Lifetime(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs, NewStatusEffectSystem(ecs))
	enemy := addEnemy(ecs, 10000, 0, 50, 0)
	proj := addProjectile(ecs, &component.Projectile{Kind: component.ProjectileHoming, TargetID: enemy, Damage: 10, Speed: 1}, 0, 0)

	for i := 0; i < 40; i++ {
		ps.Update(0.1)
	}
	if ecs.Projectiles[proj].Active {
		t.Error("Expected projectile to expire")
	}
}

func TestProjectile_BlastRadiusInclusive(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs, NewStatusEffectSystem(ecs))
	inside := addEnemy(ecs, 100, 0, 50, 0)
	edge := addEnemy(ecs, 160, 0, 50, 0)
	outside := addEnemy(ecs, 161, 0, 50, 0)
	addProjectile(ecs, &component.Projectile{
		Kind:        component.ProjectileArea,
		ImpactX:     100,
		ImpactY:     0,
		BlastRadius: 60,
		Damage:      20,
		Speed:       300,
		SourceType:  defs.TowerOffensiveArea,
	}, 100, 0)

	ps.Update(0.1)
	for id, want := range map[types.EntityID]float64{inside: 30, edge: 30, outside: 50} {
		if hp := ecs.Healths[id].Value; hp != want {
			t.Errorf("enemy %d: expected %v hp, got %v", id, want, hp)
		}
	}
}

func TestApplyDamage_RecordsDealtOnly(t *testing.T) {
	ecs := entity.NewECS()
	enemy := addEnemy(ecs, 0, 0, 5, 0)

	dealt := ApplyDamage(ecs, enemy, 20, 99, defs.TowerOffensiveHeavy)
	if dealt != 5 || ecs.Stats.DamageByTower[99] != 5 {
		t.Errorf("Expected 5 dealt and recorded, got %v / %v", dealt, ecs.Stats.DamageByTower[99])
	}
	if ApplyDamage(ecs, enemy, 20, 99, defs.TowerOffensiveHeavy) != 0 {
		t.Error("Expected no damage on a dead enemy")
	}
}
