package app

import (
	"errors"
	"testing"

	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/event"
)

const testGameYAML = `
towers:
  - id: gun
    name: Gun
    type: offensive-single
    cost_place: 100
    base: {dmg: 100, firerate_s: 0.5, range: 150, ability: {type: slow, value: 0.3, duration_s: 1}}
    upgrades:
      - {cost: 30, dmg: 150}
  - id: buffer
    name: Buffer
    type: support
    cost_place: 50
    base: {range: 100, buff_firerate_pct: 20}
  - id: sensor
    name: Sensor
    type: support-sensor
    cost_place: 60
    base: {range: 120, auto_heal: true, scan_delay_s: 2}
enemies:
  - {id: grunt, name: Grunt, hp: 30, speed: 1, reward: 5, color: "#44aa44"}
waves:
  - composition:
      - {enemy_id: grunt, count: 3, interval_ms: 500}
  - composition:
      - {enemy_id: grunt, count: 1, interval_ms: 0}
game_settings:
  start_money: 500
  start_lives: 2
  infection_mechanic:
    every_s: 10
    cure_clicks_required: 4
    effect: {firerate_pct: 50, range_pct: 20}
`

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	gd, err := defs.Parse([]byte(testGameYAML), defs.FormatYAML)
	if err != nil {
		t.Fatalf("defs.Parse() error = %v", err)
	}
	g, err := NewGame(gd, append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

// runUntil ticks the game until cond holds. Fails after maxTicks.
func runUntil(t *testing.T, g *Game, maxTicks int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if cond() {
			return
		}
		g.Update(0.05)
	}
	if !cond() {
		t.Fatalf("condition not reached after %d ticks", maxTicks)
	}
}

func TestNewGame_RejectsBadData(t *testing.T) {
	if _, err := NewGame(&defs.GameData{}); !errors.Is(err, defs.ErrNoTowers) {
		t.Errorf("Expected ErrNoTowers, got %v", err)
	}

	gd, _ := defs.Parse([]byte(testGameYAML), defs.FormatYAML)
	gd.Settings.Path = []defs.PathPoint{{X: 0, Y: 0}, {X: 0, Y: 0}}
	if _, err := NewGame(gd); err == nil {
		t.Error("Expected a degenerate path to be rejected")
	}
}

func TestNewGame_Initial(t *testing.T) {
	g := newTestGame(t, WithViewportWidth(1200))
	snap := g.Snapshot()
	if snap.Money != 500 || snap.Lives != 2 || snap.State != component.Running {
		t.Errorf("Unexpected initial snapshot %+v", snap)
	}
	if snap.WaveIndex != -1 || snap.WaveCount != 2 {
		t.Errorf("Expected no wave yet out of 2, got %d / %d", snap.WaveIndex, snap.WaveCount)
	}
	if last := snap.Path[len(snap.Path)-1]; last.X != 1200 {
		t.Errorf("Expected path stretched to the viewport, got %+v", last)
	}
	if snap.RunID == "" {
		t.Error("Expected a run id")
	}
}

func TestPlaceTower_Rejections(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.PlaceTower("gun", 200, 250); err != nil {
		t.Fatalf("PlaceTower() error = %v", err)
	}

	tests := []struct {
		name  string
		defID string
		x, y  float64
		want  error
	}{
		{"on path", "gun", 200, 150, ErrOnPath},
		{"at path clearance", "gun", 200, 178, ErrOnPath},
		{"left of field", "gun", -5, 300, ErrOutOfBounds},
		{"right of field", "gun", 1300, 300, ErrOutOfBounds},
		{"next to tower", "gun", 210, 250, ErrTooCloseToTower},
		{"unknown definition", "laser", 600, 250, ErrUnknownTowerDef},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.PlaceTower(tt.defID, tt.x, tt.y); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if g.ecs.Wallet.Money != 400 || len(g.ecs.Towers) != 1 {
				t.Errorf("Expected rejected placement to change nothing, money %d towers %d", g.ecs.Wallet.Money, len(g.ecs.Towers))
			}
		})
	}

	g.ecs.Wallet.Money = 10
	if _, err := g.PlaceTower("gun", 600, 250); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if g.ecs.Wallet.Money != 10 {
		t.Error("Expected money untouched")
	}
}

func TestUpgradeAndSell(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower("gun", 200, 250)

	if err := g.UpgradeTower(id); err != nil {
		t.Fatalf("UpgradeTower() error = %v", err)
	}
	if dmg := g.ecs.TowerStats[id].Effective.Damage; dmg != 150 {
		t.Errorf("Expected upgraded damage 150, got %v", dmg)
	}
	if err := g.UpgradeTower(id); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("Expected ErrMaxLevel, got %v", err)
	}
	if g.ecs.Wallet.Money != 370 {
		t.Fatalf("Expected 370 after place and upgrade, got %d", g.ecs.Wallet.Money)
	}

	refund, err := g.SellTower(id)
	if err != nil || refund != 91 {
		t.Fatalf("Expected refund 91, got %d (%v)", refund, err)
	}
	if g.ecs.Wallet.Money != 461 || g.ecs.Wallet.LifetimeEarned != 0 {
		t.Errorf("Unexpected wallet %+v", *g.ecs.Wallet)
	}
	if _, err := g.SellTower(id); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("Expected ErrUnknownTower for a sold tower, got %v", err)
	}
	if err := g.UpgradeTower(id); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("Expected ErrUnknownTower, got %v", err)
	}
}

func TestSupportBuffFollowsTopology(t *testing.T) {
	g := newTestGame(t)
	gun, _ := g.PlaceTower("gun", 200, 250)
	buffer, _ := g.PlaceTower("buffer", 260, 250)

	if fr := g.ecs.TowerStats[gun].Effective.FireRate; fr >= 0.5 {
		t.Errorf("Expected buffed firerate below 0.5, got %v", fr)
	}
	if _, err := g.SellTower(buffer); err != nil {
		t.Fatalf("SellTower() error = %v", err)
	}
	if fr := g.ecs.TowerStats[gun].Effective.FireRate; fr != 0.5 {
		t.Errorf("Expected base firerate after selling the buffer, got %v", fr)
	}
}

func TestStartWave_Errors(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(5); !errors.Is(err, ErrUnknownWave) {
		t.Errorf("Expected ErrUnknownWave, got %v", err)
	}
	if err := g.StartWave(0); err != nil {
		t.Fatalf("StartWave() error = %v", err)
	}
	if err := g.StartNextWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("Expected ErrWaveInProgress, got %v", err)
	}
	if g.NextWave() != 1 {
		t.Errorf("Expected next wave 1, got %d", g.NextWave())
	}
}

func TestCureClick(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower("gun", 200, 250)

	if _, err := g.CureClick(id); !errors.Is(err, ErrNotInfected) {
		t.Errorf("Expected ErrNotInfected, got %v", err)
	}
	g.infectionSystem.Infect(id)
	if snap := g.Snapshot(); !snap.Towers[0].Infected || snap.Towers[0].CureRequired != 4 {
		t.Fatalf("Expected infected tower in snapshot, got %+v", snap.Towers[0])
	}
	for click := 1; click <= 4; click++ {
		cured, err := g.CureClick(id)
		if err != nil || cured != (click == 4) {
			t.Fatalf("click %d: cured=%v err=%v", click, cured, err)
		}
	}
	if _, err := g.CureClick(id); !errors.Is(err, ErrNotInfected) {
		t.Errorf("Expected fifth click to be a no-op, got %v", err)
	}
}

func TestSellCancelsPendingAutoCure(t *testing.T) {
	g := newTestGame(t)
	gun, _ := g.PlaceTower("gun", 200, 250)
	if _, err := g.PlaceTower("sensor", 260, 250); err != nil {
		t.Fatalf("PlaceTower(sensor) error = %v", err)
	}
	g.infectionSystem.Infect(gun)

	g.Update(0.05)
	if g.scheduler.Len() != 1 {
		t.Fatalf("Expected one pending auto-cure, got %d", g.scheduler.Len())
	}
	if refund, _ := g.SellTower(gun); refund != 70 {
		t.Errorf("Expected refund 70, got %d", refund)
	}
	if g.scheduler.Len() != 0 {
		t.Error("Expected pending auto-cure dropped with the tower")
	}
}

func TestPauseAndClock(t *testing.T) {
	g := newTestGame(t)
	g.Update(5)
	if g.clock.Elapsed != 0.1 {
		t.Errorf("Expected oversized frame clamped to 0.1, got %v", g.clock.Elapsed)
	}

	g.Pause()
	g.Update(0.05)
	if g.clock.Ticks != 1 || !g.Snapshot().Paused {
		t.Errorf("Expected no tick while paused, ticks %d", g.clock.Ticks)
	}
	if g.TogglePause() {
		t.Fatal("Expected TogglePause to resume")
	}
	g.Update(0.05)
	if g.clock.Ticks != 2 {
		t.Errorf("Expected tick after resume, ticks %d", g.clock.Ticks)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower("gun", 200, 250)
	snap := g.Snapshot()

	snap.Towers[0].Level = 7
	snap.Path[0].X = 999
	if g.ecs.Towers[id].Level != 0 || g.path.Point(0).X == 999 {
		t.Error("Expected snapshot edits to leave the game untouched")
	}

	snap.Towers[0].Effective.Ability.Value = 0.99
	snap.Towers[0].Base.Ability.Value = 0.99
	stats := g.ecs.TowerStats[id]
	if stats.Effective.Ability.Value != 0.3 || stats.Base.Ability.Value != 0.3 {
		t.Errorf("Expected tower ability to stay 0.3, got %v / %v", stats.Effective.Ability.Value, stats.Base.Ability.Value)
	}
}

func TestGameOver(t *testing.T) {
	var events []event.EventType
	g := newTestGame(t, WithListener(event.ListenerFunc(func(e event.Event) {
		events = append(events, e.Type)
	})))
	if err := g.StartWave(0); err != nil {
		t.Fatalf("StartWave() error = %v", err)
	}

	runUntil(t, g, 5000, func() bool { return g.ecs.GameState == component.GameOver })
	if g.ecs.Lives != 0 || g.ecs.Stats.Leaked != 2 {
		t.Errorf("Expected 0 lives after 2 leaks, got %d / %d", g.ecs.Lives, g.ecs.Stats.Leaked)
	}
	if n := len(events); n < 2 || events[n-1] != event.GameOver || events[n-2] != event.EnemyLeaked {
		t.Errorf("Expected the final leak followed by GameOver, got %v", events)
	}

	ticks := g.clock.Ticks
	g.Update(0.05)
	if g.clock.Ticks != ticks {
		t.Error("Expected the simulation to stop after game over")
	}
	if _, err := g.PlaceTower("gun", 200, 250); !errors.Is(err, ErrRunOver) {
		t.Errorf("Expected ErrRunOver, got %v", err)
	}
}

func TestVictory(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.PlaceTower("gun", 60, 230); err != nil {
		t.Fatalf("PlaceTower() error = %v", err)
	}

	if err := g.StartNextWave(); err != nil {
		t.Fatalf("StartNextWave() error = %v", err)
	}
	runUntil(t, g, 5000, func() bool { return g.ecs.Wave.Phase == component.WaveComplete })
	if g.ecs.GameState != component.Running {
		t.Fatal("Expected the run to continue after the first wave")
	}
	if err := g.StartNextWave(); err != nil {
		t.Fatalf("StartNextWave() error = %v", err)
	}
	runUntil(t, g, 5000, func() bool { return g.ecs.GameState == component.Victory })

	snap := g.Snapshot()
	if snap.Kills != 4 || snap.Money != 420 || snap.LifetimeEarned != 20 {
		t.Errorf("Expected 4 kills worth 20, got kills %d money %d earned %d", snap.Kills, snap.Money, snap.LifetimeEarned)
	}
	if len(snap.DamageByTower) != 1 || snap.DamageByTower[1] != 120 {
		t.Errorf("Expected 120 damage from tower 1, got %v", snap.DamageByTower)
	}
}

func TestCleanupStopsAtGameOver(t *testing.T) {
	var events []event.EventType
	g := newTestGame(t, WithListener(event.ListenerFunc(func(e event.Event) {
		events = append(events, e.Type)
	})))
	g.ecs.Lives = 1
	leaker := g.ecs.NewEntity()
	g.ecs.Enemies[leaker] = &component.Enemy{Reward: 5, LeakDamage: 1, ReachedEnd: true}
	g.ecs.Healths[leaker] = &component.Health{Value: 10, Max: 10}
	dead := g.ecs.NewEntity()
	g.ecs.Enemies[dead] = &component.Enemy{Reward: 5, LeakDamage: 1}
	g.ecs.Healths[dead] = &component.Health{Value: 0, Max: 10}

	g.cleanupDestroyedEntities()

	if g.State() != component.GameOver {
		t.Fatalf("Expected GameOver, got %v", g.State())
	}
	if g.ecs.Stats.Kills != 0 || g.ecs.Wallet.Money != 500 {
		t.Errorf("Expected no reward after game over, kills %d money %d", g.ecs.Stats.Kills, g.ecs.Wallet.Money)
	}
	if len(events) != 2 || events[0] != event.EnemyLeaked || events[1] != event.GameOver {
		t.Errorf("Expected [EnemyLeaked GameOver], got %v", events)
	}
}

func TestVictoryNeedsEveryWave(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.PlaceTower("gun", 60, 230); err != nil {
		t.Fatalf("PlaceTower() error = %v", err)
	}
	if err := g.StartWave(1); err != nil {
		t.Fatalf("StartWave() error = %v", err)
	}
	runUntil(t, g, 5000, func() bool { return g.ecs.Wave.Phase == component.WaveComplete })
	if g.State() != component.Running {
		t.Fatalf("Expected skipping wave 0 not to win, got %v", g.State())
	}
	if g.Snapshot().WavesCleared != 1 {
		t.Errorf("Expected 1 wave cleared, got %d", g.Snapshot().WavesCleared)
	}
}

func TestQueries(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower("gun", 200, 250)
	if g.IsInfected(id) {
		t.Error("Expected a fresh tower to be healthy")
	}
	g.infectionSystem.Infect(id)
	if !g.IsInfected(id) {
		t.Error("Expected IsInfected after infection")
	}
	catalog := g.TowerCatalog()
	if len(catalog) != 3 || catalog[0].ID != "gun" || catalog[0].Cost != 100 {
		t.Errorf("Unexpected catalog %+v", catalog)
	}
	if g.RunID() == "" || g.RunID() != g.Snapshot().RunID {
		t.Error("Expected a stable run id")
	}
}
