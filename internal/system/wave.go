// internal/system/wave.go
package system

import (
	"cmp"
	"log"
	"slices"

	"infection-td/internal/component"
	"infection-td/internal/config"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/event"
	"infection-td/pkg/pathmap"
)

type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, path *pathmap.Path, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		library:         library,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave expands wave index into a spawn schedule and arms it. The
// schedule is built once here and never re-read from the configuration.
func (s *WaveSystem) StartWave(index int) *component.Wave {
	wave := &component.Wave{
		Index:    index,
		Phase:    component.WaveArmed,
		Schedule: s.BuildSchedule(index),
	}
	s.ecs.Wave = wave
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: index})
	return wave
}

// BuildSchedule flattens the composition groups of a wave into spawn
// entries sorted by offset. Groups with unknown enemies are skipped.
func (s *WaveSystem) BuildSchedule(index int) []component.SpawnEntry {
	waveDef := s.library.Waves[index]
	var schedule []component.SpawnEntry
	for _, group := range waveDef.Composition {
		if _, ok := s.library.Enemies[group.EnemyID]; !ok {
			log.Printf("WaveSystem: wave %d references unknown enemy %q, skipping group", index+1, group.EnemyID)
			continue
		}
		for k := 0; k < group.Count; k++ {
			schedule = append(schedule, component.SpawnEntry{
				EnemyID: group.EnemyID,
				Offset:  (group.DelayMs + float64(k)*group.IntervalMs) / 1000,
			})
		}
	}
	slices.SortStableFunc(schedule, func(a, b component.SpawnEntry) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return schedule
}

// Update advances the wave clock and spawns every entry that is due,
// in offset order, possibly several per tick.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.InProgress() {
		return
	}
	wave.Phase = component.WaveDraining
	wave.Clock += deltaTime
	for wave.Next < len(wave.Schedule) && wave.Schedule[wave.Next].Offset <= wave.Clock {
		s.spawnEnemy(wave.Schedule[wave.Next].EnemyID)
		wave.Next++
	}
}

// CheckCompletion marks the wave complete once nothing is left to spawn
// and no enemy is alive. Returns true on the tick the wave completes.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if wave == nil || wave.Phase != component.WaveDraining {
		return false
	}
	if wave.Pending() > 0 || len(s.ecs.Enemies) > 0 {
		return false
	}
	wave.Phase = component.WaveComplete
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: wave.Index})
	return true
}

func (s *WaveSystem) spawnEnemy(enemyID string) {
	def := s.library.Enemies[enemyID]
	id := s.ecs.NewEntity()
	start := s.path.Point(0)

	leak := def.Damage
	if leak <= 0 {
		leak = config.DefaultLeakDamage
	}
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Base: def.Speed, Speed: def.Speed}
	s.ecs.PathCursors[id] = &component.PathCursor{}
	s.ecs.Healths[id] = &component.Health{Value: def.HP, Max: def.HP}
	s.ecs.StatusEffects[id] = component.NewStatusEffects()
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.ID,
		Reward:     def.Reward,
		Tier:       def.Tier,
		LeakDamage: leak,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
