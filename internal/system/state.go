package system

import (
	"infection-td/internal/component"
	"infection-td/internal/entity"
	"infection-td/internal/event"
)

// StateSystem переводит забег в GameOver или Victory по событиям.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	waveCount       int
	cleared         map[int]bool // индексы волн, пройденных хотя бы раз
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, waveCount int) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		waveCount:       waveCount,
		cleared:         make(map[int]bool),
	}
	eventDispatcher.Subscribe(event.WaveCompleted, ss)
	eventDispatcher.Subscribe(event.EnemyLeaked, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.ecs.GameState != component.Running {
		return
	}
	switch e.Type {
	case event.EnemyLeaked:
		if s.ecs.Lives <= 0 {
			s.ecs.Lives = 0
			s.ecs.GameState = component.GameOver
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	case event.WaveCompleted:
		index, ok := e.Data.(int)
		if !ok || index < 0 || index >= s.waveCount {
			return
		}
		s.cleared[index] = true
		if len(s.cleared) == s.waveCount && s.ecs.Lives > 0 {
			s.ecs.GameState = component.Victory
			s.eventDispatcher.Dispatch(event.Event{Type: event.Victory})
		}
	}
}

// Cleared returns how many distinct waves have been completed.
func (s *StateSystem) Cleared() int {
	return len(s.cleared)
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
