// internal/system/infection.go
package system

import (
	"infection-td/internal/component"
	"infection-td/internal/defs"
	"infection-td/internal/entity"
	"infection-td/internal/event"
	"infection-td/internal/types"
	"infection-td/internal/utils"
)

// InfectionSystem periodically infects a random tower while a wave runs and
// handles curing, both by clicks and by delayed sensor auto-cures.
type InfectionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	settings        *defs.InfectionSettings // nil — механика выключена
	scheduler       *Scheduler
	auras           *AuraSystem
	timer           float64
	serial          uint64
}

func NewInfectionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService,
	settings *defs.InfectionSettings, scheduler *Scheduler, auras *AuraSystem) *InfectionSystem {
	return &InfectionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		settings:        settings,
		scheduler:       scheduler,
		auras:           auras,
	}
}

// Enabled reports whether the configuration has an infection mechanic.
func (s *InfectionSystem) Enabled() bool {
	return s.settings != nil
}

// Timer returns the time accumulated toward the next infection.
func (s *InfectionSystem) Timer() float64 {
	return s.timer
}

// Update fires due auto-cures and, while a wave is active, counts toward
// the next infection.
func (s *InfectionSystem) Update(deltaTime float64, waveActive bool) {
	for _, action := range s.scheduler.Advance(deltaTime) {
		if action.Kind == ActionAutoCure {
			s.autoCure(action)
		}
	}
	if !s.Enabled() || !waveActive {
		return
	}
	s.timer += deltaTime
	if s.timer >= s.settings.EverySeconds {
		s.timer = 0
		s.InfectRandom()
	}
}

// Candidates lists towers that can currently be infected, in id order.
func (s *InfectionSystem) Candidates() []types.EntityID {
	var ids []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		if _, infected := s.ecs.Infections[id]; infected {
			continue
		}
		if s.ecs.Towers[id].Type.InfectionImmune() {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// InfectRandom infects one uniformly chosen candidate.
func (s *InfectionSystem) InfectRandom() (types.EntityID, bool) {
	if !s.Enabled() {
		return 0, false
	}
	candidates := s.Candidates()
	if len(candidates) == 0 {
		return 0, false
	}
	id := candidates[s.rng.Intn(len(candidates))]
	return id, s.Infect(id)
}

// Infect marks a tower infected and recomputes stats.
func (s *InfectionSystem) Infect(id types.EntityID) bool {
	tower, ok := s.ecs.Towers[id]
	if !s.Enabled() || !ok || tower.Type.InfectionImmune() {
		return false
	}
	if _, infected := s.ecs.Infections[id]; infected {
		return false
	}
	s.serial++
	s.ecs.Infections[id] = &component.Infection{
		CureRequired: s.settings.CureClicksRequired,
		Serial:       s.serial,
	}
	s.ecs.Stats.Infections++
	s.auras.RecalculateAuras()
	s.eventDispatcher.Dispatch(event.Event{Type: event.InfectionStarted, Data: id})
	return true
}

// CureClick registers one cure click. infected is false when the tower has
// no infection (the click does nothing); cured is true on the click that
// clears it.
func (s *InfectionSystem) CureClick(id types.EntityID) (cured, infected bool) {
	inf, ok := s.ecs.Infections[id]
	if !ok {
		return false, false
	}
	inf.CureClicks++
	if inf.CureClicks < inf.CureRequired {
		return false, true
	}
	s.cure(id)
	return true, true
}

// ScanFrom lets a sensor tower schedule auto-cures for infected towers in
// its range. Each infection is scheduled at most once.
func (s *InfectionSystem) ScanFrom(sensorID types.EntityID) int {
	stats, ok := s.ecs.TowerStats[sensorID]
	sensorPos := s.ecs.Positions[sensorID]
	if !ok || sensorPos == nil || !stats.Effective.AutoHeal || stats.Effective.Range <= 0 {
		return 0
	}
	scheduled := 0
	for _, id := range entity.SortedIDs(s.ecs.Infections) {
		inf := s.ecs.Infections[id]
		pos := s.ecs.Positions[id]
		if pos == nil || utils.Distance(sensorPos.X, sensorPos.Y, pos.X, pos.Y) > stats.Effective.Range {
			continue
		}
		if s.scheduler.HasPending(ActionAutoCure, id, inf.Serial) {
			continue
		}
		s.scheduler.Schedule(ActionAutoCure, stats.Effective.ScanDelay, id, inf.Serial)
		scheduled++
	}
	return scheduled
}

// autoCure applies a delayed cure only if the same infection is still there.
func (s *InfectionSystem) autoCure(action ScheduledAction) {
	inf, ok := s.ecs.Infections[action.Target]
	if !ok || inf.Serial != action.Serial {
		return
	}
	s.cure(action.Target)
}

func (s *InfectionSystem) cure(id types.EntityID) {
	delete(s.ecs.Infections, id)
	s.ecs.Stats.Cures++
	s.auras.RecalculateAuras()
	s.eventDispatcher.Dispatch(event.Event{Type: event.InfectionCured, Data: id})
}
