// internal/system/scheduler.go
package system

import (
	"slices"

	"infection-td/internal/types"
)

// ActionKind identifies what a scheduled action does when it fires.
type ActionKind int

const (
	ActionAutoCure ActionKind = iota
)

// ScheduledAction is a one-shot action bound to an entity. Serial captures
// the state of the target at scheduling time so the handler can detect
// that the target changed before the action fired.
type ScheduledAction struct {
	ID     uint64
	Kind   ActionKind
	FireAt float64
	Target types.EntityID
	Serial uint64
}

// Scheduler is a list of deferred actions driven by simulation time,
// never by the wall clock.
type Scheduler struct {
	now     float64
	nextID  uint64
	pending []ScheduledAction
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now returns the scheduler's simulation time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule queues an action to fire after delay seconds and returns its id.
func (s *Scheduler) Schedule(kind ActionKind, delay float64, target types.EntityID, serial uint64) uint64 {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.pending = append(s.pending, ScheduledAction{
		ID:     id,
		Kind:   kind,
		FireAt: s.now + delay,
		Target: target,
		Serial: serial,
	})
	return id
}

// Cancel removes a pending action. Returns false if it already fired or never existed.
func (s *Scheduler) Cancel(id uint64) bool {
	for i, a := range s.pending {
		if a.ID == id {
			s.pending = slices.Delete(s.pending, i, i+1)
			return true
		}
	}
	return false
}

// CancelTarget removes every pending action aimed at target.
func (s *Scheduler) CancelTarget(target types.EntityID) int {
	before := len(s.pending)
	s.pending = slices.DeleteFunc(s.pending, func(a ScheduledAction) bool {
		return a.Target == target
	})
	return before - len(s.pending)
}

// HasPending reports whether an action of kind for (target, serial) is queued.
func (s *Scheduler) HasPending(kind ActionKind, target types.EntityID, serial uint64) bool {
	for _, a := range s.pending {
		if a.Kind == kind && a.Target == target && a.Serial == serial {
			return true
		}
	}
	return false
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Advance moves time forward by dt and returns the actions that came due,
// ordered by fire time and then by scheduling order.
func (s *Scheduler) Advance(dt float64) []ScheduledAction {
	s.now += dt
	var due []ScheduledAction
	s.pending = slices.DeleteFunc(s.pending, func(a ScheduledAction) bool {
		if a.FireAt <= s.now {
			due = append(due, a)
			return true
		}
		return false
	})
	slices.SortStableFunc(due, func(a, b ScheduledAction) int {
		switch {
		case a.FireAt < b.FireAt:
			return -1
		case a.FireAt > b.FireAt:
			return 1
		}
		return 0
	})
	return due
}
