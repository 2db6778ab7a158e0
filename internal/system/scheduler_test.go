package system

import "testing"

func TestScheduler_FiresInOrder(t *testing.T) {
	s := NewScheduler()
	late := s.Schedule(ActionAutoCure, 2, 10, 1)
	early := s.Schedule(ActionAutoCure, 1, 11, 1)

	if due := s.Advance(0.5); len(due) != 0 {
		t.Fatalf("Expected nothing due at 0.5s, got %v", due)
	}
	due := s.Advance(2)
	if len(due) != 2 {
		t.Fatalf("Expected 2 due actions, got %d", len(due))
	}
	if due[0].ID != early || due[1].ID != late {
		t.Errorf("Expected early action first, got %v", due)
	}
	if s.Len() != 0 {
		t.Errorf("Expected fired actions to leave the queue, %d left", s.Len())
	}
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	id := s.Schedule(ActionAutoCure, 1, 5, 3)
	s.Schedule(ActionAutoCure, 1, 6, 1)
	s.Schedule(ActionAutoCure, 1, 6, 2)

	if !s.HasPending(ActionAutoCure, 5, 3) {
		t.Error("Expected pending action for (5, 3)")
	}
	if s.HasPending(ActionAutoCure, 5, 4) {
		t.Error("Expected serial to be part of the identity")
	}
	if !s.Cancel(id) || s.Cancel(id) {
		t.Error("Expected Cancel to succeed once")
	}
	if n := s.CancelTarget(6); n != 2 {
		t.Errorf("Expected 2 actions cancelled for target 6, got %d", n)
	}
	if due := s.Advance(5); len(due) != 0 {
		t.Errorf("Expected cancelled actions never to fire, got %v", due)
	}
}
