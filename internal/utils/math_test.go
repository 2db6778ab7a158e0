package utils

import "testing"

func TestMoveToward(t *testing.T) {
	x, y, left := MoveToward(0, 0, 10, 0, 4)
	if x != 4 || y != 0 || left != 6 {
		t.Errorf("Expected (4, 0, 6), got (%v, %v, %v)", x, y, left)
	}
	x, y, left = MoveToward(0, 0, 3, 4, 10)
	if x != 3 || y != 4 || left != 0 {
		t.Errorf("Expected overshoot to clamp onto target, got (%v, %v, %v)", x, y, left)
	}
}

func TestPRNGService_Deterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", a.Seed())
	}
}
