package ui

import (
	"testing"

	"infection-td/internal/app"
	"infection-td/internal/defs"
	"infection-td/internal/event"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLifeColor(t *testing.T) {
	if lifeColor(5, 5, 10) != lifeLostColor {
		t.Error("Expected lost life to be drawn black")
	}
	if lifeColor(0, 8, 10) != lifeFullColor {
		t.Error("Expected healthy lives drawn blue")
	}
	if lifeColor(0, 5, 10) != lifeLowColor {
		t.Error("Expected low lives drawn red")
	}
}

func TestHUD_Messages(t *testing.T) {
	h := NewHUD(nil)
	h.OnEvent(event.Event{Type: event.WaveStarted, Data: 0})
	h.OnEvent(event.Event{Type: event.MoneyChanged, Data: 10})
	for i := 0; i < maxMessages+2; i++ {
		h.Notify("msg %d", i)
	}
	msgs := h.Messages()
	if len(msgs) != maxMessages || msgs[len(msgs)-1] != "msg 6" {
		t.Fatalf("Expected the last %d messages, got %v", maxMessages, msgs)
	}
	h.Update(10)
	if len(h.Messages()) != 0 {
		t.Error("Expected messages to expire")
	}
}

func TestTowerInfoColumns(t *testing.T) {
	cols := towerInfoColumns(app.TowerView{
		ID:           3,
		Name:         "Gun",
		Type:         defs.TowerOffensiveSingle,
		MaxLevel:     1,
		UpgradeCost:  30,
		SellValue:    70,
		Effective:    defs.Stats{Damage: 10, FireRate: 1, Range: 100},
		Infected:     true,
		CureClicks:   1,
		CureRequired: 4,
	})
	if len(cols) != 3 || len(cols[1]) != 3 {
		t.Fatalf("Unexpected layout %v", cols)
	}
	actions := cols[2]
	if actions[1] != "U: upgrade for 30" || actions[2] != "INFECTED: 1/4 cure clicks" {
		t.Errorf("Unexpected actions %v", actions)
	}
}
