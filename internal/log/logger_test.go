package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerAssignsSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewGameStartEvent(20))
	l.Log(NewRoomDealtEvent(1, []string{"2♠", "5♦"}))
	l.Log(NewPotionDrunkEvent(1, "4♥", 4, 18))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("Event %d: expected seq %d, got %d", i, i+1, e.Seq)
		}
	}

	drunk := l.EventsOfType(EventPotionDrunk)
	if len(drunk) != 1 || drunk[0].Card != "4♥" {
		t.Errorf("Expected one potion event for 4♥, got %v", drunk)
	}
	if l.LastEvent().Type != EventPotionDrunk {
		t.Errorf("Expected the potion event last, got %s", l.LastEvent().Type)
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewMonsterSlainEvent(3, "9♠", "5♦", 4, 11))
	l.Log(NewWinEvent(12, 18))

	out := sb.String()
	if !strings.Contains(out, "[Turn 3 ] Killed 9♠ with 5♦, took 4 dmg (now 11 HP)") {
		t.Errorf("Unexpected combat line in:\n%s", out)
	}
	if !strings.Contains(out, "VICTORY! Score: 18") {
		t.Errorf("Expected the win line in:\n%s", out)
	}
	// The embedded memory log keeps the events for replay.
	if len(l.Events()) != 2 {
		t.Errorf("Expected 2 stored events, got %d", len(l.Events()))
	}
}

func TestFormatEvent(t *testing.T) {
	e := NewRoomSkippedEvent(2, []string{"9♠", "4♥"})
	if got := FormatEvent(e); got != "[Turn 2 ] Skipped room (9♠, 4♥)" {
		t.Errorf("Unexpected format: %q", got)
	}
}
