package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("[Turn %-2d] %s", e.Turn, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameStartEvent(health int) GameEvent {
	return GameEvent{
		Turn:    1,
		Type:    EventGameStart,
		Details: fmt.Sprintf("Entered the dungeon with %d HP", health),
	}
}

func NewRoomDealtEvent(turn int, cards []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventRoomDealt,
		Details: fmt.Sprintf("Entered room: %s", strings.Join(cards, ", ")),
	}
}

func NewMonsterSlainEvent(turn int, monster, weapon string, damage, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventMonsterSlain,
		Card:    monster,
		Details: fmt.Sprintf("Killed %s with %s, took %d dmg (now %d HP)", monster, weapon, damage, health),
	}
}

func NewMonsterFoughtEvent(turn int, monster string, damage, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventMonsterFought,
		Card:    monster,
		Details: fmt.Sprintf("Fought %s bare-handed, took %d dmg (now %d HP)", monster, damage, health),
	}
}

func NewWeaponEquippedEvent(turn int, weapon, replaced string) GameEvent {
	details := fmt.Sprintf("Equipped %s", weapon)
	if replaced != "" {
		details = fmt.Sprintf("Discarded %s, equipped %s", replaced, weapon)
	}
	return GameEvent{
		Turn:    turn,
		Type:    EventWeaponEquipped,
		Card:    weapon,
		Details: details,
	}
}

func NewPotionDrunkEvent(turn int, potion string, healed, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventPotionDrunk,
		Card:    potion,
		Details: fmt.Sprintf("Drank %s, healed %d HP (now %d HP)", potion, healed, health),
	}
}

func NewPotionWastedEvent(turn int, potion string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventPotionWasted,
		Card:    potion,
		Details: fmt.Sprintf("Wasted %s (already used a potion this room)", potion),
	}
}

func NewRoomSkippedEvent(turn int, cards []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventRoomSkipped,
		Details: fmt.Sprintf("Skipped room (%s)", strings.Join(cards, ", ")),
	}
}

func NewFinalCardsEvent(turn, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventFinalCards,
		Details: fmt.Sprintf("Dungeon exhausted, %d card(s) left to face", remaining),
	}
}

func NewWinEvent(turn, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventWin,
		Details: fmt.Sprintf("VICTORY! Score: %d", score),
	}
}

func NewLossEvent(turn, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventLoss,
		Details: fmt.Sprintf("DIED! Score: %d", score),
	}
}
