package net

import (
	"github.com/stets/scoundrel/internal/game"
	"github.com/stets/scoundrel/internal/log"
)

// Message types for the JSON protocol over TCP (and the web socket bridge).

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"` // "state", "notify", "error", "game_over"

	// For "state" and "error"
	State *StateView `json:"state,omitempty"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`

	// For "game_over"
	Result string `json:"result,omitempty"`
	Score  int    `json:"score,omitempty"`
	Won    bool   `json:"won,omitempty"`
}

// EventView is a simplified adventure-log entry for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one card in the room.
type CardView struct {
	Index int    `json:"index"`
	Label string `json:"label"` // e.g. "10♦"
	Kind  string `json:"kind"`  // "Monster", "Weapon", "Potion"
	Value int    `json:"value"`
}

// WeaponView describes the equipped weapon.
type WeaponView struct {
	Label     string   `json:"label"`
	Power     int      `json:"power"`
	LastSlain int      `json:"last_slain,omitempty"` // 0 = fresh
	Slain     []string `json:"slain,omitempty"`
}

// StateView is the full game snapshot sent to the client.
type StateView struct {
	Status         string      `json:"status"`
	Health         int         `json:"health"`
	MaxHealth      int         `json:"max_health"`
	DeckCount      int         `json:"deck_count"`
	Turn           int         `json:"turn"`
	PlaysRemaining int         `json:"plays_remaining"`
	PotionUsed     bool        `json:"potion_used"`
	CanSkip        bool        `json:"can_skip"`
	Room           []CardView  `json:"room"`
	Weapon         *WeaponView `json:"weapon,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"` // "play", "barehanded", "skip", "quit"

	// For "play" and "barehanded": 0-based room index
	Index int `json:"index,omitempty"`
}

// BuildStateView projects a game.View into the wire representation.
func BuildStateView(v game.View) *StateView {
	sv := &StateView{
		Status:         v.Status.String(),
		Health:         v.Health,
		MaxHealth:      v.MaxHealth,
		DeckCount:      v.DeckCount,
		Turn:           v.Turn,
		PlaysRemaining: v.PlaysRemaining,
		PotionUsed:     v.PotionUsed,
		CanSkip:        v.CanSkip,
	}
	for i, c := range v.Room {
		sv.Room = append(sv.Room, CardView{
			Index: i,
			Label: c.String(),
			Kind:  c.Kind().String(),
			Value: c.Rank,
		})
	}
	if v.Weapon != nil {
		wv := &WeaponView{
			Label:     v.Weapon.Card.String(),
			Power:     v.Weapon.Power,
			LastSlain: v.Weapon.LastSlain,
		}
		for _, m := range v.Weapon.Slain {
			wv.Slain = append(wv.Slain, m.String())
		}
		sv.Weapon = wv
	}
	return sv
}

// BuildEventView projects a log entry into the wire representation.
func BuildEventView(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}
