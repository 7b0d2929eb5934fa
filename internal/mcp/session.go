package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stets/scoundrel/internal/game"
	"github.com/stets/scoundrel/internal/log"
	scnet "github.com/stets/scoundrel/internal/net"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []scnet.EventView `json:"events"`
	State    *scnet.StateView  `json:"state,omitempty"`
	GameOver bool              `json:"game_over"`
	Won      bool              `json:"won,omitempty"`
	Score    int               `json:"score,omitempty"`
	Result   string            `json:"result,omitempty"`
	Seed     int64             `json:"seed,omitempty"`
}

// GameSession holds the state of a single MCP dungeon run.
type GameSession struct {
	mu      sync.Mutex
	game    *game.Game
	logger  *log.MemoryLogger
	lastSeq int
}

// NewGameSession starts a fresh run with the given rules and seed.
func NewGameSession(rules *game.Rules, seed int64) *GameSession {
	logger := log.NewMemoryLogger()
	return &GameSession{
		game:   game.NewGame(game.Config{Rules: rules, Seed: seed, Logger: logger}),
		logger: logger,
	}
}

// drainEvents returns the log entries produced since the last call. Must be
// called with mu held.
func (s *GameSession) drainEvents() []scnet.EventView {
	events := []scnet.EventView{}
	for _, e := range s.logger.Events() {
		if e.Seq <= s.lastSeq {
			continue
		}
		s.lastSeq = e.Seq
		events = append(events, scnet.BuildEventView(e))
	}
	return events
}

// snapshot builds a ToolResponse from the current game state plus any new
// events. Must be called with mu held.
func (s *GameSession) snapshot() *ToolResponse {
	v := s.game.View()
	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  scnet.BuildStateView(v),
	}
	if s.game.Over() {
		resp.GameOver = true
		resp.Won = v.Status == game.StatusWon
		resp.Score = v.Score
		if resp.Won {
			resp.Result = "You conquered the dungeon!"
		} else {
			resp.Result = "The dungeon has claimed another soul..."
		}
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
