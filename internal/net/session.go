package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/stets/scoundrel/internal/game"
	"github.com/stets/scoundrel/internal/log"
)

// Session drives one dungeon run over a JSON message stream. It owns the
// engine and serializes all commands against it; the transport on the other
// end only renders state and forwards intents.
type Session struct {
	game    *game.Game
	logger  *log.MemoryLogger
	enc     *json.Encoder
	dec     *json.Decoder
	lastSeq int
}

// NewSession creates a session for the given connection and game config. The
// config's Logger is replaced so the session can forward events.
func NewSession(conn net.Conn, cfg game.Config) *Session {
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	return &Session{
		game:   game.NewGame(cfg),
		logger: logger,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
	}
}

// Run executes the session loop until the game ends or the client leaves.
func (s *Session) Run(ctx context.Context) error {
	// Opening events (game start, first room) and initial state.
	if err := s.flushEvents(); err != nil {
		return err
	}
	if err := s.sendState(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var msg ClientMessage
		if err := s.dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		var playErr error
		switch msg.Type {
		case "play":
			playErr = s.game.PlayCard(msg.Index)
		case "barehanded":
			playErr = s.game.FightBareHanded(msg.Index)
		case "skip":
			playErr = s.game.Skip()
		case "quit":
			return nil
		default:
			playErr = fmt.Errorf("unknown command %q", msg.Type)
		}

		if playErr != nil {
			if err := s.enc.Encode(ServerMessage{
				Type:  "error",
				Error: playErr.Error(),
				State: BuildStateView(s.game.View()),
			}); err != nil {
				return fmt.Errorf("send error: %w", err)
			}
			continue
		}

		if err := s.flushEvents(); err != nil {
			return err
		}

		if s.game.Over() {
			return s.sendGameOver()
		}
		if err := s.sendState(); err != nil {
			return err
		}
	}
}

// flushEvents forwards log entries the client has not seen yet.
func (s *Session) flushEvents() error {
	for _, e := range s.logger.Events() {
		if e.Seq <= s.lastSeq {
			continue
		}
		s.lastSeq = e.Seq
		ev := BuildEventView(e)
		if err := s.enc.Encode(ServerMessage{Type: "notify", Event: &ev}); err != nil {
			return fmt.Errorf("send notify: %w", err)
		}
	}
	return nil
}

func (s *Session) sendState() error {
	if err := s.enc.Encode(ServerMessage{Type: "state", State: BuildStateView(s.game.View())}); err != nil {
		return fmt.Errorf("send state: %w", err)
	}
	return nil
}

func (s *Session) sendGameOver() error {
	v := s.game.View()
	result := "The dungeon has claimed another soul..."
	if v.Status == game.StatusWon {
		result = "You conquered the dungeon!"
	}
	if err := s.enc.Encode(ServerMessage{
		Type:   "game_over",
		Result: result,
		Score:  v.Score,
		Won:    v.Status == game.StatusWon,
	}); err != nil {
		return fmt.Errorf("send game_over: %w", err)
	}
	return nil
}
