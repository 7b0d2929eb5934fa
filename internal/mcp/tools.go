package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stets/scoundrel/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// rulesFile is an optional path to a YAML rules file, set by main.
var rulesFile string

// SetRulesFile sets the path to the rules YAML file ("" for the defaults).
func SetRulesFile(path string) {
	rulesFile = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(skipRoomTool(), handleSkipRoom)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Scoundrel dungeon run: a 44-card solo dungeon crawl. "+
			"You start with 20 HP and face rooms of 4 cards; play exactly 3 per room. "+
			"Returns the initial game state and adventure log."),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed for a reproducible dungeon (omit or 0 for random)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from the room. Monsters are fought with your weapon when it can strike them; "+
			"set bare_handed to take full damage instead and spare the weapon's edge."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the room card to play")),
		mcp.WithBoolean("bare_handed", mcp.Description("Fight the monster without the weapon (monsters only)")),
	)
}

func skipRoomTool() mcp.Tool {
	return mcp.NewTool("skip_room",
		mcp.WithDescription("Skip the current room: all 4 cards go to the bottom of the dungeon. "+
			"Not allowed twice in a row, nor after playing a card this room."),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state and any new adventure-log entries. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.game.Over() {
		return mcp.NewToolResultError("A run is already in progress. Finish it or query get_game_state."), nil
	}

	var rules *game.Rules
	if rulesFile != "" {
		loaded, err := game.LoadRules(rulesFile)
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to load rules: %v", err), nil
		}
		rules = &loaded
	}

	seed := int64(request.GetInt("seed", 0))
	sess := NewGameSession(rules, seed)
	activeSession = sess

	sess.mu.Lock()
	defer sess.mu.Unlock()
	resp := sess.snapshot()
	resp.Seed = sess.game.Seed()
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No run is in progress. Use start_game first."), nil
	}

	index := request.GetInt("index", -1)
	bareHanded := request.GetBool("bare_handed", false)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var err error
	if bareHanded {
		err = sess.game.FightBareHanded(index)
	} else {
		err = sess.game.PlayCard(index)
	}
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid play: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}

func handleSkipRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No run is in progress. Use start_game first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.game.Skip(); err != nil {
		return mcp.NewToolResultErrorf("Invalid play: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No run is in progress. Use start_game first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}
