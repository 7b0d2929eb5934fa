package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"github.com/stets/scoundrel/internal/game"
	scnet "github.com/stets/scoundrel/internal/net"
)

//go:embed static
var staticFiles embed.FS

// Server is the scoundrel web UI server. Each websocket connection hosts its
// own dungeon run, speaking the same JSON protocol as the TCP server.
type Server struct {
	rules game.Rules
	mux   *http.ServeMux
}

// NewServer creates a new web server. rulesFile may be empty for the
// standard rules.
func NewServer(rulesFile string) (*Server, error) {
	rules := game.DefaultRules()
	if rulesFile != "" {
		loaded, err := game.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	s := &Server{
		rules: rules,
		mux:   http.NewServeMux(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/rules", s.handleRules)

	// One game per websocket
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"max_health":     s.rules.MaxHealth,
		"room_size":      s.rules.RoomSize,
		"plays_per_room": s.rules.PlaysPerRoom,
		"deck_size":      s.rules.DeckSize(),
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	var seed int64
	if q := r.URL.Query().Get("seed"); q != "" {
		seed, _ = strconv.ParseInt(q, 10, 64)
	}

	ctx := r.Context()
	conn := websocket.NetConn(ctx, wsConn, websocket.MessageText)

	rules := s.rules
	sess := scnet.NewSession(conn, game.Config{Rules: &rules, Seed: seed})
	if err := sess.Run(ctx); err != nil {
		log.Printf("session ended: %v", err)
		return
	}

	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
