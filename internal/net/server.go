package net

import (
	"context"
	"fmt"
	"net"

	"github.com/stets/scoundrel/internal/game"
)

// Server hosts a dungeon run for one TCP client.
type Server struct {
	Port  string
	Rules *game.Rules
	Seed  int64
}

// Run starts the server, waits for a client, then runs the session.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for a scoundrel on port %s...\n", s.Port)

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Scoundrel connected from %s\n", conn.RemoteAddr())

	sess := NewSession(conn, game.Config{Rules: s.Rules, Seed: s.Seed})
	return sess.Run(ctx)
}

// PlayLocal runs a session and a terminal client in the same process over an
// in-memory pipe, for local single-player games.
func PlayLocal(ctx context.Context, cfg game.Config) error {
	clientConn, serverConn := net.Pipe()

	errCh := make(chan error, 2)
	go func() {
		defer serverConn.Close()
		sess := NewSession(serverConn, cfg)
		errCh <- sess.Run(ctx)
	}()
	go func() {
		defer clientConn.Close()
		client := &Client{conn: clientConn}
		errCh <- client.RunREPL(ctx)
	}()

	// Whichever side finishes first decides the outcome; the deferred closes
	// unblock the other.
	return <-errCh
}
