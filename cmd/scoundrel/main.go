package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stets/scoundrel/internal/game"
	scnet "github.com/stets/scoundrel/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		runPlay(nil)
		return
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  scoundrel [play] [--seed N] [--rules FILE]")
	fmt.Println("  scoundrel host [--port P] [--seed N] [--rules FILE]")
	fmt.Println("  scoundrel join [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a solo run in this terminal (default)")
	fmt.Println("  host    Deal a dungeon and wait for a player over TCP")
	fmt.Println("  join    Connect to a hosted dungeon")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "deck shuffle seed (0 picks one at random)")
	rulesFile := fs.String("rules", "", "path to rules file")
	fs.Parse(args)

	rules, err := loadRules(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := game.Config{Rules: rules, Seed: *seed}
	if err := scnet.PlayLocal(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	port := fs.String("port", "9000", "TCP port to listen on")
	seed := fs.Int64("seed", 0, "deck shuffle seed (0 picks one at random)")
	rulesFile := fs.String("rules", "", "path to rules file")
	fs.Parse(args)

	rules, err := loadRules(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv := &scnet.Server{
		Port:  *port,
		Rules: rules,
		Seed:  *seed,
	}

	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := scnet.Connect(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadRules(path string) (*game.Rules, error) {
	if path == "" {
		return nil, nil
	}
	rules, err := game.LoadRules(path)
	if err != nil {
		return nil, err
	}
	return &rules, nil
}
