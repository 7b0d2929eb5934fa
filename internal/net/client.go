package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn    net.Conn
	history []string // adventure log lines seen so far
}

// Connect connects to a server and runs the REPL.
func Connect(ctx context.Context, addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Entering the dungeon...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "state":
			c.renderState(msg.State)
			cmd, quit := c.readCommand(reader, msg.State)
			if err := enc.Encode(cmd); err != nil {
				return fmt.Errorf("send command: %w", err)
			}
			if quit {
				return nil
			}

		case "error":
			fmt.Printf("  ✗ %s\n", msg.Error)
			cmd, quit := c.readCommand(reader, msg.State)
			if err := enc.Encode(cmd); err != nil {
				return fmt.Errorf("send command: %w", err)
			}
			if quit {
				return nil
			}

		case "game_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			if msg.Won {
				fmt.Println("           VICTORY!")
			} else {
				fmt.Println("            DEFEAT")
			}
			fmt.Println("═══════════════════════════════════")
			fmt.Println(msg.Result)
			fmt.Printf("Final score: %d\n", msg.Score)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	line := fmt.Sprintf("[Turn %-2d] %s", ev.Turn, ev.Details)
	c.history = append(c.history, line)
	fmt.Println(line)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  HP %d/%d  │  Dungeon: %d cards  │  Turn %d\n",
		sv.Health, sv.MaxHealth, sv.DeckCount, sv.Turn)
	if sv.Weapon != nil {
		edge := "full edge"
		if sv.Weapon.LastSlain > 0 {
			edge = fmt.Sprintf("hits below %d", sv.Weapon.LastSlain)
		}
		fmt.Printf("║  Weapon: %s (%s)", sv.Weapon.Label, edge)
		if len(sv.Weapon.Slain) > 0 {
			fmt.Printf("  slain: %s", strings.Join(sv.Weapon.Slain, ", "))
		}
		fmt.Println()
	} else {
		fmt.Println("║  Weapon: none (bare hands)")
	}
	potion := "potion ready"
	if sv.PotionUsed {
		potion = "potion used"
	}
	fmt.Printf("║  Plays left this room: %d  │  %s\n", sv.PlaysRemaining, potion)
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	fmt.Println("THE ROOM")
	for _, cv := range sv.Room {
		fmt.Printf("  [%d] %-4s %s (%d)\n", cv.Index+1, cv.Label, cv.Kind, cv.Value)
	}
}

// readCommand prompts until the user enters a valid command. The returned
// bool is true when the user quits.
func (c *Client) readCommand(reader *bufio.Reader, sv *StateView) (ClientMessage, bool) {
	roomSize := 0
	if sv != nil {
		roomSize = len(sv.Room)
	}

	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(strings.ToLower(line))

		switch {
		case line == "s":
			return ClientMessage{Type: "skip"}, false
		case line == "q":
			return ClientMessage{Type: "quit"}, true
		case line == "l":
			for _, entry := range c.history {
				fmt.Println(entry)
			}
			continue
		case line == "?" || line == "h":
			c.printHelp()
			continue
		case strings.HasPrefix(line, "b "):
			n, err := strconv.Atoi(strings.TrimSpace(line[2:]))
			if err != nil || n < 1 || n > roomSize {
				fmt.Printf("Enter a card number between 1 and %d\n", roomSize)
				continue
			}
			return ClientMessage{Type: "barehanded", Index: n - 1}, false
		default:
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > roomSize {
				fmt.Println("Commands: 1-4 play card, b N fight bare-handed, s skip, l log, ? help, q quit")
				continue
			}
			return ClientMessage{Type: "play", Index: n - 1}, false
		}
	}
}

func (c *Client) printHelp() {
	fmt.Println(`SCOUNDREL
By Zach Gage and Kurt Bieg (2011)

Survive the dungeon by playing through all 44 cards.

  ♠ ♣ Monsters   deal damage equal to their value
  ♦   Weapons    reduce monster damage by the weapon's value
  ♥   Potions    restore health (one per room; second is wasted)

Each room holds 4 cards; play exactly 3, the 4th carries over.
You may skip a room before playing a card, but never twice in a row;
skipped cards return to the bottom of the dungeon.
A weapon dulls with every kill: afterwards it only strikes monsters
of strictly lower value than its last kill.

Commands:
  1-4    play the numbered card
  b N    fight monster N bare-handed (spares the weapon)
  s      skip the room
  l      show the adventure log
  ?      this help
  q      quit`)
}
