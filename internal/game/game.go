package game

import (
	"math/rand"

	"github.com/stets/scoundrel/internal/log"
)

// Config holds configuration for starting a new dungeon run.
type Config struct {
	Rules  *Rules          // nil for the standard rules
	Seed   int64           // RNG seed (0 for a random seed)
	Deck   []Card          // explicit dungeon order, front drawn first (skips the shuffle; for tests)
	Logger log.EventLogger // nil for an in-memory logger
}

// Game is a single dungeon run: the room state machine, combat resolution,
// and win/loss determination. It is the only entry point presentation layers
// call; they are expected to serialize commands against it.
type Game struct {
	rules   Rules
	seed    int64
	dungeon *Dungeon
	room    []Card
	discard []Card

	health int
	weapon *Weapon

	played          int // cards played in the current room
	potionUsed      bool
	skippedLastRoom bool
	lastPotion      *Card // set while the most recent play was a drunk potion

	turn   int
	status Status
	logger log.EventLogger
}

// NewGame builds the dungeon, shuffles it, deals the first room, and returns
// a run in the Playing state.
func NewGame(cfg Config) *Game {
	rules := DefaultRules()
	if cfg.Rules != nil {
		rules = *cfg.Rules
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	g := &Game{
		rules:  rules,
		health: rules.MaxHealth,
		turn:   1,
		status: StatusPlaying,
		logger: logger,
	}

	if cfg.Deck != nil {
		g.dungeon = &Dungeon{cards: append([]Card(nil), cfg.Deck...)}
	} else {
		seed := cfg.Seed
		if seed == 0 {
			seed = newSeed()
		}
		g.seed = seed
		g.dungeon = buildDeck(rules)
		g.dungeon.Shuffle(rand.New(rand.NewSource(seed)))
	}

	g.logger.Log(log.NewGameStartEvent(g.health))
	g.dealRoom()
	return g
}

// Seed returns the seed the dungeon was shuffled with (0 for stacked decks).
func (g *Game) Seed() int64 {
	return g.seed
}

// dealRoom tops the room up to the rule's size and resets the per-room
// flags. The carried-over card stays in front.
func (g *Game) dealRoom() {
	for len(g.room) < g.rules.RoomSize {
		card, ok := g.dungeon.Draw()
		if !ok {
			break
		}
		g.room = append(g.room, card)
	}
	g.played = 0
	g.potionUsed = false
	g.lastPotion = nil

	if len(g.room) > 0 {
		g.logger.Log(log.NewRoomDealtEvent(g.turn, cardNames(g.room)))
	}
}

// PlayCard resolves the room card at index i. Monsters are fought with the
// equipped weapon whenever it can strike them; use FightBareHanded to
// decline the weapon and spare its edge.
func (g *Game) PlayCard(i int) error {
	if err := g.checkPlayable(i); err != nil {
		return err
	}
	card := g.takeCard(i)

	switch card.Kind() {
	case KindMonster:
		useWeapon := g.weapon != nil && g.weapon.CanStrike(card.Rank)
		g.resolveMonster(card, useWeapon)
	case KindWeapon:
		g.resolveWeapon(card)
	default:
		g.resolvePotion(card)
	}

	g.finishPlay()
	return nil
}

// FightBareHanded resolves a monster at index i without the weapon, taking
// full damage. The weapon, if any, keeps its edge.
func (g *Game) FightBareHanded(i int) error {
	if err := g.checkPlayable(i); err != nil {
		return err
	}
	if !g.room[i].IsMonster() {
		return ErrNotMonster
	}
	card := g.takeCard(i)
	g.resolveMonster(card, false)
	g.finishPlay()
	return nil
}

// Skip forfeits the current room: its cards go to the bottom of the dungeon
// and a fresh room is dealt. Not allowed twice in a row, nor once a card has
// been played this room.
func (g *Game) Skip() error {
	if g.status != StatusPlaying {
		return ErrGameOver
	}
	if g.skippedLastRoom {
		return ErrConsecutiveSkip
	}
	if g.played > 0 {
		return ErrRoomInProgress
	}

	names := cardNames(g.room)
	g.dungeon.ReturnToBottom(g.room)
	g.room = nil
	g.skippedLastRoom = true
	g.logger.Log(log.NewRoomSkippedEvent(g.turn, names))
	g.dealRoom()
	return nil
}

// checkPlayable validates a play command against the current room state.
func (g *Game) checkPlayable(i int) error {
	if g.status != StatusPlaying {
		return ErrGameOver
	}
	if i < 0 || i >= len(g.room) {
		return ErrOutOfRange
	}
	if g.played >= g.rules.PlaysPerRoom {
		return ErrRoomNotActive
	}
	return nil
}

// takeCard removes and returns the room card at index i, preserving order.
func (g *Game) takeCard(i int) Card {
	card := g.room[i]
	g.room = append(g.room[:i], g.room[i+1:]...)
	return card
}

// --- Combat resolution ---

func (g *Game) resolveMonster(card Card, useWeapon bool) {
	damage := card.Rank
	if useWeapon {
		damage = card.Rank - g.weapon.Power()
		if damage < 0 {
			damage = 0
		}
	}

	g.health -= damage
	if g.health < 0 {
		g.health = 0
	}
	g.lastPotion = nil

	if useWeapon {
		g.weapon.RecordKill(card)
		g.logger.Log(log.NewMonsterSlainEvent(g.turn, card.String(), g.weapon.Card.String(), damage, g.health))
	} else {
		g.discard = append(g.discard, card)
		g.logger.Log(log.NewMonsterFoughtEvent(g.turn, card.String(), damage, g.health))
	}
}

func (g *Game) resolveWeapon(card Card) {
	replaced := ""
	if g.weapon != nil {
		replaced = g.weapon.Card.String()
		g.discard = append(g.discard, g.weapon.Card)
		g.discard = append(g.discard, g.weapon.Slain()...)
	}
	g.weapon = NewWeapon(card)
	g.lastPotion = nil
	g.logger.Log(log.NewWeaponEquippedEvent(g.turn, card.String(), replaced))
}

func (g *Game) resolvePotion(card Card) {
	if g.potionUsed {
		g.logger.Log(log.NewPotionWastedEvent(g.turn, card.String()))
	} else {
		healed := card.Rank
		if g.health+healed > g.rules.MaxHealth {
			healed = g.rules.MaxHealth - g.health
		}
		g.health += healed
		g.potionUsed = true
		potion := card
		g.lastPotion = &potion
		g.logger.Log(log.NewPotionDrunkEvent(g.turn, card.String(), healed, g.health))
	}
	g.discard = append(g.discard, card)
}

// finishPlay advances the turn state machine after a resolved card.
func (g *Game) finishPlay() {
	g.played++
	g.skippedLastRoom = false

	if g.health == 0 {
		g.status = StatusLost
		g.logger.Log(log.NewLossEvent(g.turn, g.Score()))
		return
	}
	if g.dungeon.Len() == 0 && len(g.room) == 0 {
		g.status = StatusWon
		g.logger.Log(log.NewWinEvent(g.turn, g.Score()))
		return
	}
	if g.played >= g.rules.PlaysPerRoom {
		g.turn++
		if g.dungeon.Len() == 0 {
			// No replenishment left: the rest of the room must be played out.
			g.played = 0
			g.potionUsed = false
			g.logger.Log(log.NewFinalCardsEvent(g.turn, len(g.room)))
			return
		}
		g.dealRoom()
	}
}

// Score computes the run score: on a win, remaining health, plus the last
// potion's strength when it was drunk at full health; otherwise health minus
// every monster still lurking in the dungeon and room.
func (g *Game) Score() int {
	if g.status == StatusWon {
		score := g.health
		if g.health == g.rules.MaxHealth && g.lastPotion != nil {
			score += g.lastPotion.Rank
		}
		return score
	}
	score := g.health
	for _, c := range g.dungeon.Cards() {
		if c.IsMonster() {
			score -= c.Rank
		}
	}
	for _, c := range g.room {
		if c.IsMonster() {
			score -= c.Rank
		}
	}
	return score
}

func cardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
