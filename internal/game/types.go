package game

import "fmt"

// --- Enums ---

type Suit int

const (
	SuitSpades Suit = iota
	SuitClubs
	SuitDiamonds
	SuitHearts
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	default:
		return "?"
	}
}

// Name returns the spelled-out suit name as used in the rules file.
func (s Suit) Name() string {
	switch s {
	case SuitSpades:
		return "Spades"
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitHearts:
		return "Hearts"
	default:
		return "Unknown"
	}
}

// Kind classifies a card by what playing it does.
type Kind int

const (
	KindMonster Kind = iota
	KindWeapon
	KindPotion
)

func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "Monster"
	case KindWeapon:
		return "Weapon"
	case KindPotion:
		return "Potion"
	default:
		return "Unknown"
	}
}

type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// --- Card ---

// Card is an immutable dungeon card. Rank doubles as monster damage, weapon
// power, or potion strength depending on the suit.
type Card struct {
	Suit Suit
	Rank int // 2-14 (11=J, 12=Q, 13=K, 14=A)
}

// Kind maps the suit to its role: black suits are monsters, diamonds are
// weapons, hearts are potions.
func (c Card) Kind() Kind {
	switch c.Suit {
	case SuitSpades, SuitClubs:
		return KindMonster
	case SuitDiamonds:
		return KindWeapon
	default:
		return KindPotion
	}
}

func (c Card) IsMonster() bool { return c.Kind() == KindMonster }
func (c Card) IsWeapon() bool  { return c.Kind() == KindWeapon }
func (c Card) IsPotion() bool  { return c.Kind() == KindPotion }

// RankString returns the face label for the rank.
func (c Card) RankString() string {
	switch c.Rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}

func (c Card) String() string {
	return c.RankString() + c.Suit.String()
}

// --- Weapon ---

// Weapon is the player's equipped weapon. lastSlain is the rank of the last
// monster killed with it; 0 means the weapon is fresh and may strike any
// monster. Once blooded, it only works against monsters of strictly lower
// rank than its last kill.
type Weapon struct {
	Card      Card
	lastSlain int
	slain     []Card
}

// NewWeapon returns a fresh weapon for the given card.
func NewWeapon(card Card) *Weapon {
	return &Weapon{Card: card}
}

// Power returns the weapon's attack power.
func (w *Weapon) Power() int {
	return w.Card.Rank
}

// CanStrike reports whether the weapon may be used against a monster of the
// given rank.
func (w *Weapon) CanStrike(rank int) bool {
	return w.lastSlain == 0 || rank < w.lastSlain
}

// RecordKill degrades the weapon: it may no longer strike monsters of rank
// greater than or equal to the one just killed.
func (w *Weapon) RecordKill(monster Card) {
	w.lastSlain = monster.Rank
	w.slain = append(w.slain, monster)
}

// LastSlain returns the rank of the weapon's last kill, or 0 if fresh.
func (w *Weapon) LastSlain() int {
	return w.lastSlain
}

// Slain returns the monsters stacked on the weapon since it was equipped.
func (w *Weapon) Slain() []Card {
	return w.slain
}

func (w *Weapon) String() string {
	if w.lastSlain == 0 {
		return fmt.Sprintf("%s (fresh)", w.Card)
	}
	return fmt.Sprintf("%s (hits below %d)", w.Card, w.lastSlain)
}
