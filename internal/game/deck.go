package game

import "math/rand"

// Dungeon is the draw pile. The front of the slice is the top of the pile;
// skipped rooms go on the bottom.
type Dungeon struct {
	cards []Card
}

// buildDeck constructs the unshuffled dungeon for the given rules: monsters
// in both black suits, then weapons, then potions.
func buildDeck(rules Rules) *Dungeon {
	cards := make([]Card, 0, rules.DeckSize())
	for _, suit := range []Suit{SuitSpades, SuitClubs} {
		for rank := rules.MonsterRanks.Min; rank <= rules.MonsterRanks.Max; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	for rank := rules.WeaponRanks.Min; rank <= rules.WeaponRanks.Max; rank++ {
		cards = append(cards, Card{Suit: SuitDiamonds, Rank: rank})
	}
	for rank := rules.PotionRanks.Min; rank <= rules.PotionRanks.Max; rank++ {
		cards = append(cards, Card{Suit: SuitHearts, Rank: rank})
	}
	return &Dungeon{cards: cards}
}

// Shuffle randomizes the dungeon order using the given source.
func (d *Dungeon) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. The second return value is false
// when the dungeon is empty; an empty dungeon is an expected condition, not
// an error.
func (d *Dungeon) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// ReturnToBottom places the given cards under the dungeon in order. Used by
// the skip rule: a forfeited room resurfaces later in the run.
func (d *Dungeon) ReturnToBottom(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards remaining.
func (d *Dungeon) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Dungeon) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
