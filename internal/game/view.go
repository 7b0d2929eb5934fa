package game

import "github.com/stets/scoundrel/internal/log"

// WeaponView is the read-only projection of the equipped weapon.
type WeaponView struct {
	Card      Card
	Power     int
	LastSlain int // 0 = fresh, no restriction
	Slain     []Card
}

// CanStrike reports whether the weapon may be used against a monster of the
// given rank.
func (w WeaponView) CanStrike(rank int) bool {
	return w.LastSlain == 0 || rank < w.LastSlain
}

// DamageAgainst returns the damage the player would take fighting a monster
// of the given rank with this weapon.
func (w WeaponView) DamageAgainst(rank int) int {
	damage := rank - w.Power
	if damage < 0 {
		return 0
	}
	return damage
}

// View is a read-only snapshot of the run for presentation layers. Slices
// are copies; mutating them does not affect the game.
type View struct {
	Status         Status
	Health         int
	MaxHealth      int
	Room           []Card
	DeckCount      int
	DiscardCount   int
	Turn           int
	PlaysRemaining int
	PotionUsed     bool
	CanSkip        bool
	Weapon         *WeaponView
	Score          int
	Log            []log.GameEvent
}

// View returns the current snapshot.
func (g *Game) View() View {
	v := View{
		Status:         g.status,
		Health:         g.health,
		MaxHealth:      g.rules.MaxHealth,
		Room:           append([]Card(nil), g.room...),
		DeckCount:      g.dungeon.Len(),
		DiscardCount:   len(g.discard),
		Turn:           g.turn,
		PlaysRemaining: g.rules.PlaysPerRoom - g.played,
		PotionUsed:     g.potionUsed,
		CanSkip:        g.status == StatusPlaying && !g.skippedLastRoom && g.played == 0,
		Score:          g.Score(),
		Log:            append([]log.GameEvent(nil), g.logger.Events()...),
	}
	if g.weapon != nil {
		v.Weapon = &WeaponView{
			Card:      g.weapon.Card,
			Power:     g.weapon.Power(),
			LastSlain: g.weapon.LastSlain(),
			Slain:     append([]Card(nil), g.weapon.Slain()...),
		}
	}
	if remaining := len(g.room); v.PlaysRemaining > remaining {
		v.PlaysRemaining = remaining
	}
	return v
}

// Status returns the run's state: Playing, Won, or Lost.
func (g *Game) Status() Status {
	return g.status
}

// Health returns the player's current health.
func (g *Game) Health() int {
	return g.health
}

// Over reports whether the run has reached a terminal state.
func (g *Game) Over() bool {
	return g.status != StatusPlaying
}
