package game

import (
	"errors"
	"testing"

	"github.com/stets/scoundrel/internal/log"
)

func monster(rank int) Card     { return Card{Suit: SuitSpades, Rank: rank} }
func clubMonster(rank int) Card { return Card{Suit: SuitClubs, Rank: rank} }
func weapon(rank int) Card      { return Card{Suit: SuitDiamonds, Rank: rank} }
func potion(rank int) Card      { return Card{Suit: SuitHearts, Rank: rank} }

// newTestGame starts a run with a stacked deck and an in-memory logger.
func newTestGame(t *testing.T, deck []Card) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := NewGame(Config{Deck: deck, Logger: logger})
	return g, logger
}

func TestSeededDeckIsDeterministic(t *testing.T) {
	g1 := NewGame(Config{Seed: 42})
	g2 := NewGame(Config{Seed: 42})

	v1, v2 := g1.View(), g2.View()
	if len(v1.Room) != 4 || len(v2.Room) != 4 {
		t.Fatalf("Expected full rooms, got %d and %d cards", len(v1.Room), len(v2.Room))
	}
	for i := range v1.Room {
		if v1.Room[i] != v2.Room[i] {
			t.Errorf("Room card %d differs: %s vs %s", i, v1.Room[i], v2.Room[i])
		}
	}
	if v1.DeckCount != 40 {
		t.Errorf("Expected 40 cards left in the dungeon, got %d", v1.DeckCount)
	}
	if v1.Health != 20 || v1.MaxHealth != 20 {
		t.Errorf("Expected 20/20 HP at start, got %d/%d", v1.Health, v1.MaxHealth)
	}
}

// TestWeaponDegradation: a fresh weapon kills anything, then its edge only
// works against monsters weaker than its last kill.
func TestWeaponDegradation(t *testing.T) {
	deck := []Card{
		weapon(5), monster(14), monster(9), monster(8),
		clubMonster(8), potion(2), potion(3), potion(4), potion(5),
	}
	g, logger := newTestGame(t, deck)

	// Equip the 5 of diamonds.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	// Fresh weapon vs the ace: 14 - 5 = 9 damage.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 11 {
		t.Errorf("Expected 11 HP after the ace, got %d", g.Health())
	}
	// 9 < 14, weapon still works: 9 - 5 = 4 damage.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 7 {
		t.Errorf("Expected 7 HP after the 9, got %d", g.Health())
	}

	// Next room: 8 < 9 is a legal weapon strike, 3 damage.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 4 {
		t.Errorf("Expected 4 HP after the 8 of spades, got %d", g.Health())
	}
	// The second 8 is not strictly below the last kill: fought bare-handed.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}

	slain := logger.EventsOfType(log.EventMonsterSlain)
	if len(slain) != 3 {
		t.Fatalf("Expected 3 weapon kills, got %d:\n%s", len(slain), log.FormatAll(logger.Events()))
	}
	for i, want := range []int{14, 9, 8} {
		if slain[i].Card != monster(want).String() {
			t.Errorf("Kill %d: expected %s, got %s", i, monster(want), slain[i].Card)
		}
	}
	fought := logger.EventsOfType(log.EventMonsterFought)
	if len(fought) != 1 || fought[0].Card != clubMonster(8).String() {
		t.Fatalf("Expected the 8 of clubs fought bare-handed, got %v", fought)
	}

	// 4 HP - 8 damage clamps to zero and ends the run.
	if g.Health() != 0 {
		t.Errorf("Expected HP clamped to 0, got %d", g.Health())
	}
	if g.Status() != StatusLost {
		t.Errorf("Expected the run lost, got %s", g.Status())
	}
	if len(logger.EventsOfType(log.EventLoss)) != 1 {
		t.Error("Expected a loss event")
	}
}

// TestDamageProgression: an unarmed hit, then a weapon pickup, then a kill
// that dulls it, then a monster the dulled weapon cannot stop.
func TestDamageProgression(t *testing.T) {
	deck := []Card{
		monster(10), weapon(5), monster(8), monster(9),
		potion(2), potion(3), potion(4), potion(5),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil { // 10 damage bare-handed
		t.Fatal(err)
	}
	if g.Health() != 10 {
		t.Fatalf("Expected 10 HP, got %d", g.Health())
	}
	if err := g.PlayCard(0); err != nil { // equip the 5
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // 8 - 5 = 3 damage, ceiling 8
		t.Fatal(err)
	}
	if g.Health() != 7 {
		t.Fatalf("Expected 7 HP, got %d", g.Health())
	}

	// The carried-over 9 meets a weapon that can no longer strike it.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 0 {
		t.Errorf("Expected HP clamped to 0, got %d", g.Health())
	}
	if g.Status() != StatusLost {
		t.Errorf("Expected the run lost, got %s", g.Status())
	}
}

func TestBareHandedSparesWeaponEdge(t *testing.T) {
	deck := []Card{
		weapon(10), monster(3), monster(5), potion(2),
		potion(3), potion(4), potion(5), potion(6),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	// Decline the weapon against the 3: full damage, no degradation.
	if err := g.FightBareHanded(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 17 {
		t.Errorf("Expected 17 HP after fighting the 3 bare-handed, got %d", g.Health())
	}

	v := g.View()
	if v.Weapon == nil || v.Weapon.LastSlain != 0 {
		t.Fatalf("Expected the weapon still fresh, got %+v", v.Weapon)
	}
	if !v.Weapon.CanStrike(14) {
		t.Error("Expected a fresh weapon to strike any monster")
	}

	// The 5 is then a free kill with the 10.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Health() != 17 {
		t.Errorf("Expected no damage from the 5, got %d HP", g.Health())
	}
}

func TestBareHandedRejectsNonMonsters(t *testing.T) {
	deck := []Card{
		potion(5), weapon(3), monster(2), monster(4),
		potion(2), potion(3), potion(4), potion(6),
	}
	g, _ := newTestGame(t, deck)

	if err := g.FightBareHanded(0); !errors.Is(err, ErrNotMonster) {
		t.Errorf("Expected ErrNotMonster for a potion, got %v", err)
	}
	if err := g.FightBareHanded(1); !errors.Is(err, ErrNotMonster) {
		t.Errorf("Expected ErrNotMonster for a weapon, got %v", err)
	}
	if v := g.View(); len(v.Room) != 4 {
		t.Errorf("Expected the room untouched after rejected plays, got %d cards", len(v.Room))
	}
}

func TestSecondPotionIsWasted(t *testing.T) {
	deck := []Card{
		monster(10), potion(4), potion(9), monster(2),
		potion(2), potion(3), potion(5), potion(6),
	}
	g, logger := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil { // 10 damage bare-handed
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // heal 4
		t.Fatal(err)
	}
	if g.Health() != 14 {
		t.Fatalf("Expected 14 HP after the first potion, got %d", g.Health())
	}
	if err := g.PlayCard(0); err != nil { // second potion this room
		t.Fatal(err)
	}
	if g.Health() != 14 {
		t.Errorf("Expected the second potion wasted, got %d HP", g.Health())
	}

	wasted := logger.EventsOfType(log.EventPotionWasted)
	if len(wasted) != 1 || wasted[0].Card != potion(9).String() {
		t.Fatalf("Expected the 9 of hearts wasted, got %v", wasted)
	}

	// A fresh room resets the limit.
	if err := g.PlayCard(1); err != nil { // heal 2
		t.Fatal(err)
	}
	if g.Health() != 16 {
		t.Errorf("Expected 16 HP from the next room's potion, got %d", g.Health())
	}
}

func TestPotionHealClampsAtMax(t *testing.T) {
	deck := []Card{
		monster(2), potion(9), weapon(3), monster(4),
		potion(2), potion(3), potion(5), potion(6),
	}
	g, logger := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil { // 18 HP
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // heal capped at +2
		t.Fatal(err)
	}
	if g.Health() != 20 {
		t.Errorf("Expected HP capped at 20, got %d", g.Health())
	}
	drunk := logger.EventsOfType(log.EventPotionDrunk)
	if len(drunk) != 1 {
		t.Fatalf("Expected one potion drunk, got %d", len(drunk))
	}
}

func TestSkipSendsRoomToBottom(t *testing.T) {
	deck := []Card{
		monster(2), monster(3), monster(4), monster(5),
		potion(2), potion(3), potion(4), potion(5),
	}
	g, logger := newTestGame(t, deck)

	if err := g.Skip(); err != nil {
		t.Fatal(err)
	}

	v := g.View()
	wantRoom := []Card{potion(2), potion(3), potion(4), potion(5)}
	for i, want := range wantRoom {
		if v.Room[i] != want {
			t.Errorf("Room card %d: expected %s, got %s", i, want, v.Room[i])
		}
	}
	// The skipped monsters are now the bottom of the dungeon.
	if v.DeckCount != 4 {
		t.Errorf("Expected 4 cards back in the dungeon, got %d", v.DeckCount)
	}
	if len(logger.EventsOfType(log.EventRoomSkipped)) != 1 {
		t.Error("Expected a room skipped event")
	}

	// Play through the potions; the monsters must resurface.
	for i := 0; i < 3; i++ {
		if err := g.PlayCard(0); err != nil {
			t.Fatal(err)
		}
	}
	v = g.View()
	if v.Room[0] != potion(5) || v.Room[1] != monster(2) {
		t.Errorf("Expected the skipped monsters redealt, got %v", v.Room)
	}
}

func TestCannotSkipTwiceInARow(t *testing.T) {
	deck := []Card{
		monster(2), monster(3), monster(4), monster(5),
		potion(2), potion(3), potion(4), potion(5),
	}
	g, _ := newTestGame(t, deck)

	if err := g.Skip(); err != nil {
		t.Fatal(err)
	}
	before := g.View()

	if err := g.Skip(); !errors.Is(err, ErrConsecutiveSkip) {
		t.Fatalf("Expected ErrConsecutiveSkip, got %v", err)
	}

	after := g.View()
	if after.DeckCount != before.DeckCount || len(after.Room) != len(before.Room) {
		t.Error("Expected a rejected skip to leave the run untouched")
	}
	for i := range before.Room {
		if after.Room[i] != before.Room[i] {
			t.Errorf("Room card %d changed after rejected skip", i)
		}
	}
	if before.CanSkip {
		t.Error("Expected CanSkip false right after a skip")
	}

	// Playing a card earns the next skip back.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.Skip(); err != nil {
		t.Errorf("Expected skip allowed after playing a room, got %v", err)
	}
}

func TestCannotSkipMidRoom(t *testing.T) {
	deck := []Card{
		potion(2), potion(3), potion(4), potion(5),
		monster(2), monster(3), monster(4), monster(5),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.Skip(); !errors.Is(err, ErrRoomInProgress) {
		t.Errorf("Expected ErrRoomInProgress after a play, got %v", err)
	}
	if v := g.View(); v.CanSkip {
		t.Error("Expected CanSkip false once a card has been played")
	}
}

func TestFourthCardCarriesOver(t *testing.T) {
	deck := []Card{
		potion(2), potion(3), potion(4), monster(9),
		weapon(2), weapon(3), weapon(4), weapon(5),
	}
	g, _ := newTestGame(t, deck)

	for i := 0; i < 3; i++ {
		if err := g.PlayCard(0); err != nil {
			t.Fatal(err)
		}
	}

	v := g.View()
	if v.Room[0] != monster(9) {
		t.Errorf("Expected the unplayed monster carried into the next room, got %s", v.Room[0])
	}
	if len(v.Room) != 4 || v.DeckCount != 1 {
		t.Errorf("Expected a refilled room of 4 with 1 card left, got %d and %d", len(v.Room), v.DeckCount)
	}
	if v.Turn != 2 {
		t.Errorf("Expected turn 2, got %d", v.Turn)
	}
}

func TestPlayIndexOutOfRange(t *testing.T) {
	deck := []Card{
		potion(2), potion(3), potion(4), potion(5),
		monster(2), monster(3), monster(4), monster(5),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index 4, got %v", err)
	}
	if err := g.PlayCard(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index -1, got %v", err)
	}
}

func TestPlayLimitGuard(t *testing.T) {
	deck := []Card{
		potion(2), potion(3), potion(4), potion(5),
		monster(2), monster(3), monster(4), monster(5),
	}
	g, _ := newTestGame(t, deck)

	// Force the counter past the limit without letting finishPlay redeal.
	g.played = g.rules.PlaysPerRoom
	if err := g.PlayCard(0); !errors.Is(err, ErrRoomNotActive) {
		t.Errorf("Expected ErrRoomNotActive at the play limit, got %v", err)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	deck := []Card{
		monster(14), clubMonster(14), monster(5), monster(6),
		monster(7), potion(2), potion(3), potion(4),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil { // 6 HP
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // dead
		t.Fatal(err)
	}
	if g.Status() != StatusLost {
		t.Fatalf("Expected the run lost, got %s", g.Status())
	}

	if err := g.PlayCard(0); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver on play, got %v", err)
	}
	if err := g.Skip(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver on skip, got %v", err)
	}
}

func TestLossScoreCountsRemainingMonsters(t *testing.T) {
	deck := []Card{
		monster(14), clubMonster(14), monster(13), monster(12),
		monster(11),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Status() != StatusLost {
		t.Fatalf("Expected the run lost, got %s", g.Status())
	}
	// 0 HP minus the 13, 12 in the room and the 11 still buried.
	if got := g.Score(); got != -36 {
		t.Errorf("Expected score -36, got %d", got)
	}
}

// TestWinWithFinalCards: once the dungeon runs dry the play limit lifts and
// the leftover cards must all be faced.
func TestWinWithFinalCards(t *testing.T) {
	deck := []Card{
		potion(2), weapon(2), potion(3), weapon(3),
		potion(4), weapon(4), potion(5),
	}
	g, logger := newTestGame(t, deck)

	// Room 1: drink, equip, waste.
	for i := 0; i < 3; i++ {
		if err := g.PlayCard(0); err != nil {
			t.Fatal(err)
		}
	}
	// Room 2 holds the last four cards; the third play exhausts the dungeon.
	for i := 0; i < 3; i++ {
		if err := g.PlayCard(0); err != nil {
			t.Fatal(err)
		}
	}

	final := logger.EventsOfType(log.EventFinalCards)
	if len(final) != 1 {
		t.Fatalf("Expected a final cards event, got %d:\n%s", len(final), log.FormatAll(logger.Events()))
	}
	if g.Status() != StatusPlaying {
		t.Fatalf("Expected the run still going with a card left, got %s", g.Status())
	}

	// The fourth play of the room is allowed now.
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Status() != StatusWon {
		t.Fatalf("Expected the run won, got %s", g.Status())
	}

	// Full health and the last play was a drunk potion: its strength is a bonus.
	if got := g.Score(); got != 25 {
		t.Errorf("Expected score 25, got %d", got)
	}
	wins := logger.EventsOfType(log.EventWin)
	if len(wins) != 1 {
		t.Fatal("Expected a win event")
	}
}

func TestWinScoreIsHealth(t *testing.T) {
	deck := []Card{
		monster(5), potion(2), weapon(2), weapon(3),
		weapon(4),
	}
	g, _ := newTestGame(t, deck)

	// Fight the 5 bare-handed, drink back 2, equip; then the last two cards.
	for i := 0; i < 3; i++ {
		if err := g.PlayCard(0); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if g.Status() != StatusWon {
		t.Fatalf("Expected the run won, got %s", g.Status())
	}
	if got := g.Score(); got != 17 {
		t.Errorf("Expected score 17, got %d", got)
	}
}

func TestViewReflectsRun(t *testing.T) {
	deck := []Card{
		weapon(7), monster(4), potion(3), monster(6),
		potion(2), potion(4), potion(5), potion(6),
	}
	g, _ := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil {
		t.Fatal(err)
	}

	v := g.View()
	if v.Status != StatusPlaying {
		t.Errorf("Expected StatusPlaying, got %s", v.Status)
	}
	if v.PlaysRemaining != 1 {
		t.Errorf("Expected 1 play remaining, got %d", v.PlaysRemaining)
	}
	if v.Weapon == nil {
		t.Fatal("Expected a weapon in the view")
	}
	if v.Weapon.Power != 7 || v.Weapon.LastSlain != 4 {
		t.Errorf("Expected a 7 with last kill 4, got power %d last %d", v.Weapon.Power, v.Weapon.LastSlain)
	}
	if got := v.Weapon.DamageAgainst(3); got != 0 {
		t.Errorf("Expected 0 damage against a 3, got %d", got)
	}
	if v.Weapon.CanStrike(4) {
		t.Error("Expected the weapon unable to strike its last kill's rank")
	}

	// Mutating the snapshot must not leak into the run.
	v.Room[0] = monster(14)
	if g.View().Room[0] == monster(14) {
		t.Error("Expected View to return a copy of the room")
	}
}

func TestReplacedWeaponGoesToDiscard(t *testing.T) {
	deck := []Card{
		weapon(3), monster(5), weapon(8), monster(2),
		potion(2), potion(3), potion(4), potion(5),
	}
	g, logger := newTestGame(t, deck)

	if err := g.PlayCard(0); err != nil { // equip the 3
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // kill the 5 with it
		t.Fatal(err)
	}
	if err := g.PlayCard(0); err != nil { // swap to the 8
		t.Fatal(err)
	}

	v := g.View()
	if v.Weapon == nil || v.Weapon.Power != 8 || v.Weapon.LastSlain != 0 {
		t.Fatalf("Expected a fresh 8 equipped, got %+v", v.Weapon)
	}
	// The old weapon and its kill both hit the discard pile.
	if v.DiscardCount != 2 {
		t.Errorf("Expected 2 cards discarded, got %d", v.DiscardCount)
	}

	equips := logger.EventsOfType(log.EventWeaponEquipped)
	if len(equips) != 2 {
		t.Fatalf("Expected 2 equip events, got %d", len(equips))
	}
	if equips[1].Details != "Discarded 3♦, equipped 8♦" {
		t.Errorf("Unexpected swap details: %q", equips[1].Details)
	}
}
