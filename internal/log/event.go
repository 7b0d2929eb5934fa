package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventGameStart EventType = iota
	EventRoomDealt
	EventMonsterSlain  // killed with the equipped weapon
	EventMonsterFought // fought bare-handed
	EventWeaponEquipped
	EventPotionDrunk
	EventPotionWasted
	EventRoomSkipped
	EventFinalCards // dungeon empty; remaining room cards must be played
	EventWin
	EventLoss
)

func (e EventType) String() string {
	switch e {
	case EventGameStart:
		return "GameStart"
	case EventRoomDealt:
		return "RoomDealt"
	case EventMonsterSlain:
		return "MonsterSlain"
	case EventMonsterFought:
		return "MonsterFought"
	case EventWeaponEquipped:
		return "WeaponEquipped"
	case EventPotionDrunk:
		return "PotionDrunk"
	case EventPotionWasted:
		return "PotionWasted"
	case EventRoomSkipped:
		return "RoomSkipped"
	case EventFinalCards:
		return "FinalCards"
	case EventWin:
		return "Win"
	case EventLoss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// GameEvent is a single entry in the adventure log.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which room visit (1-based)
	Type    EventType // event type
	Card    string    // card display string (if applicable)
	Details string    // human-readable detail string
}
