package game

import "errors"

// Rule violations are expected, recoverable conditions surfaced to the
// caller. The engine never panics or terminates on them.
var (
	ErrOutOfRange      = errors.New("card index out of range")
	ErrRoomNotActive   = errors.New("room is resolved; the last card carries forward")
	ErrConsecutiveSkip = errors.New("cannot skip two rooms in a row")
	ErrRoomInProgress  = errors.New("cannot skip after playing a card this room")
	ErrGameOver        = errors.New("game is over")
	ErrNotMonster      = errors.New("card is not a monster")
)
