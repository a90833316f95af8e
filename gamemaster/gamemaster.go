package gamemaster

import "connect4/game"

type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusDraw   Status = "draw"
)

const (
	ErrGameOver    game.Error = "game is over - no moves allowed"
	ErrNotYourTurn game.Error = "not your turn"
)

// GameMaster owns the authoritative board of a single game and resolves the
// moves played on it.
type GameMaster interface {
	Board() game.Board
	Turn() game.Side
	Play(col int) error
	PlayAs(side game.Side, col int) error
	Status() Status
	Over() bool
	Winner() game.Side
	History() []int
}
