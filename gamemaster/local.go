package gamemaster

import (
	"connect4/game"
	"fmt"
)

type localGame struct {
	board   game.Board
	turn    game.Side
	status  Status
	winner  game.Side
	history []int
}

// NewLocalGame starts a game on an empty board with first to move.
func NewLocalGame(first game.Side) *localGame {
	if !first.IsPlayer() {
		panic(fmt.Sprintf("first player must be human or ai, got %s", first))
	}
	return &localGame{
		board:  game.NewBoard(),
		turn:   first,
		status: StatusActive,
	}
}

// Board returns a copy of the current board.
func (g *localGame) Board() game.Board {
	return g.board
}

func (g *localGame) Turn() game.Side {
	return g.turn
}

func (g *localGame) Status() Status {
	return g.status
}

func (g *localGame) Winner() game.Side {
	return g.winner
}

func (g *localGame) Over() bool {
	return g.status != StatusActive
}

func (g *localGame) History() []int {
	history := make([]int, len(g.history))
	copy(history, g.history)
	return history
}

// PlayAs plays col only if it is side's turn.
func (g *localGame) PlayAs(side game.Side, col int) error {
	if g.Over() {
		return ErrGameOver
	}
	if side != g.turn {
		return fmt.Errorf("%w: %s tried to move while %s is to move", ErrNotYourTurn, side, g.turn)
	}
	return g.Play(col)
}

// Play drops a piece of the side to move into col, then checks for a winner
// and for a full board.
func (g *localGame) Play(col int) error {
	if g.Over() {
		return ErrGameOver
	}

	next, err := g.board.ApplyMove(col, g.turn)
	if err != nil {
		return err
	}
	g.board = next
	g.history = append(g.history, col)

	if winner := next.Winner(); winner != game.Empty {
		g.status = StatusWon
		g.winner = winner
		return nil
	}
	if next.IsFull() {
		g.status = StatusDraw
		return nil
	}

	g.turn = g.turn.Opponent()
	return nil
}
