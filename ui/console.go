package ui

import (
	"bufio"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/gamemaster"
	"connect4/searcher"
	"connect4/searcher/agent"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console plays the human side through line based text input.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove prompts until a playable column is entered. It returns NoColumn
// once the input is exhausted.
func (c *Console) FindMove(board game.Board, side game.Side) (int, metrics.SearchMetric) {
	for {
		fmt.Fprintf(c.out, "Your move (0-%d): ", game.Columns-1)
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return searcher.NoColumn, metrics.SearchMetric{}
		}

		col, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil || col < 0 || col >= game.Columns {
			fmt.Fprintf(c.out, "Enter a column between 0 and %d.\n", game.Columns-1)
			continue
		}
		if !board.IsAvailable(col) {
			fmt.Fprintf(c.out, "Column %d is full.\n", col)
			continue
		}
		return col, metrics.SearchMetric{}
	}
}

// Render prints the board after every update and the result once the game
// is over.
func (c *Console) Render(u engine.Update) {
	if u.Column != searcher.NoColumn {
		fmt.Fprintf(c.out, "%s dropped in column %d\n", u.Side, u.Column)
	}
	fmt.Fprintf(c.out, "%s\n\n", u.Board)

	if u.Over() {
		fmt.Fprintln(c.out, banner(u))
	}
}

func (c *Console) PlayAgain() bool {
	fmt.Fprint(c.out, "Play again? (y/n): ")
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

// RunConsole plays games against ai until the user declines another game or
// the input ends.
func RunConsole(c *Console, ai agent.Agent, humanFirst bool) error {
	first := game.AI
	if humanFirst {
		first = game.Human
	}

	for {
		e := engine.LocalEngine(first, c, ai)
		e.OnUpdate = c.Render
		if _, _, err := e.Run(); err != nil {
			if errors.Is(err, engine.ErrAborted) {
				return nil
			}
			return err
		}
		if !c.PlayAgain() {
			return nil
		}
	}
}

func banner(u engine.Update) string {
	switch {
	case u.Status == gamemaster.StatusDraw:
		return "It's a draw!"
	case u.Winner == game.Human:
		return "You win!"
	default:
		return "The AI wins!"
	}
}
