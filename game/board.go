package game

import (
	"fmt"
	"strings"
)

// Board is a 6x7 Connect Four grid. Row 0 is the bottom row. Boards are
// values: every move produces a new Board and leaves the receiver untouched.
type Board struct {
	cells [Rows][Columns]Side
}

type cell struct {
	row, col int
}

// A window is a run of ToWin cells along one of the four winning directions.
type window [ToWin]cell

// windows lists every window in scan order: vertical, horizontal, rising
// diagonal, falling diagonal.
var windows = allWindows()

func allWindows() []window {
	var ws []window
	for row := 0; row < Rows-ToWin+1; row++ {
		for col := 0; col < Columns; col++ {
			ws = append(ws, line(row, col, 1, 0))
		}
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns-ToWin+1; col++ {
			ws = append(ws, line(row, col, 0, 1))
		}
	}
	for row := 0; row < Rows-ToWin+1; row++ {
		for col := 0; col < Columns-ToWin+1; col++ {
			ws = append(ws, line(row, col, 1, 1))
		}
	}
	for row := ToWin - 1; row < Rows; row++ {
		for col := 0; col < Columns-ToWin+1; col++ {
			ws = append(ws, line(row, col, -1, 1))
		}
	}
	return ws
}

func line(row, col, deltaRow, deltaCol int) window {
	var w window
	for i := range w {
		w[i] = cell{row: row + i*deltaRow, col: col + i*deltaCol}
	}
	return w
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// At returns the content of the cell at (row, col), row 0 being the bottom.
func (b Board) At(row, col int) Side {
	return b.cells[row][col]
}

func (b Board) values(w window) [ToWin]Side {
	var vs [ToWin]Side
	for i, c := range w {
		vs[i] = b.cells[c.row][c.col]
	}
	return vs
}

// IsAvailable reports whether a piece can still be dropped in col.
func (b Board) IsAvailable(col int) bool {
	return col >= 0 && col < Columns && b.cells[Rows-1][col] == Empty
}

// AvailableColumns returns the columns whose top cell is empty, in ascending
// order. An empty result means the board is full.
func (b Board) AvailableColumns() []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.cells[Rows-1][col] == Empty {
			cols = append(cols, col)
		}
	}
	return cols
}

func (b Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b.cells[Rows-1][col] == Empty {
			return false
		}
	}
	return true
}

// LowestEmptyRow returns the row a piece dropped in col would land on.
func (b Board) LowestEmptyRow(col int) (int, error) {
	if col < 0 || col >= Columns {
		return -1, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, col)
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][col] == Empty {
			return row, nil
		}
	}
	return -1, fmt.Errorf("%w: column %d", ErrColumnFull, col)
}

// ApplyMove drops a piece of side into col and returns the resulting board.
// A full column is reported as both ErrInvalidMove and ErrColumnFull.
func (b Board) ApplyMove(col int, side Side) (Board, error) {
	if !side.IsPlayer() {
		return b, fmt.Errorf("%w: %s cannot move", ErrInvalidMove, side)
	}
	row, err := b.LowestEmptyRow(col)
	if err != nil {
		if col >= 0 && col < Columns {
			return b, fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
		return b, err
	}
	next := b
	next.cells[row][col] = side
	return next, nil
}

// Winner returns the side owning four in a row, or Empty. When several
// four-in-a-rows exist the first one found in window scan order wins.
func (b Board) Winner() Side {
	for _, w := range windows {
		first := b.cells[w[0].row][w[0].col]
		if first == Empty {
			continue
		}
		won := true
		for _, c := range w[1:] {
			if b.cells[c.row][c.col] != first {
				won = false
				break
			}
		}
		if won {
			return first
		}
	}
	return Empty
}

// Pieces counts the pieces of side on the board.
func (b Board) Pieces(side Side) int {
	n := 0
	for row := range b.cells {
		for _, s := range b.cells[row] {
			if s == side {
				n++
			}
		}
	}
	return n
}

// Mirror swaps the pieces of both players.
func (b Board) Mirror() Board {
	var m Board
	for row := range b.cells {
		for col, s := range b.cells[row] {
			m.cells[row][col] = s.Opponent()
		}
	}
	return m
}

// String renders the board top row first with column numbers underneath.
func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cells[row][col].Rune())
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", col)
	}
	return sb.String()
}

// ParseBoard builds a board from rows written top row first using the runes of
// Side.Rune. Spaces are ignored. Fewer than Rows rows fill the bottom of the
// board. Pieces floating above an empty cell are rejected.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Rows {
		return b, fmt.Errorf("%w: %d rows", ErrInvalidBoard, len(rows))
	}
	for i, text := range rows {
		row := len(rows) - 1 - i
		cols := []rune(strings.ReplaceAll(text, " ", ""))
		if len(cols) != Columns {
			return b, fmt.Errorf("%w: row %q has %d columns", ErrInvalidBoard, text, len(cols))
		}
		for col, r := range cols {
			switch r {
			case Human.Rune():
				b.cells[row][col] = Human
			case AI.Rune():
				b.cells[row][col] = AI
			case Empty.Rune():
			default:
				return b, fmt.Errorf("%w: unknown piece %q", ErrInvalidBoard, r)
			}
		}
	}
	for col := 0; col < Columns; col++ {
		for row := 1; row < Rows; row++ {
			if b.cells[row][col] != Empty && b.cells[row-1][col] == Empty {
				return b, fmt.Errorf("%w: floating piece in column %d", ErrInvalidBoard, col)
			}
		}
	}
	return b, nil
}
