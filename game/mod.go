package game

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Side is both the value of a board cell and the identity of a player.
type Side int8

const (
	Empty Side = iota
	Human
	AI
)

func (s Side) IsPlayer() bool {
	return s == Human || s == AI
}

// Opponent returns the other player. Empty has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Human:
		return AI
	case AI:
		return Human
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case AI:
		return "ai"
	default:
		return "empty"
	}
}

// Rune is the single-character form used by Board.String and ParseBoard.
func (s Side) Rune() rune {
	switch s {
	case Human:
		return 'H'
	case AI:
		return 'A'
	default:
		return '.'
	}
}

// Evaluates a non-terminal board from the point of view of side. Larger is
// better for side.
type Evaluate func(board Board, side Side) int

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrInvalidBoard Error = "invalid board"
)
