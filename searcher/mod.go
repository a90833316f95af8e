package searcher

import "connect4/game"

// DefaultDepth is the search horizon in plies.
const DefaultDepth = 5

// Large is the magnitude of a decided position. It is scaled by the remaining
// depth so quicker wins (and slower losses) are preferred.
const Large int64 = 100_000_000_000_000

// NoColumn marks a result without a move: the position was terminal or at the
// search horizon.
const NoColumn = -1

type SearchResult struct {
	Column int
	Score  int64
}

func (r SearchResult) HasMove() bool {
	return r.Column != NoColumn
}

// Search runs a default minimax searcher on board with side to move.
func Search(board game.Board, depth int, side game.Side) SearchResult {
	return NewMinimax().Search(board, depth, side)
}
