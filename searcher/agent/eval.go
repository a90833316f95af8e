package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searcher's best column.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

// The searcher always maximizes for the AI, so a human-side agent searches
// the mirrored board.
func (a minimaxAgent) FindMove(board game.Board, side game.Side) (int, metrics.SearchMetric) {
	if side == game.Human {
		board = board.Mirror()
	}
	result, metric := a.minimax.FindMove(board, game.AI)
	return result.Column, metric
}
