package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Agent interface {
	// FindMove returns the column to play for side and performance metrics (if collected) from the search
	FindMove(board game.Board, side game.Side) (int, metrics.SearchMetric)
}
