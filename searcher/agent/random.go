package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng    *rand.Rand
	greedy bool
}

// NewRandomAgent returns an agent playing uniformly among the legal columns.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

// NewGreedyAgent returns an agent that wins when it can, otherwise blocks an
// immediate loss, otherwise plays a random legal column.
func NewGreedyAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed)), greedy: true}
}

func (a *randomAgent) FindMove(board game.Board, side game.Side) (int, metrics.SearchMetric) {
	columns := board.AvailableColumns()
	if len(columns) == 0 {
		return searcher.NoColumn, metrics.SearchMetric{}
	}

	if a.greedy {
		if col, ok := winningColumn(board, columns, side); ok {
			return col, metrics.SearchMetric{}
		}
		if col, ok := winningColumn(board, columns, side.Opponent()); ok {
			return col, metrics.SearchMetric{}
		}
	}

	return columns[a.rng.Intn(len(columns))], metrics.SearchMetric{}
}

func winningColumn(board game.Board, columns []int, side game.Side) (int, bool) {
	for _, col := range columns {
		next, err := board.ApplyMove(col, side)
		if err == nil && next.Winner() == side {
			return col, true
		}
	}
	return 0, false
}
