package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax searcher with alpha-beta pruning. The AI
// always maximizes and the human always minimizes; leaves are evaluated from
// the AI's point of view.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: game.ScorePosition,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches at the configured depth and reports search metrics.
func (m *Minimax) FindMove(board game.Board, side game.Side) (SearchResult, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	result := m.Search(board, m.depth, side)
	metric := m.metrics.Complete()
	metric.Score = result.Score
	return result, metric
}

// Search returns the best column for side to move and its evaluation. The
// board is never modified. A terminal board yields NoColumn with its terminal
// score.
func (m *Minimax) Search(board game.Board, depth int, side game.Side) SearchResult {
	if depth < 0 {
		depth = 0
	}
	return m.alphaBeta(board, depth, math.MinInt64, math.MaxInt64, side != game.Human)
}

func (m *Minimax) alphaBeta(board game.Board, depth int, alpha, beta int64, maximizing bool) SearchResult {
	m.metrics.AddNode()

	switch board.Winner() {
	case game.AI:
		return SearchResult{Column: NoColumn, Score: Large * int64(depth+1)}
	case game.Human:
		return SearchResult{Column: NoColumn, Score: -Large * int64(depth+1)}
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return SearchResult{Column: NoColumn, Score: int64(m.evaluate(board, game.AI))}
	}
	columns := board.AvailableColumns()
	if len(columns) == 0 {
		return SearchResult{Column: NoColumn, Score: 0}
	}

	if maximizing {
		best := SearchResult{Column: columns[0], Score: math.MinInt64}
		for _, col := range columns {
			value := m.alphaBeta(play(board, col, game.AI), depth-1, alpha, beta, false).Score
			if value > best.Score {
				best = SearchResult{Column: col, Score: value}
			}
			alpha = max(alpha, value)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := SearchResult{Column: columns[0], Score: math.MaxInt64}
	for _, col := range columns {
		value := m.alphaBeta(play(board, col, game.Human), depth-1, alpha, beta, true).Score
		if value < best.Score {
			best = SearchResult{Column: col, Score: value}
		}
		beta = min(beta, value)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// play only receives columns taken from AvailableColumns, so a failure is a
// broken invariant.
func play(board game.Board, col int, side game.Side) game.Board {
	next, err := board.ApplyMove(col, side)
	if err != nil {
		panic(err)
	}
	return next
}
