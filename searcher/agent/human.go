package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// HumanAgent hands columns chosen by a user interface to the game loop. A
// column is only accepted while the game loop is waiting for one.
type HumanAgent struct {
	moves   chan int
	done    chan struct{}
	once    sync.Once
	waiting atomic.Bool
}

func NewHumanAgent() *HumanAgent {
	return &HumanAgent{
		moves: make(chan int),
		done:  make(chan struct{}),
	}
}

// Submit offers col to a waiting FindMove. It reports false when nobody is
// waiting for a move.
func (h *HumanAgent) Submit(col int) bool {
	select {
	case h.moves <- col:
		return true
	default:
		return false
	}
}

// Waiting reports whether FindMove is blocked on a column.
func (h *HumanAgent) Waiting() bool {
	return h.waiting.Load()
}

// Close aborts a pending and every future FindMove with NoColumn.
func (h *HumanAgent) Close() {
	h.once.Do(func() { close(h.done) })
}

func (h *HumanAgent) FindMove(board game.Board, side game.Side) (int, metrics.SearchMetric) {
	h.waiting.Store(true)
	defer h.waiting.Store(false)

	for {
		select {
		case <-h.done:
			return searcher.NoColumn, metrics.SearchMetric{}
		case col := <-h.moves:
			if board.IsAvailable(col) {
				return col, metrics.SearchMetric{}
			}
			log.Warn().Msgf("%s submitted unavailable column %d", side, col)
		}
	}
}
