package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// NumPositions is the number of sampled positions searched per depth.
const NumPositions = 10

// RunThroughputExperiment searches sampled positions at every depth up to
// setup.MaxDepth and records the size of each search tree.
func RunThroughputExperiment(setup Setup) error {
	positions := samplePositions(NumPositions, setup.Seed)
	records := []metrics.SearchRecord{}

	log.Info().Msg("starting throughput experiment...")

	for depth := 1; depth <= setup.MaxDepth; depth++ {
		m := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics())
		nodes := 0
		for i, board := range positions {
			result, metric := m.FindMove(board, game.AI)
			records = append(records, metrics.SearchRecord{
				Position:     i,
				Pieces:       board.Pieces(game.AI) + board.Pieces(game.Human),
				Column:       result.Column,
				SearchMetric: metric,
			})
			nodes += metric.Nodes
		}
		log.Info().Int("nodes", nodes).Msgf("completed depth %d", depth)
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(setup.Dir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		return fmt.Errorf("failed to store search records: %w", err)
	}
	log.Info().Msgf("stored search records in %s", writer.Dir())
	return nil
}

// samplePositions plays random games and keeps non-terminal positions with
// the AI to move. Position i has about 2*i pieces.
func samplePositions(n int, seed uint64) []game.Board {
	positions := make([]game.Board, 0, n)
	for i := 0; len(positions) < n; i++ {
		human := agent.NewRandomAgent(seed + uint64(i))
		ai := agent.NewRandomAgent(seed + uint64(i) + 1)
		board := game.NewBoard()
		target := len(positions)
		for ply := 0; ply < 2*target; ply++ {
			side, a := game.AI, ai
			if ply%2 == 1 {
				side, a = game.Human, human
			}
			col, _ := a.FindMove(board, side)
			board, _ = board.ApplyMove(col, side)
			if board.Winner() != game.Empty {
				break
			}
		}
		if board.Winner() == game.Empty && !board.IsFull() {
			positions = append(positions, board)
		}
	}
	return positions
}
