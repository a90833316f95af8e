package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Setup struct {
	Dir      string // Root directory for CSV output
	NumGames int    // Per match up
	MaxDepth int
	Seed     uint64
}

// RunDepthExperiment pairs minimax agents of increasing depth against the
// greedy baseline.
func RunDepthExperiment(setup Setup) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.GreedyAgent, Seed: setup.Seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= setup.MaxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: metrics.MinimaxAgent, Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth", setup, configs, matchUps)
}

// RunSelfPlayExperiment pairs every minimax depth against the next one.
func RunSelfPlayExperiment(setup Setup) error {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= setup.MaxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Kind: metrics.MinimaxAgent, Depth: depth})
	}
	matchUps := [][]metrics.AgentConfig{}
	for i := 0; i+1 < len(configs); i++ {
		matchUps = append(matchUps, []metrics.AgentConfig{configs[i+1], configs[i]})
	}

	return runExperiment("self_play", setup, configs, matchUps)
}

func runExperiment(name string, setup Setup, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		wins := map[game.Side]int{}
		for i := 0; i < setup.NumGames; i++ {
			// Alternate the starting side
			first := game.AI
			if i%2 == 1 {
				first = game.Human
			}

			gameMetric, moveMetrics, err := runGame(config1, config2, first, uint64(i))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			wins[gameMetric.Winner]++

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		log.Info().
			Int("agent1_wins", wins[game.AI]).
			Int("agent2_wins", wins[game.Human]).
			Int("draws", wins[game.Empty]).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(setup.Dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s records in %s", name, writer.Dir())
	return nil
}

// runGame plays config1 on the AI side against config2 on the human side.
func runGame(config1, config2 metrics.AgentConfig, first game.Side, gameNum uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(first, createAgent(config2, gameNum), createAgent(config1, gameNum))
	return e.Run()
}

// createAgent offsets random seeds by the game number so games differ.
func createAgent(config metrics.AgentConfig, gameNum uint64) agent.Agent {
	switch config.Kind {
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent(config.Seed + gameNum)
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + gameNum)
	default:
		return agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
	}
}
