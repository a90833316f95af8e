package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/gamemaster"
	"connect4/searcher"
	"connect4/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Game     gamemaster.GameMaster
	Agents   map[game.Side]agent.Agent
	OnUpdate func(Update)
	first    game.Side
}

// Update describes the game after a move. Column is searcher.NoColumn for
// the update sent before the first move.
type Update struct {
	Column int
	Side   game.Side
	Board  game.Board
	Turn   game.Side
	Status gamemaster.Status
	Winner game.Side
}

func (u Update) Over() bool {
	return u.Status != gamemaster.StatusActive
}

func LocalEngine(first game.Side, human, ai agent.Agent) *Engine {
	if human == nil || ai == nil {
		panic("both sides need an agent")
	}

	return &Engine{
		Game: gamemaster.NewLocalGame(first),
		Agents: map[game.Side]agent.Agent{
			game.Human: human,
			game.AI:    ai,
		},
		first: first,
	}
}

// Run executes the entire game loop until a winner is found or the board is
// full. Every agent call blocks the loop.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Game.Turn())
	e.notify(searcher.NoColumn, game.Empty)

	step := 1
	for !e.Game.Over() {
		side := e.Game.Turn()
		col, searchMetric := e.Agents[side].FindMove(e.Game.Board(), side)
		if col == searcher.NoColumn {
			return e.complete(gameMetric), moveMetrics, fmt.Errorf("%w: %s gave up on step %d", ErrAborted, side, step)
		}

		if err := e.Game.PlayAs(side, col); err != nil {
			return e.complete(gameMetric), moveMetrics, fmt.Errorf("%s played column %d on step %d: %w", side, col, step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side,
			Column:       col,
			SearchMetric: searchMetric,
		})

		board := e.Game.Board()
		log.Debug().
			Int("step", step).
			Int("nodes", searchMetric.Nodes).
			Int64("score", searchMetric.Score).
			Dur("duration", searchMetric.Duration).
			Msgf("%s dropped in column %d\n%s", side, col, board)

		e.notify(col, side)
		step++
	}

	gameMetric = e.complete(gameMetric)
	if gameMetric.Winner != game.Empty {
		log.Info().Msgf("%s won after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("draw after %d moves", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics, nil
}

func (e *Engine) complete(gameMetric metrics.GameMetric) metrics.GameMetric {
	gameMetric.Winner = e.Game.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.Game.History())
	return gameMetric
}

func (e *Engine) notify(col int, side game.Side) {
	if e.OnUpdate == nil {
		return
	}
	e.OnUpdate(Update{
		Column: col,
		Side:   side,
		Board:  e.Game.Board(),
		Turn:   e.Game.Turn(),
		Status: e.Game.Status(),
		Winner: e.Game.Winner(),
	})
}
