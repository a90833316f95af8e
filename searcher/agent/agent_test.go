package agent

import (
	"connect4/game"
	"connect4/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, rows ...string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestMinimaxAgent(t *testing.T) {
	t.Run("AI side takes the win", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(3), searcher.WithMetrics()))
		col, metric := a.FindMove(parse(t, "AAA.HH."), game.AI)
		require.Equal(t, 3, col)
		require.Equal(t, 3*searcher.Large, metric.Score)
		require.Positive(t, metric.Nodes)
	})

	t.Run("human side searches the mirrored board", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(3)))
		col, _ := a.FindMove(parse(t, "HHH..AA"), game.Human)
		require.Equal(t, 3, col)
	})

	t.Run("human side blocks", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2)))
		col, _ := a.FindMove(parse(t, "H.....H", "AAA...H"), game.Human)
		require.Equal(t, 3, col)
	})

	t.Run("terminal board has no move", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax())
		col, _ := a.FindMove(parse(t, "AAAAHHH"), game.Human)
		require.Equal(t, searcher.NoColumn, col)
	})
}

func TestGreedyAgent(t *testing.T) {
	t.Run("wins before blocking", func(t *testing.T) {
		b := parse(t,
			"H......",
			"HAAA...",
			"HAHAH..",
		)
		col, _ := NewGreedyAgent(1).FindMove(b, game.AI)
		require.Equal(t, 4, col)
	})

	t.Run("blocks", func(t *testing.T) {
		b := parse(t,
			"H......",
			"H......",
			"HA.A...",
		)
		col, _ := NewGreedyAgent(1).FindMove(b, game.AI)
		require.Equal(t, 0, col)
	})

	t.Run("random otherwise", func(t *testing.T) {
		b := parse(t, "...A...")
		col, _ := NewGreedyAgent(7).FindMove(b, game.Human)
		require.True(t, b.IsAvailable(col))
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed same moves", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		b := game.NewBoard()
		for i := 0; i < 10; i++ {
			c1, _ := a1.FindMove(b, game.AI)
			c2, _ := a2.FindMove(b, game.AI)
			require.Equal(t, c1, c2)
		}
	})

	t.Run("only legal columns", func(t *testing.T) {
		b := parse(t,
			"HAHAHA.",
			"AHAHAH.",
			"HAHAHA.",
			"HAHAHA.",
			"AHAHAH.",
			"HAHAHA.",
		)
		a := NewRandomAgent(3)
		for i := 0; i < 20; i++ {
			col, _ := a.FindMove(b, game.Human)
			require.Equal(t, 6, col)
		}
	})

	t.Run("full board", func(t *testing.T) {
		b := parse(t,
			"AAHHAAH",
			"HHAAHHA",
			"AAHHAAH",
			"HHAAHHA",
			"AAHHAAH",
			"HHAAHHA",
		)
		col, _ := NewRandomAgent(3).FindMove(b, game.AI)
		require.Equal(t, searcher.NoColumn, col)
	})
}

func TestHumanAgent(t *testing.T) {
	t.Run("rejects moves while nobody waits", func(t *testing.T) {
		h := NewHumanAgent()
		require.False(t, h.Waiting())
		require.False(t, h.Submit(3))
	})

	t.Run("hands a move to a waiting game loop", func(t *testing.T) {
		h := NewHumanAgent()
		got := make(chan int, 1)
		go func() {
			col, _ := h.FindMove(game.NewBoard(), game.Human)
			got <- col
		}()

		require.Eventually(t, func() bool { return h.Submit(3) }, time.Second, time.Millisecond)
		require.Equal(t, 3, <-got)
		require.False(t, h.Waiting())
	})

	t.Run("skips unavailable columns", func(t *testing.T) {
		h := NewHumanAgent()
		b := parse(t,
			"H......",
			"A......",
			"H......",
			"A......",
			"H......",
			"A......",
		)
		got := make(chan int, 1)
		go func() {
			col, _ := h.FindMove(b, game.Human)
			got <- col
		}()

		require.Eventually(t, func() bool { return h.Submit(0) }, time.Second, time.Millisecond)
		require.Eventually(t, func() bool { return h.Submit(9) }, time.Second, time.Millisecond)
		require.Eventually(t, func() bool { return h.Submit(5) }, time.Second, time.Millisecond)
		require.Equal(t, 5, <-got)
	})

	t.Run("close aborts", func(t *testing.T) {
		h := NewHumanAgent()
		got := make(chan int, 1)
		go func() {
			col, _ := h.FindMove(game.NewBoard(), game.Human)
			got <- col
		}()

		require.Eventually(t, h.Waiting, time.Second, time.Millisecond)
		h.Close()
		h.Close()
		require.Equal(t, searcher.NoColumn, <-got)
	})
}
