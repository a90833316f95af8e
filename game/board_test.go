package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestAvailableColumns(t *testing.T) {
	t.Run("empty board has every column", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, NewBoard().AvailableColumns())
	})

	t.Run("full columns are skipped", func(t *testing.T) {
		b := mustParse(t,
			"H.A....",
			"A.H....",
			"H.A....",
			"A.H....",
			"H.A....",
			"A.H...H",
		)
		require.Equal(t, []int{1, 3, 4, 5, 6}, b.AvailableColumns())
		require.False(t, b.IsAvailable(0))
		require.True(t, b.IsAvailable(6))
		require.False(t, b.IsAvailable(-1))
		require.False(t, b.IsAvailable(Columns))
	})

	t.Run("full board has none", func(t *testing.T) {
		b := drawnBoard(t)
		require.Empty(t, b.AvailableColumns())
		require.True(t, b.IsFull())
	})

	t.Run("matches top cells on every reachable board", func(t *testing.T) {
		b := NewBoard()
		side := Human
		for i := 0; i < Rows*Columns; i++ {
			cols := b.AvailableColumns()
			require.LessOrEqual(t, len(cols), Columns)
			for col := 0; col < Columns; col++ {
				require.Equal(t, b.At(Rows-1, col) == Empty, containsInt(cols, col))
			}
			var err error
			b, err = b.ApplyMove(cols[(i*3)%len(cols)], side)
			require.NoError(t, err)
			side = side.Opponent()
		}
		require.Empty(t, b.AvailableColumns())
	})
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func TestLowestEmptyRow(t *testing.T) {
	b := mustParse(t,
		"A......",
		"H......",
		"H..A...",
	)
	row, err := b.LowestEmptyRow(0)
	require.NoError(t, err)
	require.Equal(t, 3, row)

	row, err = b.LowestEmptyRow(3)
	require.NoError(t, err)
	require.Equal(t, 1, row)

	row, err = b.LowestEmptyRow(6)
	require.NoError(t, err)
	require.Equal(t, 0, row)

	_, err = b.LowestEmptyRow(7)
	require.ErrorIs(t, err, ErrInvalidMove)

	_, err = drawnBoard(t).LowestEmptyRow(2)
	require.ErrorIs(t, err, ErrColumnFull)
}

func TestApplyMove(t *testing.T) {
	t.Run("drops to the lowest empty row", func(t *testing.T) {
		b := NewBoard()
		b, err := b.ApplyMove(3, AI)
		require.NoError(t, err)
		b, err = b.ApplyMove(3, Human)
		require.NoError(t, err)
		require.Equal(t, AI, b.At(0, 3))
		require.Equal(t, Human, b.At(1, 3))
		require.Equal(t, Empty, b.At(2, 3))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		b := mustParse(t, "..HA...")
		snapshot := b
		next, err := b.ApplyMove(2, AI)
		require.NoError(t, err)
		require.Equal(t, snapshot, b)
		require.NotEqual(t, b, next)
	})

	t.Run("rejects illegal columns", func(t *testing.T) {
		full := drawnBoard(t)
		_, err := full.ApplyMove(4, Human)
		require.ErrorIs(t, err, ErrInvalidMove)
		require.ErrorIs(t, err, ErrColumnFull)

		for _, col := range []int{-1, Columns, 100} {
			_, err := NewBoard().ApplyMove(col, Human)
			require.ErrorIs(t, err, ErrInvalidMove)
		}
	})

	t.Run("rejects the empty side", func(t *testing.T) {
		_, err := NewBoard().ApplyMove(0, Empty)
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Side
	}{
		{
			name: "empty board",
			rows: nil,
			want: Empty,
		},
		{
			name: "vertical",
			rows: []string{
				"...A...",
				"...A..H",
				"...A..H",
				"...A..H",
			},
			want: AI,
		},
		{
			name: "horizontal",
			rows: []string{
				"AAA....",
				"HHHHA..",
			},
			want: Human,
		},
		{
			name: "rising diagonal",
			rows: []string{
				"......H",
				".....HA",
				"....HAA",
				"...HAAH",
			},
			want: Human,
		},
		{
			name: "falling diagonal",
			rows: []string{
				"A......",
				"HA.....",
				"HHA....",
				"HHHA...",
			},
			want: AI,
		},
		{
			name: "three in a row is not a win",
			rows: []string{
				"A......",
				"A......",
				"AHHH...",
			},
			want: Empty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mustParse(t, tt.rows...).Winner())
		})
	}

	t.Run("full board without four in a row", func(t *testing.T) {
		require.Equal(t, Empty, drawnBoard(t).Winner())
	})

	t.Run("vertical windows are scanned first", func(t *testing.T) {
		b := mustParse(t,
			"A......",
			"A......",
			"A......",
			"AHHHH..",
		)
		require.Equal(t, AI, b.Winner())
	})
}

func TestMirror(t *testing.T) {
	b := mustParse(t, "HA.....")
	m := b.Mirror()
	require.Equal(t, AI, m.At(0, 0))
	require.Equal(t, Human, m.At(0, 1))
	require.Equal(t, Empty, m.At(0, 2))
	require.Equal(t, b, m.Mirror())
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		b := mustParse(t,
			"..A....",
			"..H.A..",
			"H A H A H A H",
		)
		require.Equal(t, ""+
			". . . . . . .\n"+
			". . . . . . .\n"+
			". . . . . . .\n"+
			". . A . . . .\n"+
			". . H . A . .\n"+
			"H A H A H A H\n"+
			"0 1 2 3 4 5 6", b.String())
		require.Equal(t, 5, b.Pieces(Human))
		require.Equal(t, 5, b.Pieces(AI))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		inputs := [][]string{
			{"HA"},
			{"HAX...."},
			{"H......", ".......", ".......", ".......", ".......", ".......", "......."},
			{"H......", "......."},
		}
		for _, rows := range inputs {
			_, err := ParseBoard(rows...)
			require.ErrorIs(t, err, ErrInvalidBoard, "rows %q", rows)
		}
	})
}

func TestSide(t *testing.T) {
	require.Equal(t, AI, Human.Opponent())
	require.Equal(t, Human, AI.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.False(t, Empty.IsPlayer())
	require.Equal(t, "human", Human.String())
}

// drawnBoard is a full board with no four in a row.
func drawnBoard(t *testing.T) Board {
	t.Helper()
	return mustParse(t,
		"AAHHAAH",
		"HHAAHHA",
		"AAHHAAH",
		"HHAAHHA",
		"AAHHAAH",
		"HHAAHHA",
	)
}
