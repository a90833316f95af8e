// Package ui provides the console and terminal front ends for playing against
// an agent.
package ui

import (
	"connect4/engine"
	"connect4/game"
	"connect4/gamemaster"
	"connect4/searcher"
	"connect4/searcher/agent"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// Each cell is drawn cellWidth characters wide.
const cellWidth = 4

var (
	boardStyle = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorBlack)
	pieceColor = map[game.Side]tcell.Color{
		game.Human: tcell.ColorRed,
		game.AI:    tcell.ColorYellow,
	}
)

// BoardUI draws the board and turns mouse and key events into moves for the
// human side. Its state is only touched on the tview event goroutine.
type BoardUI struct {
	Box  *tview.Box
	hint *tview.TextView
	app  *tview.Application

	ai         agent.Agent
	humanFirst bool
	human      *agent.HumanAgent

	update   engine.Update
	selected int
	left     int
	top      int
}

func NewBoardUI(app *tview.Application, hint *tview.TextView, ai agent.Agent, humanFirst bool) *BoardUI {
	b := &BoardUI{
		Box:        tview.NewBox(),
		hint:       hint,
		app:        app,
		ai:         ai,
		humanFirst: humanFirst,
		selected:   game.Columns / 2,
	}
	b.Box.SetBorder(true).SetTitle(" Connect Four ")
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetMouseCapture(b.mouse)
	return b
}

// Start plays a new game in the background.
func (b *BoardUI) Start() {
	first := game.AI
	if b.humanFirst {
		first = game.Human
	}

	human := agent.NewHumanAgent()
	b.human = human
	b.update = engine.Update{
		Column: searcher.NoColumn,
		Board:  game.NewBoard(),
		Turn:   first,
		Status: gamemaster.StatusActive,
	}
	b.refreshHint()

	e := engine.LocalEngine(first, human, b.ai)
	e.OnUpdate = func(u engine.Update) {
		b.app.QueueUpdateDraw(func() {
			// Ignore updates from a game that was replaced.
			if b.human != human {
				return
			}
			b.update = u
			b.refreshHint()
		})
	}

	go func() {
		if _, _, err := e.Run(); err != nil && !errors.Is(err, engine.ErrAborted) {
			log.Error().Err(err).Msg("game failed")
		}
	}()
}

// Close aborts the running game.
func (b *BoardUI) Close() {
	if b.human != nil {
		b.human.Close()
	}
}

func (b *BoardUI) Select(col int) {
	b.selected = clampColumn(col)
}

func (b *BoardUI) MoveSelection(delta int) {
	b.Select(b.selected + delta)
}

// Drop hands col to the game loop. It is ignored unless the game waits for
// the human.
func (b *BoardUI) Drop(col int) {
	if b.update.Over() || b.human == nil || !b.human.Waiting() {
		return
	}
	if !b.update.Board.IsAvailable(col) {
		return
	}
	b.Select(col)
	b.human.Submit(col)
}

// Restart starts a new game once the current one is over.
func (b *BoardUI) Restart() {
	if !b.update.Over() {
		return
	}
	b.Close()
	b.Start()
}

// InputCapture handles the application wide keys.
func (b *BoardUI) InputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		b.MoveSelection(-1)
	case tcell.KeyRight:
		b.MoveSelection(1)
	case tcell.KeyEnter:
		b.Drop(b.selected)
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'q':
			b.Close()
			b.app.Stop()
		case r == 'r':
			b.Restart()
		case r == 'h':
			b.MoveSelection(-1)
		case r == 'l':
			b.MoveSelection(1)
		case r == ' ':
			b.Drop(b.selected)
		case r >= '0' && r < '0'+game.Columns:
			b.Drop(int(r - '0'))
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) mouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, _ := event.Position()
	col, ok := columnAt(x, b.left)
	if !ok {
		return action, event
	}

	switch action {
	case tview.MouseMove:
		b.Select(col)
	case tview.MouseLeftClick:
		b.Drop(col)
	default:
		return action, event
	}
	return action, nil
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b.left, b.top = x+2, y+1
	board := b.update.Board

	// Preview row above the board
	if b.humansTurn() {
		style := tcell.StyleDefault.Foreground(pieceColor[game.Human])
		drawPiece(screen, b.left+b.selected*cellWidth, b.top, '●', style)
	}

	for row := 0; row < game.Rows; row++ {
		screenY := b.top + game.Rows - row
		for col := 0; col < game.Columns; col++ {
			cellX := b.left + col*cellWidth
			side := board.At(row, col)
			style := boardStyle
			r := '○'
			if side.IsPlayer() {
				style = boardStyle.Foreground(pieceColor[side])
				r = '●'
			}
			if col == b.update.Column && row == topRow(board, col) {
				style = style.Bold(true)
			}
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(cellX+i, screenY, ' ', nil, boardStyle)
			}
			drawPiece(screen, cellX, screenY, r, style)
		}
	}

	for col := 0; col < game.Columns; col++ {
		style := tcell.StyleDefault
		if col == b.selected {
			style = style.Reverse(true)
		}
		drawPiece(screen, b.left+col*cellWidth, b.top+game.Rows+1, rune('0'+col), style)
	}

	return x + 1, y + 1, width - 2, height - 2
}

func (b *BoardUI) humansTurn() bool {
	return !b.update.Over() && b.update.Turn == game.Human
}

func (b *BoardUI) refreshHint() {
	b.hint.SetText(hintText(b.update))
}

func hintText(u engine.Update) string {
	controls := "←/→ or mouse to aim   ⏎ or click to drop   q quit"
	switch {
	case u.Over():
		return fmt.Sprintf("%s\n\nr play again   q quit", banner(u))
	case u.Turn == game.AI:
		return fmt.Sprintf("AI is thinking...\n\n%s", controls)
	default:
		return fmt.Sprintf("Your move\n\n%s", controls)
	}
}

// columnAt maps a screen column to a board column for a board drawn from
// left.
func columnAt(x, left int) (int, bool) {
	if x < left {
		return 0, false
	}
	col := (x - left) / cellWidth
	if col >= game.Columns {
		return 0, false
	}
	return col, true
}

func clampColumn(col int) int {
	return min(max(col, 0), game.Columns-1)
}

// topRow returns the highest occupied row of col, or -1 for an empty column.
func topRow(board game.Board, col int) int {
	row, err := board.LowestEmptyRow(col)
	if err != nil {
		return game.Rows - 1
	}
	return row - 1
}

// drawPiece draws r in the middle of a cell starting at x.
func drawPiece(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	s.SetContent(x+1, y, r, nil, style)
}

// RunTUI plays against ai in the terminal until the user quits.
func RunTUI(ai agent.Agent, humanFirst bool) error {
	app := tview.NewApplication()
	hint := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	board := NewBoardUI(app, hint, ai, humanFirst)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, game.Rows+4, 0, true).
		AddItem(hint, 3, 0, false)

	app.SetInputCapture(board.InputCapture)
	board.Start()
	defer board.Close()

	if err := app.SetRoot(layout, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	return nil
}
