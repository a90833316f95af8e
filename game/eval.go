package game

const centerWeight = 3

// ScorePosition is the static heuristic used at the search horizon. It adds
// a bonus per own piece in the center column to the score of every window.
func ScorePosition(board Board, side Side) int {
	opponent := side.Opponent()
	score := 0

	center := Columns / 2
	for row := 0; row < Rows; row++ {
		if board.cells[row][center] == side {
			score += centerWeight
		}
	}

	for _, w := range windows {
		score += evaluateWindow(board.values(w), side, opponent)
	}
	return score
}

// evaluateWindow weighs a single window. The table is not symmetric
// between side and opponent.
func evaluateWindow(cells [ToWin]Side, side, opponent Side) int {
	own, theirs, empty := 0, 0, 0
	for _, c := range cells {
		switch c {
		case side:
			own++
		case opponent:
			theirs++
		case Empty:
			empty++
		}
	}

	score := 0
	switch own {
	case 4:
		score += 100
	case 3:
		score += 3
		if empty == 1 {
			score += 2
		} else if theirs == 1 {
			score -= 2
		}
	case 2:
		score++
		if empty == 2 {
			score++
		}
		if theirs == 2 {
			score--
		}
	}

	if theirs == 3 {
		score -= 3
		if empty == 1 {
			score -= 2
		} else if own == 1 {
			score++
		}
	}
	return score
}
