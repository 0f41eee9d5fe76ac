package game

// Pressed-cell feedback while the mouse button is held down. These are
// pure visual-type transitions on unrevealed cells: no counter moves, no
// mine or visited bit changes, only redraw notifications.

func (g *Game) pressCell(x, y int) {
	switch g.board.VisualType(x, y) {
	case BlkGuessUp:
		g.board.SetVisualType(x, y, BlkGuessDown)
	case BlkBlankUp:
		g.board.SetVisualType(x, y, BlkBlank)
	}
}

func (g *Game) releaseCell(x, y int) {
	switch g.board.VisualType(x, y) {
	case BlkGuessDown:
		g.board.SetVisualType(x, y, BlkGuessUp)
	case BlkBlank:
		if !g.board.IsVisited(x, y) {
			g.board.SetVisualType(x, y, BlkBlankUp)
		}
	}
}

// releaseAround pops up the 3x3 block around (x,y), clamped to the board.
// Called when a chord attempt fails its precondition.
func (g *Game) releaseAround(x, y int) {
	for yy := max(y-1, 1); yy <= min(y+1, g.board.height); yy++ {
		for xx := max(x-1, 1); xx <= min(x+1, g.board.width); xx++ {
			if !g.board.IsVisited(xx, yy) {
				g.releaseCell(xx, yy)
			}
			g.fe.RedrawCell(xx, yy)
		}
	}
}

// pressAround pushes down the 3x3 block around (x,y) for chord feedback.
func (g *Game) pressAround(x, y int) {
	for yy := max(y-1, 1); yy <= min(y+1, g.board.height); yy++ {
		for xx := max(x-1, 1); xx <= min(x+1, g.board.width); xx++ {
			if !g.board.IsVisited(xx, yy) {
				g.pressCell(xx, yy)
			}
			g.fe.RedrawCell(xx, yy)
		}
	}
}

// TrackCursor moves the press feedback to (x,y). In chord mode the whole
// 3x3 block around the cursor is pressed; otherwise just the cell under
// it. Passing an off-board position (e.g. -1,-1) releases everything.
func (g *Game) TrackCursor(x, y int, chord bool) {
	if g.over() || g.paused {
		return
	}
	if x == g.cursorX && y == g.cursorY && chord == g.chordCursor {
		return
	}

	oldX, oldY, oldChord := g.cursorX, g.cursorY, g.chordCursor
	g.cursorX, g.cursorY, g.chordCursor = x, y, chord

	if oldChord {
		if g.board.Valid(oldX, oldY) {
			g.releaseAround(oldX, oldY)
		}
	} else if g.board.Valid(oldX, oldY) && !g.board.IsVisited(oldX, oldY) {
		g.releaseCell(oldX, oldY)
		g.fe.RedrawCell(oldX, oldY)
	}

	if chord {
		if g.board.Valid(x, y) {
			g.pressAround(x, y)
		}
	} else if g.board.Valid(x, y) &&
		!g.board.IsVisited(x, y) && !g.board.IsFlagged(x, y) {
		g.pressCell(x, y)
		g.fe.RedrawCell(x, y)
	}
}
